package site

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ResetDir makes dir an empty directory, creating it when missing and
// removing everything inside it otherwise. It returns the number of
// removed entries.
func ResetDir(dir string, obs Observer) (int, error) {
	if obs == nil {
		obs = NopObserver{}
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, errors.Wrap(os.MkdirAll(dir, 0o755), "could not create output directory")
	}
	if err != nil {
		return 0, errors.Wrap(err, "could not list output directory")
	}
	for i, e := range entries {
		p := filepath.Join(dir, e.Name())
		if err := os.RemoveAll(p); err != nil {
			return i, errors.Wrapf(err, "could not delete %s", p)
		}
		obs.Removed(p)
	}
	return len(entries), nil
}

// CopyStatic copies the tree rooted at src into dst, keeping relative paths
// and file modes. It returns the number of copied files.
func CopyStatic(src, dst string, obs Observer) (int, error) {
	if obs == nil {
		obs = NopObserver{}
	}
	if _, err := os.Stat(src); err != nil {
		return 0, errors.Wrapf(err, "static directory %s", src)
	}
	copied := 0
	err := filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if err := copyFile(p, target); err != nil {
			return err
		}
		copied++
		obs.Copied(p, target)
		return nil
	})
	return copied, errors.Wrap(err, "could not copy static files")
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
