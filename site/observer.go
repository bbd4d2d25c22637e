package site

import (
	"log"

	"github.com/dustin/go-humanize"
)

// Observer receives progress events from Build and its steps.
type Observer interface {
	Removed(path string)
	Copied(src, dst string)
	Generated(src, dst string, size int64)
	Skipped(path string)
	Failed(path string, err error)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) Removed(string)                  {}
func (NopObserver) Copied(string, string)           {}
func (NopObserver) Generated(string, string, int64) {}
func (NopObserver) Skipped(string)                  {}
func (NopObserver) Failed(string, error)            {}

// LogObserver writes one line per event to Logger, or to the standard
// logger when Logger is nil.
type LogObserver struct {
	Logger *log.Logger
}

func (o LogObserver) printf(format string, args ...interface{}) {
	if o.Logger == nil {
		log.Printf(format, args...)
		return
	}
	o.Logger.Printf(format, args...)
}

func (o LogObserver) Removed(path string) { o.printf("INFO: deleted %s", path) }

func (o LogObserver) Copied(src, dst string) { o.printf("INFO: copied %s to %s", src, dst) }

func (o LogObserver) Generated(src, dst string, size int64) {
	o.printf("INFO: generated %s from %s (%s)", dst, src, humanize.Bytes(uint64(size)))
}

func (o LogObserver) Skipped(path string) { o.printf("INFO: skipping non-markdown file %s", path) }

func (o LogObserver) Failed(path string, err error) { o.printf("ERROR: %s: %v", path, err) }
