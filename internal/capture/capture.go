// Package capture resolves the timestamp used to order frames before they are
// sequenced.
package capture

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/piotrcurious/same-picture-finder/internal/config"
	"github.com/piotrcurious/same-picture-finder/internal/fileutil"
	"github.com/piotrcurious/same-picture-finder/internal/logging"
)

// Func returns the ordering timestamp for a file.
type Func func(path string, info fs.FileInfo) time.Time

// EXIFTime reads the EXIF DateTime tag from path.
func EXIFTime(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode exif: %w", err)
	}
	return x.DateTime()
}

// CreationTime orders by filesystem creation time.
func CreationTime(path string, info fs.FileInfo) time.Time {
	return fileutil.CreationTime(path, info)
}

// ForOrdering returns the timestamp function for a selection.ordering value.
// EXIF ordering falls back to creation time for files without usable EXIF
// data; unknown modes use creation time.
func ForOrdering(mode string, logger *slog.Logger) Func {
	if mode != config.OrderingEXIF {
		return CreationTime
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return func(path string, info fs.FileInfo) time.Time {
		ts, err := EXIFTime(path)
		if err == nil && !ts.IsZero() {
			return ts
		}
		logger.Debug("exif capture time unavailable; using creation time",
			logging.String("path", path),
			logging.Error(err),
		)
		return CreationTime(path, info)
	}
}
