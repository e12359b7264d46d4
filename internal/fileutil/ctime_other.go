//go:build !linux

package fileutil

import (
	"io/fs"
	"os"
	"time"
)

// CreationTime reports the modification time on platforms without statx.
func CreationTime(path string, info fs.FileInfo) time.Time {
	if info == nil {
		var err error
		if info, err = os.Stat(path); err != nil {
			return time.Time{}
		}
	}
	return info.ModTime()
}
