//go:build linux

package fileutil

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

// CreationTime reports when path was created. It prefers the statx birth
// time and falls back to the inode change time, then to info.ModTime, when
// the filesystem does not record one.
func CreationTime(path string, info fs.FileInfo) time.Time {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BTIME|unix.STATX_CTIME, &stx)
	if err == nil {
		if stx.Mask&unix.STATX_BTIME != 0 && stx.Btime.Sec != 0 {
			return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec))
		}
		if stx.Mask&unix.STATX_CTIME != 0 {
			return time.Unix(stx.Ctime.Sec, int64(stx.Ctime.Nsec))
		}
	}
	if info != nil {
		return info.ModTime()
	}
	return time.Time{}
}
