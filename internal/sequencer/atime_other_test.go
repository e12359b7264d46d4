//go:build !linux

package sequencer_test

import (
	"testing"
	"time"
)

func accessTime(t *testing.T, path string) time.Time {
	return time.Time{}
}
