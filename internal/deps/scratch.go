package deps

import (
	"fmt"
	"os"
	"strings"
)

// CheckScratch verifies that dir can hold .pto artifacts. An empty dir means
// the system temporary directory.
func CheckScratch(dir string) Status {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = os.TempDir()
	}
	status := Status{
		Name:        "scratch directory",
		Command:     dir,
		Description: "holds align_image_stack project files during a run",
	}
	f, err := os.CreateTemp(dir, ".samerename-check-*")
	if err != nil {
		status.Detail = fmt.Sprintf("not writable: %v", err)
		return status
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	status.Available = true
	return status
}
