//go:build unix

package image

import (
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

var umaskMu sync.Mutex

// Umask returns the process file mode creation mask. The mask can only be
// read by setting it, so it is briefly replaced and then restored.
func Umask() os.FileMode {
	umaskMu.Lock()
	defer umaskMu.Unlock()

	old := unix.Umask(0o777)
	unix.Umask(old)
	return os.FileMode(old) & os.ModePerm
}
