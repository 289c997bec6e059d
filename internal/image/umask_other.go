//go:build !unix

package image

import "os"

// Umask returns 0 on platforms without a file mode creation mask.
func Umask() os.FileMode {
	return 0
}
