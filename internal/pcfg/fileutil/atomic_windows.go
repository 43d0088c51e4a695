//go:build windows

package fileutil

import (
	"fmt"
	"os"
)

// renameio does not support Windows; fall back to a plain write.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
