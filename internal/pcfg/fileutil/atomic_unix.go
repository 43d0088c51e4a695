//go:build !windows

package fileutil

import (
	"fmt"
	"os"

	"github.com/google/renameio/v2"
)

// writeFileAtomic writes through a pending file that is fsynced and renamed
// over path, so a crash never leaves a truncated config behind.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(perm))
	if err != nil {
		return fmt.Errorf("create pending file for %s: %w", path, err)
	}
	defer func() { _ = pendingFile.Cleanup() }()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}
