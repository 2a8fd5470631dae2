package installer

import (
	"io"
	"os"

	"github.com/google/renameio/v2"
)

// copyFile copies src to dst, replacing dst atomically so a partially
// written file never lands in the commands directory. The destination
// carries the source's permissions and modification time.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	pending, err := renameio.NewPendingFile(dst, renameio.WithPermissions(info.Mode().Perm()))
	if err != nil {
		return err
	}
	defer func() { _ = pending.Cleanup() }()

	if _, err := io.Copy(pending, in); err != nil {
		return err
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return err
	}

	// Keep the source timestamp on the installed file.
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
