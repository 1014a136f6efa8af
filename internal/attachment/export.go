package attachment

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// SaveFile writes content to an externally chosen destination, replacing any file there.
func SaveFile(ctx context.Context, destination string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return writeExport(destination, bytes.NewReader(content), int64(len(content)))
}

// writeExport copies r into destination, replacing any file already there.
// want is the expected byte count, or -1 when unknown.
func writeExport(destination string, r io.Reader, want int64) error {
	if destination == "" {
		return ErrInvalidDestination
	}
	if info, err := os.Stat(destination); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInvalidDestination, destination)
	}

	dst, err := os.OpenFile(destination, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	n, err := io.Copy(dst, r)
	if err != nil {
		dst.Close()
		return fmt.Errorf("copy attachment: %w", err)
	}
	if want >= 0 && n != want {
		dst.Close()
		return fmt.Errorf("copy attachment: short copy %d of %d bytes", n, want)
	}
	if err := dst.Sync(); err != nil {
		dst.Close()
		return fmt.Errorf("sync export file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}

// samePath reports whether a and b name the same existing file.
func samePath(a, b string) (bool, error) {
	if b == "" {
		return false, ErrInvalidDestination
	}
	ia, err := os.Stat(a)
	if err != nil {
		return false, nil
	}
	ib, err := os.Stat(b)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat export destination: %w", err)
	}
	if os.SameFile(ia, ib) {
		return true, nil
	}
	pa, _ := filepath.Abs(a)
	pb, _ := filepath.Abs(b)
	return pa == pb, nil
}
