package attachment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"sogrinha/internal/model"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// FileStore keeps attachments on the host filesystem under a Resolver root.
type FileStore struct {
	resolver Resolver
}

var _ Store = (*FileStore)(nil)

// NewFileStore returns a FileStore rooted at dataRoot.
func NewFileStore(dataRoot string) *FileStore {
	return &FileStore{resolver: NewResolver(dataRoot)}
}

// Resolver exposes the path resolver, used by the watcher and tests.
func (s *FileStore) Resolver() Resolver { return s.resolver }

func (s *FileStore) List(ctx context.Context, scope model.Scope, opts ListOptions) ([]model.Attachment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	dir, err := s.ensureDir(scope)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read attachment dir: %w", err)
	}

	items := make([]model.Attachment, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, tempFilePrefix) || !opts.match(name) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", name, err)
		}
		items = append(items, model.Attachment{
			Name:        name,
			Size:        info.Size(),
			ContentType: detectFile(filepath.Join(dir, name)),
			ModifiedAt:  info.ModTime(),
		})
	}
	return items, nil
}

func (s *FileStore) Upload(ctx context.Context, scope model.Scope, name string, content []byte) (model.Attachment, error) {
	if err := ctx.Err(); err != nil {
		return model.Attachment{}, err
	}
	target, err := s.resolver.File(scope, name)
	if err != nil {
		return model.Attachment{}, err
	}
	if _, err := s.ensureDir(scope); err != nil {
		return model.Attachment{}, err
	}
	if err := writeFileAtomic(target, content, filePerm); err != nil {
		return model.Attachment{}, err
	}

	info, err := os.Stat(target)
	if err != nil {
		return model.Attachment{}, fmt.Errorf("stat uploaded file: %w", err)
	}
	return model.Attachment{
		Name:        name,
		Size:        info.Size(),
		ContentType: mimetype.Detect(content).String(),
		ModifiedAt:  info.ModTime(),
	}, nil
}

func (s *FileStore) Delete(ctx context.Context, scope model.Scope, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target, err := s.resolver.File(scope, name)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("delete attachment: %w", err)
	}
	return nil
}

func (s *FileStore) Export(ctx context.Context, scope model.Scope, name, destination string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	src, info, err := s.Open(ctx, scope, name)
	if err != nil {
		return err
	}
	defer src.Close()

	target, _ := s.resolver.File(scope, name)
	if same, err := samePath(target, destination); err != nil {
		return err
	} else if same {
		// Copying a file onto itself would truncate it first.
		return nil
	}
	return writeExport(destination, src, info.Size)
}

func (s *FileStore) Open(ctx context.Context, scope model.Scope, name string) (io.ReadCloser, model.Attachment, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.Attachment{}, err
	}
	target, err := s.resolver.File(scope, name)
	if err != nil {
		return nil, model.Attachment{}, err
	}
	f, err := os.Open(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, model.Attachment{}, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, model.Attachment{}, fmt.Errorf("open attachment: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, model.Attachment{}, fmt.Errorf("stat attachment: %w", err)
	}
	if info.IsDir() {
		f.Close()
		return nil, model.Attachment{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return f, model.Attachment{
		Name:        name,
		Size:        info.Size(),
		ContentType: detectFile(target),
		ModifiedAt:  info.ModTime(),
	}, nil
}

// ensureDir creates the scope directory if needed. An existing directory is not an error.
func (s *FileStore) ensureDir(scope model.Scope) (string, error) {
	dir, err := s.resolver.Dir(scope)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("create attachment dir: %w", err)
	}
	return dir, nil
}

func detectFile(p string) string {
	mt, err := mimetype.DetectFile(p)
	if err != nil {
		return ""
	}
	return mt.String()
}

// writeFileAtomic writes data to a temp file in the target directory and renames it over filename.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)

	tmpFile, err := os.CreateTemp(dir, tempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name()) // no-op after a successful rename

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}
	return nil
}
