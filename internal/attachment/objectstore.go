package attachment

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/gabriel-vasile/mimetype"

	"sogrinha/internal/model"
	"sogrinha/internal/storage"
)

// ObjectStore keeps attachments in an S3-compatible bucket using the same scope layout as
// FileStore, with keys attachments/<entityType>/<identifier>/<entityId>/<name>.
type ObjectStore struct {
	objects storage.Storage
}

var _ Store = (*ObjectStore)(nil)

// NewObjectStore wraps an object storage client.
func NewObjectStore(objects storage.Storage) *ObjectStore {
	return &ObjectStore{objects: objects}
}

func (s *ObjectStore) List(ctx context.Context, scope model.Scope, opts ListOptions) ([]model.Attachment, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	prefix, err := Key(scope, "")
	if err != nil {
		return nil, err
	}
	objs, err := s.objects.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}

	items := make([]model.Attachment, 0, len(objs))
	for _, o := range objs {
		name := path.Base(o.Key)
		if !opts.match(name) {
			continue
		}
		items = append(items, model.Attachment{
			Name:        name,
			Size:        o.Size,
			ContentType: o.ContentType,
			ModifiedAt:  o.LastModified,
		})
	}
	return items, nil
}

func (s *ObjectStore) Upload(ctx context.Context, scope model.Scope, name string, content []byte) (model.Attachment, error) {
	key, err := Key(scope, name)
	if err != nil {
		return model.Attachment{}, err
	}
	ct := mimetype.Detect(content).String()
	info, err := s.objects.Put(ctx, key, bytes.NewReader(content), storage.PutObjectOptions{
		Size:        int64(len(content)),
		ContentType: ct,
		Metadata:    map[string]string{"original-filename": name},
	})
	if err != nil {
		return model.Attachment{}, fmt.Errorf("upload to storage: %w", err)
	}
	return model.Attachment{
		Name:        name,
		Size:        info.Size,
		ContentType: ct,
		ModifiedAt:  info.LastModified,
	}, nil
}

// Delete checks existence first because object stores treat removal of a missing key as success.
func (s *ObjectStore) Delete(ctx context.Context, scope model.Scope, name string) error {
	key, err := Key(scope, name)
	if err != nil {
		return err
	}
	if _, err := s.objects.Stat(ctx, key); err != nil {
		return s.mapErr(name, err)
	}
	if err := s.objects.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return nil
}

func (s *ObjectStore) Export(ctx context.Context, scope model.Scope, name, destination string) error {
	if destination == "" {
		return ErrInvalidDestination
	}
	rc, info, err := s.Open(ctx, scope, name)
	if err != nil {
		return err
	}
	defer rc.Close()
	return writeExport(destination, rc, info.Size)
}

func (s *ObjectStore) Open(ctx context.Context, scope model.Scope, name string) (io.ReadCloser, model.Attachment, error) {
	key, err := Key(scope, name)
	if err != nil {
		return nil, model.Attachment{}, err
	}
	rc, info, err := s.objects.Get(ctx, key)
	if err != nil {
		return nil, model.Attachment{}, s.mapErr(name, err)
	}
	return rc, model.Attachment{
		Name:        name,
		Size:        info.Size,
		ContentType: info.ContentType,
		ModifiedAt:  info.LastModified,
	}, nil
}

func (s *ObjectStore) mapErr(name string, err error) error {
	if errors.Is(err, storage.ErrObjectNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return fmt.Errorf("storage: %w", err)
}
