// Package attachment stores named files per (entity type, identifier, entity id) scope.
package attachment

import (
	"context"
	"io"

	"github.com/bmatcuk/doublestar/v4"

	"sogrinha/internal/model"
)

// ListOptions narrows a listing.
type ListOptions struct {
	// Pattern is a doublestar glob matched against file names, e.g. "*.pdf". Empty matches all.
	Pattern string
}

// Store performs the attachment operations of one backend.
// Operations are independent; concurrent writes to one name are last-writer-wins.
type Store interface {
	// List returns the attachments of a scope sorted by name. A never-used scope yields an empty slice.
	List(ctx context.Context, scope model.Scope, opts ListOptions) ([]model.Attachment, error)
	// Upload writes content under name, replacing any existing file of that name.
	Upload(ctx context.Context, scope model.Scope, name string, content []byte) (model.Attachment, error)
	// Delete removes name. A missing file yields ErrNotFound.
	Delete(ctx context.Context, scope model.Scope, name string) error
	// Export copies name byte-for-byte to destination. A missing file yields ErrNotFound.
	Export(ctx context.Context, scope model.Scope, name, destination string) error
	// Open streams the content of name. A missing file yields ErrNotFound.
	Open(ctx context.Context, scope model.Scope, name string) (io.ReadCloser, model.Attachment, error)
}

func (o ListOptions) validate() error {
	if o.Pattern != "" && !doublestar.ValidatePattern(o.Pattern) {
		return ErrInvalidPattern
	}
	return nil
}

func (o ListOptions) match(name string) bool {
	if o.Pattern == "" {
		return true
	}
	ok, err := doublestar.Match(o.Pattern, name)
	return err == nil && ok
}

// Names extracts the file names of a listing.
func Names(items []model.Attachment) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names
}
