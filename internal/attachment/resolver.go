package attachment

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"sogrinha/internal/model"
)

// DirName is the directory under the data root that holds every scope.
const DirName = "attachments"

// tempFilePrefix marks in-flight atomic writes; List never reports them.
const tempFilePrefix = ".sogrinha-tmp-"

// Resolver maps a scope to its directory under a fixed data root:
// <root>/attachments/<entityType>/<identifier>/<entityId>.
type Resolver struct {
	root string
}

// NewResolver returns a Resolver rooted at dataRoot.
func NewResolver(dataRoot string) Resolver {
	return Resolver{root: dataRoot}
}

// Root returns the data root the resolver was built with.
func (r Resolver) Root() string { return r.root }

// Dir returns the scope directory. The directory is not created.
func (r Resolver) Dir(s model.Scope) (string, error) {
	if err := ValidateScope(s); err != nil {
		return "", err
	}
	return filepath.Join(r.root, DirName, string(s.EntityType), s.Identifier, s.EntityID), nil
}

// File returns the path of name inside the scope directory.
func (r Resolver) File(s model.Scope, name string) (string, error) {
	dir, err := r.Dir(s)
	if err != nil {
		return "", err
	}
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// Key returns the slash-separated object key for name, or the scope prefix when name is empty.
func Key(s model.Scope, name string) (string, error) {
	if err := ValidateScope(s); err != nil {
		return "", err
	}
	prefix := path.Join(DirName, string(s.EntityType), s.Identifier, s.EntityID)
	if name == "" {
		return prefix, nil
	}
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return path.Join(prefix, name), nil
}

// ValidateScope checks every segment of a scope.
func ValidateScope(s model.Scope) error {
	if _, err := model.ParseEntityType(string(s.EntityType)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSegment, err)
	}
	if err := ValidateSegment("identifier", s.Identifier); err != nil {
		return err
	}
	return ValidateSegment("entityId", s.EntityID)
}

// ValidateName checks an attachment file name. Names carrying the in-flight write
// prefix are reserved, since List never reports them.
func ValidateName(name string) error {
	if err := ValidateSegment("name", name); err != nil {
		return err
	}
	if strings.HasPrefix(name, tempFilePrefix) {
		return fmt.Errorf("%w: name %q uses a reserved prefix", ErrInvalidSegment, name)
	}
	return nil
}

// ValidateSegment rejects values that would escape or restructure the scope directory.
// Accepted values are used byte-for-byte so existing on-disk layouts keep resolving.
func ValidateSegment(field, v string) error {
	switch {
	case v == "":
		return fmt.Errorf("%w: %s is empty", ErrInvalidSegment, field)
	case v == "." || v == "..":
		return fmt.Errorf("%w: %s %q", ErrInvalidSegment, field, v)
	case strings.ContainsAny(v, `/\`):
		return fmt.Errorf("%w: %s %q contains a path separator", ErrInvalidSegment, field, v)
	case strings.ContainsRune(v, 0):
		return fmt.Errorf("%w: %s contains a NUL byte", ErrInvalidSegment, field)
	case !utf8.ValidString(v):
		return fmt.Errorf("%w: %s is not valid UTF-8", ErrInvalidSegment, field)
	}
	return nil
}
