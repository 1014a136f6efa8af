package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"sogrinha/internal/attachment"
	"sogrinha/internal/document"
	"sogrinha/internal/model"
)

// ScopeParams addresses one attachment directory.
type ScopeParams struct {
	EntityType string `json:"entityType"`
	Identifier string `json:"identifier"`
	EntityID   string `json:"entityId"`
}

type ListParams struct {
	ScopeParams
	Pattern string `json:"pattern,omitempty"`
}

type UploadParams struct {
	ScopeParams
	Name    string `json:"name"`
	Content []byte `json:"content"`
}

type DeleteParams struct {
	ScopeParams
	Name string `json:"name"`
}

type DownloadParams struct {
	ScopeParams
	Name        string `json:"name"`
	Destination string `json:"destination,omitempty"`
}

type SaveFileParams struct {
	FileName    string `json:"fileName"`
	Content     []byte `json:"content"`
	Destination string `json:"destination,omitempty"`
}

type ContractDocumentParams struct {
	ContractID  string `json:"contractId"`
	Format      string `json:"format,omitempty"`
	Destination string `json:"destination,omitempty"`
}

// NewScopeParams converts a scope into request params.
func NewScopeParams(s model.Scope) ScopeParams {
	return ScopeParams{EntityType: string(s.EntityType), Identifier: s.Identifier, EntityID: s.EntityID}
}

// scope validates the params and checks them against the caller's token subject.
func (p ScopeParams) scope(ctx context.Context) (model.Scope, error) {
	et, err := model.ParseEntityType(p.EntityType)
	if err != nil {
		return model.Scope{}, fmt.Errorf("%w: %v", errInvalidParams, err)
	}
	s := model.Scope{EntityType: et, Identifier: p.Identifier, EntityID: p.EntityID}
	if err := attachment.ValidateScope(s); err != nil {
		return model.Scope{}, err
	}
	if sub, ok := SubjectFrom(ctx); ok && sub != s.Identifier {
		return model.Scope{}, errForbidden
	}
	return s, nil
}

func (b *Bridge) list(ctx context.Context, raw json.RawMessage) (Result, error) {
	p, err := decode[ListParams](raw)
	if err != nil {
		return Result{}, err
	}
	s, err := p.scope(ctx)
	if err != nil {
		return Result{}, err
	}
	items, err := b.store.List(ctx, s, attachment.ListOptions{Pattern: p.Pattern})
	if err != nil {
		return Result{}, err
	}
	return Result{Files: attachment.Names(items), Attachments: items}, nil
}

func (b *Bridge) upload(ctx context.Context, raw json.RawMessage) (Result, error) {
	p, err := decode[UploadParams](raw)
	if err != nil {
		return Result{}, err
	}
	s, err := p.scope(ctx)
	if err != nil {
		return Result{}, err
	}
	if err := b.checkType(p.Content); err != nil {
		return Result{}, err
	}
	a, err := b.store.Upload(ctx, s, p.Name, p.Content)
	if err != nil {
		return Result{}, err
	}
	return Result{ContentType: a.ContentType, Size: a.Size}, nil
}

func (b *Bridge) delete(ctx context.Context, raw json.RawMessage) (Result, error) {
	p, err := decode[DeleteParams](raw)
	if err != nil {
		return Result{}, err
	}
	s, err := p.scope(ctx)
	if err != nil {
		return Result{}, err
	}
	return Result{}, b.store.Delete(ctx, s, p.Name)
}

func (b *Bridge) download(ctx context.Context, raw json.RawMessage) (Result, error) {
	p, err := decode[DownloadParams](raw)
	if err != nil {
		return Result{}, err
	}
	s, err := p.scope(ctx)
	if err != nil {
		return Result{}, err
	}
	// Validate the name before any dialog is shown.
	if err := attachment.ValidateName(p.Name); err != nil {
		return Result{}, err
	}
	dest, err := b.destination(ctx, p.Destination, p.Name)
	if err != nil {
		return Result{}, err
	}
	if err := b.store.Export(ctx, s, p.Name, dest); err != nil {
		return Result{}, err
	}
	return Result{FilePath: dest}, nil
}

func (b *Bridge) saveFile(ctx context.Context, raw json.RawMessage) (Result, error) {
	p, err := decode[SaveFileParams](raw)
	if err != nil {
		return Result{}, err
	}
	if p.FileName == "" {
		return Result{}, fmt.Errorf("%w: fileName is required", errInvalidParams)
	}
	dest, err := b.destination(ctx, p.Destination, p.FileName)
	if err != nil {
		return Result{}, err
	}
	if err := attachment.SaveFile(ctx, dest, p.Content); err != nil {
		return Result{}, err
	}
	return Result{FilePath: dest, Size: int64(len(p.Content))}, nil
}

func (b *Bridge) contractDocument(ctx context.Context, raw json.RawMessage) (Result, error) {
	if b.docs == nil {
		return Result{}, errUnavailable
	}
	p, err := decode[ContractDocumentParams](raw)
	if err != nil {
		return Result{}, err
	}
	format, err := document.ParseFormat(p.Format)
	if err != nil {
		return Result{}, err
	}
	// Render first so missing data is reported before the user picks a path.
	doc, err := b.docs.Render(ctx, p.ContractID, format)
	if err != nil {
		return Result{}, err
	}
	dest, err := b.destination(ctx, p.Destination, doc.FileName)
	if err != nil {
		return Result{}, err
	}
	if err := attachment.SaveFile(ctx, dest, doc.Content); err != nil {
		return Result{}, err
	}
	return Result{FilePath: dest, ContentType: doc.ContentType, Size: int64(len(doc.Content))}, nil
}

func (b *Bridge) appVersion(context.Context, json.RawMessage) (Result, error) {
	return Result{Version: b.version}, nil
}

// destination returns the explicit path, or asks the picker. Explicit paths from
// out-of-process callers must resolve inside the export directory; relative ones are
// taken relative to it.
func (b *Bridge) destination(ctx context.Context, explicit, defaultName string) (string, error) {
	if explicit != "" {
		if trusted(ctx) {
			return filepath.Clean(explicit), nil
		}
		return b.withinExportDir(explicit)
	}
	dest, err := b.picker.PickSavePath(ctx, defaultName)
	if err != nil {
		return "", err
	}
	if dest == "" {
		return "", attachment.ErrCancelled
	}
	return dest, nil
}

func (b *Bridge) withinExportDir(path string) (string, error) {
	if b.exportDir == "" {
		return "", errDestinationOutside
	}
	root, err := filepath.Abs(b.exportDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errDestinationOutside, err)
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	dest := filepath.Clean(path)
	rel, err := filepath.Rel(root, dest)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", errDestinationOutside, dest)
	}
	return dest, nil
}

// checkType applies the advisory allow-list. Empty content has nothing to sniff and passes.
func (b *Bridge) checkType(content []byte) error {
	if len(b.allowed) == 0 || len(content) == 0 {
		return nil
	}
	mt := mimetype.Detect(content)
	for _, want := range b.allowed {
		if mt.Is(want) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", errUnsupportedType, mt.String())
}
