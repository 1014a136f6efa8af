// Package bridge exposes the privileged attachment and document operations as named,
// stateless request/response calls. A call never fails across the boundary: every
// outcome, including panics, becomes a Result.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"sogrinha/internal/attachment"
	"sogrinha/internal/service"
)

// Operation names.
const (
	OpAttachmentsList     = "attachments.list"
	OpAttachmentsUpload   = "attachments.upload"
	OpAttachmentsDelete   = "attachments.delete"
	OpAttachmentsDownload = "attachments.download"
	OpFilesSave           = "files.save"
	OpContractsDocument   = "contracts.document"
	OpAppVersion          = "app.version"
)

// DefaultAllowedTypes is the upload allow-list used when none is configured.
var DefaultAllowedTypes = []string{"application/pdf"}

type opFunc func(ctx context.Context, params json.RawMessage) (Result, error)

// Options configures a Bridge. Store and Picker are required.
type Options struct {
	Store     attachment.Store
	Documents service.DocumentService
	Picker    Picker
	// ExportDir bounds explicit destinations sent by out-of-process callers.
	// Empty rejects them all.
	ExportDir string
	// AllowedTypes restricts uploads by sniffed MIME type. Empty disables the check.
	AllowedTypes []string
	Version      string
	Logger       *zap.Logger
	Metrics      *Metrics
	Tracer       trace.Tracer
}

// Bridge dispatches named operations.
type Bridge struct {
	store     attachment.Store
	docs      service.DocumentService
	picker    Picker
	exportDir string
	allowed   []string
	version   string
	log       *zap.Logger
	metrics   *Metrics
	tracer    trace.Tracer
	ops       map[string]opFunc
}

// New builds a Bridge with the fixed operation registry.
func New(opts Options) *Bridge {
	b := &Bridge{
		store:     opts.Store,
		docs:      opts.Documents,
		picker:    opts.Picker,
		exportDir: opts.ExportDir,
		allowed:   opts.AllowedTypes,
		version:   opts.Version,
		log:       opts.Logger,
		metrics:   opts.Metrics,
		tracer:    opts.Tracer,
	}
	if b.log == nil {
		b.log = zap.NewNop()
	}
	if b.tracer == nil {
		b.tracer = otel.Tracer("sogrinha/bridge")
	}
	if b.picker == nil {
		b.picker = DirPicker{}
	}
	b.ops = map[string]opFunc{
		OpAttachmentsList:     b.list,
		OpAttachmentsUpload:   b.upload,
		OpAttachmentsDelete:   b.delete,
		OpAttachmentsDownload: b.download,
		OpFilesSave:           b.saveFile,
		OpContractsDocument:   b.contractDocument,
		OpAppVersion:          b.appVersion,
	}
	return b
}

// Ops lists the registered operation names, sorted.
func (b *Bridge) Ops() []string {
	names := make([]string, 0, len(b.ops))
	for name := range b.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call runs op with JSON params and reports the outcome as a Result.
func (b *Bridge) Call(ctx context.Context, op string, params json.RawMessage) (res Result) {
	start := time.Now()
	fn, known := b.ops[op]
	label := op
	if !known {
		label = "unknown"
	}

	ctx, span := b.tracer.Start(ctx, "bridge."+label, trace.WithAttributes(attribute.String("bridge.op", op)))
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("bridge_panic", zap.String("op", op), zap.Any("panic", r), zap.Stack("stack"))
			res = failure(CodeInternal)
		}
		elapsed := time.Since(start)
		if res.Success {
			span.SetStatus(codes.Ok, "")
			b.log.Info("bridge_call", zap.String("op", op), zap.Duration("duration_ms", elapsed))
		} else {
			span.SetAttributes(attribute.String("bridge.code", string(res.Code)))
			span.SetStatus(codes.Error, string(res.Code))
		}
		span.End()
		b.metrics.observe(label, res, elapsed)
	}()

	if !known {
		b.log.Warn("bridge_call_failed", zap.String("op", op), zap.String("code", string(CodeUnknownOperation)))
		return failure(CodeUnknownOperation)
	}

	out, err := fn(ctx, params)
	if err != nil {
		code := codeFor(err)
		fields := []zap.Field{zap.String("op", op), zap.String("code", string(code)), zap.Error(err)}
		if code == CodeCancelled {
			b.log.Info("bridge_call_cancelled", fields...)
		} else {
			span.RecordError(err)
			b.log.Warn("bridge_call_failed", fields...)
		}
		return failure(code)
	}
	out.Success = true
	return out
}

// decode reads params into a T. Empty params decode to the zero value.
func decode[T any](params json.RawMessage) (T, error) {
	var v T
	if len(params) == 0 || string(params) == "null" {
		return v, nil
	}
	if err := json.Unmarshal(params, &v); err != nil {
		return v, fmt.Errorf("%w: %v", errInvalidParams, err)
	}
	return v, nil
}
