package bridge

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sogrinha/internal/attachment"
	"sogrinha/internal/document"
	"sogrinha/internal/model"
	svcMocks "sogrinha/internal/service/mocks"
)

var leaseScope = model.Scope{EntityType: model.EntityContract, Identifier: "user123", EntityID: "ctr_42"}

func samplePDF(t *testing.T, size int) []byte {
	t.Helper()
	buf := make([]byte, size)
	_, err := rand.Read(buf)
	require.NoError(t, err)
	copy(buf, "%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")
	return buf
}

type fixture struct {
	bridge  *Bridge
	client  Client
	store   *attachment.FileStore
	export  string
	metrics *Metrics
}

func newFixture(t *testing.T, opts Options) fixture {
	t.Helper()
	export := t.TempDir()
	store := attachment.NewFileStore(t.TempDir())
	m, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	if opts.Store == nil {
		opts.Store = store
	}
	if opts.Picker == nil {
		opts.Picker = DirPicker{Dir: export}
	}
	if opts.ExportDir == "" {
		opts.ExportDir = export
	}
	if opts.AllowedTypes == nil {
		opts.AllowedTypes = DefaultAllowedTypes
	}
	opts.Metrics = m
	b := New(opts)
	return fixture{bridge: b, client: NewLocalClient(b), store: store, export: export, metrics: m}
}

func TestBridge_LeaseScenario(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	content := samplePDF(t, 1024)

	up, err := f.client.Upload(ctx, leaseScope, "lease_2024.pdf", content)
	require.NoError(t, err)
	assert.Equal(t, int64(1024), up.Size)
	assert.Equal(t, "application/pdf", up.ContentType)

	list, err := f.client.List(ctx, leaseScope, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"lease_2024.pdf"}, list.Files)

	dl, err := f.client.Download(ctx, leaseScope, "lease_2024.pdf", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.export, "lease_2024.pdf"), dl.FilePath)
	exported, err := os.ReadFile(dl.FilePath)
	require.NoError(t, err)
	assert.Len(t, exported, 1024)
	assert.True(t, bytes.Equal(content, exported))

	_, err = f.client.Delete(ctx, leaseScope, "lease_2024.pdf")
	require.NoError(t, err)

	list, err = f.client.List(ctx, leaseScope, "")
	require.NoError(t, err)
	assert.Empty(t, list.Files)

	assert.Equal(t, 2.0, testutil.ToFloat64(f.metrics.calls.WithLabelValues(OpAttachmentsList, "OK")))
}

func TestBridge_DownloadCancelled(t *testing.T) {
	f := newFixture(t, Options{Picker: DirPicker{}})
	ctx := context.Background()

	_, err := f.client.Upload(ctx, leaseScope, "lease_2024.pdf", samplePDF(t, 64))
	require.NoError(t, err)

	res, err := f.client.Download(ctx, leaseScope, "lease_2024.pdf", "")

	assert.ErrorIs(t, err, attachment.ErrCancelled)
	assert.False(t, res.Success)
	assert.Equal(t, CodeCancelled, res.Code)
	assert.Equal(t, "Operação cancelada", res.Error)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.calls.WithLabelValues(OpAttachmentsDownload, string(CodeCancelled))))
}

func TestBridge_FailureCodes(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	tests := []struct {
		name   string
		op     string
		params string
		want   Code
	}{
		{"unknown operation", "attachments.rename", `{}`, CodeUnknownOperation},
		{"malformed params", OpAttachmentsList, `{"entityType":`, CodeInvalidArgument},
		{"bad entity type", OpAttachmentsList, `{"entityType":"tenants","identifier":"u","entityId":"e"}`, CodeInvalidArgument},
		{"traversal identifier", OpAttachmentsList, `{"entityType":"owners","identifier":"..","entityId":"e"}`, CodeInvalidArgument},
		{"delete missing", OpAttachmentsDelete, `{"entityType":"owners","identifier":"u","entityId":"e","name":"x.pdf"}`, CodeNotFound},
		{"download missing", OpAttachmentsDownload, `{"entityType":"owners","identifier":"u","entityId":"e","name":"x.pdf"}`, CodeNotFound},
		{"upload not pdf", OpAttachmentsUpload, `{"entityType":"owners","identifier":"u","entityId":"e","name":"x.txt","content":"aGVsbG8gd29ybGQ="}`, CodeUnsupportedType},
		{"save without name", OpFilesSave, `{"content":"eA=="}`, CodeInvalidArgument},
		{"document without backend", OpContractsDocument, `{"contractId":"ctr_42"}`, CodeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := f.bridge.Call(ctx, tt.op, json.RawMessage(tt.params))

			assert.False(t, res.Success)
			assert.Equal(t, tt.want, res.Code)
			assert.Equal(t, tt.want.Message(), res.Error)
		})
	}
}

func TestBridge_PanicBecomesInternal(t *testing.T) {
	f := newFixture(t, Options{Picker: PickerFunc(func(context.Context, string) (string, error) {
		panic("dialog crashed")
	})})

	res := f.bridge.Call(context.Background(), OpFilesSave, json.RawMessage(`{"fileName":"a.pdf","content":"eA=="}`))

	assert.False(t, res.Success)
	assert.Equal(t, CodeInternal, res.Code)
}

func TestBridge_SubjectScopesIdentifier(t *testing.T) {
	f := newFixture(t, Options{})

	ctx := WithSubject(context.Background(), "someone-else")
	_, err := f.client.List(ctx, leaseScope, "")
	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, CodeForbidden, callErr.Code)

	ctx = WithSubject(context.Background(), "user123")
	_, err = f.client.List(ctx, leaseScope, "")
	assert.NoError(t, err)
}

func TestBridge_SaveFile(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	res, err := f.client.SaveFile(ctx, "relatorio.pdf", []byte("%PDF-1.3 body"), "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.export, "relatorio.pdf"), res.FilePath)

	explicit := filepath.Join(t.TempDir(), "outro.pdf")
	res, err = f.client.SaveFile(ctx, "relatorio.pdf", []byte("x"), explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, res.FilePath)
	_, err = os.Stat(explicit)
	assert.NoError(t, err)
}

func TestBridge_RemoteDestinationStaysInExportDir(t *testing.T) {
	f := newFixture(t, Options{Picker: DirPicker{}})
	ctx := WithSubject(context.Background(), "user123")
	outside := t.TempDir()

	_, err := f.store.Upload(context.Background(), leaseScope, "lease_2024.pdf", samplePDF(t, 64))
	require.NoError(t, err)

	save := func(dest string) Result {
		params, err := json.Marshal(SaveFileParams{FileName: "a.pdf", Content: []byte("pwned"), Destination: dest})
		require.NoError(t, err)
		return f.bridge.Call(ctx, OpFilesSave, params)
	}

	tests := []struct {
		name string
		dest string
	}{
		{"absolute outside", filepath.Join(outside, "victim.sh")},
		{"traversal through export dir", filepath.Join(f.export, "..", "victim.sh")},
		{"relative traversal", "../victim.sh"},
		{"export dir itself", f.export},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := save(tt.dest)

			assert.False(t, res.Success)
			assert.Equal(t, CodeForbidden, res.Code)
		})
	}
	entries, err := os.ReadDir(outside)
	require.NoError(t, err)
	assert.Empty(t, entries)
	_, err = os.Stat(filepath.Join(filepath.Dir(f.export), "victim.sh"))
	assert.True(t, os.IsNotExist(err))

	t.Run("download outside", func(t *testing.T) {
		params, err := json.Marshal(DownloadParams{ScopeParams: NewScopeParams(leaseScope), Name: "lease_2024.pdf", Destination: filepath.Join(outside, "x.pdf")})
		require.NoError(t, err)
		res := f.bridge.Call(ctx, OpAttachmentsDownload, params)
		assert.Equal(t, CodeForbidden, res.Code)
	})

	t.Run("inside export dir", func(t *testing.T) {
		res := save(filepath.Join(f.export, "sub", "..", "ok.pdf"))
		require.True(t, res.Success, res.Error)
		assert.Equal(t, filepath.Join(f.export, "ok.pdf"), res.FilePath)

		res = save("rel.pdf")
		require.True(t, res.Success, res.Error)
		assert.Equal(t, filepath.Join(f.export, "rel.pdf"), res.FilePath)
	})
}

func TestBridge_RemoteDestinationWithoutExportDir(t *testing.T) {
	b := New(Options{Store: attachment.NewFileStore(t.TempDir())})
	dest := filepath.Join(t.TempDir(), "a.pdf")

	params, err := json.Marshal(SaveFileParams{FileName: "a.pdf", Content: []byte("x"), Destination: dest})
	require.NoError(t, err)
	res := b.Call(context.Background(), OpFilesSave, params)

	assert.Equal(t, CodeForbidden, res.Code)
	_, err = os.Stat(dest)
	assert.True(t, os.IsNotExist(err))

	saved, err := NewLocalClient(b).SaveFile(context.Background(), "a.pdf", []byte("x"), dest)
	require.NoError(t, err)
	assert.Equal(t, dest, saved.FilePath)
}

func TestBridge_ContractDocument(t *testing.T) {
	ctx := context.Background()
	rendered := &document.Rendered{FileName: "contrato_ALG14102026007.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.3")}

	t.Run("saved to picked path", func(t *testing.T) {
		docs := new(svcMocks.MockDocumentService)
		docs.On("Render", mock.Anything, "ctr_42", document.FormatPDF).Return(rendered, nil)
		f := newFixture(t, Options{Documents: docs})

		res, err := f.client.ContractDocument(ctx, "ctr_42", "pdf", "")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(f.export, "contrato_ALG14102026007.pdf"), res.FilePath)
		assert.Equal(t, int64(8), res.Size)
		docs.AssertExpectations(t)
	})

	t.Run("missing owner", func(t *testing.T) {
		docs := new(svcMocks.MockDocumentService)
		docs.On("Render", mock.Anything, "ctr_1", document.FormatDOCX).
			Return(nil, errors.Join(document.ErrMissingRequiredData, errors.New("owner")))
		f := newFixture(t, Options{Documents: docs})

		res, err := f.client.ContractDocument(ctx, "ctr_1", "docx", "")

		assert.ErrorIs(t, err, document.ErrMissingRequiredData)
		assert.Equal(t, CodeMissingRequiredData, res.Code)
		entries, _ := os.ReadDir(f.export)
		assert.Empty(t, entries)
	})

	t.Run("bad format", func(t *testing.T) {
		f := newFixture(t, Options{Documents: new(svcMocks.MockDocumentService)})
		res, _ := f.client.ContractDocument(ctx, "ctr_1", "odt", "")
		assert.Equal(t, CodeInvalidArgument, res.Code)
	})
}

func TestBridge_VersionAndOps(t *testing.T) {
	f := newFixture(t, Options{Version: "1.2.3"})

	res, err := f.client.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", res.Version)

	assert.Equal(t, []string{
		OpAppVersion, OpAttachmentsDelete, OpAttachmentsDownload, OpAttachmentsList,
		OpAttachmentsUpload, OpContractsDocument, OpFilesSave,
	}, f.bridge.Ops())
}

func TestBridge_UploadAllowListDisabled(t *testing.T) {
	f := newFixture(t, Options{AllowedTypes: []string{}})

	res, err := f.client.Upload(context.Background(), leaseScope, "notes.txt", []byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, int64(11), res.Size)
}
