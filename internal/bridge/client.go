package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"sogrinha/internal/model"
)

// Client is the capability handed to UI and CLI code; it can do nothing beyond the bridge operations.
// Methods return a *CallError when the call completed with success=false.
type Client interface {
	List(ctx context.Context, scope model.Scope, pattern string) (Result, error)
	Upload(ctx context.Context, scope model.Scope, name string, content []byte) (Result, error)
	Delete(ctx context.Context, scope model.Scope, name string) (Result, error)
	Download(ctx context.Context, scope model.Scope, name, destination string) (Result, error)
	SaveFile(ctx context.Context, fileName string, content []byte, destination string) (Result, error)
	ContractDocument(ctx context.Context, contractID, format, destination string) (Result, error)
	Version(ctx context.Context) (Result, error)
}

type transport func(ctx context.Context, op string, body []byte) (Result, error)

type client struct {
	do transport
}

// NewLocalClient calls b in-process. Explicit destinations are written as given.
func NewLocalClient(b *Bridge) Client {
	return client{do: func(ctx context.Context, op string, body []byte) (Result, error) {
		return b.Call(withTrusted(ctx), op, body), nil
	}}
}

// NewHTTPClient calls a bridge served at baseURL, e.g. "http://127.0.0.1:8080".
// A nil hc uses a client with an otelhttp transport.
func NewHTTPClient(baseURL, token string, hc *http.Client) Client {
	if hc == nil {
		hc = &http.Client{
			Timeout:   2 * time.Minute,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	base := strings.TrimRight(baseURL, "/")
	return client{do: func(ctx context.Context, op string, body []byte) (Result, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/bridge/"+op, bytes.NewReader(body))
		if err != nil {
			return Result{}, err
		}
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := hc.Do(req)
		if err != nil {
			return Result{}, fmt.Errorf("bridge request: %w", err)
		}
		defer resp.Body.Close()

		payload, err := io.ReadAll(resp.Body)
		if err != nil {
			return Result{}, fmt.Errorf("read bridge response: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			code := CodeInternal
			if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
				code = CodeForbidden
			}
			return Result{}, &CallError{Op: op, Code: code, Message: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))}
		}

		var res Result
		if err := json.Unmarshal(payload, &res); err != nil {
			return Result{}, fmt.Errorf("decode bridge response: %w", err)
		}
		return res, nil
	}}
}

func (c client) List(ctx context.Context, scope model.Scope, pattern string) (Result, error) {
	return c.invoke(ctx, OpAttachmentsList, ListParams{ScopeParams: NewScopeParams(scope), Pattern: pattern})
}

func (c client) Upload(ctx context.Context, scope model.Scope, name string, content []byte) (Result, error) {
	return c.invoke(ctx, OpAttachmentsUpload, UploadParams{ScopeParams: NewScopeParams(scope), Name: name, Content: content})
}

func (c client) Delete(ctx context.Context, scope model.Scope, name string) (Result, error) {
	return c.invoke(ctx, OpAttachmentsDelete, DeleteParams{ScopeParams: NewScopeParams(scope), Name: name})
}

func (c client) Download(ctx context.Context, scope model.Scope, name, destination string) (Result, error) {
	return c.invoke(ctx, OpAttachmentsDownload, DownloadParams{ScopeParams: NewScopeParams(scope), Name: name, Destination: destination})
}

func (c client) SaveFile(ctx context.Context, fileName string, content []byte, destination string) (Result, error) {
	return c.invoke(ctx, OpFilesSave, SaveFileParams{FileName: fileName, Content: content, Destination: destination})
}

func (c client) ContractDocument(ctx context.Context, contractID, format, destination string) (Result, error) {
	return c.invoke(ctx, OpContractsDocument, ContractDocumentParams{ContractID: contractID, Format: format, Destination: destination})
}

func (c client) Version(ctx context.Context) (Result, error) {
	return c.invoke(ctx, OpAppVersion, nil)
}

func (c client) invoke(ctx context.Context, op string, params any) (Result, error) {
	var body []byte
	if params != nil {
		b, err := json.Marshal(params)
		if err != nil {
			return Result{}, fmt.Errorf("encode %s params: %w", op, err)
		}
		body = b
	}
	res, err := c.do(ctx, op, body)
	if err != nil {
		return Result{}, err
	}
	if !res.Success {
		return res, &CallError{Op: op, Code: res.Code, Message: res.Error}
	}
	return res, nil
}
