package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sogrinha/internal/attachment"
	"sogrinha/internal/bridge"
	"sogrinha/internal/config"
)

func testConfig(t *testing.T) *config.AppConfig {
	t.Helper()
	return &config.AppConfig{
		Version: "1.0.0-test",
		DataDir: t.TempDir(),
		Attachments: config.AttachmentsConfig{
			Backend:      "fs",
			AllowedTypes: []string{"application/pdf"},
		},
	}
}

func TestBuild_FileStoreWithoutDatabase(t *testing.T) {
	c, err := Build(context.Background(), testConfig(t), zap.NewNop(), nil)
	require.NoError(t, err)
	defer c.Close()

	assert.Nil(t, c.DB)
	assert.Nil(t, c.Contracts)
	assert.IsType(t, &attachment.FileStore{}, c.Store)

	res := c.Bridge.Call(context.Background(), bridge.OpContractsDocument, []byte(`{"contractId":"ctr_1"}`))
	assert.Equal(t, bridge.CodeUnavailable, res.Code)
}

func TestBuild_UnknownBackend(t *testing.T) {
	cfg := testConfig(t)
	cfg.Attachments.Backend = "ftp"

	_, err := Build(context.Background(), cfg, zap.NewNop(), nil)

	assert.ErrorContains(t, err, `unknown attachments backend "ftp"`)
}

func TestBridgeSecretAndToken(t *testing.T) {
	cfg := testConfig(t)

	generated, err := BridgeSecret(cfg)
	require.NoError(t, err)
	assert.Len(t, generated, 32)

	cfg.BridgeSecret = "configured"
	secret, err := BridgeSecret(cfg)
	require.NoError(t, err)
	assert.Equal(t, []byte("configured"), secret)

	path := filepath.Join(cfg.DataDir, "nested", "bridge.token")
	require.NoError(t, PublishToken(path, secret))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	sub, err := bridge.ParseToken(secret, string(raw))
	require.NoError(t, err)
	assert.Empty(t, sub)
}

func TestNewHTTP(t *testing.T) {
	c, err := Build(context.Background(), testConfig(t), zap.NewNop(), nil)
	require.NoError(t, err)
	defer c.Close()

	secret := []byte("http-secret")
	app, err := NewHTTP(c, zap.NewNop(), secret)
	require.NoError(t, err)

	token, err := bridge.IssueToken(secret, "", 0)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/bridge/"+bridge.OpAppVersion, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.Contains(string(body), `bridge_calls_total{code="OK",op="app.version"} 1`))
	assert.Contains(t, string(body), "http_requests_total")
}
