package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sogrinha/internal/attachment"
	"sogrinha/internal/bridge"
	"sogrinha/internal/document"
	"sogrinha/internal/model"
	"sogrinha/internal/repository"
	"sogrinha/internal/service"
	serviceMocks "sogrinha/internal/service/mocks"
)

var leaseScope = model.Scope{EntityType: model.EntityContract, Identifier: "user123", EntityID: "ctr_42"}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})

	t.Run("no database", func(t *testing.T) {
		app := fiber.New()
		app.Get("/health", HealthCheck(nil))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "disabled", body["database"])
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListContracts(t *testing.T) {
	mockSvc := new(serviceMocks.MockContractService)
	app := fiber.New()
	app.Get("/contracts", ListContracts(mockSvc))

	t.Run("success", func(t *testing.T) {
		expectedRes := &service.ContractListResult{
			Items: []model.Contract{{ID: "ctr_1", Identifier: "#ALG14102026001"}},
			Total: 1,
		}
		mockSvc.On("List", mock.Anything, repository.ContractFilter{}, 10, 0).Return(expectedRes, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/contracts?limit=10&offset=0", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.ContractListResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, 1, result.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("filters", func(t *testing.T) {
		matches := mock.MatchedBy(func(f repository.ContractFilter) bool {
			return f.OwnerID == "own_1" &&
				f.Kind == model.ContractRental &&
				f.EndsAfter.Equal(time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC))
		})
		mockSvc.On("List", mock.Anything, matches, 0, 0).Return(&service.ContractListResult{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/contracts?owner_id=own_1&kind=Loca%C3%A7%C3%A3o&ends_after=2026-11-01", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/contracts?limit=abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LIMIT", decodeError(t, resp).Error.Code)
	})

	t.Run("invalid date", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/contracts?ends_after=01/11/2026", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_DATE", decodeError(t, resp).Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, repository.ContractFilter{}, 0, 0).Return(nil, errors.New("service error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/contracts", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestCreateContract(t *testing.T) {
	mockSvc := new(serviceMocks.MockContractService)
	app := fiber.New()
	app.Post("/contracts", CreateContract(mockSvc))

	body := `{"kind":"Locação","owner_id":"own_1","start_date":"2026-11-01T00:00:00Z","end_date":"2027-10-31T00:00:00Z","payment_day":5,"payment_value":1500,"duration":12}`

	t.Run("success", func(t *testing.T) {
		created := &model.Contract{ID: "ctr_1", Identifier: "#ALG14102026001", Kind: model.ContractRental, OwnerID: "own_1"}
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Contract) bool {
			return c.Kind == model.ContractRental && c.OwnerID == "own_1" && c.PaymentDay == 5
		})).Return(created, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/contracts", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var result model.Contract
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "#ALG14102026001", result.Identifier)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid input", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrInvalidInput).Once()

		req := httptest.NewRequest(http.MethodPost, "/contracts", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_INPUT", decodeError(t, resp).Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/contracts", strings.NewReader(`{"kind":`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})
}

func TestGetContract(t *testing.T) {
	mockSvc := new(serviceMocks.MockContractService)
	app := fiber.New()
	app.Get("/contracts/:id", GetContract(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "ctr_1").Return(&model.Contract{ID: "ctr_1"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/contracts/ctr_1", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result model.Contract
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "ctr_1", result.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "ctr_x").Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/contracts/ctr_x", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "ctr_2").Return(nil, errors.New("db error")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/contracts/ctr_2", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
	mockSvc.AssertExpectations(t)
}

func TestDeleteContract(t *testing.T) {
	mockSvc := new(serviceMocks.MockContractService)
	app := fiber.New()
	app.Delete("/contracts/:id", DeleteContract(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, "ctr_1").Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/contracts/ctr_1", nil))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, "ctr_x").Return(service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/contracts/ctr_x", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})
	mockSvc.AssertExpectations(t)
}

func TestContractDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/contracts/:id/document", ContractDocument(mockSvc))

	t.Run("pdf", func(t *testing.T) {
		rendered := &document.Rendered{FileName: "contrato_ALG14102026001.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.3 body")}
		mockSvc.On("Render", mock.Anything, "ctr_1", document.FormatPDF).Return(rendered, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/contracts/ctr_1/document", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
		assert.Equal(t, `attachment; filename=contrato_ALG14102026001.pdf`, resp.Header.Get("Content-Disposition"))
		got, _ := io.ReadAll(resp.Body)
		assert.Equal(t, rendered.Content, got)
	})

	t.Run("missing owner", func(t *testing.T) {
		mockSvc.On("Render", mock.Anything, "ctr_2", document.FormatDOCX).Return(nil, document.ErrMissingRequiredData).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/contracts/ctr_2/document?format=docx", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "MISSING_REQUIRED_DATA", decodeError(t, resp).Error.Code)
	})

	t.Run("bad format", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/contracts/ctr_1/document?format=odt", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
	mockSvc.AssertExpectations(t)
}

func TestOwnerRoutes(t *testing.T) {
	mockSvc := new(serviceMocks.MockRecordService)
	app := fiber.New()
	app.Post("/owners", CreateOwner(mockSvc))
	app.Get("/owners/:id", GetOwner(mockSvc))

	owner := &model.Owner{Party: model.Party{ID: "own_1", FullName: "Maria Souza"}}
	mockSvc.On("CreateOwner", mock.Anything, mock.MatchedBy(func(o *model.Owner) bool {
		return o.FullName == "Maria Souza"
	})).Return(owner, nil).Once()
	mockSvc.On("GetOwner", mock.Anything, "own_1").Return(owner, nil).Once()
	mockSvc.On("GetOwner", mock.Anything, "own_x").Return(nil, service.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodPost, "/owners", strings.NewReader(`{"full_name":"Maria Souza"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/owners/own_1", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/owners/own_x", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	mockSvc.AssertExpectations(t)
}

func TestBridgeCallAndDownload(t *testing.T) {
	store := attachment.NewFileStore(t.TempDir())
	b := bridge.New(bridge.Options{Store: store, Picker: bridge.DirPicker{}, AllowedTypes: bridge.DefaultAllowedTypes})

	app := fiber.New()
	app.Post("/bridge/:op", BridgeCall(b))
	app.Get("/attachments/:entityType/:identifier/:entityId/:name", DownloadAttachment(store))

	content := append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte{'x'}, 1015)...)
	params, err := json.Marshal(bridge.UploadParams{ScopeParams: bridge.NewScopeParams(leaseScope), Name: "lease_2024.pdf", Content: content})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/bridge/"+bridge.OpAttachmentsUpload, bytes.NewReader(params))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res bridge.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.True(t, res.Success)
	assert.Equal(t, int64(1024), res.Size)

	t.Run("failure is still 200", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/bridge/attachments.rename", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var res bridge.Result
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.False(t, res.Success)
		assert.Equal(t, bridge.CodeUnknownOperation, res.Code)
	})

	t.Run("download streams the file", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/attachments/contracts/user123/ctr_42/lease_2024.pdf", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
		got, _ := io.ReadAll(resp.Body)
		assert.Equal(t, content, got)
	})

	t.Run("download missing", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/attachments/contracts/user123/ctr_42/missing.pdf", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("download unknown entity type", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/attachments/tenants/user123/ctr_42/lease_2024.pdf", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	secret := []byte("routing-secret")
	store := attachment.NewFileStore(t.TempDir())
	RegisterRoutes(app, Deps{
		Bridge:       bridge.New(bridge.Options{Store: store, Version: "9.9.9"}),
		Store:        store,
		BridgeSecret: secret,
		Contracts:    new(serviceMocks.MockContractService),
	})

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("bridge requires a token", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/bridge/app.version", nil))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Error.Code)
	})

	t.Run("bridge with token", func(t *testing.T) {
		token, err := bridge.IssueToken(secret, "user123", time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/bridge/app.version", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var res bridge.Result
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, "9.9.9", res.Version)
	})

	t.Run("download checks the token subject", func(t *testing.T) {
		token, err := bridge.IssueToken(secret, "someone-else", time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/attachments/contracts/user123/ctr_42/x.pdf", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("records routes are absent without a service", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/owners/own_1", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
