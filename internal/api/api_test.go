package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/contratos/internal/api"
	"github.com/JaimeStill/contratos/internal/config"
	"github.com/JaimeStill/contratos/internal/infrastructure"
)

func newModule(t *testing.T) (*api.Module, *infrastructure.Infrastructure) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Name = "contratos"
	cfg.Database.User = "contratos"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Logging.Level = "error"
	require.NoError(t, cfg.Finalize())

	infra, err := infrastructure.New(cfg)
	require.NoError(t, err)

	m, err := api.NewModule(cfg, infra)
	require.NoError(t, err)
	return m, infra
}

func serve(m *api.Module, method, target string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	m.Mount(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestModule_ServesStoredBlob(t *testing.T) {
	m, infra := newModule(t)

	locator, err := infra.Storage.Store(context.Background(), "templates", "template-1-contrato.pdf", []byte("%PDF-1.4 test"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "/storage/templates/template-1-contrato.pdf", locator)

	rec := serve(m, http.MethodGet, locator)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "%PDF-1.4 test", rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
}

func TestModule_MissingBlob(t *testing.T) {
	m, _ := newModule(t)

	rec := serve(m, http.MethodGet, "/storage/templates/missing.pdf")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Arquivo não encontrado","code":"NOT_FOUND"}`, rec.Body.String())
}

func TestModule_InvalidResourceID(t *testing.T) {
	m, _ := newModule(t)

	for _, path := range []string{"/api/clientes/abc", "/api/projetos/abc", "/api/contratos/abc"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(m, http.MethodGet, path)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"INVALID_INPUT"`)
		})
	}
}

func TestModule_TrailingSlashRoutes(t *testing.T) {
	m, _ := newModule(t)

	rec := serve(m, http.MethodGet, "/api/contratos/abc/")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
	assert.Contains(t, rec.Body.String(), `"code":"INVALID_INPUT"`)
}

func TestModule_MalformedPagination(t *testing.T) {
	m, _ := newModule(t)

	rec := serve(m, http.MethodGet, "/api/clientes?page=dois")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Parâmetros de paginação inválidos","code":"INVALID_INPUT"}`, rec.Body.String())
}

func TestModule_WebhookStatus(t *testing.T) {
	m, _ := newModule(t)

	rec := serve(m, http.MethodGet, "/api/webhooks/status")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `"status"`))
}

func TestModule_OpenAPIDocument(t *testing.T) {
	m, _ := newModule(t)

	rec := serve(m, http.MethodGet, "/api/openapi.json")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var doc struct {
		OpenAPI string `json:"openapi"`
		Info    struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Paths      map[string]map[string]json.RawMessage `json:"paths"`
		Components struct {
			Schemas   map[string]json.RawMessage `json:"schemas"`
			Responses map[string]json.RawMessage `json:"responses"`
		} `json:"components"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

	assert.Equal(t, "3.1.0", doc.OpenAPI)
	assert.Equal(t, "Contratos API", doc.Info.Title)
	assert.Equal(t, "0.1.0", doc.Info.Version)

	wantOps := map[string][]string{
		"/api/clientes":                {"get", "post"},
		"/api/clientes/{id}":           {"get", "put", "patch", "delete"},
		"/api/clientes/{id}/contratos": {"get"},
		"/api/projetos":                {"get", "post"},
		"/api/projetos/{id}":           {"get", "patch", "delete"},
		"/api/contratos":               {"get", "post"},
		"/api/contratos/{id}":          {"get", "patch", "delete"},
		"/api/webhooks/status":         {"get"},
		"/api/webhooks/callback":       {"post"},
	}
	assert.Len(t, doc.Paths, len(wantOps))
	for path, methods := range wantOps {
		require.Contains(t, doc.Paths, path)
		for _, method := range methods {
			assert.Contains(t, doc.Paths[path], method, "%s %s", method, path)
		}
	}

	for _, schema := range []string{"Cliente", "Projeto", "Contrato", "ContratoStatus", "WebhookCallback", "Error"} {
		assert.Contains(t, doc.Components.Schemas, schema)
	}
	assert.Contains(t, doc.Components.Responses, "Forbidden")
}
