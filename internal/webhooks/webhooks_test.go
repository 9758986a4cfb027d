package webhooks_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/contratos/internal/contratos"
	"github.com/JaimeStill/contratos/internal/webhooks"
	"github.com/JaimeStill/contratos/pkg/pagination"
	"github.com/JaimeStill/contratos/pkg/routes"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a contratos.System that captures callbacks.
type recorder struct {
	contratos.System
	id  uuid.UUID
	cmd contratos.CallbackCommand
	err error
}

func (r *recorder) ApplyCallback(_ context.Context, id uuid.UUID, cmd contratos.CallbackCommand) (*contratos.Contrato, error) {
	r.id, r.cmd = id, cmd
	if r.err != nil {
		return nil, r.err
	}
	return &contratos.Contrato{ID: id, Status: cmd.Status, URLContratoGerado: cmd.URLContratoGerado}, nil
}

// lockedStore holds a single contract already past AguardandoGeracao.
type lockedStore struct {
	contratos.Store
	row contratos.Contrato
}

func (s *lockedStore) Find(_ context.Context, id uuid.UUID) (*contratos.Contrato, error) {
	if id != s.row.ID {
		return nil, contratos.ErrNotFound
	}
	c := s.row
	return &c, nil
}

func (s *lockedStore) Update(_ context.Context, id uuid.UUID, cmd contratos.UpdateCommand) (*contratos.Contrato, error) {
	if cmd.Status != nil {
		s.row.Status = *cmd.Status
	}
	if cmd.ClicksignDocumentKey != nil {
		s.row.ClicksignDocumentKey = cmd.ClicksignDocumentKey
	}
	c := s.row
	return &c, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMux(sys contratos.System) *http.ServeMux {
	h := webhooks.NewHandler(sys, testLogger())
	mux := http.NewServeMux()
	routes.Register(mux, "/api", h.Routes())
	return mux
}

func TestStatus(t *testing.T) {
	w := httptest.NewRecorder()
	newMux(&recorder{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/webhooks/status", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body webhooks.StatusResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "online", body.Status)
	assert.False(t, body.Timestamp.IsZero())
}

func TestCallback_AppliesUpdate(t *testing.T) {
	rec := &recorder{}
	id := uuid.New()
	body := `{"contrato_id":"` + id.String() + `","status":"Aguardando Revisão",` +
		`"data":{"url_contrato_gerado":"https://files/c.pdf","clicksign_document_key":"ck-1"}}`

	w := httptest.NewRecorder()
	newMux(rec).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/webhooks/callback", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, id, rec.id)
	assert.Equal(t, contratos.AguardandoRevisao, rec.cmd.Status)
	assert.Equal(t, "https://files/c.pdf", *rec.cmd.URLContratoGerado)
	assert.Equal(t, "ck-1", *rec.cmd.ClicksignDocumentKey)
	assert.Nil(t, rec.cmd.AsaasSubscriptionID)

	var resp webhooks.CallbackResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Received)
	require.NotNil(t, resp.Contrato)
	assert.Equal(t, id, resp.Contrato.ID)
}

func TestCallback_LogOnly(t *testing.T) {
	rec := &recorder{}

	w := httptest.NewRecorder()
	newMux(rec).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/webhooks/callback", strings.NewReader(`{"status":"Enviado"}`)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uuid.Nil, rec.id)
	assert.Contains(t, w.Body.String(), `"received":true`)
}

func TestCallback_PropagatesNotFound(t *testing.T) {
	rec := &recorder{err: contratos.ErrNotFound}
	body := `{"contrato_id":"` + uuid.NewString() + `","status":"Enviado","data":{"url_contrato_gerado":"u"}}`

	w := httptest.NewRecorder()
	newMux(rec).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/webhooks/callback", strings.NewReader(body)))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCallback_RecordsKeysOnLockedContract(t *testing.T) {
	store := &lockedStore{row: contratos.Contrato{
		ID:        uuid.New(),
		PlanoNome: "Plano Pro",
		Status:    contratos.AguardandoRevisao,
	}}
	sys := contratos.New(store, testLogger(), pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
	body := `{"contrato_id":"` + store.row.ID.String() + `","status":"Enviado",` +
		`"data":{"clicksign_document_key":"ck-123"}}`

	w := httptest.NewRecorder()
	newMux(sys).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/webhooks/callback", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, contratos.Enviado, store.row.Status)
	require.NotNil(t, store.row.ClicksignDocumentKey)
	assert.Equal(t, "ck-123", *store.row.ClicksignDocumentKey)
}
