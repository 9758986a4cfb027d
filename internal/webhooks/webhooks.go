// Package webhooks receives status callbacks from the document generation
// workflow and exposes a liveness probe for it.
package webhooks

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/JaimeStill/contratos/internal/contratos"
	"github.com/JaimeStill/contratos/pkg/handlers"
	"github.com/JaimeStill/contratos/pkg/routes"
	"github.com/google/uuid"
)

// Callback is the payload posted by the generation workflow.
type Callback struct {
	ContratoID *uuid.UUID        `json:"contrato_id"`
	Status     *contratos.Status `json:"status"`
	Data       CallbackData      `json:"data"`
}

// CallbackData carries the integration keys produced downstream.
type CallbackData struct {
	URLContratoGerado    *string `json:"url_contrato_gerado"`
	ClicksignDocumentKey *string `json:"clicksign_document_key"`
	AsaasSubscriptionID  *string `json:"asaas_subscription_id"`
	AsaasSetupPaymentID  *string `json:"asaas_setup_payment_id"`
}

// StatusResponse answers the liveness probe.
type StatusResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// CallbackResponse acknowledges a callback.
type CallbackResponse struct {
	Received   bool                `json:"received"`
	ContratoID *uuid.UUID          `json:"contrato_id"`
	Status     *contratos.Status   `json:"status"`
	Contrato   *contratos.Contrato `json:"contrato,omitempty"`
}

// Handler serves the webhook endpoints.
type Handler struct {
	contratos contratos.System
	logger    *slog.Logger
	now       func() time.Time
}

// NewHandler creates a webhook handler that applies callbacks through sys.
func NewHandler(sys contratos.System, logger *slog.Logger) *Handler {
	return &Handler{
		contratos: sys,
		logger:    logger.With("handler", "webhooks"),
		now:       time.Now,
	}
}

// Routes returns the webhook route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/webhooks",
		Tags:        []string{"Webhooks"},
		Description: "Generation workflow callbacks",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/status", Handler: h.Status, OpenAPI: Spec.Status},
			{Method: "POST", Pattern: "/callback", Handler: h.Callback, OpenAPI: Spec.Callback},
		},
	}
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{
		Status:    "online",
		Timestamp: h.now().UTC(),
	})
}

// Callback logs the payload and, when it names a contract and a status,
// records the status and integration keys on the contract. The write skips
// the edit-lock that guards user updates.
func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	var cb Callback
	if err := handlers.DecodeJSON(r, &cb); err != nil {
		handlers.RespondError(w, h.logger, err)
		return
	}

	h.logger.Info("callback received",
		"contrato_id", cb.ContratoID,
		"status", cb.Status,
		"url_contrato_gerado", cb.Data.URLContratoGerado,
	)

	resp := CallbackResponse{
		Received:   true,
		ContratoID: cb.ContratoID,
		Status:     cb.Status,
	}

	if cb.ContratoID != nil && cb.Status != nil {
		c, err := h.contratos.ApplyCallback(r.Context(), *cb.ContratoID, contratos.CallbackCommand{
			Status:               *cb.Status,
			URLContratoGerado:    cb.Data.URLContratoGerado,
			ClicksignDocumentKey: cb.Data.ClicksignDocumentKey,
			AsaasSubscriptionID:  cb.Data.AsaasSubscriptionID,
			AsaasSetupPaymentID:  cb.Data.AsaasSetupPaymentID,
		})
		if err != nil {
			handlers.RespondError(w, h.logger, err)
			return
		}
		resp.Contrato = c
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
