package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/contratos/pkg/apperr"
	"github.com/JaimeStill/contratos/pkg/handlers"
	"github.com/JaimeStill/contratos/pkg/routes"
	"github.com/JaimeStill/contratos/pkg/storage"
)

// blobHandler serves stored blobs at the locators returned by storage.Store.
type blobHandler struct {
	store  storage.System
	logger *slog.Logger
}

func (h *blobHandler) routes(prefix string) routes.Group {
	return routes.Group{
		Prefix:      prefix,
		Description: "Stored files such as project templates",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{bucket}/{name}", Handler: h.get},
		},
	}
}

func (h *blobHandler) get(w http.ResponseWriter, r *http.Request) {
	data, err := h.store.Retrieve(r.Context(), r.PathValue("bucket"), r.PathValue("name"))
	if err != nil {
		handlers.RespondError(w, h.logger, blobError(err))
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func blobError(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return apperr.Wrap(apperr.NotFound, "Arquivo não encontrado", err)
	case errors.Is(err, storage.ErrInvalidKey):
		return apperr.Wrap(apperr.InvalidInput, "Caminho de arquivo inválido", err)
	default:
		return apperr.Wrap(apperr.Internal, "Erro ao ler arquivo", err)
	}
}
