package projetos

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/JaimeStill/contratos/pkg/apperr"
	"github.com/JaimeStill/contratos/pkg/handlers"
	"github.com/JaimeStill/contratos/pkg/pagination"
	"github.com/JaimeStill/contratos/pkg/routes"
)

// FileField is the multipart field carrying the template PDF.
const FileField = "pdf_file"

// formOverhead is the body allowance for multipart boundaries and scalar fields.
const formOverhead = 1 << 20

// Handler provides HTTP endpoints for project operations.
type Handler struct {
	sys           System
	logger        *slog.Logger
	pagination    pagination.Config
	maxUploadSize int64
}

// NewHandler creates a project handler. Request bodies larger than
// maxUploadSize plus form overhead are rejected before parsing.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "projetos"),
		pagination:    pagination,
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the project endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/projetos",
		Tags:        []string{"Projetos"},
		Description: "Contract template projects",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
			{Method: "PATCH", Pattern: "/{id}", Handler: h.Update, OpenAPI: Spec.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete, OpenAPI: Spec.Delete},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pagination.FromQuery(r.URL.Query(), h.pagination)
	if err != nil {
		handlers.RespondError(w, h.logger, err)
		return
	}
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondError(w, h.logger, err)
		return
	}

	p, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	file, err := h.readRequest(w, r, func(form formValues) {
		cmd.NomeProjeto, _ = form.get("nome_projeto")
		cmd.Descricao = form.ptr("descricao")
	}, &cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, err)
		return
	}

	p, err := h.sys.Create(r.Context(), cmd, file)
	if err != nil {
		handlers.RespondError(w, h.logger, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, p)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondError(w, h.logger, err)
		return
	}

	var cmd UpdateCommand
	file, err := h.readRequest(w, r, func(form formValues) {
		cmd.NomeProjeto = form.ptr("nome_projeto")
		cmd.Descricao = form.ptr("descricao")
	}, &cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, err)
		return
	}

	p, err := h.sys.Update(r.Context(), id, cmd, file)
	if err != nil {
		handlers.RespondError(w, h.logger, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondError(w, h.logger, err)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, err)
		return
	}

	handlers.RespondNoContent(w)
}

type formValues map[string][]string

func (f formValues) get(key string) (string, bool) {
	v, ok := f[key]
	if !ok || len(v) == 0 {
		return "", false
	}
	return v[0], true
}

func (f formValues) ptr(key string) *string {
	if v, ok := f.get(key); ok {
		return &v
	}
	return nil
}

// readRequest decodes either a multipart form, handing its scalar values to
// fromForm, or a JSON body into cmd. Only multipart requests carry a file.
func (h *Handler) readRequest(w http.ResponseWriter, r *http.Request, fromForm func(formValues), cmd any) (*File, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return nil, handlers.DecodeJSON(r, cmd)
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+formOverhead)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrFileTooLarge
		}
		return nil, apperr.Wrap(apperr.InvalidInput, "Formulário inválido", err)
	}

	fromForm(formValues(r.MultipartForm.Value))

	f, header, err := r.FormFile(FileField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.InvalidInput, "Arquivo inválido", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, apperr.Wrap(apperr.InvalidInput, "Arquivo inválido", err)
	}

	return &File{
		Name:        header.Filename,
		ContentType: detectContentType(header.Header.Get("Content-Type"), data),
		Data:        data,
	}, nil
}

func detectContentType(header string, data []byte) string {
	if header != "" && header != "application/octet-stream" {
		return header
	}
	return http.DetectContentType(data)
}
