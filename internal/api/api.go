// Package api assembles the domain systems and their HTTP handlers into a
// single mountable module.
package api

import (
	"net/http"
	"strings"

	"github.com/JaimeStill/contratos/internal/config"
	"github.com/JaimeStill/contratos/internal/infrastructure"
	"github.com/JaimeStill/contratos/pkg/middleware"
	"github.com/JaimeStill/contratos/pkg/routes"
	"github.com/JaimeStill/contratos/pkg/storage"
)

// Module is the API surface: the JSON resources under BasePath plus the
// blob route for filesystem storage.
type Module struct {
	Runtime *Runtime
	Domain  *Domain

	basePath  string
	publicURL string
	handler   http.Handler
}

// NewModule wires every domain system from infra and wraps their routes
// in the API middleware stack.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)
	basePath := strings.TrimRight(cfg.API.BasePath, "/")

	mux := http.NewServeMux()
	if err := registerRoutes(mux, basePath, cfg, runtime, domain); err != nil {
		return nil, err
	}

	publicURL := ""
	if cfg.Storage.Backend == storage.BackendFilesystem && strings.HasPrefix(cfg.Storage.PublicURL, "/") {
		publicURL = strings.TrimRight(cfg.Storage.PublicURL, "/")
		blobs := &blobHandler{store: runtime.Storage, logger: runtime.Logger.With("handler", "storage")}
		routes.Register(mux, "", blobs.routes(publicURL))
	}

	mw := middleware.New()
	mw.Use(middleware.TrimSlash())
	mw.Use(middleware.CORS(&cfg.API.CORS))
	mw.Use(middleware.Logger(runtime.Logger))

	return &Module{
		Runtime:   runtime,
		Domain:    domain,
		basePath:  basePath,
		publicURL: publicURL,
		handler:   mw.Apply(mux),
	}, nil
}

// Mount attaches the module to the root router.
func (m *Module) Mount(mux *http.ServeMux) {
	mux.Handle(m.basePath+"/", m.handler)
	if m.publicURL != "" {
		mux.Handle(m.publicURL+"/", m.handler)
	}
}

// ServeHTTP lets the module be used directly as a handler.
func (m *Module) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
