package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/contratos/internal/clientes"
	"github.com/JaimeStill/contratos/internal/config"
	"github.com/JaimeStill/contratos/internal/contratos"
	"github.com/JaimeStill/contratos/internal/projetos"
	"github.com/JaimeStill/contratos/internal/webhooks"
	"github.com/JaimeStill/contratos/pkg/openapi"
	"github.com/JaimeStill/contratos/pkg/routes"
)

// registerRoutes mounts every domain group under basePath and serves the
// OpenAPI document generated from those same groups.
func registerRoutes(mux *http.ServeMux, basePath string, cfg *config.Config, runtime *Runtime, domain *Domain) error {
	clientesHandler := clientes.NewHandler(domain.Clientes, runtime.Logger, runtime.Pagination)
	projetosHandler := projetos.NewHandler(domain.Projetos, runtime.Logger, runtime.Pagination, runtime.MaxUploadSize)
	contratosHandler := contratos.NewHandler(domain.Contratos, runtime.Logger, runtime.Pagination)
	webhooksHandler := webhooks.NewHandler(domain.Contratos, runtime.Logger)

	groups := []routes.Group{
		clientesHandler.Routes(),
		projetosHandler.Routes(),
		contratosHandler.Routes(),
		webhooksHandler.Routes(),
	}
	routes.Register(mux, basePath, groups...)

	components := openapi.NewComponents()
	components.AddSchemas(clientes.Spec.Schemas())
	components.AddSchemas(projetos.Spec.Schemas())
	components.AddSchemas(contratos.Spec.Schemas())
	components.AddSchemas(webhooks.Spec.Schemas())

	doc, err := generateSpec(cfg, basePath, components, groups)
	if err != nil {
		return fmt.Errorf("openapi: %w", err)
	}

	mux.HandleFunc("GET "+basePath+"/openapi.json", serveSpec(doc))
	return nil
}

func generateSpec(cfg *config.Config, basePath string, components *openapi.Components, groups []routes.Group) ([]byte, error) {
	spec := &openapi.Spec{
		OpenAPI: "3.1.0",
		Info: &openapi.Info{
			Title:       cfg.API.OpenAPI.Title,
			Version:     cfg.Version,
			Description: cfg.API.OpenAPI.Description,
		},
		Components: components,
		Paths:      make(map[string]*openapi.PathItem),
	}
	routes.Document(spec, basePath, groups...)

	return openapi.MarshalJSON(spec)
}

func serveSpec(doc []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(doc)
	}
}
