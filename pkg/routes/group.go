// Package routes describes HTTP route groups and registers them on a mux.
package routes

import (
	"net/http"

	"github.com/JaimeStill/contratos/pkg/openapi"
)

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

// Route represents an HTTP route with method, pattern, and handler.
// Routes without an OpenAPI operation are left out of the document.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Register mounts every route of groups on mux under basePath using
// method-qualified ServeMux patterns.
func Register(mux *http.ServeMux, basePath string, groups ...Group) {
	for _, group := range groups {
		register(mux, basePath, group)
	}
}

func register(mux *http.ServeMux, parentPrefix string, group Group) {
	prefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		mux.HandleFunc(route.Method+" "+prefix+route.Pattern, route.Handler)
	}
	for _, child := range group.Children {
		register(mux, prefix, child)
	}
}

// Document adds every documented route of groups to spec under basePath.
// Operations without tags inherit the tags of their group.
func Document(spec *openapi.Spec, basePath string, groups ...Group) {
	for _, group := range groups {
		document(spec, basePath, group)
	}
}

func document(spec *openapi.Spec, parentPrefix string, group Group) {
	prefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := *route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = group.Tags
		}

		path := prefix + route.Pattern
		if spec.Paths[path] == nil {
			spec.Paths[path] = &openapi.PathItem{}
		}
		spec.Paths[path].Set(route.Method, &op)
	}
	for _, child := range group.Children {
		document(spec, prefix, child)
	}
}
