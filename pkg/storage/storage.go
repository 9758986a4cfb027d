// Package storage provides bucket-addressed blob storage with filesystem
// and S3-compatible backends.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/JaimeStill/contratos/pkg/lifecycle"
)

// System stores binary blobs grouped into buckets.
type System interface {
	// Store writes data under bucket/name, overwriting any existing blob,
	// and returns the public locator for it.
	Store(ctx context.Context, bucket, name string, data []byte, contentType string) (string, error)

	// Retrieve returns the blob stored under bucket/name.
	// Returns ErrNotFound if it does not exist.
	Retrieve(ctx context.Context, bucket, name string) ([]byte, error)

	// Delete removes the blob. Missing blobs are not an error.
	Delete(ctx context.Context, bucket, name string) error

	Start(lc *lifecycle.Coordinator) error
}

// New builds the backend selected by cfg.Backend.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	switch cfg.Backend {
	case "", BackendFilesystem:
		return newFilesystem(cfg, logger)
	case BackendS3:
		return newS3(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// NameFromLocator returns the last path segment of a locator produced by Store.
func NameFromLocator(locator string) string {
	if u, err := url.Parse(locator); err == nil && u.Path != "" {
		locator = u.Path
	}
	name := locator[strings.LastIndex(locator, "/")+1:]
	if unescaped, err := url.PathUnescape(name); err == nil {
		return unescaped
	}
	return name
}

func publicLocator(publicURL, bucket, name string) string {
	return strings.TrimRight(publicURL, "/") + "/" + bucket + "/" + url.PathEscape(name)
}

func validName(bucket, name string) error {
	if bucket == "" || name == "" {
		return ErrInvalidKey
	}
	if strings.ContainsAny(bucket, `/\`) || strings.ContainsAny(name, `/\`) {
		return ErrInvalidKey
	}
	if bucket == "." || bucket == ".." || name == "." || name == ".." {
		return ErrInvalidKey
	}
	return nil
}
