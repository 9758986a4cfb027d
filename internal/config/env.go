package config

import (
	"github.com/JaimeStill/contratos/pkg/database"
	"github.com/JaimeStill/contratos/pkg/logging"
	"github.com/JaimeStill/contratos/pkg/middleware"
	"github.com/JaimeStill/contratos/pkg/openapi"
	"github.com/JaimeStill/contratos/pkg/pagination"
	"github.com/JaimeStill/contratos/pkg/storage"
)

var databaseEnv = &database.Env{
	Host:            "DATABASE_HOST",
	Port:            "DATABASE_PORT",
	Name:            "DATABASE_NAME",
	User:            "DATABASE_USER",
	Password:        "DATABASE_PASSWORD",
	MaxOpenConns:    "DATABASE_MAX_OPEN_CONNS",
	MaxIdleConns:    "DATABASE_MAX_IDLE_CONNS",
	ConnMaxLifetime: "DATABASE_CONN_MAX_LIFETIME",
	ConnTimeout:     "DATABASE_CONN_TIMEOUT",
	SSLMode:         "DATABASE_SSL_MODE",
}

var loggingEnv = &logging.Env{
	Level:     "LOGGING_LEVEL",
	Format:    "LOGGING_FORMAT",
	AddSource: "LOGGING_ADD_SOURCE",
}

var storageEnv = &storage.Env{
	Backend:         "STORAGE_BACKEND",
	BasePath:        "STORAGE_BASE_PATH",
	PublicURL:       "STORAGE_PUBLIC_URL",
	MaxUploadSize:   "STORAGE_MAX_UPLOAD_SIZE",
	Region:          "STORAGE_S3_REGION",
	Endpoint:        "STORAGE_S3_ENDPOINT",
	AccessKeyID:     "STORAGE_S3_ACCESS_KEY_ID",
	SecretAccessKey: "STORAGE_S3_SECRET_ACCESS_KEY",
	BucketPrefix:    "STORAGE_S3_BUCKET_PREFIX",
	UsePathStyle:    "STORAGE_S3_USE_PATH_STYLE",
}

var corsEnv = &middleware.CORSEnv{
	Enabled:          "API_CORS_ENABLED",
	Origins:          "API_CORS_ORIGINS",
	AllowedMethods:   "API_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "API_CORS_ALLOWED_HEADERS",
	AllowCredentials: "API_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "API_CORS_MAX_AGE",
}

var paginationEnv = &pagination.Env{
	DefaultPageSize: "API_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "API_PAGINATION_MAX_PAGE_SIZE",
}

var openapiEnv = &openapi.Env{
	Title:       "API_OPENAPI_TITLE",
	Description: "API_OPENAPI_DESCRIPTION",
}
