package storage

import (
	"fmt"
	"os"
	"strconv"

	"github.com/docker/go-units"
)

const (
	BackendFilesystem = "filesystem"
	BackendS3         = "s3"
)

// Config contains blob storage configuration.
type Config struct {
	// Backend selects the blob store: "filesystem" or "s3".
	Backend string `toml:"backend"`
	// BasePath is the root directory for filesystem storage.
	// Default: ".data/blobs"
	BasePath string `toml:"base_path"`
	// PublicURL prefixes every locator returned by Store.
	PublicURL        string   `toml:"public_url"`
	MaxUploadSize    string   `toml:"max_upload_size"`
	S3               S3Config `toml:"s3"`
	maxUploadSizeVal int64
}

// S3Config holds the object store connection used by the s3 backend.
type S3Config struct {
	Region          string `toml:"region"`
	Endpoint        string `toml:"endpoint"`
	AccessKeyID     string `toml:"access_key_id"`
	SecretAccessKey string `toml:"secret_access_key"`
	BucketPrefix    string `toml:"bucket_prefix"`
	UsePathStyle    bool   `toml:"use_path_style"`
}

type Env struct {
	Backend         string
	BasePath        string
	PublicURL       string
	MaxUploadSize   string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketPrefix    string
	UsePathStyle    string
}

func (c *Config) MaxUploadSizeBytes() int64 {
	return c.maxUploadSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the storage configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Backend != "" {
		c.Backend = overlay.Backend
	}
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.PublicURL != "" {
		c.PublicURL = overlay.PublicURL
	}
	if size, err := units.RAMInBytes(overlay.MaxUploadSize); err == nil {
		c.MaxUploadSize = overlay.MaxUploadSize
		c.maxUploadSizeVal = size
	}

	if overlay.S3.Region != "" {
		c.S3.Region = overlay.S3.Region
	}
	if overlay.S3.Endpoint != "" {
		c.S3.Endpoint = overlay.S3.Endpoint
	}
	if overlay.S3.AccessKeyID != "" {
		c.S3.AccessKeyID = overlay.S3.AccessKeyID
	}
	if overlay.S3.SecretAccessKey != "" {
		c.S3.SecretAccessKey = overlay.S3.SecretAccessKey
	}
	if overlay.S3.BucketPrefix != "" {
		c.S3.BucketPrefix = overlay.S3.BucketPrefix
	}
	if overlay.S3.UsePathStyle {
		c.S3.UsePathStyle = true
	}
}

func (c *Config) loadDefaults() {
	if c.Backend == "" {
		c.Backend = BackendFilesystem
	}
	if c.BasePath == "" {
		c.BasePath = ".data/blobs"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "10MiB"
	}
	if c.S3.Region == "" {
		c.S3.Region = "us-east-1"
	}
}

func (c *Config) loadEnv(env *Env) {
	set := func(name string, dst *string) {
		if name == "" {
			return
		}
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}

	set(env.Backend, &c.Backend)
	set(env.BasePath, &c.BasePath)
	set(env.PublicURL, &c.PublicURL)
	set(env.MaxUploadSize, &c.MaxUploadSize)
	set(env.Region, &c.S3.Region)
	set(env.Endpoint, &c.S3.Endpoint)
	set(env.AccessKeyID, &c.S3.AccessKeyID)
	set(env.SecretAccessKey, &c.S3.SecretAccessKey)
	set(env.BucketPrefix, &c.S3.BucketPrefix)

	if env.UsePathStyle != "" {
		if v := os.Getenv(env.UsePathStyle); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.S3.UsePathStyle = b
			}
		}
	}
}

func (c *Config) validate() error {
	switch c.Backend {
	case BackendFilesystem:
		if c.BasePath == "" {
			return fmt.Errorf("base_path required")
		}
		if c.PublicURL == "" {
			c.PublicURL = "/storage"
		}
	case BackendS3:
		if c.S3.Region == "" {
			return fmt.Errorf("s3.region required")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Backend)
	}

	size, err := units.RAMInBytes(c.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_upload_size must be positive")
	}
	c.maxUploadSizeVal = size

	return nil
}
