package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"

	"github.com/JaimeStill/contratos/pkg/lifecycle"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type s3Store struct {
	client    *s3.Client
	cfg       S3Config
	publicURL string
	logger    *slog.Logger
}

func newS3(cfg *Config, logger *slog.Logger) (System, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3.Region),
	}
	if cfg.S3.AccessKeyID != "" && cfg.S3.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
		}
		o.UsePathStyle = cfg.S3.UsePathStyle
	})

	return &s3Store{
		client:    client,
		cfg:       cfg.S3,
		publicURL: cfg.PublicURL,
		logger:    logger.With("system", "storage", "backend", BackendS3),
	}, nil
}

func (s *s3Store) Start(lc *lifecycle.Coordinator) error {
	s.logger.Info("starting storage system", "region", s.cfg.Region, "endpoint", s.cfg.Endpoint)
	return nil
}

func (s *s3Store) Store(ctx context.Context, bucket, name string, data []byte, contentType string) (string, error) {
	if err := validName(bucket, name); err != nil {
		return "", err
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket(bucket)),
		Key:         aws.String(name),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return s.locator(bucket, name), nil
}

func (s *s3Store) Retrieve(ctx context.Context, bucket, name string) ([]byte, error) {
	if err := validName(bucket, name); err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket(bucket)),
		Key:    aws.String(name),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get object: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read object: %w", err)
	}
	return data, nil
}

func (s *s3Store) Delete(ctx context.Context, bucket, name string) error {
	if err := validName(bucket, name); err != nil {
		return err
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket(bucket)),
		Key:    aws.String(name),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func (s *s3Store) bucket(name string) string {
	return s.cfg.BucketPrefix + name
}

// locator prefers the configured public URL and falls back to the virtual-hosted
// AWS address. Every form names the prefixed bucket the object was written to.
func (s *s3Store) locator(bucket, name string) string {
	b := s.bucket(bucket)
	switch {
	case s.publicURL != "":
		return publicLocator(s.publicURL, b, name)
	case s.cfg.Endpoint != "":
		return publicLocator(s.cfg.Endpoint, b, name)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", b, s.cfg.Region, url.PathEscape(name))
	}
}
