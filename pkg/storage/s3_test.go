package storage

import "testing"

func TestS3Store_Locator(t *testing.T) {
	tests := []struct {
		name      string
		cfg       S3Config
		publicURL string
		want      string
	}{
		{
			"public url keeps prefix",
			S3Config{Region: "sa-east-1", BucketPrefix: "prod-"},
			"https://cdn.example.com/",
			"https://cdn.example.com/prod-templates/template-1-contrato.pdf",
		},
		{
			"custom endpoint",
			S3Config{Region: "us-east-1", Endpoint: "http://localhost:9000", BucketPrefix: "dev-"},
			"",
			"http://localhost:9000/dev-templates/template-1-contrato.pdf",
		},
		{
			"aws virtual host",
			S3Config{Region: "sa-east-1", BucketPrefix: "prod-"},
			"",
			"https://prod-templates.s3.sa-east-1.amazonaws.com/template-1-contrato.pdf",
		},
		{
			"no prefix",
			S3Config{Region: "sa-east-1"},
			"https://cdn.example.com",
			"https://cdn.example.com/templates/template-1-contrato.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &s3Store{cfg: tt.cfg, publicURL: tt.publicURL}
			if got := s.locator("templates", "template-1-contrato.pdf"); got != tt.want {
				t.Errorf("locator() = %q, want %q", got, tt.want)
			}
		})
	}
}
