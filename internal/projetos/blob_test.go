package projetos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBlobName(t *testing.T) {
	at := time.UnixMilli(1700000000123)

	tests := []struct {
		original string
		want     string
	}{
		{"contrato.pdf", "template-1700000000123-contrato.pdf"},
		{"modelo base (v2).pdf", "template-1700000000123-modelo_base__v2_.pdf"},
		{`C:\docs\contrato.pdf`, "template-1700000000123-contrato.pdf"},
		{"../../etc/passwd", "template-1700000000123-passwd"},
		{"..", "template-1700000000123-template.pdf"},
		{"", "template-1700000000123-template.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.original, func(t *testing.T) {
			assert.Equal(t, tt.want, blobName(tt.original, at))
		})
	}
}
