// Package pdftext extracts plain text from PDF documents.
package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrInvalidPDF reports bytes that do not parse as a PDF document.
var ErrInvalidPDF = errors.New("pdftext: invalid pdf")

// Extractor turns PDF bytes into their text content.
type Extractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
}

type extractor struct{}

// New returns an Extractor that validates the document structure before
// reading its text layer. Each text row becomes one line and pages are
// separated by a blank line.
func New() Extractor {
	return &extractor{}
}

func (e *extractor) Extract(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	pages, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	if pages == 0 {
		return "", nil
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	texts := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := pageText(page)
		if err != nil {
			return "", fmt.Errorf("read text layer of page %d: %w", i, err)
		}
		if text != "" {
			texts = append(texts, text)
		}
	}

	return strings.Join(texts, "\n\n"), nil
}

// pageText rebuilds the rows of a page from its positioned glyphs. A change
// of baseline starts a new line; a horizontal gap wider than a fraction of
// the font size becomes a space.
func pageText(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInvalidPDF, r)
		}
	}()

	var (
		b    strings.Builder
		prev *pdf.Text
	)

	for _, glyph := range page.Content().Text {
		if glyph.S == "" {
			continue
		}

		if prev != nil {
			switch {
			case newLine(*prev, glyph):
				b.WriteByte('\n')
			case gap(*prev, glyph) && !strings.HasSuffix(b.String(), " ") && glyph.S != " ":
				b.WriteByte(' ')
			}
		}

		b.WriteString(glyph.S)
		g := glyph
		prev = &g
	}

	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n"), nil
}

func newLine(prev, next pdf.Text) bool {
	return math.Abs(next.Y-prev.Y) > math.Max(size(prev), size(next))/2
}

func gap(prev, next pdf.Text) bool {
	return next.X-(prev.X+prev.W) > size(next)*0.2
}

func size(t pdf.Text) float64 {
	if t.FontSize <= 0 {
		return 1
	}
	return t.FontSize
}
