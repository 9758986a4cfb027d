package projetos_test

import (
	"strings"
	"testing"

	"github.com/JaimeStill/contratos/internal/projetos"
	"github.com/stretchr/testify/assert"
)

func TestRenderHTML_Paragraphs(t *testing.T) {
	html := projetos.RenderHTML("Cláusula 1\n\n\n  Cláusula 2  \n")

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `<meta charset="UTF-8">`)
	assert.Contains(t, html, "<title>Template de Contrato</title>")
	assert.Contains(t, html, "<body>\n<p>Cláusula 1</p>\n<p>Cláusula 2</p>\n</body>")
	assert.Equal(t, 2, strings.Count(html, "<p>"))
}

func TestRenderHTML_Escapes(t *testing.T) {
	html := projetos.RenderHTML(`<script>alert("x" & 'y')</script>`)

	assert.Contains(t, html, "<p>&lt;script&gt;alert(&quot;x&quot; &amp; &#039;y&#039;)&lt;/script&gt;</p>")
	assert.NotContains(t, html, "<script>")
}

func TestRenderHTML_NoText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\n \n\t"} {
		assert.Equal(t, "<html><body><p>Nenhum texto encontrado no PDF</p></body></html>", projetos.RenderHTML(text))
	}
}
