package projetos

import "strings"

const emptyTemplate = `<html><body><p>Nenhum texto encontrado no PDF</p></body></html>`

const templateHead = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Template de Contrato</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            line-height: 1.6;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
        }
        p {
            margin: 10px 0;
        }
    </style>
</head>
<body>
`

const templateTail = `
</body>
</html>`

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// RenderHTML wraps each non-blank line of text in an escaped paragraph
// inside the template document shell.
func RenderHTML(text string) string {
	var paragraphs []string
	for line := range strings.SplitSeq(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		paragraphs = append(paragraphs, "<p>"+htmlEscaper.Replace(line)+"</p>")
	}

	if len(paragraphs) == 0 {
		return emptyTemplate
	}

	return templateHead + strings.Join(paragraphs, "\n") + templateTail
}
