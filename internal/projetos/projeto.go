// Package projetos manages contract template projects and the ingestion of
// their PDF templates into blob storage and generated HTML.
package projetos

import (
	"time"

	"github.com/google/uuid"
)

// TemplatesBucket holds every uploaded template PDF.
const TemplatesBucket = "templates"

// Projeto is a contract template project. TemplatePDFPath and TemplateHTML
// are either both set or both nil.
type Projeto struct {
	ID              uuid.UUID `json:"id"`
	NomeProjeto     string    `json:"nome_projeto"`
	Descricao       *string   `json:"descricao"`
	TemplatePDFPath *string   `json:"template_pdf_path"`
	TemplateHTML    *string   `json:"template_html"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateCommand contains the scalar fields of a new project.
type CreateCommand struct {
	NomeProjeto string  `json:"nome_projeto"`
	Descricao   *string `json:"descricao"`
}

// UpdateCommand is a partial update of the scalar fields.
type UpdateCommand struct {
	NomeProjeto *string `json:"nome_projeto"`
	Descricao   *string `json:"descricao"`
}

// File is an uploaded template document.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Template is the stored blob locator paired with the HTML generated from it.
type Template struct {
	PDFPath string
	HTML    string
}
