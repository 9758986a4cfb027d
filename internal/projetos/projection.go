package projetos

import "github.com/JaimeStill/contratos/pkg/query"

var projection = query.NewProjectionMap("public", "projetos", "p").
	Project("id", "ID").
	Project("nome_projeto", "NomeProjeto").
	Project("descricao", "Descricao").
	Project("template_pdf_path", "TemplatePDFPath").
	Project("template_html", "TemplateHTML").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

var columns = []string{
	"id",
	"nome_projeto",
	"descricao",
	"template_pdf_path",
	"template_html",
	"created_at",
}
