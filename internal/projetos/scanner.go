package projetos

import "github.com/JaimeStill/contratos/pkg/repository"

func scanProjeto(s repository.Scanner) (Projeto, error) {
	var p Projeto
	err := s.Scan(
		&p.ID,
		&p.NomeProjeto,
		&p.Descricao,
		&p.TemplatePDFPath,
		&p.TemplateHTML,
		&p.CreatedAt,
	)
	return p, err
}
