package clientes

import (
	"net/url"
	"strings"
	"testing"

	"github.com/JaimeStill/contratos/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiltersFromQuery(t *testing.T) {
	f := FiltersFromQuery(url.Values{
		"cnpj":         {"11.222.333/0001-81"},
		"razao_social": {"Acme"},
	})

	require.NotNil(t, f.CNPJ)
	assert.Equal(t, "11222333000181", *f.CNPJ)
	require.NotNil(t, f.RazaoSocial)
	assert.Equal(t, "Acme", *f.RazaoSocial)

	empty := FiltersFromQuery(url.Values{"cnpj": {"./-"}})
	assert.Nil(t, empty.CNPJ)
	assert.Nil(t, empty.RazaoSocial)
}

func TestFiltersApply(t *testing.T) {
	cnpj := "1122"
	qb := query.NewBuilder(projection, defaultSort)
	Filters{CNPJ: &cnpj}.Apply(qb)

	sql, args := qb.Build()
	assert.Contains(t, sql, "c.cnpj ILIKE")
	assert.Equal(t, []any{"%1122%"}, args)
}

// countScanner records how many destinations a row scan asks for.
type countScanner struct{ n int }

func (c *countScanner) Scan(dest ...any) error {
	c.n = len(dest)
	return nil
}

func TestContratoProjection_FullRow(t *testing.T) {
	cols := contratoProjection.Columns()
	for _, col := range []string{
		"ct.cliente_id", "ct.url_contrato_gerado", "ct.clicksign_document_key",
		"ct.asaas_subscription_id", "ct.asaas_setup_payment_id", "ct.prazo_implementacao_dias",
		"ct.provedor_openai", "ct.forma_pagamento", "ct.observacoes_ia",
		"ct.assinante_venda_nome", "ct.assinante_venda_email",
	} {
		assert.Contains(t, cols, col)
	}

	var s countScanner
	_, err := scanContrato(&s)
	require.NoError(t, err)
	assert.Equal(t, strings.Count(cols, ",")+1, s.n)

	sql, args := query.NewBuilder(contratoProjection, defaultSort).WhereEquals("ClienteID", "x").Build()
	assert.Contains(t, sql, "WHERE ct.cliente_id = $1")
	assert.Equal(t, []any{"x"}, args)
}
