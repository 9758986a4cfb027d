package contratos_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/JaimeStill/contratos/internal/contratos"
	"github.com/JaimeStill/contratos/pkg/apperr"
	"github.com/JaimeStill/contratos/pkg/pagination"
	"github.com/JaimeStill/contratos/pkg/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSystem(store *fakeStore) contratos.System {
	return contratos.New(store, testLogger(), pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
}

func validCreate(clienteID, projetoID uuid.UUID) contratos.CreateCommand {
	return contratos.CreateCommand{
		ClienteID:        clienteID,
		ProjetoID:        projetoID,
		ValorMensalidade: "1500.00",
		ValorSetup:       "3000",
		PlanoNome:        "Plano Pro",
	}
}

func TestCreate_ForcesInitialStatus(t *testing.T) {
	store := newFakeStore()
	clienteID, projetoID := store.refs()

	c, err := newSystem(store).Create(context.Background(), validCreate(clienteID, projetoID))

	require.NoError(t, err)
	assert.Equal(t, contratos.AguardandoGeracao, c.Status)
	assert.Equal(t, 1, store.inserts)
}

func TestCreate_MissingReferences(t *testing.T) {
	store := newFakeStore()
	clienteID, projetoID := store.refs()
	sys := newSystem(store)

	_, err := sys.Create(context.Background(), validCreate(uuid.New(), projetoID))
	require.ErrorIs(t, err, contratos.ErrClienteNotFound)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Equal(t, "Cliente não encontrado", apperr.Message(err))

	_, err = sys.Create(context.Background(), validCreate(clienteID, uuid.New()))
	require.ErrorIs(t, err, contratos.ErrProjetoNotFound)
	assert.Equal(t, "Projeto não encontrado", apperr.Message(err))

	assert.Zero(t, store.inserts)
}

func TestCreate_Validation(t *testing.T) {
	store := newFakeStore()
	clienteID, projetoID := store.refs()

	tests := []struct {
		name    string
		mutate  func(*contratos.CreateCommand)
		message string
	}{
		{"missing cliente", func(c *contratos.CreateCommand) { c.ClienteID = uuid.Nil }, "Cliente é obrigatório"},
		{"missing projeto", func(c *contratos.CreateCommand) { c.ProjetoID = uuid.Nil }, "Projeto é obrigatório"},
		{"three decimals", func(c *contratos.CreateCommand) { c.ValorMensalidade = "10.123" }, "Valor da mensalidade inválido"},
		{"comma decimal", func(c *contratos.CreateCommand) { c.ValorSetup = "10,50" }, "Valor do setup inválido"},
		{"negative", func(c *contratos.CreateCommand) { c.ValorSetup = "-1" }, "Valor do setup inválido"},
		{"empty valor", func(c *contratos.CreateCommand) { c.ValorMensalidade = "" }, "Valor da mensalidade é obrigatório"},
		{"short plano", func(c *contratos.CreateCommand) { c.PlanoNome = " ab " }, "Nome do plano deve ter pelo menos 3 caracteres"},
		{"zero prazo", func(c *contratos.CreateCommand) { c.PrazoImplementacaoDias = ptr(0) }, "Prazo de implementação deve ser um número positivo"},
		{"bad email", func(c *contratos.CreateCommand) { c.AssinanteVendaEmail = ptr("vendas") }, "Email do assinante inválido"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCreate(clienteID, projetoID)
			tt.mutate(&cmd)

			_, err := newSystem(store).Create(context.Background(), cmd)

			require.Error(t, err)
			assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))
			assert.Contains(t, apperr.Message(err), tt.message)
		})
	}
	assert.Zero(t, store.inserts)
}

func TestCreate_ForeignKeyRaceIsInternal(t *testing.T) {
	store := newFakeStore()
	clienteID, projetoID := store.refs()
	store.writeErr = fmt.Errorf("%w: contratos_cliente_id_fkey", repository.ErrForeignKey)

	_, err := newSystem(store).Create(context.Background(), validCreate(clienteID, projetoID))

	require.ErrorIs(t, err, repository.ErrForeignKey)
	assert.Equal(t, apperr.Internal, apperr.KindOf(err))
}

func TestUpdate_EditLock(t *testing.T) {
	tests := []struct {
		status    contratos.Status
		patch     contratos.UpdateCommand
		forbidden bool
	}{
		{contratos.AguardandoGeracao, contratos.UpdateCommand{PlanoNome: ptr("Plano Novo")}, false},
		{contratos.AguardandoGeracao, contratos.UpdateCommand{Status: ptr(contratos.AguardandoRevisao)}, false},
		{contratos.AguardandoRevisao, contratos.UpdateCommand{PlanoNome: ptr("Plano Novo")}, true},
		{contratos.AguardandoRevisao, contratos.UpdateCommand{Status: ptr(contratos.Enviado)}, false},
		{contratos.AguardandoRevisao, contratos.UpdateCommand{Status: ptr(contratos.Enviado), URLContratoGerado: ptr("https://x/c.pdf")}, true},
		{contratos.Enviado, contratos.UpdateCommand{ValorMensalidade: ptr("10.00")}, true},
		{contratos.Ativo, contratos.UpdateCommand{Status: ptr(contratos.AguardandoGeracao)}, false},
		{contratos.Cancelado, contratos.UpdateCommand{Status: ptr(contratos.Ativo)}, false},
		{contratos.Cancelado, contratos.UpdateCommand{PlanoNome: ptr("Plano Novo")}, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/nonstatus=%v", tt.status, tt.patch.HasNonStatusFields()), func(t *testing.T) {
			store := newFakeStore()
			c := store.seed(tt.status)

			updated, err := newSystem(store).Update(context.Background(), c.ID, tt.patch)

			if tt.forbidden {
				require.ErrorIs(t, err, contratos.ErrLocked)
				assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))
				assert.Zero(t, store.updates)
				return
			}
			require.NoError(t, err)
			if tt.patch.Status != nil {
				assert.Equal(t, *tt.patch.Status, updated.Status)
			}
		})
	}
}

func TestUpdate_InvalidStatus(t *testing.T) {
	store := newFakeStore()
	c := store.seed(contratos.AguardandoGeracao)

	_, err := newSystem(store).Update(context.Background(), c.ID, contratos.UpdateCommand{
		Status: ptr(contratos.Status("Arquivado")),
	})

	require.ErrorIs(t, err, contratos.ErrInvalidStatus)
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))
	assert.Equal(t, "Status inválido", apperr.Message(err))
}

func TestUpdate_NotFound(t *testing.T) {
	_, err := newSystem(newFakeStore()).Update(context.Background(), uuid.New(), contratos.UpdateCommand{
		Status: ptr(contratos.Ativo),
	})
	require.ErrorIs(t, err, contratos.ErrNotFound)
}

func TestUpdate_NotFoundBeforeStatusCheck(t *testing.T) {
	_, err := newSystem(newFakeStore()).Update(context.Background(), uuid.New(), contratos.UpdateCommand{
		Status: ptr(contratos.Status("Arquivado")),
	})

	require.ErrorIs(t, err, contratos.ErrNotFound)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestUpdate_RevalidatesReferences(t *testing.T) {
	store := newFakeStore()
	c := store.seed(contratos.AguardandoGeracao)
	sys := newSystem(store)

	_, err := sys.Update(context.Background(), c.ID, contratos.UpdateCommand{ClienteID: ptr(uuid.New())})
	require.ErrorIs(t, err, contratos.ErrClienteNotFound)

	_, err = sys.Update(context.Background(), c.ID, contratos.UpdateCommand{ProjetoID: ptr(uuid.New())})
	require.ErrorIs(t, err, contratos.ErrProjetoNotFound)

	clienteID, projetoID := store.refs()
	updated, err := sys.Update(context.Background(), c.ID, contratos.UpdateCommand{
		ClienteID: &clienteID,
		ProjetoID: &projetoID,
	})
	require.NoError(t, err)
	assert.Equal(t, clienteID, updated.ClienteID)
	assert.Equal(t, projetoID, updated.ProjetoID)
}

func TestUpdate_StoreFailureIsInternal(t *testing.T) {
	store := newFakeStore()
	c := store.seed(contratos.AguardandoGeracao)
	store.writeErr = errBoom

	_, err := newSystem(store).Update(context.Background(), c.ID, contratos.UpdateCommand{PlanoNome: ptr("Plano Novo")})

	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, apperr.Internal, apperr.KindOf(err))
	assert.Equal(t, "Erro ao atualizar contrato", apperr.Message(err))
}

func TestDelete_Unguarded(t *testing.T) {
	for _, status := range contratos.Statuses {
		t.Run(string(status), func(t *testing.T) {
			store := newFakeStore()
			c := store.seed(status)

			require.NoError(t, newSystem(store).Delete(context.Background(), c.ID))
			assert.Empty(t, store.rows)
		})
	}

	err := newSystem(newFakeStore()).Delete(context.Background(), uuid.New())
	require.ErrorIs(t, err, contratos.ErrNotFound)
}

func TestApplyCallback_BypassesEditLock(t *testing.T) {
	store := newFakeStore()
	c := store.seed(contratos.AguardandoRevisao)

	updated, err := newSystem(store).ApplyCallback(context.Background(), c.ID, contratos.CallbackCommand{
		Status:               contratos.Enviado,
		URLContratoGerado:    ptr("https://docs.example.com/c.pdf"),
		ClicksignDocumentKey: ptr("ck-123"),
	})

	require.NoError(t, err)
	assert.Equal(t, contratos.Enviado, updated.Status)
	require.NotNil(t, updated.ClicksignDocumentKey)
	assert.Equal(t, "ck-123", *updated.ClicksignDocumentKey)
	require.NotNil(t, updated.URLContratoGerado)
	assert.Equal(t, 1, store.updates)
	assert.Equal(t, "Plano Básico", updated.PlanoNome)
}

func TestApplyCallback_Errors(t *testing.T) {
	store := newFakeStore()
	c := store.seed(contratos.Enviado)
	sys := newSystem(store)

	_, err := sys.ApplyCallback(context.Background(), uuid.New(), contratos.CallbackCommand{Status: contratos.Ativo})
	require.ErrorIs(t, err, contratos.ErrNotFound)

	_, err = sys.ApplyCallback(context.Background(), c.ID, contratos.CallbackCommand{Status: "Arquivado"})
	require.ErrorIs(t, err, contratos.ErrInvalidStatus)
	assert.Zero(t, store.updates)
}

func TestApplyCallback_CanceledContext(t *testing.T) {
	store := newFakeStore()
	c := store.seed(contratos.AguardandoGeracao)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	updated, err := newSystem(store).ApplyCallback(ctx, c.ID, contratos.CallbackCommand{Status: contratos.AguardandoRevisao})

	require.NoError(t, err)
	assert.Equal(t, contratos.AguardandoRevisao, updated.Status)
}
