package contratos_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/JaimeStill/contratos/internal/contratos"
	"github.com/JaimeStill/contratos/pkg/pagination"
	"github.com/google/uuid"
)

var errBoom = errors.New("connection reset")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }

type fakeStore struct {
	mu       sync.Mutex
	rows     map[uuid.UUID]contratos.Contrato
	clientes map[uuid.UUID]bool
	projetos map[uuid.UUID]bool
	inserts  int
	updates  int
	writeErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rows:     map[uuid.UUID]contratos.Contrato{},
		clientes: map[uuid.UUID]bool{},
		projetos: map[uuid.UUID]bool{},
	}
}

// refs registers a client and project and returns their ids.
func (f *fakeStore) refs() (uuid.UUID, uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, p := uuid.New(), uuid.New()
	f.clientes[c], f.projetos[p] = true, true
	return c, p
}

func (f *fakeStore) seed(status contratos.Status) contratos.Contrato {
	clienteID, projetoID := f.refs()
	f.mu.Lock()
	defer f.mu.Unlock()
	c := contratos.Contrato{
		ID:               uuid.New(),
		ClienteID:        clienteID,
		ProjetoID:        projetoID,
		ValorMensalidade: "100.00",
		ValorSetup:       "500.00",
		PlanoNome:        "Plano Básico",
		Status:           status,
		CreatedAt:        time.Now(),
	}
	f.rows[c.ID] = c
	return c
}

func (f *fakeStore) List(_ context.Context, page pagination.PageRequest, filters contratos.Filters) (*pagination.PageResult[contratos.Contrato], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := []contratos.Contrato{}
	for _, c := range f.rows {
		if len(filters.Status) > 0 && !slices.Contains(filters.Status, c.Status) {
			continue
		}
		items = append(items, c)
	}
	result := pagination.NewPageResult(items, len(items), page.Page, page.PageSize)
	return &result, nil
}

func (f *fakeStore) Find(_ context.Context, id uuid.UUID) (*contratos.Contrato, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.rows[id]
	if !ok {
		return nil, contratos.ErrNotFound
	}
	return &c, nil
}

func (f *fakeStore) Insert(_ context.Context, cmd contratos.CreateCommand, status contratos.Status) (*contratos.Contrato, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	f.inserts++
	c := contratos.Contrato{
		ID:                     uuid.New(),
		ClienteID:              cmd.ClienteID,
		ProjetoID:              cmd.ProjetoID,
		ValorMensalidade:       cmd.ValorMensalidade,
		ValorSetup:             cmd.ValorSetup,
		PlanoNome:              cmd.PlanoNome,
		PrazoImplementacaoDias: cmd.PrazoImplementacaoDias,
		AssinanteVendaEmail:    cmd.AssinanteVendaEmail,
		Status:                 status,
		CreatedAt:              time.Now(),
	}
	f.rows[c.ID] = c
	return &c, nil
}

func (f *fakeStore) Update(_ context.Context, id uuid.UUID, cmd contratos.UpdateCommand) (*contratos.Contrato, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	c, ok := f.rows[id]
	if !ok {
		return nil, contratos.ErrNotFound
	}
	f.updates++
	if cmd.ClienteID != nil {
		c.ClienteID = *cmd.ClienteID
	}
	if cmd.ProjetoID != nil {
		c.ProjetoID = *cmd.ProjetoID
	}
	if cmd.PlanoNome != nil {
		c.PlanoNome = *cmd.PlanoNome
	}
	if cmd.ValorMensalidade != nil {
		c.ValorMensalidade = *cmd.ValorMensalidade
	}
	if cmd.URLContratoGerado != nil {
		c.URLContratoGerado = cmd.URLContratoGerado
	}
	if cmd.ClicksignDocumentKey != nil {
		c.ClicksignDocumentKey = cmd.ClicksignDocumentKey
	}
	if cmd.Status != nil {
		c.Status = *cmd.Status
	}
	f.rows[id] = c
	return &c, nil
}

func (f *fakeStore) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return contratos.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeStore) ClienteExists(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.clientes[id], nil
}

func (f *fakeStore) ProjetoExists(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.projetos[id], nil
}
