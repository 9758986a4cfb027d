package clientes_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/JaimeStill/contratos/internal/clientes"
	"github.com/JaimeStill/contratos/pkg/pagination"
	"github.com/google/uuid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPagination() pagination.Config {
	return pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
}

func ptr[T any](v T) *T { return &v }

// fakeStore is an in-memory Store keyed by client id.
type fakeStore struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]clientes.Cliente
	contratos map[uuid.UUID][]clientes.Contrato
	lastPage  pagination.PageRequest
	failWith  error
	inserts   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rows:      map[uuid.UUID]clientes.Cliente{},
		contratos: map[uuid.UUID][]clientes.Contrato{},
	}
}

func (f *fakeStore) seed(razao, cnpj string) clientes.Cliente {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := clientes.Cliente{ID: uuid.New(), RazaoSocial: razao, CNPJ: cnpj, CreatedAt: time.Now()}
	f.rows[c.ID] = c
	return c
}

func (f *fakeStore) List(_ context.Context, page pagination.PageRequest, _ clientes.Filters) (*pagination.PageResult[clientes.Cliente], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.lastPage = page
	items := make([]clientes.Cliente, 0, len(f.rows))
	for _, c := range f.rows {
		items = append(items, c)
	}
	result := pagination.NewPageResult(items, len(items), page.Page, page.PageSize)
	return &result, nil
}

func (f *fakeStore) Find(_ context.Context, id uuid.UUID) (*clientes.Cliente, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.rows[id]
	if !ok {
		return nil, clientes.ErrNotFound
	}
	return &c, nil
}

func (f *fakeStore) CNPJExists(_ context.Context, cnpj string, exclude *uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, c := range f.rows {
		if exclude != nil && id == *exclude {
			continue
		}
		if c.CNPJ == cnpj {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) Insert(_ context.Context, cmd clientes.CreateCommand) (*clientes.Cliente, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.inserts++
	c := fromCommand(uuid.New(), cmd)
	f.rows[c.ID] = c
	return &c, nil
}

func (f *fakeStore) Update(_ context.Context, id uuid.UUID, cmd clientes.UpdateCommand) (*clientes.Cliente, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	c, ok := f.rows[id]
	if !ok {
		return nil, clientes.ErrNotFound
	}
	if cmd.RazaoSocial != nil {
		c.RazaoSocial = *cmd.RazaoSocial
	}
	if cmd.CNPJ != nil {
		c.CNPJ = *cmd.CNPJ
	}
	if cmd.AssinanteEmail != nil {
		c.AssinanteEmail = cmd.AssinanteEmail
	}
	if cmd.FinanceiroEmail != nil {
		c.FinanceiroEmail = cmd.FinanceiroEmail
	}
	f.rows[id] = c
	return &c, nil
}

func (f *fakeStore) Replace(_ context.Context, id uuid.UUID, cmd clientes.CreateCommand) (*clientes.Cliente, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return nil, clientes.ErrNotFound
	}
	c := fromCommand(id, cmd)
	f.rows[id] = c
	return &c, nil
}

func (f *fakeStore) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return clientes.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeStore) HasContratos(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.contratos[id]) > 0, nil
}

func (f *fakeStore) Contratos(_ context.Context, id uuid.UUID) ([]clientes.Contrato, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := append([]clientes.Contrato{}, f.contratos[id]...)
	return items, nil
}

func fromCommand(id uuid.UUID, cmd clientes.CreateCommand) clientes.Cliente {
	return clientes.Cliente{
		ID:                 id,
		RazaoSocial:        cmd.RazaoSocial,
		CNPJ:               cmd.CNPJ,
		EnderecoCompleto:   cmd.EnderecoCompleto,
		CidadeEstado:       cmd.CidadeEstado,
		AssinanteNome:      cmd.AssinanteNome,
		AssinanteEmail:     cmd.AssinanteEmail,
		FinanceiroNome:     cmd.FinanceiroNome,
		FinanceiroEmail:    cmd.FinanceiroEmail,
		FinanceiroTelefone: cmd.FinanceiroTelefone,
		CreatedAt:          time.Now(),
	}
}

var errBoom = errors.New("connection reset")
