package projetos_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/JaimeStill/contratos/internal/projetos"
	"github.com/JaimeStill/contratos/pkg/lifecycle"
	"github.com/JaimeStill/contratos/pkg/pagination"
	"github.com/google/uuid"
)

const maxUpload = 10 * 1024 * 1024

var errBoom = errors.New("connection reset")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPagination() pagination.Config {
	return pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
}

func ptr[T any](v T) *T { return &v }

func pdfFile(name string) *projetos.File {
	return &projetos.File{Name: name, ContentType: "application/pdf", Data: []byte("%PDF-1.4 fake")}
}

type fakeStore struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]projetos.Projeto
	contratos map[uuid.UUID]bool
	insertErr error
	updateErr error
	onInsert  func()
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rows:      map[uuid.UUID]projetos.Projeto{},
		contratos: map[uuid.UUID]bool{},
	}
}

func (f *fakeStore) seed(nome string, tpl *projetos.Template) projetos.Projeto {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := projetos.Projeto{ID: uuid.New(), NomeProjeto: nome, CreatedAt: time.Now()}
	if tpl != nil {
		p.TemplatePDFPath, p.TemplateHTML = ptr(tpl.PDFPath), ptr(tpl.HTML)
	}
	f.rows[p.ID] = p
	return p
}

func (f *fakeStore) List(_ context.Context, page pagination.PageRequest, _ projetos.Filters) (*pagination.PageResult[projetos.Projeto], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]projetos.Projeto, 0, len(f.rows))
	for _, p := range f.rows {
		items = append(items, p)
	}
	result := pagination.NewPageResult(items, len(items), page.Page, page.PageSize)
	return &result, nil
}

func (f *fakeStore) Find(_ context.Context, id uuid.UUID) (*projetos.Projeto, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[id]
	if !ok {
		return nil, projetos.ErrNotFound
	}
	return &p, nil
}

func (f *fakeStore) Insert(ctx context.Context, cmd projetos.CreateCommand, tpl *projetos.Template) (*projetos.Projeto, error) {
	if f.onInsert != nil {
		f.onInsert()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	p := projetos.Projeto{ID: uuid.New(), NomeProjeto: cmd.NomeProjeto, Descricao: cmd.Descricao, CreatedAt: time.Now()}
	if tpl != nil {
		p.TemplatePDFPath, p.TemplateHTML = ptr(tpl.PDFPath), ptr(tpl.HTML)
	}
	f.rows[p.ID] = p
	return &p, nil
}

func (f *fakeStore) Update(_ context.Context, id uuid.UUID, cmd projetos.UpdateCommand, tpl *projetos.Template) (*projetos.Projeto, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	p, ok := f.rows[id]
	if !ok {
		return nil, projetos.ErrNotFound
	}
	if cmd.NomeProjeto != nil {
		p.NomeProjeto = *cmd.NomeProjeto
	}
	if cmd.Descricao != nil {
		p.Descricao = cmd.Descricao
	}
	if tpl != nil {
		p.TemplatePDFPath, p.TemplateHTML = ptr(tpl.PDFPath), ptr(tpl.HTML)
	}
	f.rows[id] = p
	return &p, nil
}

func (f *fakeStore) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return projetos.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeStore) HasContratos(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.contratos[id], nil
}

// fakeBlobs records every blob operation in call order.
type fakeBlobs struct {
	mu        sync.Mutex
	blobs     map[string][]byte
	calls     []string
	storeErr  error
	deleteErr error
	onStore   func()
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{blobs: map[string][]byte{}}
}

func (b *fakeBlobs) Store(ctx context.Context, bucket, name string, data []byte, _ string) (string, error) {
	if b.onStore != nil {
		b.onStore()
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := ctx.Err(); err != nil {
		b.calls = append(b.calls, "store-aborted "+bucket+"/"+name)
		return "", err
	}
	b.calls = append(b.calls, "store "+bucket+"/"+name)
	if b.storeErr != nil {
		return "", b.storeErr
	}
	b.blobs[bucket+"/"+name] = data
	return "/storage/" + bucket + "/" + name, nil
}

func (b *fakeBlobs) Retrieve(_ context.Context, bucket, name string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.blobs[bucket+"/"+name], nil
}

func (b *fakeBlobs) Delete(ctx context.Context, bucket, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := ctx.Err(); err != nil {
		b.calls = append(b.calls, "delete-aborted "+bucket+"/"+name)
		return err
	}
	b.calls = append(b.calls, "delete "+bucket+"/"+name)
	if b.deleteErr != nil {
		return b.deleteErr
	}
	delete(b.blobs, bucket+"/"+name)
	return nil
}

func (b *fakeBlobs) Start(*lifecycle.Coordinator) error { return nil }

type fakeExtractor struct {
	text string
	err  error
}

func (e fakeExtractor) Extract(context.Context, []byte) (string, error) {
	return e.text, e.err
}
