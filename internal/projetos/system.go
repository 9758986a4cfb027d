package projetos

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/JaimeStill/contratos/pkg/apperr"
	"github.com/JaimeStill/contratos/pkg/pagination"
	"github.com/JaimeStill/contratos/pkg/pdftext"
	"github.com/JaimeStill/contratos/pkg/saga"
	"github.com/JaimeStill/contratos/pkg/storage"
	"github.com/google/uuid"
)

// System defines the project operations. Create and Update accept an
// optional template PDF. Writes, uploads and blob cleanup ignore
// cancellation of ctx so a client disconnect cannot strand a blob.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Projeto], error)
	Find(ctx context.Context, id uuid.UUID) (*Projeto, error)
	Create(ctx context.Context, cmd CreateCommand, file *File) (*Projeto, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand, file *File) (*Projeto, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type system struct {
	store         Store
	blobs         storage.System
	extractor     pdftext.Extractor
	logger        *slog.Logger
	pagination    pagination.Config
	maxUploadSize int64
	now           func() time.Time
}

// New creates the project manager. Templates are written to blobs under
// TemplatesBucket and read back through extractor.
func New(
	store Store,
	blobs storage.System,
	extractor pdftext.Extractor,
	logger *slog.Logger,
	pagination pagination.Config,
	maxUploadSize int64,
) System {
	return &system{
		store:         store,
		blobs:         blobs,
		extractor:     extractor,
		logger:        logger.With("system", "projetos"),
		pagination:    pagination,
		maxUploadSize: maxUploadSize,
		now:           time.Now,
	}
}

func (s *system) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Projeto], error) {
	page.Normalize(s.pagination)

	result, err := s.store.List(ctx, page, filters)
	if err != nil {
		return nil, s.internal("Erro ao buscar projetos", err)
	}
	return result, nil
}

func (s *system) Find(ctx context.Context, id uuid.UUID) (*Projeto, error) {
	p, err := s.store.Find(ctx, id)
	if err != nil {
		return nil, s.fail("Erro ao buscar projeto", err)
	}
	return p, nil
}

func (s *system) Create(ctx context.Context, cmd CreateCommand, file *File) (*Projeto, error) {
	ctx = context.WithoutCancel(ctx)
	cmd.normalize()
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	if file == nil {
		p, err := s.store.Insert(ctx, cmd, nil)
		if err != nil {
			return nil, s.fail("Erro ao criar projeto", err)
		}
		s.logger.Info("projeto created", "id", p.ID)
		return p, nil
	}

	if err := checkFile(file, s.maxUploadSize); err != nil {
		return nil, err
	}

	var created *Projeto
	tpl := &Template{}

	err := saga.New(s.logger).
		Add(s.uploadStep(file, tpl)).
		Add(s.renderStep(file, tpl)).
		Add(saga.Step{
			Name: "insert projeto",
			Action: func(ctx context.Context) error {
				p, err := s.store.Insert(ctx, cmd, tpl)
				created = p
				return err
			},
		}).
		Run(ctx)
	if err != nil {
		return nil, s.fail("Erro ao criar projeto", err)
	}

	s.logger.Info("projeto created", "id", created.ID, "template", tpl.PDFPath)
	return created, nil
}

func (s *system) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand, file *File) (*Projeto, error) {
	ctx = context.WithoutCancel(ctx)
	cmd.normalize()
	if err := cmd.validate(); err != nil {
		return nil, err
	}
	if file != nil {
		if err := checkFile(file, s.maxUploadSize); err != nil {
			return nil, err
		}
	}

	existing, err := s.store.Find(ctx, id)
	if err != nil {
		return nil, s.fail("Erro ao atualizar projeto", err)
	}

	if file == nil {
		p, err := s.store.Update(ctx, id, cmd, nil)
		if err != nil {
			return nil, s.fail("Erro ao atualizar projeto", err)
		}
		s.logger.Info("projeto updated", "id", id)
		return p, nil
	}

	if existing.TemplatePDFPath != nil {
		s.deleteBlob(ctx, *existing.TemplatePDFPath)
	}

	var updated *Projeto
	tpl := &Template{}

	err = saga.New(s.logger).
		Add(s.uploadStep(file, tpl)).
		Add(s.renderStep(file, tpl)).
		Add(saga.Step{
			Name: "update projeto",
			Action: func(ctx context.Context) error {
				p, err := s.store.Update(ctx, id, cmd, tpl)
				updated = p
				return err
			},
		}).
		Run(ctx)
	if err != nil {
		return nil, s.fail("Erro ao atualizar projeto", err)
	}

	s.logger.Info("projeto updated", "id", id, "template", tpl.PDFPath)
	return updated, nil
}

func (s *system) Delete(ctx context.Context, id uuid.UUID) error {
	ctx = context.WithoutCancel(ctx)
	has, err := s.store.HasContratos(ctx, id)
	if err != nil {
		return s.internal("Erro ao deletar projeto", err)
	}
	if has {
		return ErrHasContratos
	}

	p, err := s.store.Find(ctx, id)
	if err != nil {
		return s.fail("Erro ao deletar projeto", err)
	}

	if p.TemplatePDFPath != nil {
		s.deleteBlob(ctx, *p.TemplatePDFPath)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return s.fail("Erro ao deletar projeto", err)
	}

	s.logger.Info("projeto deleted", "id", id)
	return nil
}

// uploadStep stores the file and records its locator in tpl. The
// compensation removes the blob it wrote.
func (s *system) uploadStep(file *File, tpl *Template) saga.Step {
	name := blobName(file.Name, s.now())

	return saga.Step{
		Name: "upload template",
		Action: func(ctx context.Context) error {
			locator, err := s.blobs.Store(ctx, TemplatesBucket, name, file.Data, pdfContentType)
			if err != nil {
				return apperr.Wrap(apperr.Internal, "Erro ao fazer upload do arquivo", err)
			}
			tpl.PDFPath = locator
			return nil
		},
		Compensate: func(ctx context.Context) error {
			return s.blobs.Delete(ctx, TemplatesBucket, name)
		},
	}
}

func (s *system) renderStep(file *File, tpl *Template) saga.Step {
	return saga.Step{
		Name: "extract template",
		Action: func(ctx context.Context) error {
			text, err := s.extractor.Extract(ctx, file.Data)
			if err != nil {
				return apperr.Wrap(apperr.Internal, "Erro ao extrair texto do PDF", err)
			}
			tpl.HTML = RenderHTML(text)
			return nil
		},
	}
}

// deleteBlob removes a stored template. Failures leave an orphaned blob
// and are only logged.
func (s *system) deleteBlob(ctx context.Context, locator string) {
	name := storage.NameFromLocator(locator)
	if err := s.blobs.Delete(ctx, TemplatesBucket, name); err != nil {
		s.logger.Warn("template delete failed", "name", name, "error", err)
	}
}

func (s *system) fail(msg string, err error) error {
	var tagged *apperr.Error
	if errors.As(err, &tagged) {
		if tagged.Kind == apperr.Internal {
			s.logger.Error(msg, "error", err)
		}
		return err
	}
	return s.internal(msg, err)
}

func (s *system) internal(msg string, err error) error {
	s.logger.Error(msg, "error", err)
	return apperr.Wrap(apperr.Internal, msg, err)
}

// blobName builds a collision-resistant storage name from the upload's
// original name.
func blobName(original string, at time.Time) string {
	return fmt.Sprintf("template-%d-%s", at.UnixMilli(), sanitizeName(original))
}

func sanitizeName(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)

	if strings.Trim(name, "._") == "" {
		return "template.pdf"
	}
	return name
}
