package proposal

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/numbering"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/repository"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/valueobject"
	"github.com/ignatzorin/tecsolutions-backend/internal/goroutine"
	"github.com/ignatzorin/tecsolutions-backend/internal/infrastructure/pdf"
	"github.com/ignatzorin/tecsolutions-backend/internal/logger"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/clock"
)

// PreviewID: идентификатор несохранённого предложения в предпросмотре.
const PreviewID = "temp"

type Renderer interface {
	Render(d *entity.ProposalWithDetails) ([]byte, error)
}

// Archiver сохраняет копию выгруженного документа.
type Archiver interface {
	Save(ctx context.Context, fileName string, data []byte) (string, error)
}

// Document: готовый файл для скачивания.
type Document struct {
	FileName    string
	ContentType string
	Content     []byte
}

type ExportProposalPDFUseCase struct {
	details  *GetProposalDetailsUseCase
	renderer Renderer
	archiver Archiver
	log      *logrus.Entry
}

// NewExportProposalPDFUseCase; при archiver nil копии не сохраняются.
func NewExportProposalPDFUseCase(details *GetProposalDetailsUseCase, renderer Renderer, archiver Archiver) *ExportProposalPDFUseCase {
	return &ExportProposalPDFUseCase{
		details:  details,
		renderer: renderer,
		archiver: archiver,
		log:      logger.Component("proposal_pdf"),
	}
}

func (uc *ExportProposalPDFUseCase) Execute(ctx context.Context, proposalID string) (*Document, error) {
	d, err := uc.details.Execute(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	content, err := uc.renderer.Render(d)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		FileName:    pdf.FileName(d.Number, d.Client.Company),
		ContentType: "application/pdf",
		Content:     content,
	}
	uc.archive(doc)
	return doc, nil
}

// archive пишет копию в фоне: ошибка архива не ломает выгрузку.
func (uc *ExportProposalPDFUseCase) archive(doc *Document) {
	if uc.archiver == nil {
		return
	}
	goroutine.SafeGo(func() {
		path, err := uc.archiver.Save(context.Background(), doc.FileName, doc.Content)
		if err != nil {
			uc.log.WithError(err).WithField("file", doc.FileName).Warn("не удалось сохранить копию PDF")
			return
		}
		uc.log.WithField("path", path).Debug("копия PDF сохранена")
	})
}

// PreviewProposalPDFUseCase рисует PDF по форме без сохранения предложения.
type PreviewProposalPDFUseCase struct {
	clientRepo  repository.ClientRepository
	serviceRepo repository.ServiceRepository
	numbers     *numbering.Generator
	renderer    Renderer
	clock       clock.Clock
}

func NewPreviewProposalPDFUseCase(
	clientRepo repository.ClientRepository,
	serviceRepo repository.ServiceRepository,
	numbers *numbering.Generator,
	renderer Renderer,
	clk clock.Clock,
) *PreviewProposalPDFUseCase {
	return &PreviewProposalPDFUseCase{
		clientRepo:  clientRepo,
		serviceRepo: serviceRepo,
		numbers:     numbers,
		renderer:    renderer,
		clock:       clk,
	}
}

func (uc *PreviewProposalPDFUseCase) Execute(ctx context.Context, input ProposalInput) (*Document, error) {
	catalog, err := loadCatalog(ctx, uc.serviceRepo)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = valueobject.ProposalStatusDraft
	}

	now := uc.clock.Now()
	p := &entity.Proposal{
		ID:        PreviewID,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := fillDraft(p, input, catalog, now); err != nil {
		return nil, err
	}
	p.Number = uc.numbers.Next()

	d, err := withDetails(ctx, p, uc.clientRepo, uc.serviceRepo)
	if err != nil {
		return nil, err
	}

	content, err := uc.renderer.Render(d)
	if err != nil {
		return nil, err
	}
	return &Document{
		FileName:    pdf.FileName(d.Number, d.Client.Company),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}
