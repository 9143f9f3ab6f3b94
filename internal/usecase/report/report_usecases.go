package report

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/reporting"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/repository"
	"github.com/ignatzorin/tecsolutions-backend/internal/goroutine"
	"github.com/ignatzorin/tecsolutions-backend/internal/logger"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/apperror"
)

type GenerateReportUseCase struct {
	proposalRepo repository.ProposalRepository
	clientRepo   repository.ClientRepository
	serviceRepo  repository.ServiceRepository
}

func NewGenerateReportUseCase(
	proposalRepo repository.ProposalRepository,
	clientRepo repository.ClientRepository,
	serviceRepo repository.ServiceRepository,
) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		proposalRepo: proposalRepo,
		clientRepo:   clientRepo,
		serviceRepo:  serviceRepo,
	}
}

// Execute читает три коллекции целиком и агрегирует их за период.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, period reporting.DateRange) (*reporting.Report, error) {
	proposals, err := uc.proposalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := uc.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	services, err := uc.serviceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	report := reporting.Aggregate(proposals, clients, services, period)
	return &report, nil
}

// ExportedReport: файл выгрузки отчёта.
type ExportedReport struct {
	FileName string
	Content  []byte
}

// Presenter превращает отчёт в JSON-документ выгрузки.
type Presenter func(r *reporting.Report) any

// Archiver сохраняет копию выгрузки.
type Archiver interface {
	Save(ctx context.Context, fileName string, data []byte) (string, error)
}

type ExportReportUseCase struct {
	generate *GenerateReportUseCase
	present  Presenter
	archiver Archiver
	log      *logrus.Entry
}

// NewExportReportUseCase; archiver может быть nil.
func NewExportReportUseCase(generate *GenerateReportUseCase, present Presenter, archiver Archiver) *ExportReportUseCase {
	return &ExportReportUseCase{
		generate: generate,
		present:  present,
		archiver: archiver,
		log:      logger.Component("report_export"),
	}
}

func (uc *ExportReportUseCase) Execute(ctx context.Context, period reporting.DateRange) (*ExportedReport, error) {
	report, err := uc.generate.Execute(ctx, period)
	if err != nil {
		return nil, err
	}

	content, err := json.MarshalIndent(uc.present(report), "", "  ")
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось сформировать выгрузку отчёта")
	}
	out := &ExportedReport{FileName: period.ExportFileName(), Content: content}
	uc.archive(out)
	return out, nil
}

func (uc *ExportReportUseCase) archive(out *ExportedReport) {
	if uc.archiver == nil {
		return
	}
	goroutine.SafeGo(func() {
		path, err := uc.archiver.Save(context.Background(), out.FileName, out.Content)
		if err != nil {
			uc.log.WithError(err).WithField("file", out.FileName).Warn("не удалось сохранить копию отчёта")
			return
		}
		uc.log.WithField("path", path).Debug("копия отчёта сохранена")
	})
}
