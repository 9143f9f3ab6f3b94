package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ignatzorin/tecsolutions-backend/internal/config"
	"github.com/ignatzorin/tecsolutions-backend/internal/db"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/numbering"
	"github.com/ignatzorin/tecsolutions-backend/internal/goroutine"
	httpHandlers "github.com/ignatzorin/tecsolutions-backend/internal/http/handlers"
	httpRouter "github.com/ignatzorin/tecsolutions-backend/internal/http/router"
	"github.com/ignatzorin/tecsolutions-backend/internal/infrastructure/pdf"
	"github.com/ignatzorin/tecsolutions-backend/internal/infrastructure/persistence"
	"github.com/ignatzorin/tecsolutions-backend/internal/interface/http/dto"
	"github.com/ignatzorin/tecsolutions-backend/internal/interface/http/handler"
	"github.com/ignatzorin/tecsolutions-backend/internal/logger"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/clock"
	"github.com/ignatzorin/tecsolutions-backend/internal/service"
	"github.com/ignatzorin/tecsolutions-backend/internal/storage"
	"github.com/ignatzorin/tecsolutions-backend/internal/usecase/catalog"
	"github.com/ignatzorin/tecsolutions-backend/internal/usecase/client"
	"github.com/ignatzorin/tecsolutions-backend/internal/usecase/proposal"
	"github.com/ignatzorin/tecsolutions-backend/internal/usecase/report"
	"github.com/ignatzorin/tecsolutions-backend/internal/usecase/seed"
	"github.com/ignatzorin/tecsolutions-backend/internal/ws"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	logger.Init(cfg.LogLevel)
	if cfg.Env == "development" {
		logger.SetTextFormatter()
	}
	mainLog := logger.Component("main")

	store, storeCloser, err := db.OpenStore(ctx, cfg)
	if err != nil {
		mainLog.WithError(err).Fatal("не удалось открыть хранилище")
	}
	defer safeClose(storeCloser)
	mainLog.WithField("driver", cfg.StoreDriver).Info("хранилище открыто")

	clk := clock.RealClock{}

	// Репозитории коллекций.
	clientRepo := persistence.NewClientRepositoryAdapter(store)
	serviceRepo := persistence.NewServiceRepositoryAdapter(store)
	proposalRepo := persistence.NewProposalRepositoryAdapter(store)

	seedUC := seed.NewSeedDemoDataUseCase(clientRepo, serviceRepo)
	if cfg.SeedDemoData {
		result, err := seedUC.Execute(ctx)
		if err != nil {
			mainLog.WithError(err).Fatal("не удалось загрузить демо-данные")
		}
		mainLog.WithField("clients", result.Clients).WithField("services", result.Services).Info("демо-данные загружены")
	}

	// Авторизация оператора.
	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL)
	authService := service.NewAuthService(service.Operator{
		Username:     cfg.AdminUsername,
		PasswordHash: cfg.AdminPasswordHash,
	}, tokenManager)
	if !authService.Enabled() {
		mainLog.Warn("ADMIN_PASSWORD_HASH не задан, API открыт без авторизации")
	}

	// Вебсокеты.
	hub := ws.NewHub()
	goroutine.SafeGoWithContext(ctx, hub.Run)

	// PDF и архив выгрузок.
	renderer := pdf.NewProposalRenderer(pdf.DefaultBrand())
	var (
		pdfArchiver    proposal.Archiver
		reportArchiver report.Archiver
	)
	if cfg.ExportStoragePath != "" {
		exports, err := storage.NewExportStorage(cfg.ExportStoragePath, cfg.ExportMaxMB)
		if err != nil {
			mainLog.WithError(err).Fatal("не удалось подготовить каталог выгрузок")
		}
		pdfArchiver, reportArchiver = exports, exports
	}

	numbers := numbering.NewGenerator(clk, nil)
	detailsUC := proposal.NewGetProposalDetailsUseCase(proposalRepo, clientRepo, serviceRepo)
	generateReportUC := report.NewGenerateReportUseCase(proposalRepo, clientRepo, serviceRepo)

	// HTTP хэндлеры.
	handlers := httpRouter.Handlers{
		Health: httpHandlers.NewHealthHandler(store, cfg.StoreDriver, hub, clk),
		WS:     httpHandlers.NewWSHandler(hub, authService, cfg.AllowedOrigins),
		Auth:   handler.NewAuthHandler(authService),
		Client: handler.NewClientHandler(
			client.NewListClientsUseCase(clientRepo),
			client.NewGetClientUseCase(clientRepo),
			client.NewCreateClientUseCase(clientRepo, clk),
			client.NewUpdateClientUseCase(clientRepo),
			client.NewDeleteClientUseCase(clientRepo),
			hub,
		),
		Service: handler.NewServiceHandler(
			catalog.NewListServicesUseCase(serviceRepo),
			catalog.NewGetServiceUseCase(serviceRepo),
			catalog.NewCreateServiceUseCase(serviceRepo, clk),
			catalog.NewUpdateServiceUseCase(serviceRepo),
			catalog.NewDeleteServiceUseCase(serviceRepo),
			hub,
		),
		Proposal: handler.NewProposalHandler(handler.ProposalUseCases{
			Create:       proposal.NewCreateProposalUseCase(proposalRepo, serviceRepo, numbers, clk),
			Update:       proposal.NewUpdateProposalUseCase(proposalRepo, serviceRepo, clk),
			UpdateStatus: proposal.NewUpdateProposalStatusUseCase(proposalRepo, clk),
			Get:          proposal.NewGetProposalUseCase(proposalRepo),
			List:         proposal.NewListProposalsUseCase(proposalRepo),
			Delete:       proposal.NewDeleteProposalUseCase(proposalRepo),
			Details:      detailsUC,
			ExportPDF:    proposal.NewExportProposalPDFUseCase(detailsUC, renderer, pdfArchiver),
			PreviewPDF:   proposal.NewPreviewProposalPDFUseCase(clientRepo, serviceRepo, numbers, renderer, clk),
		}, hub),
		Report: handler.NewReportHandler(
			generateReportUC,
			report.NewExportReportUseCase(generateReportUC, dto.PresentReport, reportArchiver),
			clk,
		),
		Seed: handler.NewSeedHandler(seedUC),
	}

	engine := httpRouter.SetupRouter(cfg, authService, handlers)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			mainLog.WithError(err).Error("ошибка остановки http сервера")
		}
	}()

	mainLog.WithField("port", cfg.HTTPPort).Info("http сервер запущен")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		mainLog.WithError(err).Fatal("ошибка http сервера")
	}
	mainLog.Info("сервер остановлен")
}

func safeClose(c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logger.Component("main").WithError(err).Warn("ошибка закрытия хранилища")
	}
}
