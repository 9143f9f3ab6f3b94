package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/tecsolutions-backend/internal/config"
	"github.com/ignatzorin/tecsolutions-backend/internal/http/handlers"
	"github.com/ignatzorin/tecsolutions-backend/internal/http/middleware"
	"github.com/ignatzorin/tecsolutions-backend/internal/interface/http/handler"
	"github.com/ignatzorin/tecsolutions-backend/internal/service"
)

// Handlers: все HTTP хэндлеры приложения. Seed может быть nil.
type Handlers struct {
	Health   *handlers.HealthHandler
	WS       *handlers.WSHandler
	Auth     *handler.AuthHandler
	Client   *handler.ClientHandler
	Service  *handler.ServiceHandler
	Proposal *handler.ProposalHandler
	Report   *handler.ReportHandler
	Seed     *handler.SeedHandler
}

func SetupRouter(cfg *config.Config, auth *service.AuthService, h Handlers) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", h.Health.Health)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod))
	{
		authGroup.POST("/login", h.Auth.Login)
	}

	// WebSocket проверяет токен сам: браузер передаёт его в query.
	api.GET("/ws", h.WS.Handle)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(auth))
	{
		protected.GET("/clients", h.Client.ListClients)
		protected.POST("/clients", h.Client.CreateClient)
		protected.GET("/clients/:id", h.Client.GetClient)
		protected.PUT("/clients/:id", h.Client.UpdateClient)
		protected.DELETE("/clients/:id", h.Client.DeleteClient)

		protected.GET("/services", h.Service.ListServices)
		protected.POST("/services", h.Service.CreateService)
		protected.GET("/services/:id", h.Service.GetService)
		protected.PUT("/services/:id", h.Service.UpdateService)
		protected.DELETE("/services/:id", h.Service.DeleteService)

		protected.GET("/proposals", h.Proposal.ListProposals)
		protected.POST("/proposals", h.Proposal.CreateProposal)
		protected.POST("/proposals/preview/pdf", h.Proposal.PreviewPDF)
		protected.GET("/proposals/:id", h.Proposal.GetProposal)
		protected.PUT("/proposals/:id", h.Proposal.UpdateProposal)
		protected.DELETE("/proposals/:id", h.Proposal.DeleteProposal)
		protected.PUT("/proposals/:id/status", h.Proposal.UpdateProposalStatus)
		protected.GET("/proposals/:id/details", h.Proposal.GetProposalDetails)
		protected.GET("/proposals/:id/pdf", h.Proposal.ExportPDF)

		protected.GET("/reports", h.Report.GetReport)
		protected.GET("/reports/export", h.Report.ExportReport)

		if h.Seed != nil && cfg.Env == "development" {
			protected.POST("/seed", h.Seed.Seed)
		}
	}

	return r
}
