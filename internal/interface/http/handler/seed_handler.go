package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/tecsolutions-backend/internal/interface/http/response"
	"github.com/ignatzorin/tecsolutions-backend/internal/usecase/seed"
)

type SeedHandler struct {
	seedUC *seed.SeedDemoDataUseCase
}

func NewSeedHandler(seedUC *seed.SeedDemoDataUseCase) *SeedHandler {
	return &SeedHandler{seedUC: seedUC}
}

// Seed обрабатывает POST /api/seed: демо-данные в пустые коллекции.
func (h *SeedHandler) Seed(c *gin.Context) {
	result, err := h.seedUC.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"clients":  result.Clients,
		"services": result.Services,
	})
}
