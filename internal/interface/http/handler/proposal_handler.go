package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/repository"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/valueobject"
	"github.com/ignatzorin/tecsolutions-backend/internal/interface/http/dto"
	"github.com/ignatzorin/tecsolutions-backend/internal/interface/http/response"
	"github.com/ignatzorin/tecsolutions-backend/internal/usecase/proposal"
	"github.com/ignatzorin/tecsolutions-backend/internal/ws"
)

// ProposalUseCases: набор сценариев, которые обслуживает ProposalHandler.
type ProposalUseCases struct {
	Create       *proposal.CreateProposalUseCase
	Update       *proposal.UpdateProposalUseCase
	UpdateStatus *proposal.UpdateProposalStatusUseCase
	Get          *proposal.GetProposalUseCase
	List         *proposal.ListProposalsUseCase
	Delete       *proposal.DeleteProposalUseCase
	Details      *proposal.GetProposalDetailsUseCase
	ExportPDF    *proposal.ExportProposalPDFUseCase
	PreviewPDF   *proposal.PreviewProposalPDFUseCase
}

type ProposalHandler struct {
	uc     ProposalUseCases
	events EventPublisher
}

func NewProposalHandler(uc ProposalUseCases, events EventPublisher) *ProposalHandler {
	return &ProposalHandler{
		uc:     uc,
		events: publisherOrNoop(events),
	}
}

// ListProposals обрабатывает GET /api/proposals?status=...&clientId=...&search=...
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	filter := repository.ProposalFilter{
		ClientID: c.Query("clientId"),
		Search:   c.Query("search"),
	}
	if raw := c.Query("status"); raw != "" {
		status, err := valueobject.NewProposalStatus(raw)
		if err != nil {
			response.Error(c, err)
			return
		}
		filter.Status = status
	}

	proposals, err := h.uc.List.Execute(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToProposalResponses(proposals))
}

func (h *ProposalHandler) GetProposal(c *gin.Context) {
	p, err := h.uc.Get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToProposalResponse(p))
}

func (h *ProposalHandler) GetProposalDetails(c *gin.Context) {
	d, err := h.uc.Details.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToProposalDetailsResponse(d))
}

func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	input, ok := bindProposal(c)
	if !ok {
		return
	}

	p, err := h.uc.Create.Execute(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ToProposalResponse(p)
	publish(h.events, ws.EventProposalSaved, resp)
	response.Created(c, resp)
}

func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	input, ok := bindProposal(c)
	if !ok {
		return
	}

	p, err := h.uc.Update.Execute(c.Request.Context(), proposal.UpdateProposalInput{
		ID:            c.Param("id"),
		ProposalInput: input,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ToProposalResponse(p)
	publish(h.events, ws.EventProposalSaved, resp)
	response.Success(c, resp)
}

// UpdateProposalStatus обрабатывает PUT /api/proposals/:id/status.
func (h *ProposalHandler) UpdateProposalStatus(c *gin.Context) {
	var req dto.UpdateProposalStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	status, err := req.ToStatus()
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.uc.UpdateStatus.Execute(c.Request.Context(), proposal.UpdateProposalStatusInput{
		ID:     c.Param("id"),
		Status: status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ToProposalResponse(p)
	publish(h.events, ws.EventProposalSaved, resp)
	response.Success(c, resp)
}

func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	id := c.Param("id")
	if err := h.uc.Delete.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	publish(h.events, ws.EventProposalDeleted, deletedPayload{ID: id})
	response.Success(c, gin.H{"message": "предложение удалено"})
}

// ExportPDF обрабатывает GET /api/proposals/:id/pdf.
func (h *ProposalHandler) ExportPDF(c *gin.Context) {
	doc, err := h.uc.ExportPDF.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, doc.FileName, doc.ContentType, doc.Content)
}

// PreviewPDF обрабатывает POST /api/proposals/preview/pdf: документ по несохранённой форме.
func (h *ProposalHandler) PreviewPDF(c *gin.Context) {
	input, ok := bindProposal(c)
	if !ok {
		return
	}

	doc, err := h.uc.PreviewPDF.Execute(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, doc.FileName, doc.ContentType, doc.Content)
}

func bindProposal(c *gin.Context) (proposal.ProposalInput, bool) {
	var req dto.ProposalRequest
	if !bindJSON(c, &req) {
		return proposal.ProposalInput{}, false
	}
	input, err := req.ToInput()
	if err != nil {
		response.Error(c, err)
		return proposal.ProposalInput{}, false
	}
	return input, true
}
