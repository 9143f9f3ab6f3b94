package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/valueobject"
	"github.com/ignatzorin/tecsolutions-backend/internal/interface/http/dto"
	"github.com/ignatzorin/tecsolutions-backend/internal/interface/http/response"
	"github.com/ignatzorin/tecsolutions-backend/internal/usecase/catalog"
	"github.com/ignatzorin/tecsolutions-backend/internal/ws"
)

type ServiceHandler struct {
	listServicesUC  *catalog.ListServicesUseCase
	getServiceUC    *catalog.GetServiceUseCase
	createServiceUC *catalog.CreateServiceUseCase
	updateServiceUC *catalog.UpdateServiceUseCase
	deleteServiceUC *catalog.DeleteServiceUseCase
	events          EventPublisher
}

func NewServiceHandler(
	listServicesUC *catalog.ListServicesUseCase,
	getServiceUC *catalog.GetServiceUseCase,
	createServiceUC *catalog.CreateServiceUseCase,
	updateServiceUC *catalog.UpdateServiceUseCase,
	deleteServiceUC *catalog.DeleteServiceUseCase,
	events EventPublisher,
) *ServiceHandler {
	return &ServiceHandler{
		listServicesUC:  listServicesUC,
		getServiceUC:    getServiceUC,
		createServiceUC: createServiceUC,
		updateServiceUC: updateServiceUC,
		deleteServiceUC: deleteServiceUC,
		events:          publisherOrNoop(events),
	}
}

// ListServices обрабатывает GET /api/services?search=...&category=...
func (h *ServiceHandler) ListServices(c *gin.Context) {
	input := catalog.ListServicesInput{Search: c.Query("search")}
	if raw := c.Query("category"); raw != "" {
		category, err := valueobject.NewServiceCategory(raw)
		if err != nil {
			response.Error(c, err)
			return
		}
		input.Category = category
	}

	services, err := h.listServicesUC.Execute(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToServiceResponses(services))
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	s, err := h.getServiceUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToServiceResponse(s))
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req dto.ServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	fields, err := req.ToFields()
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.createServiceUC.Execute(c.Request.Context(), fields)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ToServiceResponse(s)
	publish(h.events, ws.EventServiceSaved, resp)
	response.Created(c, resp)
}

func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var req dto.ServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	fields, err := req.ToFields()
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.updateServiceUC.Execute(c.Request.Context(), catalog.UpdateServiceInput{
		ID:     c.Param("id"),
		Fields: fields,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ToServiceResponse(s)
	publish(h.events, ws.EventServiceSaved, resp)
	response.Success(c, resp)
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	id := c.Param("id")
	if err := h.deleteServiceUC.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	publish(h.events, ws.EventServiceDeleted, deletedPayload{ID: id})
	response.Success(c, gin.H{"message": "услуга удалена"})
}
