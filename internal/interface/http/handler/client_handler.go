package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/tecsolutions-backend/internal/interface/http/dto"
	"github.com/ignatzorin/tecsolutions-backend/internal/interface/http/response"
	"github.com/ignatzorin/tecsolutions-backend/internal/usecase/client"
	"github.com/ignatzorin/tecsolutions-backend/internal/ws"
)

type ClientHandler struct {
	listClientsUC  *client.ListClientsUseCase
	getClientUC    *client.GetClientUseCase
	createClientUC *client.CreateClientUseCase
	updateClientUC *client.UpdateClientUseCase
	deleteClientUC *client.DeleteClientUseCase
	events         EventPublisher
}

func NewClientHandler(
	listClientsUC *client.ListClientsUseCase,
	getClientUC *client.GetClientUseCase,
	createClientUC *client.CreateClientUseCase,
	updateClientUC *client.UpdateClientUseCase,
	deleteClientUC *client.DeleteClientUseCase,
	events EventPublisher,
) *ClientHandler {
	return &ClientHandler{
		listClientsUC:  listClientsUC,
		getClientUC:    getClientUC,
		createClientUC: createClientUC,
		updateClientUC: updateClientUC,
		deleteClientUC: deleteClientUC,
		events:         publisherOrNoop(events),
	}
}

// ListClients обрабатывает GET /api/clients?search=...
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.listClientsUC.Execute(c.Request.Context(), client.ListClientsInput{
		Search: c.Query("search"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToClientResponses(clients))
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	cl, err := h.getClientUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToClientResponse(cl))
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req dto.ClientRequest
	if !bindJSON(c, &req) {
		return
	}

	cl, err := h.createClientUC.Execute(c.Request.Context(), req.ToFields())
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ToClientResponse(cl)
	publish(h.events, ws.EventClientSaved, resp)
	response.Created(c, resp)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var req dto.ClientRequest
	if !bindJSON(c, &req) {
		return
	}

	cl, err := h.updateClientUC.Execute(c.Request.Context(), client.UpdateClientInput{
		ID:     c.Param("id"),
		Fields: req.ToFields(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ToClientResponse(cl)
	publish(h.events, ws.EventClientSaved, resp)
	response.Success(c, resp)
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id := c.Param("id")
	if err := h.deleteClientUC.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	publish(h.events, ws.EventClientDeleted, deletedPayload{ID: id})
	response.Success(c, gin.H{"message": "клиент удалён"})
}
