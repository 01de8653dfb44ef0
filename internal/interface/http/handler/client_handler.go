package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/proposal-desk/internal/interface/http/dto"
	"github.com/ignatzorin/proposal-desk/internal/interface/http/response"
	"github.com/ignatzorin/proposal-desk/internal/usecase/client"
)

type ClientHandler struct {
	listUC   *client.ListClientsUseCase
	getUC    *client.GetClientUseCase
	createUC *client.CreateClientUseCase
}

func NewClientHandler(listUC *client.ListClientsUseCase, getUC *client.GetClientUseCase, createUC *client.CreateClientUseCase) *ClientHandler {
	return &ClientHandler{listUC: listUC, getUC: getUC, createUC: createUC}
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.listUC.Execute(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToClientResponses(clients))
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	clientID, ok := parseUUIDParam(c, "id", "некорректный ID клиента")
	if !ok {
		return
	}

	found, err := h.getUC.Execute(c.Request.Context(), clientID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToClientResponse(*found))
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "имя и email клиента обязательны")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), client.CreateClientInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Company:  req.Company,
		Industry: req.Industry,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToClientResponse(*created))
}
