package handlers

import (
	"errors"
	"net/http"

	request "taskloop/internal/adapter/http/dto/request"
	response "taskloop/internal/adapter/http/dto/response"
	"taskloop/internal/usecase"
	"taskloop/pkg"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// ListClients godoc
// @Summary  List clients
// @Tags     clients
// @Produce  json
// @Param    q  query  string  false  "Search name, company or email"
// @Success  200  {object}  response.ListResponse[response.ClientResponse]
// @Router   /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	var q request.ClientListQuery
	if !bindQuery(c, &q) {
		return
	}

	clients, err := h.usecase.List(c.Request.Context(), usecase.ClientFilter{Query: q.Query})
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(clients, response.FromClient))
}

// GetClient godoc
// @Summary  Get a client
// @Tags     clients
// @Produce  json
// @Param    id  path  string  true  "Client ID"
// @Success  200  {object}  response.ClientResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

// CreateClient godoc
// @Summary  Create a client
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    body  body  request.CreateClientRequest  true  "Client"
// @Success  201  {object}  response.ClientResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.CreateClientRequest
	if !bindJSON(c, &payload) {
		return
	}

	client, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(client))
}

// UpdateClient godoc
// @Summary  Patch a client
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    id    path  string                       true  "Client ID"
// @Param    body  body  request.UpdateClientRequest  true  "Fields to change"
// @Success  200  {object}  response.ClientResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Router   /clients/{id} [patch]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload request.UpdateClientRequest
	if !bindJSON(c, &payload) {
		return
	}

	client, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

// DeleteClient godoc
// @Summary      Delete a client
// @Description  Documents referencing the client are kept.
// @Tags         clients
// @Param        id  path  string  true  "Client ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidClient):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
