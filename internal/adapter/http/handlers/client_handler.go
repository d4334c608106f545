package handlers

import (
	"errors"
	"net/http"

	request "estimate_app/internal/adapter/http/dto/request"
	response "estimate_app/internal/adapter/http/dto/response"
	"estimate_app/internal/usecase"
	"estimate_app/pkg"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mocks/client_usecase_mock.go -package=mocks estimate_app/internal/usecase IClientUseCase

var errInvalidClientPayload = pkg.NewDomainErrorSimple("INVALID_CLIENT_INPUT", "Invalid client payload", http.StatusBadRequest)

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
// @Success  200  {array}  response.ClientResponse
// @Router   /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClients(list))
}

// CreateClient godoc
// @Summary  Create client
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    body  body      request.ClientRequest  true  "client"
// @Success  201   {object}  response.ClientResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidClientPayload)
		return
	}
	client, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(client))
}

// GetClient godoc
// @Summary  Get client
// @Tags     clients
// @Produce  json
// @Param    id   path      string  true  "client id"
// @Success  200  {object}  response.ClientResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

// UpdateClient godoc
// @Summary  Update client
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    id    path      string                 true  "client id"
// @Param    body  body      request.ClientRequest  true  "client"
// @Success  200   {object}  response.ClientResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Router   /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidClientPayload)
		return
	}
	client, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

// DeleteClient godoc
// @Summary      Delete client
// @Description  Estimates keep their client snapshot.
// @Tags         clients
// @Param        id  path  string  true  "client id"
// @Success      204
// @Router       /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapClientError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidClientInput):
		return pkg.NewDomainErrorSimple("INVALID_CLIENT_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
