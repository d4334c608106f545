package handlers

import (
	"net/http"
	"strings"

	response "estimate_app/internal/adapter/http/dto/response"
	"estimate_app/internal/domain/entities"
	"estimate_app/internal/domain/identifier"
	"estimate_app/internal/usecase/interfaces"
	"estimate_app/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidRelationalPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// RelationalClientRequest is the client row as the browser sends it.
type RelationalClientRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Address string `json:"address"`
}

// RelationalHandler serves the table-backed CRUD surface. Estimates are
// accepted in their stored camelCase layout and inserted as given.
type RelationalHandler struct {
	repo interfaces.IRelationalRepository
	log  *zap.Logger
}

func NewRelationalHandler(repo interfaces.IRelationalRepository, log *zap.Logger) *RelationalHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &RelationalHandler{repo: repo, log: log.Named("relational")}
}

func (h *RelationalHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Server is up and running!")
}

func (h *RelationalHandler) ListClients(c *gin.Context) {
	list, err := h.repo.ListClients(c.Request.Context())
	if err != nil {
		h.internal(c, "list clients", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClients(list))
}

func (h *RelationalHandler) CreateClient(c *gin.Context) {
	var payload RelationalClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRelationalPayload)
		return
	}
	client := entities.Client{
		ID:      strings.TrimSpace(payload.ID),
		Name:    strings.TrimSpace(payload.Name),
		Email:   strings.TrimSpace(payload.Email),
		Phone:   strings.TrimSpace(payload.Phone),
		Address: strings.TrimSpace(payload.Address),
	}
	if client.ID == "" {
		client.ID = identifier.GenerateID()
	}
	if err := h.repo.CreateClient(c.Request.Context(), client, strings.TrimSpace(payload.Company)); err != nil {
		h.internal(c, "create client", err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Client added successfully"})
}

func (h *RelationalHandler) ListEstimates(c *gin.Context) {
	list, err := h.repo.ListEstimates(c.Request.Context())
	if err != nil {
		h.internal(c, "list estimates", err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(list))
}

func (h *RelationalHandler) CreateEstimate(c *gin.Context) {
	var estimate entities.Estimate
	if err := c.ShouldBindJSON(&estimate); err != nil {
		respondError(c, errInvalidRelationalPayload)
		return
	}
	if strings.TrimSpace(estimate.Client.ID) == "" {
		respondError(c, errInvalidRelationalPayload)
		return
	}
	if estimate.ID == "" {
		estimate.ID = identifier.GenerateID()
	}
	for i := range estimate.Items {
		if estimate.Items[i].ID == "" {
			estimate.Items[i].ID = identifier.GenerateID()
		}
	}
	if err := h.repo.CreateEstimate(c.Request.Context(), estimate); err != nil {
		h.internal(c, "create estimate", err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Estimate created successfully"})
}

func (h *RelationalHandler) internal(c *gin.Context, op string, err error) {
	h.log.Error(op+" failed", zap.Error(err))
	respondError(c, pkg.NewDomainError("INTERNAL_ERROR", err.Error(), err, http.StatusInternalServerError))
}
