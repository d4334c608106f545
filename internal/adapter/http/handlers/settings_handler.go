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

//go:generate mockgen -destination=mocks/settings_usecase_mock.go -package=mocks estimate_app/internal/usecase ISettingsUseCase

var errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS", "Invalid settings payload", http.StatusBadRequest)

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

// GetSettings godoc
// @Summary  Company profile and default terms
// @Tags     settings
// @Produce  json
// @Success  200  {object}  response.SettingsResponse
// @Router   /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		respondError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSettings(settings))
}

// UpdateCompanyProfile godoc
// @Summary  Save company profile
// @Tags     settings
// @Accept   json
// @Produce  json
// @Param    body  body      request.CompanyProfileRequest  true  "company profile"
// @Success  200   {object}  response.SettingsResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /settings/company-profile [put]
func (h *SettingsHandler) UpdateCompanyProfile(c *gin.Context) {
	var payload request.CompanyProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidSettingsPayload)
		return
	}
	settings, err := h.usecase.UpdateCompanyProfile(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSettings(settings))
}

// UpdateDefaultTerms godoc
// @Summary  Save default terms and notes
// @Tags     settings
// @Accept   json
// @Produce  json
// @Param    body  body      request.DefaultTermsRequest  true  "default terms"
// @Success  200   {object}  response.SettingsResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /settings/default-terms [put]
func (h *SettingsHandler) UpdateDefaultTerms(c *gin.Context) {
	var payload request.DefaultTermsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidSettingsPayload)
		return
	}
	settings, err := h.usecase.UpdateDefaultTerms(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSettings(settings))
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCompanyProfile), errors.Is(err, usecase.ErrInvalidDefaultTerms):
		return pkg.NewDomainErrorSimple("INVALID_SETTINGS", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
