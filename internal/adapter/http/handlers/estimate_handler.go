package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	request "estimate_app/internal/adapter/http/dto/request"
	response "estimate_app/internal/adapter/http/dto/response"
	"estimate_app/internal/adapter/render"
	"estimate_app/internal/usecase"
	"estimate_app/pkg"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mocks/estimate_usecase_mock.go -package=mocks estimate_app/internal/usecase IEstimateUseCase

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	errInvalidEstimateQuery   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid filter parameters", http.StatusBadRequest)
)

// EstimateHandler serves the estimate list, form, detail and dashboard.
type EstimateHandler struct {
	usecase  usecase.IEstimateUseCase
	settings usecase.ISettingsUseCase
	renderer render.Renderer
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, settings usecase.ISettingsUseCase, renderer render.Renderer) *EstimateHandler {
	return &EstimateHandler{usecase: uc, settings: settings, renderer: renderer}
}

// ListEstimates godoc
// @Summary      List estimates
// @Description  Filters by status (all = no filter), client, free text and an inclusive date range. Newest date first.
// @Tags         estimates
// @Produce      json
// @Param        status     query  string  false  "pending | approved | converted | cancelled | all"
// @Param        client_id  query  string  false  "client id"
// @Param        q          query  string  false  "estimate number or client name"
// @Param        from       query  string  false  "YYYY-MM-DD or RFC 3339"
// @Param        to         query  string  false  "YYYY-MM-DD or RFC 3339"
// @Success      200  {array}   response.EstimateResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /estimates [get]
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	list, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(list))
}

// CreateEstimate godoc
// @Summary      Create estimate
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        body  body      request.EstimateRequest  true  "estimate form"
// @Success      201   {object}  response.EstimateResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	in, ok := bindEstimate(c)
	if !ok {
		return
	}
	estimate, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// GetEstimate godoc
// @Summary  Get estimate
// @Tags     estimates
// @Produce  json
// @Param    id   path      string  true  "estimate id"
// @Success  200  {object}  response.EstimateResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// UpdateEstimate godoc
// @Summary      Update estimate
// @Description  Re-saves the form. Id, number, status and creation time are kept.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "estimate id"
// @Param        body  body      request.EstimateRequest  true  "estimate form"
// @Success      200   {object}  response.EstimateResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /estimates/{id} [put]
func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	in, ok := bindEstimate(c)
	if !ok {
		return
	}
	estimate, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// UpdateEstimateStatus godoc
// @Summary  Set estimate status
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    id    path      string                         true  "estimate id"
// @Param    body  body      request.EstimateStatusRequest  true  "new status"
// @Success  200   {object}  response.EstimateResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Router   /estimates/{id}/status [patch]
func (h *EstimateHandler) UpdateEstimateStatus(c *gin.Context) {
	var payload request.EstimateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidEstimatePayload)
		return
	}
	estimate, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// ConvertEstimate godoc
// @Summary  Convert estimate to invoice
// @Tags     estimates
// @Produce  json
// @Param    id   path      string  true  "estimate id"
// @Success  200  {object}  response.EstimateResponse
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /estimates/{id}/convert [post]
func (h *EstimateHandler) ConvertEstimate(c *gin.Context) {
	estimate, err := h.usecase.ConvertToInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// DeleteEstimate godoc
// @Summary  Delete estimate
// @Tags     estimates
// @Param    id  path  string  true  "estimate id"
// @Success  204
// @Router   /estimates/{id} [delete]
func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// CalculateEstimate godoc
// @Summary  Live totals
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    body  body      request.CalculateRequest  true  "items and discount"
// @Success  200   {object}  response.CalculationResponse
// @Router   /estimates/calculate [post]
func (h *EstimateHandler) CalculateEstimate(c *gin.Context) {
	var payload request.CalculateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidEstimatePayload)
		return
	}
	res := h.usecase.Calculate(payload.ToItemInputs(), payload.Discount)
	c.JSON(http.StatusOK, response.FromCalculation(res))
}

// EstimateStats godoc
// @Summary  Dashboard figures
// @Tags     dashboard
// @Produce  json
// @Success  200  {object}  response.EstimateStatsResponse
// @Router   /estimates/stats [get]
func (h *EstimateHandler) EstimateStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateStats(stats))
}

// RecentEstimates godoc
// @Summary  Most recent estimates
// @Tags     dashboard
// @Produce  json
// @Param    limit  query  int  false  "defaults to 5"
// @Success  200  {array}  response.EstimateResponse
// @Router   /estimates/recent [get]
func (h *EstimateHandler) RecentEstimates(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(c, errInvalidEstimateQuery)
			return
		}
		limit = n
	}
	list, err := h.usecase.Recent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(list))
}

// ExportEstimates godoc
// @Summary  Export estimates as CSV
// @Tags     estimates
// @Produce  text/csv
// @Param    status     query  string  false  "status filter"
// @Param    client_id  query  string  false  "client id"
// @Param    q          query  string  false  "estimate number or client name"
// @Param    from       query  string  false  "YYYY-MM-DD or RFC 3339"
// @Param    to         query  string  false  "YYYY-MM-DD or RFC 3339"
// @Success  200  {file}  file
// @Router   /estimates/export [get]
func (h *EstimateHandler) ExportEstimates(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	file, err := h.usecase.Export(c.Request.Context(), filter)
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// PrintEstimate godoc
// @Summary  Printable estimate
// @Tags     estimates
// @Produce  html
// @Param    id   path  string  true  "estimate id"
// @Success  200  {string}  string
// @Failure  404  {object}  pkg.HTTPError
// @Router   /estimates/{id}/print [get]
func (h *EstimateHandler) PrintEstimate(c *gin.Context) {
	doc, ok := h.document(c)
	if !ok {
		return
	}
	html, err := h.renderer.RenderHTML(doc)
	if err != nil {
		respondError(c, pkg.NewDomainError("RENDER_FAILED", "Could not render estimate", err, http.StatusInternalServerError))
		return
	}
	c.Data(http.StatusOK, render.ContentTypeHTML, []byte(html))
}

// EstimatePDF godoc
// @Summary  Estimate as PDF
// @Tags     estimates
// @Produce  application/pdf
// @Param    id   path  string  true  "estimate id"
// @Success  200  {file}  file
// @Failure  404  {object}  pkg.HTTPError
// @Router   /estimates/{id}/pdf [get]
func (h *EstimateHandler) EstimatePDF(c *gin.Context) {
	doc, ok := h.document(c)
	if !ok {
		return
	}
	out, err := h.renderer.RenderPDF(doc)
	if err != nil {
		respondError(c, pkg.NewDomainError("RENDER_FAILED", "Could not render estimate", err, http.StatusInternalServerError))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, render.PDFFileName(doc.Estimate)))
	c.Data(http.StatusOK, render.ContentTypePDF, out)
}

func (h *EstimateHandler) document(c *gin.Context) (render.Document, bool) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return render.Document{}, false
	}
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		respondError(c, mapSettingsError(err))
		return render.Document{}, false
	}
	return render.Document{Estimate: estimate, Company: settings.CompanyProfile}, true
}

func bindEstimate(c *gin.Context) (usecase.EstimateInput, bool) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidEstimatePayload)
		return usecase.EstimateInput{}, false
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, errInvalidEstimatePayload)
		return usecase.EstimateInput{}, false
	}
	return in, true
}

func bindFilter(c *gin.Context) (usecase.EstimateFilter, bool) {
	var q request.EstimateListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, errInvalidEstimateQuery)
		return usecase.EstimateFilter{}, false
	}
	f, err := q.ToFilter()
	if err != nil {
		respondError(c, errInvalidEstimateQuery)
		return usecase.EstimateFilter{}, false
	}
	return f, true
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidEstimateStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateClientRequired),
		errors.Is(err, usecase.ErrEstimateItemsRequired),
		errors.Is(err, usecase.ErrEstimateDateRequired),
		errors.Is(err, usecase.ErrEstimateDueDateRequired),
		errors.Is(err, usecase.ErrInvalidEstimateInput):
		return pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Selected client not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotConvertible):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_CONVERTIBLE", "Converted or cancelled estimates cannot be converted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

