package response

import (
	"time"

	"estimate_app/internal/domain/entities"
	"estimate_app/internal/domain/format"
	"estimate_app/internal/usecase"
)

type EstimateItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Tax         float64 `json:"tax"`
	Amount      float64 `json:"amount"`
}

type EstimateResponse struct {
	ID             string                 `json:"id"`
	EstimateNumber string                 `json:"estimate_number"`
	Client         ClientResponse         `json:"client"`
	Items          []EstimateItemResponse `json:"items"`
	SubTotal       float64                `json:"sub_total"`
	Tax            float64                `json:"tax"`
	Discount       float64                `json:"discount"`
	Total          float64                `json:"total"`
	FormattedTotal string                 `json:"formatted_total"`
	Status         string                 `json:"status"`
	NextStatuses   []string               `json:"next_statuses"`
	CanConvert     bool                   `json:"can_convert"`
	Date           time.Time              `json:"date"`
	DueDate        time.Time              `json:"due_date"`
	Terms          string                 `json:"terms,omitempty"`
	Notes          string                 `json:"notes,omitempty"`
	Logo           string                 `json:"logo,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	next := e.Status.NextStatuses()
	nextNames := make([]string, 0, len(next))
	for _, s := range next {
		nextNames = append(nextNames, string(s))
	}
	return EstimateResponse{
		ID:             e.ID,
		EstimateNumber: e.EstimateNumber,
		Client:         FromClient(e.Client),
		Items:          fromItems(e.Items),
		SubTotal:       e.SubTotal,
		Tax:            e.Tax,
		Discount:       e.Discount,
		Total:          e.Total,
		FormattedTotal: format.FormatCurrency(e.Total),
		Status:         string(e.Status),
		NextStatuses:   nextNames,
		CanConvert:     e.Status.CanConvert(),
		Date:           e.Date,
		DueDate:        e.DueDate,
		Terms:          e.Terms,
		Notes:          e.Notes,
		Logo:           e.Logo,
		CreatedAt:      e.CreatedAt,
	}
}

func FromEstimates(list []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEstimate(e))
	}
	return out
}

type CalculationResponse struct {
	Items             []EstimateItemResponse `json:"items"`
	SubTotal          float64                `json:"sub_total"`
	Tax               float64                `json:"tax"`
	Discount          float64                `json:"discount"`
	Total             float64                `json:"total"`
	FormattedSubTotal string                 `json:"formatted_sub_total"`
	FormattedTax      string                 `json:"formatted_tax"`
	FormattedTotal    string                 `json:"formatted_total"`
}

func FromCalculation(c usecase.EstimateCalculation) CalculationResponse {
	return CalculationResponse{
		Items:             fromItems(c.Items),
		SubTotal:          c.Totals.SubTotal,
		Tax:               c.Totals.Tax,
		Discount:          c.Totals.Discount,
		Total:             c.Totals.Total,
		FormattedSubTotal: format.FormatCurrency(c.Totals.SubTotal),
		FormattedTax:      format.FormatCurrency(c.Totals.Tax),
		FormattedTotal:    format.FormatCurrency(c.Totals.Total),
	}
}

type EstimateStatsResponse struct {
	TotalCount          int     `json:"total_count"`
	TotalValue          float64 `json:"total_value"`
	FormattedTotalValue string  `json:"formatted_total_value"`
	PendingCount        int     `json:"pending_count"`
	ApprovedCount       int     `json:"approved_count"`
}

func FromEstimateStats(s usecase.EstimateStats) EstimateStatsResponse {
	return EstimateStatsResponse{
		TotalCount:          s.TotalCount,
		TotalValue:          s.TotalValue,
		FormattedTotalValue: format.FormatCurrency(s.TotalValue),
		PendingCount:        s.PendingCount,
		ApprovedCount:       s.ApprovedCount,
	}
}

func fromItems(items []entities.EstimateItem) []EstimateItemResponse {
	out := make([]EstimateItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, EstimateItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Tax:         it.Tax,
			Amount:      it.Amount,
		})
	}
	return out
}
