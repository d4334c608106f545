package request

import (
	"errors"
	"strings"
	"time"

	"estimate_app/internal/usecase"
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidDateRange = errors.New("invalid date range")
)

const dateOnlyLayout = "2006-01-02"

type EstimateItemRequest struct {
	ID          string  `json:"id"`
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"gte=0"`
	Rate        float64 `json:"rate" binding:"gte=0"`
	Tax         float64 `json:"tax" binding:"gte=0,lte=100"`
}

// EstimateRequest is the estimate form payload for create and full update.
// Dates accept RFC 3339 timestamps or plain YYYY-MM-DD.
type EstimateRequest struct {
	ClientID string                `json:"client_id" binding:"required"`
	Items    []EstimateItemRequest `json:"items" binding:"required,min=1,dive"`
	Discount float64               `json:"discount" binding:"gte=0"`
	Date     string                `json:"date" binding:"required"`
	DueDate  string                `json:"due_date" binding:"required"`
	Terms    string                `json:"terms"`
	Notes    string                `json:"notes"`
	Logo     string                `json:"logo"`
}

func (r EstimateRequest) ToInput() (usecase.EstimateInput, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return usecase.EstimateInput{}, err
	}
	due, err := ParseDate(r.DueDate)
	if err != nil {
		return usecase.EstimateInput{}, err
	}
	return usecase.EstimateInput{
		ClientID: strings.TrimSpace(r.ClientID),
		Items:    toItemInputs(r.Items),
		Discount: r.Discount,
		Date:     date,
		DueDate:  due,
		Terms:    r.Terms,
		Notes:    r.Notes,
		Logo:     r.Logo,
	}, nil
}

// CalculateItemRequest is a row of the live totals panel. Half-filled rows
// are normal while typing, so nothing is required.
type CalculateItemRequest struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Tax         float64 `json:"tax"`
}

type CalculateRequest struct {
	Items    []CalculateItemRequest `json:"items"`
	Discount float64                `json:"discount"`
}

func (r CalculateRequest) ToItemInputs() []usecase.EstimateItemInput {
	out := make([]usecase.EstimateItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, usecase.EstimateItemInput{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Tax:         it.Tax,
		})
	}
	return out
}

type EstimateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// EstimateListQuery holds the list and export filters.
type EstimateListQuery struct {
	Status   string `form:"status"`
	ClientID string `form:"client_id"`
	Query    string `form:"q"`
	From     string `form:"from"`
	To       string `form:"to"`
}

// ToFilter parses the date bounds. A plain YYYY-MM-DD upper bound covers the
// whole day.
func (q EstimateListQuery) ToFilter() (usecase.EstimateFilter, error) {
	f := usecase.EstimateFilter{
		Status:   strings.TrimSpace(q.Status),
		ClientID: strings.TrimSpace(q.ClientID),
		Query:    strings.TrimSpace(q.Query),
	}
	if strings.TrimSpace(q.From) != "" {
		from, err := ParseDate(q.From)
		if err != nil {
			return usecase.EstimateFilter{}, err
		}
		f.From = from
	}
	if to := strings.TrimSpace(q.To); to != "" {
		end, err := ParseDate(to)
		if err != nil {
			return usecase.EstimateFilter{}, err
		}
		if len(to) == len(dateOnlyLayout) {
			end = end.Add(24*time.Hour - time.Nanosecond)
		}
		f.To = end
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return usecase.EstimateFilter{}, ErrInvalidDateRange
	}
	return f, nil
}

// ParseDate accepts RFC 3339 or YYYY-MM-DD (read as UTC midnight).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

func toItemInputs(items []EstimateItemRequest) []usecase.EstimateItemInput {
	out := make([]usecase.EstimateItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, usecase.EstimateItemInput{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Tax:         it.Tax,
		})
	}
	return out
}
