package entities

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrItemDescriptionRequired = errors.New("item description is required")
	ErrItemQuantityNegative    = errors.New("item quantity must not be negative")
	ErrItemRateNegative        = errors.New("item rate must not be negative")
	ErrItemTaxOutOfRange       = errors.New("item tax must be between 0 and 100")
)

// EstimateItem is one billable row of an estimate.
//
// Amount caches Quantity*Rate. It is recomputed by the estimate use case
// before every save and never derived from Tax.
type EstimateItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Tax         float64 `json:"tax"`
	Amount      float64 `json:"amount"`
}

// NewEstimateItem validates a line item. Amount is left at zero; the
// calculator fills it in.
func NewEstimateItem(description string, quantity, rate, tax float64) (EstimateItem, error) {
	description = strings.TrimSpace(description)
	switch {
	case description == "":
		return EstimateItem{}, ErrItemDescriptionRequired
	case quantity < 0:
		return EstimateItem{}, ErrItemQuantityNegative
	case rate < 0:
		return EstimateItem{}, ErrItemRateNegative
	case tax < 0 || tax > 100:
		return EstimateItem{}, ErrItemTaxOutOfRange
	}
	return EstimateItem{
		Description: description,
		Quantity:    quantity,
		Rate:        rate,
		Tax:         tax,
	}, nil
}

// Estimate is a quotation issued to a client.
//
// Storage model (record store):
//   - key "estimates" holds a JSON array of Estimate, insertion ordered
//   - Client is an embedded snapshot, not a reference
//
// Monetary representation:
//   - SubTotal = sum(quantity*rate)
//   - Tax      = sum(quantity*rate*itemTax/100)
//   - Total    = SubTotal + Tax - Discount (Discount is an absolute amount)
type Estimate struct {
	ID             string         `json:"id"`
	EstimateNumber string         `json:"estimateNumber"`
	Client         Client         `json:"client"`
	Items          []EstimateItem `json:"items"`
	SubTotal       float64        `json:"subTotal"`
	Tax            float64        `json:"tax"`
	Discount       float64        `json:"discount"`
	Total          float64        `json:"total"`
	Status         EstimateStatus `json:"status"`
	Date           time.Time      `json:"date"`
	DueDate        time.Time      `json:"dueDate"`
	Terms          string         `json:"terms,omitempty"`
	Notes          string         `json:"notes,omitempty"`
	Logo           string         `json:"logo,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}
