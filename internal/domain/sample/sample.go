// Package sample builds demo records for seeding and tests.
package sample

import (
	"time"

	"estimate_app/internal/domain/calculator"
	"estimate_app/internal/domain/entities"
	"estimate_app/internal/domain/identifier"
)

func Client(now time.Time) entities.Client {
	return entities.Client{
		ID:        identifier.GenerateID(),
		Name:      "Sample Client",
		Email:     "client@example.com",
		Phone:     "9876543210",
		Address:   "123 Main Street, Mumbai, India",
		GSTNumber: "GST12345678",
		CreatedAt: now.UTC(),
	}
}

func EstimateItem() entities.EstimateItem {
	return entities.EstimateItem{
		ID:          identifier.GenerateID(),
		Description: "Web Design Services",
		Quantity:    1,
		Rate:        10000,
		Tax:         18,
		Amount:      10000,
	}
}

// Estimate is a pending estimate for client dated now and due a week later.
func Estimate(client entities.Client, now time.Time) entities.Estimate {
	items := []entities.EstimateItem{EstimateItem()}
	totals := calculator.Calculate(items, 0)
	now = now.UTC()
	return entities.Estimate{
		ID:             identifier.GenerateID(),
		EstimateNumber: identifier.FormatEstimateNumber(now, 1000),
		Client:         client,
		Items:          items,
		SubTotal:       totals.SubTotal,
		Tax:            totals.Tax,
		Discount:       totals.Discount,
		Total:          totals.Total,
		Status:         entities.EstimateStatusPending,
		Date:           now,
		DueDate:        now.Add(7 * 24 * time.Hour),
		Terms:          entities.DefaultTermsAndConditions,
		Notes:          entities.DefaultNotes,
		CreatedAt:      now,
	}
}
