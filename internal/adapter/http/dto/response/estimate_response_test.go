package response

import (
	"testing"
	"time"

	"estimate_app/internal/domain/calculator"
	"estimate_app/internal/domain/entities"
	"estimate_app/internal/usecase"
)

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	e := entities.Estimate{
		ID:             "est-1",
		EstimateNumber: "EST-20240305-1234",
		Client:         entities.Client{ID: "c-1", Name: "Acme Corp", GSTNumber: "GST1"},
		Items:          []entities.EstimateItem{{ID: "i-1", Description: "Design", Quantity: 1, Rate: 123456, Amount: 123456}},
		SubTotal:       123456,
		Total:          123456,
		Status:         entities.EstimateStatusApproved,
		Date:           now,
		DueDate:        now,
		CreatedAt:      now,
	}

	res := FromEstimate(e)
	if res.ID != "est-1" || res.EstimateNumber != "EST-20240305-1234" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Client.Name != "Acme Corp" || res.Client.GSTNumber != "GST1" {
		t.Fatalf("unexpected client: %+v", res.Client)
	}
	if res.FormattedTotal != "₹1,23,456.00" {
		t.Fatalf("unexpected formatted total %q", res.FormattedTotal)
	}
	if !res.CanConvert || len(res.NextStatuses) != 2 || res.NextStatuses[0] != "converted" {
		t.Fatalf("unexpected lifecycle fields: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].Amount != 123456 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if !res.CreatedAt.Equal(now) || !res.DueDate.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromEstimate_Terminal(t *testing.T) {
	res := FromEstimate(entities.Estimate{Status: entities.EstimateStatusCancelled})
	if res.CanConvert || len(res.NextStatuses) != 0 || res.NextStatuses == nil {
		t.Fatalf("unexpected lifecycle fields: %+v", res)
	}
}

func TestFromCalculationAndStats(t *testing.T) {
	c := FromCalculation(usecase.EstimateCalculation{
		Totals: calculator.Totals{SubTotal: 1000, Tax: 180, Total: 1180},
	})
	if c.FormattedTotal != "₹1,180.00" || c.FormattedTax != "₹180.00" || c.Items == nil {
		t.Fatalf("unexpected calculation: %+v", c)
	}

	s := FromEstimateStats(usecase.EstimateStats{TotalCount: 2, TotalValue: 100000, PendingCount: 1, ApprovedCount: 1})
	if s.FormattedTotalValue != "₹1,00,000.00" || s.TotalCount != 2 {
		t.Fatalf("unexpected stats: %+v", s)
	}
}

func TestFromSettings(t *testing.T) {
	res := FromSettings(entities.DefaultSettings())
	if res.DefaultTerms.Notes != entities.DefaultNotes || res.CompanyProfile.CompanyName != "" {
		t.Fatalf("unexpected settings: %+v", res)
	}
}
