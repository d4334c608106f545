package request

import (
	"errors"
	"testing"
	"time"
)

func TestEstimateRequest_ToInput(t *testing.T) {
	r := EstimateRequest{
		ClientID: " c-1 ",
		Items:    []EstimateItemRequest{{Description: "Design", Quantity: 2, Rate: 500, Tax: 18}},
		Discount: 10,
		Date:     "2024-03-05",
		DueDate:  "2024-03-12T10:00:00+05:30",
	}
	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.ClientID != "c-1" {
		t.Fatalf("expected trimmed client id, got %q", in.ClientID)
	}
	if !in.Date.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", in.Date)
	}
	if !in.DueDate.Equal(time.Date(2024, 3, 12, 4, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected due date %v", in.DueDate)
	}
	if len(in.Items) != 1 || in.Items[0].Rate != 500 {
		t.Fatalf("unexpected items %+v", in.Items)
	}

	r.Date = "05/03/2024"
	if _, err := r.ToInput(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestEstimateListQuery_ToFilter(t *testing.T) {
	f, err := EstimateListQuery{Status: " pending ", From: "2024-03-01", To: "2024-03-05"}.ToFilter()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Status != "pending" {
		t.Fatalf("unexpected status %q", f.Status)
	}
	wantTo := time.Date(2024, 3, 5, 23, 59, 59, 999999999, time.UTC)
	if !f.To.Equal(wantTo) {
		t.Fatalf("expected end of day, got %v", f.To)
	}

	if _, err := (EstimateListQuery{From: "2024-03-05", To: "2024-03-01"}).ToFilter(); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
	if _, err := (EstimateListQuery{From: "yesterday"}).ToFilter(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}

	empty, err := EstimateListQuery{}.ToFilter()
	if err != nil || !empty.From.IsZero() || !empty.To.IsZero() {
		t.Fatalf("expected empty filter, got %+v err=%v", empty, err)
	}
}

func TestCalculateRequest_ToItemInputs(t *testing.T) {
	r := CalculateRequest{Items: []CalculateItemRequest{{Quantity: 1, Rate: 10}, {Description: "x"}}}
	got := r.ToItemInputs()
	if len(got) != 2 || got[0].Rate != 10 || got[1].Description != "x" {
		t.Fatalf("unexpected items %+v", got)
	}
}
