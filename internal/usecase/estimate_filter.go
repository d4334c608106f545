package usecase

import (
	"sort"
	"strings"
	"time"

	"estimate_app/internal/domain/entities"
)

const statusAll = "all"

// EstimateFilter narrows the estimate list. Zero values disable a filter.
//
// The date range only applies when both From and To are set; both bounds
// are inclusive.
type EstimateFilter struct {
	Status   string
	ClientID string
	Query    string
	From     time.Time
	To       time.Time
}

// Apply runs every filter and sorts the result newest date first. The input
// slice is not modified.
func (f EstimateFilter) Apply(estimates []entities.Estimate) []entities.Estimate {
	out := FilterEstimatesByStatus(estimates, f.Status)
	out = FilterEstimatesByClient(out, f.ClientID)
	out = SearchEstimates(out, f.Query)
	out = FilterEstimatesByDateRange(out, f.From, f.To)
	return SortEstimatesByDate(out)
}

// FilterEstimatesByStatus matches case-insensitively; "all" and "" keep
// everything.
func FilterEstimatesByStatus(estimates []entities.Estimate, status string) []entities.Estimate {
	status = strings.TrimSpace(status)
	if status == "" || strings.EqualFold(status, statusAll) {
		return estimates
	}
	return filterEstimates(estimates, func(e entities.Estimate) bool {
		return strings.EqualFold(string(e.Status), status)
	})
}

func FilterEstimatesByClient(estimates []entities.Estimate, clientID string) []entities.Estimate {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return estimates
	}
	return filterEstimates(estimates, func(e entities.Estimate) bool {
		return e.Client.ID == clientID
	})
}

// SearchEstimates matches the estimate number or the client name,
// case-insensitively.
func SearchEstimates(estimates []entities.Estimate, query string) []entities.Estimate {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return estimates
	}
	return filterEstimates(estimates, func(e entities.Estimate) bool {
		return strings.Contains(strings.ToLower(e.EstimateNumber), q) ||
			strings.Contains(strings.ToLower(e.Client.Name), q)
	})
}

func FilterEstimatesByDateRange(estimates []entities.Estimate, from, to time.Time) []entities.Estimate {
	if from.IsZero() || to.IsZero() {
		return estimates
	}
	return filterEstimates(estimates, func(e entities.Estimate) bool {
		return !e.Date.Before(from) && !e.Date.After(to)
	})
}

// SortEstimatesByDate returns a copy ordered by Date, newest first. Ties keep
// their stored order.
func SortEstimatesByDate(estimates []entities.Estimate) []entities.Estimate {
	out := make([]entities.Estimate, len(estimates))
	copy(out, estimates)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func filterEstimates(estimates []entities.Estimate, keep func(entities.Estimate) bool) []entities.Estimate {
	out := make([]entities.Estimate, 0, len(estimates))
	for _, e := range estimates {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
