package entities

import "strings"

// EstimateStatus represents the lifecycle of an estimate.
//
// Lifecycle as exposed to users:
//   - pending  -> approved | cancelled
//   - approved -> converted | cancelled
//   - converted and cancelled are terminal for the convert action
//
// Nothing below the use case layer enforces these rules; the store accepts
// any valid status on save.
type EstimateStatus string

const (
	EstimateStatusPending   EstimateStatus = "pending"
	EstimateStatusApproved  EstimateStatus = "approved"
	EstimateStatusConverted EstimateStatus = "converted"
	EstimateStatusCancelled EstimateStatus = "cancelled"
)

var estimateTransitions = map[EstimateStatus][]EstimateStatus{
	EstimateStatusPending:   {EstimateStatusApproved, EstimateStatusCancelled},
	EstimateStatusApproved:  {EstimateStatusConverted, EstimateStatusCancelled},
	EstimateStatusConverted: nil,
	EstimateStatusCancelled: nil,
}

// EstimateStatuses lists every valid status in display order.
func EstimateStatuses() []EstimateStatus {
	return []EstimateStatus{
		EstimateStatusPending,
		EstimateStatusApproved,
		EstimateStatusConverted,
		EstimateStatusCancelled,
	}
}

// ParseEstimateStatus accepts any casing and surrounding whitespace.
func ParseEstimateStatus(s string) (EstimateStatus, bool) {
	st := EstimateStatus(strings.ToLower(strings.TrimSpace(s)))
	return st, st.IsValid()
}

func (s EstimateStatus) IsValid() bool {
	_, ok := estimateTransitions[s]
	return ok
}

// IsTerminal reports whether no further transition is offered.
func (s EstimateStatus) IsTerminal() bool {
	return s == EstimateStatusConverted || s == EstimateStatusCancelled
}

// NextStatuses returns the transitions offered from s.
func (s EstimateStatus) NextStatuses() []EstimateStatus {
	next := estimateTransitions[s]
	out := make([]EstimateStatus, len(next))
	copy(out, next)
	return out
}

func (s EstimateStatus) CanTransitionTo(target EstimateStatus) bool {
	for _, n := range estimateTransitions[s] {
		if n == target {
			return true
		}
	}
	return false
}

// CanConvert mirrors the "Convert to Invoice" action, which is only disabled
// once the estimate is converted or cancelled.
func (s EstimateStatus) CanConvert() bool {
	return s.IsValid() && !s.IsTerminal()
}
