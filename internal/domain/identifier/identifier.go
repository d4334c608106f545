// Package identifier generates record ids and human readable estimate numbers.
package identifier

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

const (
	estimateNumberPrefix = "EST"
	suffixMin            = 1000
	suffixSpan           = 9000
)

// GenerateID returns a random UUID string. Uniqueness is probabilistic.
func GenerateID() string {
	return uuid.NewString()
}

// Generator produces estimate numbers of the form EST-YYYYMMDD-NNNN.
//
// The four digit suffix is random and not checked against existing
// estimates, so two estimates created on the same day can share a number.
type Generator struct {
	Now  func() time.Time
	IntN func(n int) int
}

// NewGenerator uses the wall clock and the global random source.
func NewGenerator() *Generator {
	return &Generator{Now: time.Now, IntN: rand.IntN}
}

func (g *Generator) EstimateNumber() string {
	now := time.Now
	intN := rand.IntN
	if g != nil && g.Now != nil {
		now = g.Now
	}
	if g != nil && g.IntN != nil {
		intN = g.IntN
	}
	return FormatEstimateNumber(now(), suffixMin+intN(suffixSpan))
}

// GenerateEstimateNumber uses the current local date.
func GenerateEstimateNumber() string {
	return NewGenerator().EstimateNumber()
}

func FormatEstimateNumber(day time.Time, suffix int) string {
	return fmt.Sprintf("%s-%s-%04d", estimateNumberPrefix, day.Format("20060102"), suffix)
}
