package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[float64]string{
		0:            "₹0.00",
		5:            "₹5.00",
		999:          "₹999.00",
		1000:         "₹1,000.00",
		1180:         "₹1,180.00",
		100000:       "₹1,00,000.00",
		123456.789:   "₹1,23,456.79",
		12345678.5:   "₹1,23,45,678.50",
		-90:          "-₹90.00",
		-1234567:     "-₹12,34,567.00",
		0.005:        "₹0.01",
		-0.001:       "₹0.00",
		10000.3:      "₹10,000.30",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatCurrency(in), "amount %v", in)
	}
}

func TestGroupIndian(t *testing.T) {
	assert.Equal(t, "12", groupIndian("12"))
	assert.Equal(t, "1,234", groupIndian("1234"))
	assert.Equal(t, "12,345", groupIndian("12345"))
	assert.Equal(t, "1,23,456", groupIndian("123456"))
	assert.Equal(t, "12,34,567", groupIndian("1234567"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "5 Mar 2024", FormatDate(time.Date(2024, 3, 5, 18, 30, 0, 0, time.UTC)))
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, "25 Dec 2023", FormatISODate("2023-12-25T09:00:00Z"))
	assert.Equal(t, "garbage", FormatISODate("garbage"))
}
