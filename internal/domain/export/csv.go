// Package export serializes estimates for download.
package export

import (
	"strconv"
	"strings"
	"time"

	"estimate_app/internal/domain/entities"
)

const ContentTypeCSV = "text/csv;charset=utf-8;"

var csvHeader = []string{
	"Estimate Number",
	"Client Name",
	"Date",
	"Due Date",
	"Total",
	"Status",
}

// ExportToCSV writes a header row plus one row per estimate.
//
// Fields are joined with bare commas and never quoted, which keeps the output
// byte-compatible with exports produced by earlier versions. A comma or quote
// inside a client name therefore shifts the columns of that row.
func ExportToCSV(estimates []entities.Estimate) []byte {
	lines := make([]string, 0, len(estimates)+1)
	lines = append(lines, strings.Join(csvHeader, ","))
	for _, e := range estimates {
		lines = append(lines, strings.Join(csvRow(e), ","))
	}
	return []byte(strings.Join(lines, "\n"))
}

func csvRow(e entities.Estimate) []string {
	return []string{
		e.EstimateNumber,
		e.Client.Name,
		isoDate(e.Date),
		isoDate(e.DueDate),
		strconv.FormatFloat(e.Total, 'f', -1, 64),
		string(e.Status),
	}
}

func isoDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// ExportFileName is estimates-export-YYYY-MM-DD.csv for the UTC date of now.
func ExportFileName(now time.Time) string {
	return "estimates-export-" + now.UTC().Format("2006-01-02") + ".csv"
}
