// Package render produces the printable estimate document as HTML or PDF.
package render

import (
	"fmt"
	"strings"

	"estimate_app/internal/domain/entities"
)

const (
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypePDF  = "application/pdf"
)

// Document is everything the printable view shows.
type Document struct {
	Estimate entities.Estimate
	Company  entities.CompanyProfile
}

type Renderer interface {
	RenderHTML(doc Document) (string, error)
	RenderPDF(doc Document) ([]byte, error)
}

// Title is the heading and file stem used by both formats.
func (d Document) Title() string {
	return "Estimate " + d.Estimate.EstimateNumber
}

// PDFFileName is the attachment name for the PDF download.
func PDFFileName(e entities.Estimate) string {
	name := strings.TrimSpace(e.EstimateNumber)
	if name == "" {
		name = e.ID
	}
	return fmt.Sprintf("%s.pdf", name)
}

func formatQuantity(value float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", value), "0"), ".")
}

func formatPercent(value float64) string {
	return formatQuantity(value) + "%"
}
