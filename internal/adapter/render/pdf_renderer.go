package render

import (
	"bytes"
	"fmt"
	"strings"

	"estimate_app/internal/domain/format"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer lays out an A4 estimate with go-pdf/fpdf. The core fonts have
// no rupee glyph, so amounts are written with an "Rs." prefix.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) RenderPDF(doc Document) ([]byte, error) {
	e := doc.Estimate
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetTitle(doc.Title(), true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// header
	pdf.SetFont("Helvetica", "B", 16)
	company := doc.Company.CompanyName
	if company == "" {
		company = "Estimate"
	}
	pdf.CellFormat(contentW/2, 8, tr(company), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 8, tr(e.EstimateNumber), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	left := []string{doc.Company.Address, joinNonEmpty(" | ", doc.Company.Email, doc.Company.Phone), doc.Company.Website}
	if doc.Company.TaxIdentifier != "" {
		left = append(left, "Tax ID: "+doc.Company.TaxIdentifier)
	}
	right := []string{
		"Status: " + string(e.Status),
		"Date: " + format.FormatDate(e.Date),
		"Due: " + format.FormatDate(e.DueDate),
	}
	for i := 0; i < max(len(left), len(right)); i++ {
		pdf.CellFormat(contentW/2, 5, tr(at(left, i)), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW/2, 5, tr(at(right, i)), "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(4)

	// client
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 5, "BILL TO", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	c := e.Client
	for _, line := range []string{c.Name, c.Address, joinNonEmpty(" | ", c.Email, c.Phone)} {
		if line != "" {
			pdf.CellFormat(contentW, 5, tr(line), "", 1, "L", false, 0, "")
		}
	}
	if c.GSTNumber != "" {
		pdf.CellFormat(contentW, 5, tr("GST: "+c.GSTNumber), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// items
	colDesc := contentW * 0.40
	colQty := contentW * 0.12
	colRate := contentW * 0.18
	colTax := contentW * 0.10
	colAmt := contentW * 0.20

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colDesc, 7, "Description", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colQty, 7, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colRate, 7, "Rate", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colTax, 7, "Tax", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colAmt, 7, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, it := range e.Items {
		desc := it.Description
		if len(desc) > 48 {
			desc = desc[:47] + "..."
		}
		pdf.CellFormat(colDesc, 6, tr(desc), "", 0, "L", false, 0, "")
		pdf.CellFormat(colQty, 6, formatQuantity(it.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(colRate, 6, pdfAmount(it.Rate), "", 0, "R", false, 0, "")
		pdf.CellFormat(colTax, 6, formatPercent(it.Tax), "", 0, "R", false, 0, "")
		pdf.CellFormat(colAmt, 6, pdfAmount(it.Amount), "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)

	// totals
	labelW := colDesc + colQty + colRate + colTax
	totalLine := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(labelW, 6, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(colAmt, 6, value, "", 1, "R", false, 0, "")
	}
	totalLine("Subtotal", pdfAmount(e.SubTotal), false)
	totalLine("Tax", pdfAmount(e.Tax), false)
	if e.Discount != 0 {
		totalLine("Discount", "-"+pdfAmount(e.Discount), false)
	}
	totalLine("Total", pdfAmount(e.Total), true)
	pdf.Ln(6)

	// footer
	if e.Terms != "" {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW, 5, "Terms & Conditions", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(contentW, 5, tr(e.Terms), "", "L", false)
		pdf.Ln(2)
	}
	if e.Notes != "" {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW, 5, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(contentW, 5, tr(e.Notes), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render estimate %s: %w", e.EstimateNumber, err)
	}
	return buf.Bytes(), nil
}

func pdfAmount(v float64) string {
	return strings.Replace(format.FormatCurrency(v), "₹", "Rs.", 1)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func at(list []string, i int) string {
	if i < len(list) {
		return list[i]
	}
	return ""
}
