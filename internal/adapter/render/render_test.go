package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"estimate_app/internal/domain/entities"
	"estimate_app/internal/domain/sample"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() Document {
	now := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	est := sample.Estimate(sample.Client(now), now)
	est.Discount = 500
	est.Total -= 500
	return Document{
		Estimate: est,
		Company: entities.CompanyProfile{
			CompanyName:   "Acme <Studio>",
			Email:         "hi@acme.test",
			Phone:         "1",
			Address:       "Pune",
			TaxIdentifier: "TAX-9",
			Logo:          "data:image/png;base64,iVBORw0KGgo=",
		},
	}
}

func TestHTMLRenderer_RenderHTML(t *testing.T) {
	html, err := NewRenderer().RenderHTML(sampleDocument())
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Estimate EST-20240305-1000</title>")
	assert.Contains(t, html, "Acme &lt;Studio&gt;")
	assert.Contains(t, html, `src="data:image/png;base64,iVBORw0KGgo="`)
	assert.Contains(t, html, "Sample Client")
	assert.Contains(t, html, "GST: GST12345678")
	assert.Contains(t, html, "Web Design Services")
	assert.Contains(t, html, "₹10,000.00")
	assert.Contains(t, html, "18%")
	assert.Contains(t, html, "-₹500.00")
	assert.Contains(t, html, "₹11,300.00")
	assert.Contains(t, html, "5 Mar 2024")
	assert.Contains(t, html, entities.DefaultTermsAndConditions)
	assert.Contains(t, html, entities.DefaultNotes)
}

func TestHTMLRenderer_RejectsScriptLogo(t *testing.T) {
	doc := sampleDocument()
	doc.Estimate.Logo = "javascript:alert(1)"
	doc.Company.Logo = ""
	html, err := NewRenderer().RenderHTML(doc)
	require.NoError(t, err)
	assert.False(t, strings.Contains(html, "javascript:"))
	assert.False(t, strings.Contains(html, "<img"))
}

func TestPDFRenderer_RenderPDF(t *testing.T) {
	out, err := NewRenderer().RenderPDF(sampleDocument())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Greater(t, len(out), 500)
}

func TestPDFFileName(t *testing.T) {
	assert.Equal(t, "EST-20240305-1000.pdf", PDFFileName(entities.Estimate{EstimateNumber: "EST-20240305-1000"}))
	assert.Equal(t, "e-1.pdf", PDFFileName(entities.Estimate{ID: "e-1"}))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "2", formatQuantity(2))
	assert.Equal(t, "1.5", formatQuantity(1.5))
	assert.Equal(t, "12.5%", formatPercent(12.5))
}
