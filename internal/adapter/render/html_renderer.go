package render

import (
	"bytes"
	"html/template"
	"strings"

	"estimate_app/internal/domain/format"
)

const estimateHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 32px;
      font-family: "Helvetica Neue", Arial, sans-serif;
      color: #111827;
      background: #ffffff;
    }
    .estimate { max-width: 820px; margin: 0 auto; }
    .header {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      border-bottom: 2px solid #111827;
      padding-bottom: 16px;
      margin-bottom: 24px;
    }
    .brand img { max-height: 56px; margin-bottom: 8px; }
    .meta { text-align: right; font-size: 14px; }
    .label {
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.04em;
      font-size: 11px;
    }
    .section { margin-bottom: 24px; font-size: 14px; }
    table { width: 100%; border-collapse: collapse; font-size: 14px; }
    th, td { padding: 10px; border-bottom: 1px solid #e5e7eb; text-align: left; }
    th { text-transform: uppercase; font-size: 11px; letter-spacing: 0.04em; color: #6b7280; }
    td.num, th.num { text-align: right; }
    .totals { margin-top: 12px; margin-left: auto; width: 280px; font-size: 14px; }
    .totals div { display: flex; justify-content: space-between; padding: 4px 0; }
    .totals .grand { font-weight: bold; font-size: 16px; border-top: 1px solid #111827; }
    .footer { border-top: 1px solid #e5e7eb; padding-top: 16px; font-size: 12px; color: #374151; }
    @media print { body { padding: 0; } }
  </style>
</head>
<body>
  <div class="estimate">
    <div class="header">
      <div class="brand">
        {{with logoURL .Estimate.Logo .Company.Logo}}<img src="{{.}}" alt="Company logo" />{{end}}
        {{with .Company}}
        <div><strong>{{.CompanyName}}</strong></div>
        <div>{{.Address}}</div>
        <div>{{.Email}}{{if .Phone}} | {{.Phone}}{{end}}</div>
        {{if .Website}}<div>{{.Website}}</div>{{end}}
        {{if .TaxIdentifier}}<div>Tax ID: {{.TaxIdentifier}}</div>{{end}}
        {{end}}
      </div>
      <div class="meta">
        <div class="label">Estimate</div>
        <div><strong>{{.Estimate.EstimateNumber}}</strong></div>
        <div>Status: {{.Estimate.Status}}</div>
        <div>Date: {{formatDate .Estimate.Date}}</div>
        <div>Due: {{formatDate .Estimate.DueDate}}</div>
      </div>
    </div>

    <div class="section">
      <div class="label">Bill To</div>
      {{with .Estimate.Client}}
      <div><strong>{{.Name}}</strong></div>
      <div>{{.Address}}</div>
      <div>{{.Email}}{{if .Phone}} | {{.Phone}}{{end}}</div>
      {{if .GSTNumber}}<div>GST: {{.GSTNumber}}</div>{{end}}
      {{end}}
    </div>

    <div class="section">
      <table>
        <thead>
          <tr>
            <th>Description</th>
            <th class="num">Quantity</th>
            <th class="num">Rate</th>
            <th class="num">Tax</th>
            <th class="num">Amount</th>
          </tr>
        </thead>
        <tbody>
          {{range .Estimate.Items}}
          <tr>
            <td>{{.Description}}</td>
            <td class="num">{{formatQuantity .Quantity}}</td>
            <td class="num">{{formatCurrency .Rate}}</td>
            <td class="num">{{formatPercent .Tax}}</td>
            <td class="num">{{formatCurrency .Amount}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>
      <div class="totals">
        <div><span>Subtotal</span><span>{{formatCurrency .Estimate.SubTotal}}</span></div>
        <div><span>Tax</span><span>{{formatCurrency .Estimate.Tax}}</span></div>
        {{if .Estimate.Discount}}<div><span>Discount</span><span>-{{formatCurrency .Estimate.Discount}}</span></div>{{end}}
        <div class="grand"><span>Total</span><span>{{formatCurrency .Estimate.Total}}</span></div>
      </div>
    </div>

    <div class="footer">
      {{if .Estimate.Terms}}<div class="section"><div class="label">Terms &amp; Conditions</div><div>{{.Estimate.Terms}}</div></div>{{end}}
      {{if .Estimate.Notes}}<div><div class="label">Notes</div><div>{{.Estimate.Notes}}</div></div>{{end}}
    </div>
  </div>
</body>
</html>
`

// HTMLRenderer renders the printable page. The PDF side is delegated to
// PDFRenderer so one value serves both routes.
type HTMLRenderer struct {
	tpl *template.Template
	pdf *PDFRenderer
}

var _ Renderer = (*HTMLRenderer)(nil)

func NewRenderer() *HTMLRenderer {
	funcs := template.FuncMap{
		"formatCurrency": format.FormatCurrency,
		"formatDate":     format.FormatDate,
		"formatQuantity": formatQuantity,
		"formatPercent":  formatPercent,
		"logoURL":        logoURL,
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("estimate").Funcs(funcs).Parse(estimateHTMLTemplate)),
		pdf: NewPDFRenderer(),
	}
}

func (r *HTMLRenderer) RenderHTML(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *HTMLRenderer) RenderPDF(doc Document) ([]byte, error) {
	return r.pdf.RenderPDF(doc)
}

// logoURL picks the estimate logo, then the company logo. Inline data URLs
// of images are trusted; html/template would otherwise blank them out.
func logoURL(candidates ...string) template.URL {
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		switch {
		case c == "":
			continue
		case strings.HasPrefix(c, "data:image/"),
			strings.HasPrefix(c, "https://"),
			strings.HasPrefix(c, "http://"):
			return template.URL(c)
		}
	}
	return ""
}
