package quotation

import (
	"bytes"
	"html/template"
	"sort"
	"strconv"

	"github.com/abhiman/studiobackend/dto"
	"github.com/abhiman/studiobackend/pricing"
)

// The document mirrors the summary page the site shows before submitting.
var documentTemplate = template.Must(template.New("quotation").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><style>
body { font-family: Arial, sans-serif; }
table { width:100%; border-collapse:collapse; margin-top:10px; }
th, td { border:1px solid #ddd; padding:8px; text-align:left; }
th { background-color: #f2f2f2; }
</style></head><body>
<h2 style="color:#B22222">Summary of Your Quotation</h2>
<p><strong>Name:</strong> {{.Name}}<br>
<strong>Email:</strong> {{.Email}}<br>
<strong>Phone:</strong> {{.Phone}}<br>
<strong>Event Date:</strong> {{.EventDate}}<br>
<strong>Note:</strong> {{.Note}}</p>
<hr/>
{{range .Sections}}<h3>{{.Name}}</h3>
<table><tr style="background:#fce7f3"><th>Person</th><th>Service</th><th>Qty</th><th>Price</th></tr>
{{range .Rows}}<tr><td>{{.Person}}</td><td>{{.Service}}</td><td>{{.Qty}}</td><td>₹{{.Price}}</td></tr>
{{end}}</table>
{{end}}<p style="text-align:right;font-weight:bold;margin-top:10px;">Estimated Total: ₹{{.Total}}</p>
</body></html>
`))

type row struct {
	Person  string
	Service string
	Qty     string
	Price   int
}

type sectionView struct {
	Name string
	Rows []row
}

type documentView struct {
	Name      string
	Email     string
	Phone     string
	EventDate string
	Note      string
	Sections  []sectionView
	Total     int
}

// Renderer builds the quotation HTML document from a request, pricing each
// line through the service table.
type Renderer struct {
	prices pricing.Table
}

func NewRenderer(prices pricing.Table) *Renderer {
	return &Renderer{prices: prices}
}

// Render produces the HTML summary. Sections, persons, and services are
// emitted in sorted order so the same request always renders byte-identical
// output. Malformed selections degrade by omission; the document itself is
// always well formed.
func (r *Renderer) Render(req dto.QuotationRequest) (string, error) {
	doc := documentView{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		EventDate: req.EventDate,
		Note:      req.Note,
		Total:     int(req.Total),
	}

	for _, name := range sortedKeys(req.Selections) {
		block := req.Selections[name]
		if block.Empty() {
			continue
		}
		sec := sectionView{Name: name}
		switch block.Shape {
		case dto.ShapeFlat:
			for _, service := range sortedKeys(block.Flat) {
				sec.Rows = append(sec.Rows, r.line("-", service, block.Flat[service]))
			}
		case dto.ShapePerPerson:
			for _, person := range sortedKeys(block.PerPerson) {
				services := block.PerPerson[person]
				for _, service := range sortedKeys(services) {
					sec.Rows = append(sec.Rows, r.line(person, service, services[service]))
				}
			}
		}
		doc.Sections = append(doc.Sections, sec)
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) line(person, service string, qty float64) row {
	price := r.prices.Lookup(service)
	return row{
		Person:  person,
		Service: service,
		Qty:     strconv.FormatFloat(qty, 'f', -1, 64),
		Price:   int(qty * float64(price)),
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
