package http

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/bigappetite/backend/internal/domain"
)

// GP colour bands used by the report: green for healthy margins, amber for
// borderline, red for poor.
const (
	gpHighThreshold = 70.0
	gpLowThreshold  = 65.0
)

// gpColor returns the display colour for a GP percentage
func gpColor(gpPercent float64) string {
	switch {
	case gpPercent >= gpHighThreshold:
		return "#3CB371"
	case gpPercent >= gpLowThreshold:
		return "#FFB84D"
	default:
		return "#FF6B6B"
	}
}

// brandSection is one brand's slice of the report
type brandSection struct {
	Name      string
	Items     []domain.ComputedItem
	AverageGP float64
	HighCount int
	LowCount  int
}

// reportData drives the report template
type reportData struct {
	Brands     []brandSection
	TotalItems int
	AverageGP  float64
	HighCount  int
	LowCount   int
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"gpColor": gpColor,
	"joinNotes": func(notes []string) string {
		return strings.Join(notes, "; ")
	},
}).Parse(`<div class="report">
{{range .Brands}}
<section class="brand">
  <header><h2>{{.Name}}</h2><p>{{len .Items}} menu items</p></header>
  <table>
    <tr>
      <th>Menu Item</th><th>Category</th><th>Food Cost (£)</th>
      <th>Selling Price (£)</th><th>GP £</th><th>GP %</th><th>Notes</th>
    </tr>
    {{range .Items}}
    <tr>
      <td>{{.MenuItem}}</td>
      <td>{{.Category}}</td>
      <td class="money">£{{printf "%.2f" .FoodCost}}</td>
      <td class="money">£{{printf "%.2f" .SellingPrice}}</td>
      <td class="money">£{{printf "%.2f" .GPAmount}}</td>
      <td class="gp" style="color: {{gpColor .GPPercent}}">{{printf "%.1f" .GPPercent}}%</td>
      <td class="notes">{{joinNotes .Notes}}</td>
    </tr>
    {{end}}
  </table>
  <footer>
    <span>Average GP: {{printf "%.1f" .AverageGP}}%</span>
    <span>High Margin (&ge;70%): {{.HighCount}}</span>
    <span>Low Margin (&lt;65%): {{.LowCount}}</span>
  </footer>
</section>
{{end}}
<section class="summary">
  <h3>Overall Summary</h3>
  <span>{{.TotalItems}} items</span>
  <span>Average GP {{printf "%.1f" .AverageGP}}%</span>
  <span>{{.HighCount}} high margin</span>
  <span>{{.LowCount}} low margin</span>
</section>
</div>
`))

// RenderReport renders the grouped GP results as a per-brand HTML report
func RenderReport(result *domain.Result) ([]byte, error) {
	data := reportData{}
	var gpSum float64

	for _, brand := range result.Order {
		items := result.Groups[brand]
		section := brandSection{Name: brand, Items: items}

		var brandSum float64
		for _, item := range items {
			brandSum += item.GPPercent
			if item.GPPercent >= gpHighThreshold {
				section.HighCount++
			}
			if item.GPPercent < gpLowThreshold {
				section.LowCount++
			}
		}
		if len(items) > 0 {
			section.AverageGP = brandSum / float64(len(items))
		}

		data.Brands = append(data.Brands, section)
		data.TotalItems += len(items)
		data.HighCount += section.HighCount
		data.LowCount += section.LowCount
		gpSum += brandSum
	}

	if data.TotalItems > 0 {
		data.AverageGP = gpSum / float64(data.TotalItems)
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// uploadPage is the minimal upload form served at the root
var uploadPage = []byte(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Big Appetite | Food Cost Generator</title>
</head>
<body>
  <h1>Big Appetite</h1>
  <p>Food Cost Calculator &amp; Profit Analysis</p>
  <form action="/api/v1/foodcost/upload" enctype="multipart/form-data" method="post">
    <input name="files" type="file" multiple accept=".csv">
    <input type="submit" value="Upload &amp; Calculate">
  </form>
  <ul>
    <li><strong>Costings:</strong> ingredient costs and pack sizes</li>
    <li><strong>Recipes:</strong> menu items with ingredient quantities</li>
    <li><strong>Menu Prices:</strong> selling prices for menu items</li>
  </ul>
</body>
</html>
`)
