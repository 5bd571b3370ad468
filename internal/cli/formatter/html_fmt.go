package formatter

import (
	"html/template"
	"strings"

	"github.com/alexanderramin/nuclides/internal/catalog"
)

var htmlTemplate = template.Must(template.New("nuclides").Funcs(template.FuncMap{
	"cls":    htmlClass,
	"weight": func(v float64) string { return FormatNumber(v, '.') },
}).Parse(`<table class="nuclides">
<thead>
<tr><th>Z</th><th>Sym</th><th>Name</th><th>Per</th><th>Grp</th><th>Blk</th><th>Category</th><th>Weight</th><th>State</th><th>Life</th><th>Origin</th><th>Era</th><th>Isotopes</th><th>Stable</th></tr>
</thead>
<tbody>
{{- range .}}
<tr class="cat-{{.Category}} state-{{cls .State}} life-{{cls .Life}} origin-{{cls .Origin}}"><td>{{.Z}}</td><td>{{.Symbol}}</td><td>{{.Name}}</td><td>{{.Period}}</td><td>{{.Group}}</td><td>{{.Block}}</td><td>{{.CategoryName}}</td><td>{{weight .Weight}}</td><td>{{.StateName}}</td><td>{{.Life}}</td><td>{{.OriginName}}</td><td>{{.Era}}</td><td>{{.IsotopeCount}}</td><td>{{.StableCount}}</td></tr>
{{- end}}
</tbody>
</table>
`))

// htmlClass turns a one-letter code into a CSS-safe class suffix.
func htmlClass(code string) string {
	if code == "?" || code == "" {
		return "u"
	}
	return code
}

// FormatHTML renders the element table as an HTML fragment.
func FormatHTML(rows []catalog.NuclideSummary) (string, error) {
	var b strings.Builder
	if err := htmlTemplate.Execute(&b, rows); err != nil {
		return "", err
	}
	return b.String(), nil
}
