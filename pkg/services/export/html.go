// Package export renders a report document to word-processor HTML and to
// paginated PDF. Both renderers read the document only; neither touches
// report state.
package export

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/mediadesk/taqrir/pkg/models/domain"
)

// reportTemplate is a complete, self-contained RTL document: semantic tables
// for tabular sections, headings for section titles, no dependency on any
// live preview. Atomic units (KPI cards, table rows, note items, platform
// cards) carry break-inside:avoid so the PDF engine never splits one that
// fits a page.
const reportTemplate = `<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head>
<meta charset="utf-8">
<title>{{.Doc.Header.Title}}</title>
<style>
  @page { size: A4 landscape; margin: 12mm; }
  body {
    font-family: 'Tajawal', 'Cairo', 'Arial', sans-serif;
    direction: rtl;
    text-align: right;
    padding: 20px;
    line-height: 1.8;
    background: #ffffff;
  }
  h1, h2, h3, h4 { color: {{.Settings.PrimaryColor}}; }
  table {
    width: 100%;
    border-collapse: collapse;
    margin: 20px 0;
  }
  th, td {
    border: 1px solid #ddd;
    padding: 10px;
    text-align: right;
  }
  th {
    background-color: {{.Settings.PrimaryColor}};
    color: white;
  }
  {{if .Settings.EnableTableStriping}}tr:nth-child(even) { background-color: #f7f7f7; }{{end}}
  tr, .kpi-card, .platform-card, .note-item, .content-card, .evaluation-row {
    break-inside: avoid;
    page-break-inside: avoid;
  }
  .kpi-card {
    display: inline-block;
    padding: 15px;
    margin: 10px;
    background: #e0f2f1;
    border-radius: 8px;
    text-align: center;
  }
  .kpi-value { font-size: 1.5em; font-weight: bold; color: {{.Settings.AccentColor}}; }
  .platform-card {
    border: 1px solid #ddd;
    border-radius: 8px;
    padding: 12px;
    margin: 10px 0;
  }
  .content-card { margin: 10px 0; padding: 10px; border-right: 3px solid {{.Settings.AccentColor}}; }
  .content-type { font-size: 0.85em; color: #666; }
  footer { margin-top: 30px; color: #666; font-size: 0.9em; }
</style>
</head>
<body>
{{if .Settings.ShowHeader}}
<header>
  <h1>{{.Doc.Header.Title}}</h1>
  <p>{{.Doc.Header.Subtitle}}</p>
</header>
{{end}}
{{range .Doc.Sections}}{{if .Visible}}
{{if and (eq .Type "kpi") $.Settings.ShowKPIs}}
<section>
  <h2>{{.Title}}</h2>
  {{range .KPIs}}{{if .Visible}}
  <div class="kpi-card">
    <div class="kpi-value">{{.Value}}</div>
    <div>{{.Label}}</div>
  </div>
  {{end}}{{end}}
</section>
{{end}}
{{if eq .Type "table"}}
<section>
  <h2>{{.Title}}</h2>
  {{range .Tables}}{{if .Visible}}
  <h3>{{.Title}}</h3>
  <table>
    <thead>
      <tr>
        {{range .Columns}}{{if .Visible}}<th>{{.Header}}</th>{{end}}{{end}}
      </tr>
    </thead>
    <tbody>
      {{$table := .}}
      {{range .Rows}}
      {{$row := .}}
      <tr>
        {{range $table.Columns}}{{if .Visible}}<td>{{cell $row .Header}}</td>{{end}}{{end}}
      </tr>
      {{end}}
    </tbody>
  </table>
  {{end}}{{end}}
</section>
{{end}}
{{if and (eq .Type "platforms") $.Settings.ShowPlatformCards}}
<section>
  <h2>{{.Title}}</h2>
  {{range .Platforms}}{{if .Visible}}
  <div class="platform-card">
    <h3>{{.Title}}</h3>
    <table>
      <tbody>
        {{range .Items}}
        <tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>
        {{end}}
      </tbody>
    </table>
  </div>
  {{end}}{{end}}
</section>
{{end}}
{{if and (eq .Type "notes") $.Settings.ShowNotes}}
<section>
  <h2>{{.Title}}</h2>
  {{range .NoteGroups}}{{if .Visible}}
  <h3>{{.Title}}</h3>
  <ul>
    {{range .Items}}<li class="note-item">{{.}}</li>
    {{end}}
  </ul>
  {{end}}{{end}}
</section>
{{end}}
{{if and (eq .Type "content") $.Settings.ShowContent}}
<section>
  <h2>{{.Title}}</h2>
  {{range .Contents}}{{if .Visible}}
  <div class="content-card">
    {{if .Thumbnail}}<img src="{{.Thumbnail}}" alt="" style="max-width:240px">{{end}}
    <p>{{.Description}}</p>
    <p class="content-type">{{contentTypeLabel .ContentType}}</p>
  </div>
  {{end}}{{end}}
</section>
{{end}}
{{if eq .Type "evaluation"}}
<section>
  <h2>{{.Title}}</h2>
  <table>
    <thead>
      <tr><th>الاسم</th><th>الدور</th><th>المهام</th><th>نسبة الإنجاز</th><th>ملاحظات</th></tr>
    </thead>
    <tbody>
      {{range .Evaluations}}
      <tr class="evaluation-row">
        <td>{{.Name}}</td>
        <td>{{.Role}}</td>
        <td>{{.Tasks}}</td>
        <td>{{.CompletionRate}}%</td>
        <td>{{.Notes}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
</section>
{{end}}
{{end}}{{end}}
{{if .Settings.ShowFooter}}
<footer>
  <p>{{.Doc.Footer.Line1}}</p>
  <p>{{.Doc.Footer.Line2}}</p>
</footer>
{{end}}
</body>
</html>
`

var contentTypeLabels = map[domain.ContentType]string{
	domain.ContentTypeAlbum:       "ألبوم صور",
	domain.ContentTypeInfographic: "إنفوجرافيك",
	domain.ContentTypeDesign:      "تصميم",
	domain.ContentTypeVideo:       "فيديو",
	domain.ContentTypeAI:          "ذكاء اصطناعي",
	domain.ContentTypeVoiceover:   "تعليق صوتي",
}

type HTMLRenderer struct {
	tmpl *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl := template.New("report").Funcs(template.FuncMap{
		// cell resolves a row value by column header; sparse rows render "-".
		"cell": func(row domain.TableRow, header string) string {
			if v, ok := row.Cells[header]; ok && v != "" {
				return v
			}
			return "-"
		},
		"contentTypeLabel": func(t domain.ContentType) string {
			if label, ok := contentTypeLabels[t]; ok {
				return label
			}
			return string(t)
		},
	})
	tmpl, err := tmpl.Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

type templateContext struct {
	Doc      domain.ReportDocument
	Settings domain.ReportSettings
}

func (r *HTMLRenderer) Render(w io.Writer, doc domain.ReportDocument, settings domain.ReportSettings) error {
	if err := r.tmpl.Execute(w, templateContext{Doc: doc, Settings: settings}); err != nil {
		return fmt.Errorf("render report html: %w", err)
	}
	return nil
}

func (r *HTMLRenderer) RenderString(doc domain.ReportDocument, settings domain.ReportSettings) (string, error) {
	var b strings.Builder
	if err := r.Render(&b, doc, settings); err != nil {
		return "", err
	}
	return b.String(), nil
}
