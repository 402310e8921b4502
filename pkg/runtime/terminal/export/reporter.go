package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/mediadesk/taqrir/pkg/models/domain"
	"github.com/mediadesk/taqrir/pkg/services/followers"
)

type TableConfig struct {
	LabelWidth int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth: 36,
		ValueWidth: 28,
	}
}

// Reporter renders a report summary as plain text tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

type summaryView struct {
	Document  domain.ReportDocument
	Followers *followers.Result
}

func (c *Reporter) Handle(doc domain.ReportDocument, result *followers.Result) error {
	funcMap := template.FuncMap{
		"formatRow": func(label string, value any) string {
			return fmt.Sprintf("| %-*s | %-*v |",
				c.config.LabelWidth, label,
				c.config.ValueWidth, value)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", c.config.LabelWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2))
		},
		"visibility": func(visible bool) string {
			if visible {
				return "visible"
			}
			return "hidden"
		},
		"itemCount": func(s domain.Section) int {
			switch s.Type {
			case domain.SectionTypeKPI:
				return len(s.KPIs)
			case domain.SectionTypeTable:
				return len(s.Tables)
			case domain.SectionTypePlatforms:
				return len(s.Platforms)
			case domain.SectionTypeNotes:
				return len(s.NoteGroups)
			case domain.SectionTypeContent:
				return len(s.Contents)
			case domain.SectionTypeEvaluation:
				return len(s.Evaluations)
			}
			return 0
		},
	}

	tmpl := `
{{.Document.Header.Title}}
{{.Document.Header.Subtitle}}

{{separator}}
{{formatRow "Section" "Items (visibility)"}}
{{separator}}
{{range .Document.Sections}}{{formatRow .Title (printf "%d (%s)" (itemCount .) (visibility .Visible))}}
{{end}}{{separator}}
{{if .Followers}}
Total followers: {{.Followers.FormattedTotal}}

{{separator}}
{{formatRow "Platform" "Followers"}}
{{separator}}
{{range .Followers.Platforms}}{{formatRow .Platform (printf "%.0f" .Followers)}}
{{end}}{{separator}}
{{else}}
No follower table found in the report.
{{end}}
`

	t, err := template.New("summary").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, summaryView{Document: doc, Followers: result})
}
