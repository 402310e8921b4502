// Package followers derives the total follower count from whichever table in
// the report looks like a platform/follower breakdown. The result is always
// recomputed from the document; it is never stored on the report, so it
// cannot drift from its source table.
package followers

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mediadesk/taqrir/pkg/models/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Aliases are the accepted header substrings for each column role. Matching
// is by containment against an explicit list rather than free-form substring
// guessing, so unrelated columns cannot match by accident.
type Aliases struct {
	Followers []string
	Platforms []string
}

func DefaultAliases() Aliases {
	return Aliases{
		Followers: []string{"متابعين", "المتابعين"},
		Platforms: []string{"المنصة", "منصة"},
	}
}

type PlatformCount struct {
	Platform  string  `json:"platform"`
	Followers float64 `json:"followers"`
}

type Result struct {
	Total          float64         `json:"total"`
	Platforms      []PlatformCount `json:"platforms"`
	FormattedTotal string          `json:"formattedTotal"`
}

type Calculator struct {
	aliases Aliases
	printer *message.Printer
}

func NewCalculator(aliases Aliases) *Calculator {
	return &Calculator{
		aliases: aliases,
		printer: message.NewPrinter(language.Arabic),
	}
}

// Calculate runs the default calculator against a document.
func Calculate(doc domain.ReportDocument) *Result {
	return NewCalculator(DefaultAliases()).Calculate(doc)
}

// Calculate scans the first visible table section for the first table whose
// headers match both a follower alias and a platform alias, then sums the
// follower column row by row. It returns nil when no section, table or
// column qualifies, or when the matched table has no rows: callers treat nil
// as "no auto-calculation available" and fall back to manual values.
func (c *Calculator) Calculate(doc domain.ReportDocument) *Result {
	var section *domain.Section
	for i := range doc.Sections {
		if doc.Sections[i].Type == domain.SectionTypeTable && doc.Sections[i].Visible {
			section = &doc.Sections[i]
			break
		}
	}
	if section == nil {
		return nil
	}

	for _, table := range section.Tables {
		followerCol, ok := matchColumn(table.Columns, c.aliases.Followers)
		if !ok {
			continue
		}
		platformCol, ok := matchColumn(table.Columns, c.aliases.Platforms)
		if !ok {
			continue
		}
		if len(table.Rows) == 0 {
			return nil
		}

		result := &Result{}
		for _, row := range table.Rows {
			platform := row.Cells[platformCol.Header]
			count := ParseLocalizedNumber(row.Cells[followerCol.Header])
			if platform == "" || count <= 0 {
				continue
			}
			result.Platforms = append(result.Platforms, PlatformCount{Platform: platform, Followers: count})
			result.Total += count
		}
		result.FormattedTotal = c.printer.Sprint(number.Decimal(result.Total))
		return result
	}
	return nil
}

// matchColumn returns the first column whose header contains any alias.
func matchColumn(columns []domain.TableColumn, aliases []string) (domain.TableColumn, bool) {
	for _, col := range columns {
		for _, alias := range aliases {
			if strings.Contains(col.Header, alias) {
				return col, true
			}
		}
	}
	return domain.TableColumn{}, false
}

var digitRun = regexp.MustCompile(`[0-9.]+`)

var separatorReplacer = strings.NewReplacer(",", "", "،", "", "٬", "", " ", "", "\u00a0", "", "\t", "")

// ParseLocalizedNumber extracts a number from display text: thousands
// separators (ASCII and Arabic) and whitespace are stripped, Arabic-Indic
// digits are transliterated, and the first contiguous digit run is parsed.
// Unparseable text yields 0.
func ParseLocalizedNumber(value string) float64 {
	if value == "" {
		return 0
	}
	cleaned := separatorReplacer.Replace(value)

	var b strings.Builder
	for _, r := range cleaned {
		if r >= '٠' && r <= '٩' {
			b.WriteRune('0' + (r - '٠'))
			continue
		}
		b.WriteRune(r)
	}

	run := digitRun.FindString(b.String())
	if run == "" {
		return 0
	}
	n, err := strconv.ParseFloat(run, 64)
	if err != nil {
		return 0
	}
	return n
}
