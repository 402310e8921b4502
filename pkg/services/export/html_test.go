package export

import (
	"strings"
	"testing"

	"github.com/mediadesk/taqrir/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() domain.ReportSettings {
	return domain.ReportSettings{
		ShowHeader:          true,
		ShowFooter:          true,
		ShowKPIs:            true,
		ShowPlatformCards:   true,
		ShowNotes:           true,
		ShowContent:         true,
		EnableTableStriping: true,
		PrimaryColor:        "#00796b",
		AccentColor:         "#d4af37",
	}
}

func testDocument() domain.ReportDocument {
	return domain.ReportDocument{
		Header: domain.ReportHeader{Title: "تقرير الاختبار", Subtitle: "نوفمبر 2025"},
		Sections: []domain.Section{
			{
				ID: "s1", Type: domain.SectionTypeKPI, Title: "المؤشرات", Visible: true,
				KPIs: []domain.KPICard{
					{ID: "k1", Value: "1,000", Label: "متابعون", Visible: true},
					{ID: "k2", Value: "42", Label: "مخفي", Visible: false},
				},
			},
			{
				ID: "s2", Type: domain.SectionTypeTable, Title: "الجداول", Visible: true,
				Tables: []domain.ReportTable{
					{
						ID: "t1", Title: "جدول المتابعين", Visible: true,
						Columns: []domain.TableColumn{
							{ID: "c1", Header: "المنصة", Visible: true},
							{ID: "c2", Header: "العدد", Visible: true},
							{ID: "c3", Header: "مخفي", Visible: false},
						},
						Rows: []domain.TableRow{
							{ID: "r1", Cells: map[string]string{"المنصة": "تلغرام"}},
						},
					},
				},
			},
			{
				ID: "s3", Type: domain.SectionTypeContent, Title: "المحتوى", Visible: true,
				Contents: []domain.ContentCard{
					{ID: "cc1", ContentType: domain.ContentTypeVideo, Description: "فيديو ناجح", Visible: true},
				},
			},
			{
				ID: "s4", Type: domain.SectionTypeNotes, Title: "قسم مخفي", Visible: false,
				NoteGroups: []domain.NoteGroup{
					{ID: "n1", Title: "ملاحظات", Visible: true, Items: []string{"بند"}},
				},
			},
		},
		Footer: domain.ReportFooter{Line1: "السطر الأول", Line2: "السطر الثاني"},
	}
}

func render(t *testing.T, doc domain.ReportDocument, settings domain.ReportSettings) string {
	t.Helper()
	r, err := NewHTMLRenderer()
	require.NoError(t, err)
	out, err := r.RenderString(doc, settings)
	require.NoError(t, err)
	return out
}

func TestHTMLRenderer_Render(t *testing.T) {
	out := render(t, testDocument(), testSettings())

	t.Run("document shell", func(t *testing.T) {
		assert.Contains(t, out, `dir="rtl"`)
		assert.Contains(t, out, "A4 landscape")
		assert.Contains(t, out, "break-inside: avoid")
		assert.Contains(t, out, "تقرير الاختبار")
		assert.Contains(t, out, "السطر الأول")
	})

	t.Run("settings colors flow into the stylesheet", func(t *testing.T) {
		assert.Contains(t, out, "#00796b")
		assert.Contains(t, out, "#d4af37")
		assert.Contains(t, out, "nth-child(even)")
	})

	t.Run("hidden items are omitted", func(t *testing.T) {
		assert.Contains(t, out, "1,000")
		assert.NotContains(t, out, ">42<")
		assert.NotContains(t, out, "قسم مخفي")
		assert.NotContains(t, out, "<th>مخفي</th>")
	})

	t.Run("sparse cells render a dash", func(t *testing.T) {
		assert.Contains(t, out, "<td>تلغرام</td>")
		assert.Contains(t, out, "<td>-</td>")
	})

	t.Run("content type label is localized", func(t *testing.T) {
		assert.Contains(t, out, "فيديو ناجح")
		assert.Contains(t, out, ">فيديو</p>")
	})
}

func TestHTMLRenderer_SettingsToggles(t *testing.T) {
	doc := testDocument()

	t.Run("header and footer toggles", func(t *testing.T) {
		s := testSettings()
		s.ShowHeader = false
		s.ShowFooter = false
		out := render(t, doc, s)
		assert.NotContains(t, out, "<header>")
		assert.NotContains(t, out, "<footer>")
	})

	t.Run("kpi toggle hides the whole section", func(t *testing.T) {
		s := testSettings()
		s.ShowKPIs = false
		out := render(t, doc, s)
		assert.NotContains(t, out, "المؤشرات")
	})

	t.Run("striping toggle removes the rule", func(t *testing.T) {
		s := testSettings()
		s.EnableTableStriping = false
		out := render(t, doc, s)
		assert.NotContains(t, out, "nth-child(even)")
	})
}

func TestHTMLRenderer_EvaluationSection(t *testing.T) {
	doc := domain.ReportDocument{
		Sections: []domain.Section{
			{
				ID: "s1", Type: domain.SectionTypeEvaluation, Title: "تقييم الموظفين", Visible: true,
				Evaluations: []domain.EmployeeEvaluation{
					{ID: "e1", Name: "أحمد", Role: "مصمم", Tasks: "تصاميم الحملة", CompletionRate: 95, Notes: "متميز"},
				},
			},
		},
	}
	out := render(t, doc, testSettings())
	assert.Contains(t, out, "تقييم الموظفين")
	assert.Contains(t, out, "<td>أحمد</td>")
	assert.Contains(t, out, "95%")

	// one tr per evaluation plus the heading row
	assert.Equal(t, 2, strings.Count(out, "<tr"))
}
