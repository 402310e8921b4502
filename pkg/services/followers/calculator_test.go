package followers

import (
	"testing"

	"github.com/mediadesk/taqrir/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func followerDoc(rows []domain.TableRow) domain.ReportDocument {
	return domain.ReportDocument{
		Sections: []domain.Section{
			{
				ID:      "s1",
				Type:    domain.SectionTypeTable,
				Visible: true,
				Tables: []domain.ReportTable{
					{
						ID:      "t1",
						Visible: true,
						Columns: []domain.TableColumn{
							{ID: "c1", Header: "المنصة", Visible: true},
							{ID: "c2", Header: "عدد المتابعين", Visible: true},
						},
						Rows: rows,
					},
				},
			},
		},
	}
}

func TestParseLocalizedNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain digits", "450120", 450120},
		{"ascii thousands separator", "450,120", 450120},
		{"arabic comma separator", "510،600", 510600},
		{"arabic thousands separator", "510٬600", 510600},
		{"arabic-indic digits", "٥١٠٦٠٠", 510600},
		{"arabic-indic with separator", "٥١٠٬٦٠٠", 510600},
		{"decimal value", "1.5", 1.5},
		{"digits with trailing text", "120 ألف متابع", 120},
		{"whitespace inside", "1 250 400", 1250400},
		{"empty string", "", 0},
		{"no digits", "لا يوجد", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLocalizedNumber(tt.input))
		})
	}
}

func TestCalculate(t *testing.T) {
	t.Run("sums mixed-format counts", func(t *testing.T) {
		doc := followerDoc([]domain.TableRow{
			{ID: "r1", Cells: map[string]string{"المنصة": "تلغرام", "عدد المتابعين": "450,120"}},
			{ID: "r2", Cells: map[string]string{"المنصة": "فيسبوك", "عدد المتابعين": "٥١٠٬٦٠٠"}},
		})

		result := Calculate(doc)
		require.NotNil(t, result)
		assert.Equal(t, float64(960720), result.Total)
		require.Len(t, result.Platforms, 2)
		assert.Equal(t, "تلغرام", result.Platforms[0].Platform)
		assert.Equal(t, float64(450120), result.Platforms[0].Followers)
		assert.NotEmpty(t, result.FormattedTotal)
	})

	t.Run("skips rows without platform or with non-positive counts", func(t *testing.T) {
		doc := followerDoc([]domain.TableRow{
			{ID: "r1", Cells: map[string]string{"المنصة": "تلغرام", "عدد المتابعين": "100"}},
			{ID: "r2", Cells: map[string]string{"المنصة": "", "عدد المتابعين": "999"}},
			{ID: "r3", Cells: map[string]string{"المنصة": "تويتر", "عدد المتابعين": "0"}},
			{ID: "r4", Cells: map[string]string{"المنصة": "يوتيوب", "عدد المتابعين": "غير متوفر"}},
		})

		result := Calculate(doc)
		require.NotNil(t, result)
		assert.Equal(t, float64(100), result.Total)
		assert.Len(t, result.Platforms, 1)
	})

	t.Run("nil when no table section exists", func(t *testing.T) {
		doc := domain.ReportDocument{Sections: []domain.Section{
			{ID: "s1", Type: domain.SectionTypeKPI, Visible: true},
		}}
		assert.Nil(t, Calculate(doc))
	})

	t.Run("hidden table sections are skipped", func(t *testing.T) {
		doc := followerDoc([]domain.TableRow{
			{ID: "r1", Cells: map[string]string{"المنصة": "تلغرام", "عدد المتابعين": "100"}},
		})
		doc.Sections[0].Visible = false
		assert.Nil(t, Calculate(doc))
	})

	t.Run("nil when headers do not match both roles", func(t *testing.T) {
		doc := followerDoc(nil)
		doc.Sections[0].Tables[0].Columns[0].Header = "الاسم"
		assert.Nil(t, Calculate(doc))
	})

	t.Run("nil when the matched table has no rows", func(t *testing.T) {
		assert.Nil(t, Calculate(followerDoc(nil)))
	})

	t.Run("first matching table wins", func(t *testing.T) {
		doc := followerDoc([]domain.TableRow{
			{ID: "r1", Cells: map[string]string{"المنصة": "تلغرام", "عدد المتابعين": "100"}},
		})
		doc.Sections[0].Tables = append([]domain.ReportTable{
			{
				ID:      "t0",
				Visible: true,
				Columns: []domain.TableColumn{
					{ID: "x1", Header: "التصميم", Visible: true},
					{ID: "x2", Header: "التفاعل", Visible: true},
				},
				Rows: []domain.TableRow{
					{ID: "x3", Cells: map[string]string{"التصميم": "أ", "التفاعل": "500"}},
				},
			},
		}, doc.Sections[0].Tables...)

		result := Calculate(doc)
		require.NotNil(t, result)
		assert.Equal(t, float64(100), result.Total)
	})

	t.Run("custom aliases", func(t *testing.T) {
		doc := followerDoc([]domain.TableRow{
			{ID: "r1", Cells: map[string]string{"المنصة": "تلغرام", "عدد المتابعين": "100"}},
		})
		calc := NewCalculator(Aliases{Followers: []string{"مشتركين"}, Platforms: []string{"منصة"}})
		assert.Nil(t, calc.Calculate(doc))
	})
}
