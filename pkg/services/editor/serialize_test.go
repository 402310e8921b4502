package editor

import (
	"encoding/json"
	"testing"

	"github.com/mediadesk/taqrir/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	f := setupFixture(t)
	f.editor.UpdateHeader("تقرير للتصدير", "نسخة")

	out, err := f.editor.ExportJSON()
	require.NoError(t, err)

	// export carries both top-level keys
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &raw))
	require.Contains(t, raw, "reportData")
	require.Contains(t, raw, "settings")

	other := setupFixture(t)
	require.True(t, other.editor.ImportJSON(out))

	assert.Equal(t, f.editor.Document(), other.editor.Document())
	assert.Equal(t, f.editor.Settings(), other.editor.Settings())
}

func TestImportJSON(t *testing.T) {
	t.Run("malformed text leaves state untouched", func(t *testing.T) {
		f := setupFixture(t)
		before := f.editor.Document()

		assert.False(t, f.editor.ImportJSON("not json at all"))
		assert.Equal(t, before, f.editor.Document())
	})

	t.Run("object without known keys is rejected", func(t *testing.T) {
		f := setupFixture(t)
		assert.False(t, f.editor.ImportJSON(`{"something":"else"}`))
	})

	t.Run("document only", func(t *testing.T) {
		f := setupFixture(t)
		doc := f.editor.Document()
		doc.Header.Title = "مستورد"
		blob, err := json.Marshal(map[string]any{"reportData": doc})
		require.NoError(t, err)

		settingsBefore := f.editor.Settings()
		require.True(t, f.editor.ImportJSON(string(blob)))
		assert.Equal(t, "مستورد", f.editor.Document().Header.Title)
		assert.Equal(t, settingsBefore, f.editor.Settings())
	})

	t.Run("settings only merges over defaults", func(t *testing.T) {
		f := setupFixture(t)
		require.True(t, f.editor.ImportJSON(`{"settings":{"primaryColor":"#ff0000"}}`))

		s := f.editor.Settings()
		assert.Equal(t, "#ff0000", s.PrimaryColor)
		// fields missing from the blob fall back to defaults
		assert.True(t, s.ShowKPIs)
		assert.Equal(t, domain.CardStyleModern, s.Theme.CardStyle)
	})

	t.Run("invalid section payload rejects the whole blob", func(t *testing.T) {
		f := setupFixture(t)
		before := f.editor.Document()

		blob := `{"reportData":{"header":{"title":"x","subtitle":""},"sections":[{"id":"s1","type":"banner","title":"","icon":"","visible":true,"data":[]}],"footer":{"line1":"","line2":""}}}`
		assert.False(t, f.editor.ImportJSON(blob))
		assert.Equal(t, before, f.editor.Document())
	})
}

func TestSaveState(t *testing.T) {
	f := setupFixture(t)
	f.editor.UpdateFooter("حفظ", "اختبار")
	require.NoError(t, f.editor.SaveState())

	require.NotEmpty(t, f.store.data[DocumentKey])
	require.NotEmpty(t, f.store.data[SettingsKey])

	var doc domain.ReportDocument
	require.NoError(t, json.Unmarshal(f.store.data[DocumentKey], &doc))
	assert.Equal(t, "حفظ", doc.Footer.Line1)
}

func TestResetToDefault(t *testing.T) {
	f := setupFixture(t)
	f.editor.UpdateHeader("سيتم مسحه", "")
	require.NoError(t, f.editor.SaveState())

	require.NoError(t, f.editor.ResetToDefault())

	assert.Equal(t, "التقرير الشهري - نوفمبر 2025", f.editor.Document().Header.Title)
	assert.Empty(t, f.store.data[DocumentKey])
	assert.Empty(t, f.store.data[SettingsKey])

	// the reseeded document structurally matches a fresh default
	fresh, err := New(newMemoryStore(), WithIDGenerator(sequentialIDs()))
	require.NoError(t, err)
	got := f.editor.Document()
	want := fresh.Document()
	require.Len(t, got.Sections, len(want.Sections))
	for i := range want.Sections {
		assert.Equal(t, want.Sections[i].Type, got.Sections[i].Type)
		assert.Equal(t, want.Sections[i].Title, got.Sections[i].Title)
	}
}
