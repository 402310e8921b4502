// Package editor owns the live report document and settings. Every mutation
// goes through an Editor method, applies atomically, and reports an Outcome
// instead of an error when a precondition is not met: the calling UI is
// expected to have disabled the control, so an ignored call is not a fault.
package editor

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/mediadesk/taqrir/pkg/models/domain"
)

// Outcome classifies the result of a mutation.
type Outcome int

const (
	Applied Outcome = iota
	NotFound
	LimitReached
	WrongSectionType
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case NotFound:
		return "not_found"
	case LimitReached:
		return "limit_reached"
	case WrongSectionType:
		return "wrong_section_type"
	}
	return "unknown"
}

// Well-known keys for the two persisted state blobs.
const (
	DocumentKey = "monthly-report-data"
	SettingsKey = "monthly-report-settings"
)

const (
	minKPICards     = 3
	maxKPICards     = 8
	maxContentCards = 8
)

// StateStore is the local persistence port. Get returns nil when the key is
// absent.
type StateStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

type Editor struct {
	mu       sync.Mutex
	doc      domain.ReportDocument
	settings domain.ReportSettings
	store    StateStore
	genID    func() string
}

type Option func(*Editor)

// WithIDGenerator overrides the uuid-based id source. Tests use this for
// deterministic identities.
func WithIDGenerator(gen func() string) Option {
	return func(e *Editor) { e.genID = gen }
}

// New builds an editor seeded from the state store when it holds valid
// blobs, and from the built-in default document otherwise.
func New(store StateStore, opts ...Option) (*Editor, error) {
	if store == nil {
		return nil, fmt.Errorf("state store is nil")
	}
	e := &Editor{store: store, genID: uuid.NewString}
	for _, opt := range opts {
		opt(e)
	}

	e.doc = defaultDocument(e.genID)
	e.settings = defaultSettings()

	if raw, err := store.Get(DocumentKey); err == nil && len(raw) > 0 {
		var doc domain.ReportDocument
		if err := json.Unmarshal(raw, &doc); err == nil {
			e.doc = doc
		}
	}
	if raw, err := store.Get(SettingsKey); err == nil && len(raw) > 0 {
		if merged, err := domain.MergeSettings(defaultSettings(), raw); err == nil {
			e.settings = merged
		}
	}
	return e, nil
}

// Document returns a deep copy of the current report.
func (e *Editor) Document() domain.ReportDocument {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc.Clone()
}

// Settings returns a deep copy of the current settings.
func (e *Editor) Settings() domain.ReportSettings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings.Clone()
}

func (e *Editor) UpdateHeader(title, subtitle string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.doc.Header = domain.ReportHeader{Title: title, Subtitle: subtitle}
}

func (e *Editor) UpdateFooter(line1, line2 string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.doc.Footer = domain.ReportFooter{Line1: line1, Line2: line2}
}

func (e *Editor) UpdateSectionTitle(sectionID, title string) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.doc.Section(sectionID)
	if s == nil {
		return NotFound
	}
	s.Title = title
	return Applied
}

func (e *Editor) ToggleSectionVisibility(sectionID string) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.doc.Section(sectionID)
	if s == nil {
		return NotFound
	}
	s.Visible = !s.Visible
	return Applied
}

// AddSection appends an empty section of the given type and returns its id.
func (e *Editor) AddSection(typ domain.SectionType) (string, Outcome) {
	if !typ.Valid() {
		return "", WrongSectionType
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	title := "قسم جديد"
	if typ == domain.SectionTypeContent {
		title = "أفضل محتوى"
	}
	s := domain.Section{
		ID:      e.genID(),
		Type:    typ,
		Title:   title,
		Icon:    sectionIcon(typ),
		Visible: true,
	}
	e.doc.Sections = append(e.doc.Sections, s)
	return s.ID, Applied
}

func sectionIcon(typ domain.SectionType) string {
	switch typ {
	case domain.SectionTypeKPI:
		return "bar-chart"
	case domain.SectionTypeTable:
		return "table"
	case domain.SectionTypePlatforms:
		return "layout-grid"
	case domain.SectionTypeContent:
		return "sparkles"
	default:
		return "clipboard-list"
	}
}

func (e *Editor) RemoveSection(sectionID string) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.doc.Sections {
		if e.doc.Sections[i].ID == sectionID {
			e.doc.Sections = append(e.doc.Sections[:i], e.doc.Sections[i+1:]...)
			return Applied
		}
	}
	return NotFound
}

// UpdateSectionsOrder replaces the whole section sequence. The caller owns
// supplying a permutation; the list is not validated against current ids.
func (e *Editor) UpdateSectionsOrder(sections []domain.Section) {
	e.mu.Lock()
	defer e.mu.Unlock()
	replaced := make([]domain.Section, len(sections))
	for i, s := range sections {
		replaced[i] = s.Clone()
	}
	e.doc.Sections = replaced
}

// section resolves a section by id and checks its type.
func (e *Editor) section(sectionID string, typ domain.SectionType) (*domain.Section, Outcome) {
	s := e.doc.Section(sectionID)
	if s == nil {
		return nil, NotFound
	}
	if s.Type != typ {
		return nil, WrongSectionType
	}
	return s, Applied
}

// KPIPatch carries partial updates; nil fields keep the current value.
type KPIPatch struct {
	Icon    *string `json:"icon"`
	Value   *string `json:"value"`
	Label   *string `json:"label"`
	Visible *bool   `json:"visible"`
}

func (e *Editor) UpdateKPI(sectionID, kpiID string, patch KPIPatch) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, out := e.section(sectionID, domain.SectionTypeKPI)
	if out != Applied {
		return out
	}
	for i := range s.KPIs {
		if s.KPIs[i].ID != kpiID {
			continue
		}
		k := &s.KPIs[i]
		if patch.Icon != nil {
			k.Icon = *patch.Icon
		}
		if patch.Value != nil {
			k.Value = *patch.Value
		}
		if patch.Label != nil {
			k.Label = *patch.Label
		}
		if patch.Visible != nil {
			k.Visible = *patch.Visible
		}
		return Applied
	}
	return NotFound
}

// AddKPI is a no-op once the section holds eight cards.
func (e *Editor) AddKPI(sectionID string) (string, Outcome) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, out := e.section(sectionID, domain.SectionTypeKPI)
	if out != Applied {
		return "", out
	}
	if len(s.KPIs) >= maxKPICards {
		return "", LimitReached
	}
	card := domain.KPICard{
		ID:      e.genID(),
		Icon:    "trending-up",
		Value:   "0",
		Label:   "مؤشر جديد",
		Visible: true,
	}
	s.KPIs = append(s.KPIs, card)
	return card.ID, Applied
}

// RemoveKPI is a no-op at three cards.
func (e *Editor) RemoveKPI(sectionID, kpiID string) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, out := e.section(sectionID, domain.SectionTypeKPI)
	if out != Applied {
		return out
	}
	if len(s.KPIs) <= minKPICards {
		return LimitReached
	}
	for i := range s.KPIs {
		if s.KPIs[i].ID == kpiID {
			s.KPIs = append(s.KPIs[:i], s.KPIs[i+1:]...)
			return Applied
		}
	}
	return NotFound
}

type TablePatch struct {
	Title   *string `json:"title"`
	Visible *bool   `json:"visible"`
}

func (e *Editor) table(sectionID, tableID string) (*domain.ReportTable, Outcome) {
	s, out := e.section(sectionID, domain.SectionTypeTable)
	if out != Applied {
		return nil, out
	}
	for i := range s.Tables {
		if s.Tables[i].ID == tableID {
			return &s.Tables[i], Applied
		}
	}
	return nil, NotFound
}

func (e *Editor) UpdateTable(sectionID, tableID string, patch TablePatch) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	t, out := e.table(sectionID, tableID)
	if out != Applied {
		return out
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Visible != nil {
		t.Visible = *patch.Visible
	}
	return Applied
}

func (e *Editor) AddTable(sectionID, title string) (string, Outcome) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, out := e.section(sectionID, domain.SectionTypeTable)
	if out != Applied {
		return "", out
	}
	t := domain.ReportTable{
		ID:      e.genID(),
		Title:   title,
		Visible: true,
		Columns: []domain.TableColumn{
			{ID: e.genID(), Header: "العمود 1", Visible: true},
			{ID: e.genID(), Header: "العمود 2", Visible: true},
		},
		Rows: []domain.TableRow{
			{ID: e.genID(), Cells: map[string]string{"العمود 1": "", "العمود 2": ""}},
		},
	}
	s.Tables = append(s.Tables, t)
	return t.ID, Applied
}

// UpdateTableCell sets one cell, creating the header key when the row's cell
// map does not hold it yet.
func (e *Editor) UpdateTableCell(sectionID, tableID, rowID, columnHeader, value string) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	t, out := e.table(sectionID, tableID)
	if out != Applied {
		return out
	}
	for i := range t.Rows {
		if t.Rows[i].ID != rowID {
			continue
		}
		if t.Rows[i].Cells == nil {
			t.Rows[i].Cells = map[string]string{}
		}
		t.Rows[i].Cells[columnHeader] = value
		return Applied
	}
	return NotFound
}

// AddTableRow appends a row holding one empty cell per current column.
func (e *Editor) AddTableRow(sectionID, tableID string) (string, Outcome) {
	e.mu.Lock()
	defer e.mu.Unlock()
	t, out := e.table(sectionID, tableID)
	if out != Applied {
		return "", out
	}
	cells := make(map[string]string, len(t.Columns))
	for _, col := range t.Columns {
		cells[col.Header] = ""
	}
	row := domain.TableRow{ID: e.genID(), Cells: cells}
	t.Rows = append(t.Rows, row)
	return row.ID, Applied
}

func (e *Editor) RemoveTableRow(sectionID, tableID, rowID string) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	t, out := e.table(sectionID, tableID)
	if out != Applied {
		return out
	}
	for i := range t.Rows {
		if t.Rows[i].ID == rowID {
			t.Rows = append(t.Rows[:i], t.Rows[i+1:]...)
			return Applied
		}
	}
	return NotFound
}

// AddTableColumn appends a column and back-fills every row with an empty cell
// under the new header.
func (e *Editor) AddTableColumn(sectionID, tableID, header string) (string, Outcome) {
	e.mu.Lock()
	defer e.mu.Unlock()
	t, out := e.table(sectionID, tableID)
	if out != Applied {
		return "", out
	}
	col := domain.TableColumn{ID: e.genID(), Header: header, Visible: true}
	t.Columns = append(t.Columns, col)
	for i := range t.Rows {
		if t.Rows[i].Cells == nil {
			t.Rows[i].Cells = map[string]string{}
		}
		t.Rows[i].Cells[header] = ""
	}
	return col.ID, Applied
}

func (e *Editor) ToggleColumnVisibility(sectionID, tableID, columnID string) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	t, out := e.table(sectionID, tableID)
	if out != Applied {
		return out
	}
	for i := range t.Columns {
		if t.Columns[i].ID == columnID {
			t.Columns[i].Visible = !t.Columns[i].Visible
			return Applied
		}
	}
	return NotFound
}

// PlatformCardPatch: nil Items keeps the current item list.
type PlatformCardPatch struct {
	Title   *string               `json:"title"`
	Visible *bool                 `json:"visible"`
	Items   []domain.PlatformItem `json:"items"`
}

func (e *Editor) UpdatePlatformCard(sectionID, cardID string, patch PlatformCardPatch) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, out := e.section(sectionID, domain.SectionTypePlatforms)
	if out != Applied {
		return out
	}
	for i := range s.Platforms {
		if s.Platforms[i].ID != cardID {
			continue
		}
		p := &s.Platforms[i]
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Visible != nil {
			p.Visible = *patch.Visible
		}
		if patch.Items != nil {
			p.Items = append([]domain.PlatformItem(nil), patch.Items...)
		}
		return Applied
	}
	return NotFound
}

func (e *Editor) AddPlatformCard(sectionID string) (string, Outcome) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, out := e.section(sectionID, domain.SectionTypePlatforms)
	if out != Applied {
		return "", out
	}
	card := domain.PlatformCard{
		ID:      e.genID(),
		Title:   "منصة جديدة",
		Visible: true,
		Items:   []domain.PlatformItem{{Label: "البند", Value: "القيمة"}},
	}
	s.Platforms = append(s.Platforms, card)
	return card.ID, Applied
}

func (e *Editor) RemovePlatformCard(sectionID, cardID string) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, out := e.section(sectionID, domain.SectionTypePlatforms)
	if out != Applied {
		return out
	}
	for i := range s.Platforms {
		if s.Platforms[i].ID == cardID {
			s.Platforms = append(s.Platforms[:i], s.Platforms[i+1:]...)
			return Applied
		}
	}
	return NotFound
}

type NoteGroupPatch struct {
	Title   *string `json:"title"`
	Icon    *string `json:"icon"`
	Visible *bool   `json:"visible"`
}

func (e *Editor) noteGroup(s *domain.Section, noteID string) *domain.NoteGroup {
	for i := range s.NoteGroups {
		if s.NoteGroups[i].ID == noteID {
			return &s.NoteGroups[i]
		}
	}
	return nil
}

func (e *Editor) UpdateNoteGroup(sectionID, noteID string, patch NoteGroupPatch) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, out := e.section(sectionID, domain.SectionTypeNotes)
	if out != Applied {
		return out
	}
	n := e.noteGroup(s, noteID)
	if n == nil {
		return NotFound
	}
	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Icon != nil {
		n.Icon = *patch.Icon
	}
	if patch.Visible != nil {
		n.Visible = *patch.Visible
	}
	return Applied
}

func (e *Editor) AddNoteGroup(sectionID string) (string, Outcome) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, out := e.section(sectionID, domain.SectionTypeNotes)
	if out != Applied {
		return "", out
	}
	n := domain.NoteGroup{
		ID:      e.genID(),
		Title:   "مجموعة ملاحظات جديدة",
		Icon:    "file-text",
		Visible: true,
		Items:   []string{"ملاحظة جديدة"},
	}
	s.NoteGroups = append(s.NoteGroups, n)
	return n.ID, Applied
}

func (e *Editor) AddNoteItem(sectionID, noteID, item string) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, out := e.section(sectionID, domain.SectionTypeNotes)
	if out != Applied {
		return out
	}
	n := e.noteGroup(s, noteID)
	if n == nil {
		return NotFound
	}
	n.Items = append(n.Items, item)
	return Applied
}

func (e *Editor) UpdateNoteItem(sectionID, noteID string, index int, value string) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, out := e.section(sectionID, domain.SectionTypeNotes)
	if out != Applied {
		return out
	}
	n := e.noteGroup(s, noteID)
	if n == nil || index < 0 || index >= len(n.Items) {
		return NotFound
	}
	n.Items[index] = value
	return Applied
}

func (e *Editor) RemoveNoteItem(sectionID, noteID string, index int) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, out := e.section(sectionID, domain.SectionTypeNotes)
	if out != Applied {
		return out
	}
	n := e.noteGroup(s, noteID)
	if n == nil || index < 0 || index >= len(n.Items) {
		return NotFound
	}
	n.Items = append(n.Items[:index], n.Items[index+1:]...)
	return Applied
}

type ContentCardPatch struct {
	Thumbnail   *string             `json:"thumbnail"`
	ContentType *domain.ContentType `json:"contentType"`
	Description *string             `json:"description"`
	Visible     *bool               `json:"visible"`
}

func (e *Editor) UpdateContentCard(sectionID, cardID string, patch ContentCardPatch) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, out := e.section(sectionID, domain.SectionTypeContent)
	if out != Applied {
		return out
	}
	for i := range s.Contents {
		if s.Contents[i].ID != cardID {
			continue
		}
		c := &s.Contents[i]
		if patch.Thumbnail != nil {
			c.Thumbnail = *patch.Thumbnail
		}
		if patch.ContentType != nil {
			c.ContentType = *patch.ContentType
		}
		if patch.Description != nil {
			c.Description = *patch.Description
		}
		if patch.Visible != nil {
			c.Visible = *patch.Visible
		}
		return Applied
	}
	return NotFound
}

// AddContentCard is a no-op once the section holds eight cards.
func (e *Editor) AddContentCard(sectionID string) (string, Outcome) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, out := e.section(sectionID, domain.SectionTypeContent)
	if out != Applied {
		return "", out
	}
	if len(s.Contents) >= maxContentCards {
		return "", LimitReached
	}
	card := domain.ContentCard{
		ID:          e.genID(),
		ContentType: domain.ContentTypeDesign,
		Description: "محتوى جديد",
		Visible:     true,
	}
	s.Contents = append(s.Contents, card)
	return card.ID, Applied
}

func (e *Editor) RemoveContentCard(sectionID, cardID string) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, out := e.section(sectionID, domain.SectionTypeContent)
	if out != Applied {
		return out
	}
	for i := range s.Contents {
		if s.Contents[i].ID == cardID {
			s.Contents = append(s.Contents[:i], s.Contents[i+1:]...)
			return Applied
		}
	}
	return NotFound
}

type EvaluationPatch struct {
	Name           *string `json:"name"`
	Role           *string `json:"role"`
	Tasks          *string `json:"tasks"`
	CompletionRate *int    `json:"completionRate"`
	Notes          *string `json:"notes"`
}

func (e *Editor) UpdateEvaluation(sectionID, evalID string, patch EvaluationPatch) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, out := e.section(sectionID, domain.SectionTypeEvaluation)
	if out != Applied {
		return out
	}
	for i := range s.Evaluations {
		if s.Evaluations[i].ID != evalID {
			continue
		}
		ev := &s.Evaluations[i]
		if patch.Name != nil {
			ev.Name = *patch.Name
		}
		if patch.Role != nil {
			ev.Role = *patch.Role
		}
		if patch.Tasks != nil {
			ev.Tasks = *patch.Tasks
		}
		if patch.CompletionRate != nil {
			ev.CompletionRate = clampRate(*patch.CompletionRate)
		}
		if patch.Notes != nil {
			ev.Notes = *patch.Notes
		}
		return Applied
	}
	return NotFound
}

func clampRate(rate int) int {
	if rate < 0 {
		return 0
	}
	if rate > 100 {
		return 100
	}
	return rate
}

func (e *Editor) AddEvaluation(sectionID string) (string, Outcome) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, out := e.section(sectionID, domain.SectionTypeEvaluation)
	if out != Applied {
		return "", out
	}
	ev := domain.EmployeeEvaluation{
		ID:             e.genID(),
		Name:           "موظف جديد",
		CompletionRate: 50,
	}
	s.Evaluations = append(s.Evaluations, ev)
	return ev.ID, Applied
}

func (e *Editor) RemoveEvaluation(sectionID, evalID string) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, out := e.section(sectionID, domain.SectionTypeEvaluation)
	if out != Applied {
		return out
	}
	for i := range s.Evaluations {
		if s.Evaluations[i].ID == evalID {
			s.Evaluations = append(s.Evaluations[:i], s.Evaluations[i+1:]...)
			return Applied
		}
	}
	return NotFound
}

// ReplaceSettings swaps the whole settings object.
func (e *Editor) ReplaceSettings(s domain.ReportSettings) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings = s.Clone()
}

// MergeSettingsJSON overlays a partial settings JSON object onto the current
// settings. Malformed input leaves settings untouched.
func (e *Editor) MergeSettingsJSON(raw []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	merged, err := domain.MergeSettings(e.settings, raw)
	if err != nil {
		return fmt.Errorf("merge settings: %w", err)
	}
	e.settings = merged
	return nil
}

// LoadDocument replaces the live document, e.g. from a saved snapshot.
func (e *Editor) LoadDocument(doc domain.ReportDocument) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.doc = doc.Clone()
}

func (e *Editor) LoadSettings(s domain.ReportSettings) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings = s.Clone()
}
