package domain

import (
	"encoding/json"
	"fmt"
)

type SectionType string

const (
	SectionTypeKPI        SectionType = "kpi"
	SectionTypeTable      SectionType = "table"
	SectionTypePlatforms  SectionType = "platforms"
	SectionTypeNotes      SectionType = "notes"
	SectionTypeContent    SectionType = "content"
	SectionTypeEvaluation SectionType = "evaluation"
)

func (t SectionType) Valid() bool {
	switch t {
	case SectionTypeKPI, SectionTypeTable, SectionTypePlatforms,
		SectionTypeNotes, SectionTypeContent, SectionTypeEvaluation:
		return true
	}
	return false
}

type ReportType string

const (
	ReportTypeMonthly ReportType = "monthly"
	ReportTypeSpecial ReportType = "special"
)

type ContentType string

const (
	ContentTypeAlbum       ContentType = "album"
	ContentTypeInfographic ContentType = "infographic"
	ContentTypeDesign      ContentType = "design"
	ContentTypeVideo       ContentType = "video"
	ContentTypeAI          ContentType = "ai"
	ContentTypeVoiceover   ContentType = "voiceover"
)

type ReportHeader struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type ReportFooter struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

type KPICard struct {
	ID      string `json:"id"`
	Icon    string `json:"icon"`
	Value   string `json:"value"`
	Label   string `json:"label"`
	Visible bool   `json:"visible"`
}

type TableColumn struct {
	ID      string `json:"id"`
	Header  string `json:"header"`
	Visible bool   `json:"visible"`
}

// TableRow cells are keyed by column header text, not column id. Renaming a
// column starts a fresh cell key; values entered under the old header stay
// there. A missing key renders as "-".
type TableRow struct {
	ID    string            `json:"id"`
	Cells map[string]string `json:"cells"`
}

type ReportTable struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Columns []TableColumn `json:"columns"`
	Rows    []TableRow    `json:"rows"`
	Visible bool          `json:"visible"`
}

type PlatformItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type PlatformCard struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	Items   []PlatformItem `json:"items"`
	Visible bool           `json:"visible"`
}

type NoteGroup struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Icon    string   `json:"icon"`
	Items   []string `json:"items"`
	Visible bool     `json:"visible"`
}

type ContentCard struct {
	ID          string      `json:"id"`
	Thumbnail   string      `json:"thumbnail"`
	ContentType ContentType `json:"contentType"`
	Description string      `json:"description"`
	Visible     bool        `json:"visible"`
}

type EmployeeEvaluation struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Tasks          string `json:"tasks"`
	CompletionRate int    `json:"completionRate"`
	Notes          string `json:"notes"`
}

// Section is a tagged union: Type selects which payload slice is active and
// the others stay nil. On the wire the active payload travels under "data",
// matching the persisted document format.
type Section struct {
	ID      string      `json:"id"`
	Type    SectionType `json:"type"`
	Title   string      `json:"title"`
	Icon    string      `json:"icon"`
	Visible bool        `json:"visible"`

	KPIs        []KPICard            `json:"-"`
	Tables      []ReportTable        `json:"-"`
	Platforms   []PlatformCard       `json:"-"`
	NoteGroups  []NoteGroup          `json:"-"`
	Contents    []ContentCard        `json:"-"`
	Evaluations []EmployeeEvaluation `json:"-"`
}

type sectionEnvelope struct {
	ID      string          `json:"id"`
	Type    SectionType     `json:"type"`
	Title   string          `json:"title"`
	Icon    string          `json:"icon"`
	Visible bool            `json:"visible"`
	Data    json.RawMessage `json:"data"`
}

func (s Section) MarshalJSON() ([]byte, error) {
	var payload any
	switch s.Type {
	case SectionTypeKPI:
		payload = emptySlice(s.KPIs)
	case SectionTypeTable:
		payload = emptySlice(s.Tables)
	case SectionTypePlatforms:
		payload = emptySlice(s.Platforms)
	case SectionTypeNotes:
		payload = emptySlice(s.NoteGroups)
	case SectionTypeContent:
		payload = emptySlice(s.Contents)
	case SectionTypeEvaluation:
		payload = emptySlice(s.Evaluations)
	default:
		return nil, fmt.Errorf("unknown section type %q", s.Type)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(sectionEnvelope{
		ID:      s.ID,
		Type:    s.Type,
		Title:   s.Title,
		Icon:    s.Icon,
		Visible: s.Visible,
		Data:    data,
	})
}

func (s *Section) UnmarshalJSON(data []byte) error {
	var env sectionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	if !env.Type.Valid() {
		return fmt.Errorf("unknown section type %q", env.Type)
	}

	*s = Section{
		ID:      env.ID,
		Type:    env.Type,
		Title:   env.Title,
		Icon:    env.Icon,
		Visible: env.Visible,
	}
	if len(env.Data) == 0 {
		return nil
	}

	switch env.Type {
	case SectionTypeKPI:
		return json.Unmarshal(env.Data, &s.KPIs)
	case SectionTypeTable:
		return json.Unmarshal(env.Data, &s.Tables)
	case SectionTypePlatforms:
		return json.Unmarshal(env.Data, &s.Platforms)
	case SectionTypeNotes:
		return json.Unmarshal(env.Data, &s.NoteGroups)
	case SectionTypeContent:
		return json.Unmarshal(env.Data, &s.Contents)
	case SectionTypeEvaluation:
		return json.Unmarshal(env.Data, &s.Evaluations)
	}
	return nil
}

// emptySlice keeps "data" as [] instead of null for empty payloads.
func emptySlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// ReportDocument is the complete report: a header, ordered sections and a
// footer. Slice order is display order; reordering is an explicit operation.
type ReportDocument struct {
	Header            ReportHeader `json:"header"`
	Sections          []Section    `json:"sections"`
	Footer            ReportFooter `json:"footer"`
	ReportType        ReportType   `json:"reportType,omitempty"`
	Month             string       `json:"month,omitempty"`
	Year              string       `json:"year,omitempty"`
	SpecialReportName string       `json:"specialReportName,omitempty"`
	CampaignName      string       `json:"campaignName,omitempty"`
}

// Section returns a pointer into the document's section slice, or nil when
// the id is unknown.
func (d *ReportDocument) Section(id string) *Section {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return &d.Sections[i]
		}
	}
	return nil
}

// Clone returns a deep copy. Callers outside the editor only ever see clones,
// so no nested object is aliased across mutations.
func (d ReportDocument) Clone() ReportDocument {
	out := d
	out.Sections = make([]Section, len(d.Sections))
	for i, s := range d.Sections {
		out.Sections[i] = s.Clone()
	}
	return out
}

func (s Section) Clone() Section {
	out := s
	if s.KPIs != nil {
		out.KPIs = append([]KPICard(nil), s.KPIs...)
	}
	if s.Tables != nil {
		out.Tables = make([]ReportTable, len(s.Tables))
		for i, t := range s.Tables {
			out.Tables[i] = t.Clone()
		}
	}
	if s.Platforms != nil {
		out.Platforms = make([]PlatformCard, len(s.Platforms))
		for i, p := range s.Platforms {
			cp := p
			cp.Items = append([]PlatformItem(nil), p.Items...)
			out.Platforms[i] = cp
		}
	}
	if s.NoteGroups != nil {
		out.NoteGroups = make([]NoteGroup, len(s.NoteGroups))
		for i, n := range s.NoteGroups {
			cn := n
			cn.Items = append([]string(nil), n.Items...)
			out.NoteGroups[i] = cn
		}
	}
	if s.Contents != nil {
		out.Contents = append([]ContentCard(nil), s.Contents...)
	}
	if s.Evaluations != nil {
		out.Evaluations = append([]EmployeeEvaluation(nil), s.Evaluations...)
	}
	return out
}

func (t ReportTable) Clone() ReportTable {
	out := t
	out.Columns = append([]TableColumn(nil), t.Columns...)
	out.Rows = make([]TableRow, len(t.Rows))
	for i, r := range t.Rows {
		cr := r
		cr.Cells = make(map[string]string, len(r.Cells))
		for k, v := range r.Cells {
			cr.Cells[k] = v
		}
		out.Rows[i] = cr
	}
	return out
}
