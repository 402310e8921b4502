package api

import "time"

// OutcomeResponse reports how a mutation was resolved. Ignored mutations
// (unknown id, cardinality bound) are answered with 200 and the reason, not
// an error status: the UI already prevents them, this is the defensive floor.
type OutcomeResponse struct {
	Outcome string `json:"outcome"`
	ID      string `json:"id,omitempty"`
}

type UpdateHeaderRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type UpdateFooterRequest struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

type UpdateTitleRequest struct {
	Title string `json:"title"`
}

type AddSectionRequest struct {
	Type string `json:"type"`
}

type AddTableRequest struct {
	Title string `json:"title"`
}

type AddColumnRequest struct {
	Header string `json:"header"`
}

type UpdateCellRequest struct {
	RowID        string `json:"rowId"`
	ColumnHeader string `json:"columnHeader"`
	Value        string `json:"value"`
}

type NoteItemRequest struct {
	Item string `json:"item"`
}

type UpdateNoteItemRequest struct {
	Index int    `json:"index"`
	Value string `json:"value"`
}

type RemoveNoteItemRequest struct {
	Index int `json:"index"`
}

type ImportRequest struct {
	JSON string `json:"json"`
}

type ImportResponse struct {
	Success bool `json:"success"`
}

type SaveReportRequest struct {
	Title        string `json:"title"`
	Month        string `json:"month"`
	Year         string `json:"year"`
	ReportType   string `json:"reportType,omitempty"`
	CampaignName string `json:"campaignName,omitempty"`
}

type SavedReportMeta struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Month        string    `json:"month"`
	Year         string    `json:"year"`
	ReportType   string    `json:"report_type,omitempty"`
	CampaignName string    `json:"campaign_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type FollowerSummary struct {
	Available      bool            `json:"available"`
	Total          float64         `json:"total,omitempty"`
	Platforms      []PlatformCount `json:"platforms,omitempty"`
	FormattedTotal string          `json:"formattedTotal,omitempty"`
}

type PlatformCount struct {
	Platform  string  `json:"platform"`
	Followers float64 `json:"followers"`
}
