package store

import (
	"encoding/json"
	"time"
)

// SavedReport is one persisted snapshot row. Data is the opaque
// {reportData, settings} blob; the store never inspects it.
type SavedReport struct {
	ID           string
	UserID       string
	Title        string
	Month        string
	Year         string
	ReportType   string
	CampaignName string
	Data         json.RawMessage
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SavedReportMeta is the listing projection: everything but the blob.
type SavedReportMeta struct {
	ID           string
	Title        string
	Month        string
	Year         string
	ReportType   string
	CampaignName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
