package domain

import "encoding/json"

type CardStyle string

const (
	CardStyleModern  CardStyle = "modern"
	CardStyleClassic CardStyle = "classic"
	CardStyleMinimal CardStyle = "minimal"
)

type EmailSettings struct {
	Emails           []string `json:"emails"`
	OrganizationName string   `json:"organizationName"`
	ReportMonth      string   `json:"reportMonth"`
}

type ThemeSettings struct {
	PrimaryColor string    `json:"primaryColor"`
	AccentColor  string    `json:"accentColor"`
	CardStyle    CardStyle `json:"cardStyle"`
	FontFamily   string    `json:"fontFamily"`
}

// ReportSettings is presentation and export configuration only; it never
// carries report content.
type ReportSettings struct {
	ShowHeader          bool          `json:"showHeader"`
	ShowFooter          bool          `json:"showFooter"`
	ShowKPIs            bool          `json:"showKPIs"`
	ShowPlatformCards   bool          `json:"showPlatformCards"`
	ShowNotes           bool          `json:"showNotes"`
	ShowContent         bool          `json:"showContent"`
	EnableTableStriping bool          `json:"enableTableStriping"`
	EnableHoverEffects  bool          `json:"enableHoverEffects"`
	PrimaryColor        string        `json:"primaryColor"`
	AccentColor         string        `json:"accentColor"`
	Email               EmailSettings `json:"email"`
	Theme               ThemeSettings `json:"theme"`
}

func (s ReportSettings) Clone() ReportSettings {
	out := s
	out.Email.Emails = append([]string(nil), s.Email.Emails...)
	return out
}

// MergeSettings overlays raw JSON onto base. Fields absent from raw keep the
// base value, so settings persisted by an older build pick up new defaults.
func MergeSettings(base ReportSettings, raw []byte) (ReportSettings, error) {
	merged := base.Clone()
	if err := json.Unmarshal(raw, &merged); err != nil {
		return base, err
	}
	return merged, nil
}
