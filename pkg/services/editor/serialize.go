package editor

import (
	"encoding/json"
	"fmt"

	"github.com/mediadesk/taqrir/pkg/models/domain"
)

// Envelope is the import/export wire shape: both blobs under one object,
// pretty-printed. Import accepts either key alone; unknown keys are ignored.
type Envelope struct {
	ReportData domain.ReportDocument `json:"reportData"`
	Settings   domain.ReportSettings `json:"settings"`
}

// ExportJSON serializes the current document and settings.
func (e *Editor) ExportJSON() (string, error) {
	e.mu.Lock()
	doc := e.doc.Clone()
	settings := e.settings.Clone()
	e.mu.Unlock()

	out, err := json.MarshalIndent(Envelope{ReportData: doc, Settings: settings}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(out), nil
}

// ImportJSON parses an exported blob and replaces the document and/or
// settings it carries. It returns false, with state untouched, when the text
// is not a JSON object, when a carried section is structurally invalid, or
// when neither expected top-level key is present. Imported settings are
// merged over the built-in defaults so older exports pick up new fields.
func (e *Editor) ImportJSON(text string) bool {
	var env struct {
		ReportData *domain.ReportDocument `json:"reportData"`
		Settings   json.RawMessage        `json:"settings"`
	}
	if err := json.Unmarshal([]byte(text), &env); err != nil {
		return false
	}
	if env.ReportData == nil && len(env.Settings) == 0 {
		return false
	}

	var settings *domain.ReportSettings
	if len(env.Settings) > 0 {
		merged, err := domain.MergeSettings(defaultSettings(), env.Settings)
		if err != nil {
			return false
		}
		settings = &merged
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if env.ReportData != nil {
		e.doc = env.ReportData.Clone()
	}
	if settings != nil {
		e.settings = *settings
	}
	return true
}

// SaveState writes both blobs to the state store.
func (e *Editor) SaveState() error {
	e.mu.Lock()
	doc := e.doc.Clone()
	settings := e.settings.Clone()
	e.mu.Unlock()

	rawDoc, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	rawSettings, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := e.store.Set(DocumentKey, rawDoc); err != nil {
		return fmt.Errorf("persist document: %w", err)
	}
	if err := e.store.Set(SettingsKey, rawSettings); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	return nil
}

// ResetToDefault reverts to the built-in document and settings and clears
// both persisted blobs.
func (e *Editor) ResetToDefault() error {
	e.mu.Lock()
	e.doc = defaultDocument(e.genID)
	e.settings = defaultSettings()
	e.mu.Unlock()

	if err := e.store.Delete(DocumentKey); err != nil {
		return fmt.Errorf("clear document state: %w", err)
	}
	if err := e.store.Delete(SettingsKey); err != nil {
		return fmt.Errorf("clear settings state: %w", err)
	}
	return nil
}
