package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mediadesk/taqrir/pkg/models/api"
	"github.com/mediadesk/taqrir/pkg/models/domain"
	storemodels "github.com/mediadesk/taqrir/pkg/models/store"
	"github.com/mediadesk/taqrir/pkg/services/auth"
	"github.com/mediadesk/taqrir/pkg/services/editor"
	"github.com/mediadesk/taqrir/pkg/services/export"
	"github.com/mediadesk/taqrir/pkg/services/followers"
	reportstore "github.com/mediadesk/taqrir/pkg/store/duckdb/report"
	"github.com/rs/zerolog"
)

type Handler struct {
	editor  *editor.Editor
	reports reportstore.Store
	calc    *followers.Calculator
	html    *export.HTMLRenderer
	pdf     *export.PDFExporter
}

func NewHandler(
	ed *editor.Editor,
	reports reportstore.Store,
	calc *followers.Calculator,
	html *export.HTMLRenderer,
	pdf *export.PDFExporter,
) *Handler {
	return &Handler{editor: ed, reports: reports, calc: calc, html: html, pdf: pdf}
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

func respondOutcome(w http.ResponseWriter, logger *zerolog.Logger, out editor.Outcome, id string) {
	writeJSON(w, logger, api.OutcomeResponse{Outcome: out.String(), ID: id})
}

func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	writeJSON(w, logger, h.editor.Document())
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	writeJSON(w, logger, h.editor.Settings())
}

// MergeSettings overlays the request body onto current settings; absent
// fields keep their values.
func (h *Handler) MergeSettings(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	if err := h.editor.MergeSettingsJSON(raw); err != nil {
		http.Error(w, "invalid settings payload", http.StatusBadRequest)
		return
	}
	writeJSON(w, logger, h.editor.Settings())
}

func (h *Handler) UpdateHeader(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	var req api.UpdateHeaderRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.editor.UpdateHeader(req.Title, req.Subtitle)
	respondOutcome(w, logger, editor.Applied, "")
}

func (h *Handler) UpdateFooter(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	var req api.UpdateFooterRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.editor.UpdateFooter(req.Line1, req.Line2)
	respondOutcome(w, logger, editor.Applied, "")
}

func (h *Handler) AddSection(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	var req api.AddSectionRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, out := h.editor.AddSection(domain.SectionType(req.Type))
	respondOutcome(w, logger, out, id)
}

func (h *Handler) RemoveSection(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	out := h.editor.RemoveSection(chi.URLParam(r, "sectionID"))
	respondOutcome(w, logger, out, "")
}

func (h *Handler) UpdateSectionTitle(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	var req api.UpdateTitleRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	out := h.editor.UpdateSectionTitle(chi.URLParam(r, "sectionID"), req.Title)
	respondOutcome(w, logger, out, "")
}

func (h *Handler) ToggleSectionVisibility(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	out := h.editor.ToggleSectionVisibility(chi.URLParam(r, "sectionID"))
	respondOutcome(w, logger, out, "")
}

func (h *Handler) UpdateSectionsOrder(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	var sections []domain.Section
	if err := decode(r, &sections); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.editor.UpdateSectionsOrder(sections)
	respondOutcome(w, logger, editor.Applied, "")
}

func (h *Handler) AddKPI(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	id, out := h.editor.AddKPI(chi.URLParam(r, "sectionID"))
	respondOutcome(w, logger, out, id)
}

func (h *Handler) UpdateKPI(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	var patch editor.KPIPatch
	if err := decode(r, &patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	out := h.editor.UpdateKPI(chi.URLParam(r, "sectionID"), chi.URLParam(r, "kpiID"), patch)
	respondOutcome(w, logger, out, "")
}

func (h *Handler) RemoveKPI(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	out := h.editor.RemoveKPI(chi.URLParam(r, "sectionID"), chi.URLParam(r, "kpiID"))
	respondOutcome(w, logger, out, "")
}

func (h *Handler) AddTable(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	var req api.AddTableRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, out := h.editor.AddTable(chi.URLParam(r, "sectionID"), req.Title)
	respondOutcome(w, logger, out, id)
}

func (h *Handler) UpdateTable(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	var patch editor.TablePatch
	if err := decode(r, &patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	out := h.editor.UpdateTable(chi.URLParam(r, "sectionID"), chi.URLParam(r, "tableID"), patch)
	respondOutcome(w, logger, out, "")
}

func (h *Handler) UpdateTableCell(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	var req api.UpdateCellRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	out := h.editor.UpdateTableCell(
		chi.URLParam(r, "sectionID"), chi.URLParam(r, "tableID"),
		req.RowID, req.ColumnHeader, req.Value,
	)
	respondOutcome(w, logger, out, "")
}

func (h *Handler) AddTableRow(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	id, out := h.editor.AddTableRow(chi.URLParam(r, "sectionID"), chi.URLParam(r, "tableID"))
	respondOutcome(w, logger, out, id)
}

func (h *Handler) RemoveTableRow(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	out := h.editor.RemoveTableRow(
		chi.URLParam(r, "sectionID"), chi.URLParam(r, "tableID"), chi.URLParam(r, "rowID"),
	)
	respondOutcome(w, logger, out, "")
}

func (h *Handler) AddTableColumn(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	var req api.AddColumnRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, out := h.editor.AddTableColumn(chi.URLParam(r, "sectionID"), chi.URLParam(r, "tableID"), req.Header)
	respondOutcome(w, logger, out, id)
}

func (h *Handler) ToggleColumnVisibility(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	out := h.editor.ToggleColumnVisibility(
		chi.URLParam(r, "sectionID"), chi.URLParam(r, "tableID"), chi.URLParam(r, "columnID"),
	)
	respondOutcome(w, logger, out, "")
}

func (h *Handler) AddPlatformCard(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	id, out := h.editor.AddPlatformCard(chi.URLParam(r, "sectionID"))
	respondOutcome(w, logger, out, id)
}

func (h *Handler) UpdatePlatformCard(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	var patch editor.PlatformCardPatch
	if err := decode(r, &patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	out := h.editor.UpdatePlatformCard(chi.URLParam(r, "sectionID"), chi.URLParam(r, "cardID"), patch)
	respondOutcome(w, logger, out, "")
}

func (h *Handler) RemovePlatformCard(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	out := h.editor.RemovePlatformCard(chi.URLParam(r, "sectionID"), chi.URLParam(r, "cardID"))
	respondOutcome(w, logger, out, "")
}

func (h *Handler) AddNoteGroup(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	id, out := h.editor.AddNoteGroup(chi.URLParam(r, "sectionID"))
	respondOutcome(w, logger, out, id)
}

func (h *Handler) UpdateNoteGroup(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	var patch editor.NoteGroupPatch
	if err := decode(r, &patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	out := h.editor.UpdateNoteGroup(chi.URLParam(r, "sectionID"), chi.URLParam(r, "noteID"), patch)
	respondOutcome(w, logger, out, "")
}

func (h *Handler) AddNoteItem(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	var req api.NoteItemRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	out := h.editor.AddNoteItem(chi.URLParam(r, "sectionID"), chi.URLParam(r, "noteID"), req.Item)
	respondOutcome(w, logger, out, "")
}

func (h *Handler) UpdateNoteItem(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	var req api.UpdateNoteItemRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	out := h.editor.UpdateNoteItem(chi.URLParam(r, "sectionID"), chi.URLParam(r, "noteID"), req.Index, req.Value)
	respondOutcome(w, logger, out, "")
}

func (h *Handler) RemoveNoteItem(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	var req api.RemoveNoteItemRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	out := h.editor.RemoveNoteItem(chi.URLParam(r, "sectionID"), chi.URLParam(r, "noteID"), req.Index)
	respondOutcome(w, logger, out, "")
}

func (h *Handler) AddContentCard(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	id, out := h.editor.AddContentCard(chi.URLParam(r, "sectionID"))
	respondOutcome(w, logger, out, id)
}

func (h *Handler) UpdateContentCard(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	var patch editor.ContentCardPatch
	if err := decode(r, &patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	out := h.editor.UpdateContentCard(chi.URLParam(r, "sectionID"), chi.URLParam(r, "cardID"), patch)
	respondOutcome(w, logger, out, "")
}

func (h *Handler) RemoveContentCard(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	out := h.editor.RemoveContentCard(chi.URLParam(r, "sectionID"), chi.URLParam(r, "cardID"))
	respondOutcome(w, logger, out, "")
}

func (h *Handler) AddEvaluation(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	id, out := h.editor.AddEvaluation(chi.URLParam(r, "sectionID"))
	respondOutcome(w, logger, out, id)
}

func (h *Handler) UpdateEvaluation(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	var patch editor.EvaluationPatch
	if err := decode(r, &patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	out := h.editor.UpdateEvaluation(chi.URLParam(r, "sectionID"), chi.URLParam(r, "evalID"), patch)
	respondOutcome(w, logger, out, "")
}

func (h *Handler) RemoveEvaluation(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	out := h.editor.RemoveEvaluation(chi.URLParam(r, "sectionID"), chi.URLParam(r, "evalID"))
	respondOutcome(w, logger, out, "")
}

// GetFollowerSummary recomputes the derived follower aggregate on every call;
// the value is never stored with the document.
func (h *Handler) GetFollowerSummary(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	result := h.calc.Calculate(h.editor.Document())
	if result == nil {
		writeJSON(w, logger, api.FollowerSummary{Available: false})
		return
	}
	summary := api.FollowerSummary{
		Available:      true,
		Total:          result.Total,
		FormattedTotal: result.FormattedTotal,
	}
	for _, p := range result.Platforms {
		summary.Platforms = append(summary.Platforms, api.PlatformCount{
			Platform:  p.Platform,
			Followers: p.Followers,
		})
	}
	writeJSON(w, logger, summary)
}

func (h *Handler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	out, err := h.editor.ExportJSON()
	if err != nil {
		logger.Error().Err(err).Msg("failed to export report json")
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="report.json"`)
	if _, err := io.WriteString(w, out); err != nil {
		logger.Error().Err(err).Msg("failed to write json export")
	}
}

func (h *Handler) ExportWord(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	w.Header().Set("Content-Type", "application/msword; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="report.doc"`)
	if err := h.html.Render(w, h.editor.Document(), h.editor.Settings()); err != nil {
		logger.Error().Err(err).Msg("failed to export word document")
	}
}

func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	pdf, err := h.pdf.Export(r.Context(), h.editor.Document(), h.editor.Settings())
	if err != nil {
		logger.Error().Err(err).Msg("failed to export pdf")
		http.Error(w, "pdf export failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="report.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		logger.Error().Err(err).Msg("failed to write pdf export")
	}
}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	var req api.ImportRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, logger, api.ImportResponse{Success: h.editor.ImportJSON(req.JSON)})
}

func (h *Handler) SaveState(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	if err := h.editor.SaveState(); err != nil {
		logger.Error().Err(err).Msg("failed to persist editor state")
		http.Error(w, "save failed", http.StatusInternalServerError)
		return
	}
	respondOutcome(w, logger, editor.Applied, "")
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	if err := h.editor.ResetToDefault(); err != nil {
		logger.Error().Err(err).Msg("failed to reset editor state")
		http.Error(w, "reset failed", http.StatusInternalServerError)
		return
	}
	respondOutcome(w, logger, editor.Applied, "")
}

// SaveReport snapshots the current document and settings under the caller's
// user id.
func (h *Handler) SaveReport(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	var req api.SaveReportRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	blob, err := json.Marshal(editor.Envelope{
		ReportData: h.editor.Document(),
		Settings:   h.editor.Settings(),
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to marshal snapshot")
		http.Error(w, "save failed", http.StatusInternalServerError)
		return
	}

	id, err := h.reports.Create(r.Context(), &storemodels.SavedReport{
		UserID:       identity.UserID,
		Title:        req.Title,
		Month:        req.Month,
		Year:         req.Year,
		ReportType:   req.ReportType,
		CampaignName: req.CampaignName,
		Data:         blob,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to save report")
		http.Error(w, "save failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, logger, api.OutcomeResponse{Outcome: editor.Applied.String(), ID: id})
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	metas, err := h.reports.ListByUser(r.Context(), identity.UserID)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list reports")
		http.Error(w, "list failed", http.StatusInternalServerError)
		return
	}
	response := make([]api.SavedReportMeta, 0, len(metas))
	for _, m := range metas {
		response = append(response, api.SavedReportMeta{
			ID:           m.ID,
			Title:        m.Title,
			Month:        m.Month,
			Year:         m.Year,
			ReportType:   m.ReportType,
			CampaignName: m.CampaignName,
			CreatedAt:    m.CreatedAt,
			UpdatedAt:    m.UpdatedAt,
		})
	}
	writeJSON(w, logger, response)
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	saved, err := h.reports.Get(r.Context(), chi.URLParam(r, "reportID"), identity.UserID)
	if errors.Is(err, storemodels.ErrNotFound) {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to load report")
		http.Error(w, "load failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(saved.Data); err != nil {
		logger.Error().Err(err).Msg("failed to write report blob")
	}
}

// LoadReport replaces the live editor state with a saved snapshot.
func (h *Handler) LoadReport(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	saved, err := h.reports.Get(r.Context(), chi.URLParam(r, "reportID"), identity.UserID)
	if errors.Is(err, storemodels.ErrNotFound) {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to load report")
		http.Error(w, "load failed", http.StatusInternalServerError)
		return
	}
	if !h.editor.ImportJSON(string(saved.Data)) {
		logger.Error().Str("report_id", saved.ID).Msg("saved report blob is not importable")
		http.Error(w, "saved report is corrupted", http.StatusUnprocessableEntity)
		return
	}
	respondOutcome(w, logger, editor.Applied, saved.ID)
}

func (h *Handler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	var req api.SaveReportRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	blob, err := json.Marshal(editor.Envelope{
		ReportData: h.editor.Document(),
		Settings:   h.editor.Settings(),
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to marshal snapshot")
		http.Error(w, "update failed", http.StatusInternalServerError)
		return
	}
	err = h.reports.Update(r.Context(), &storemodels.SavedReport{
		ID:           chi.URLParam(r, "reportID"),
		UserID:       identity.UserID,
		Title:        req.Title,
		Month:        req.Month,
		Year:         req.Year,
		ReportType:   req.ReportType,
		CampaignName: req.CampaignName,
		Data:         blob,
	})
	if errors.Is(err, storemodels.ErrNotFound) {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to update report")
		http.Error(w, "update failed", http.StatusInternalServerError)
		return
	}
	respondOutcome(w, logger, editor.Applied, chi.URLParam(r, "reportID"))
}

func (h *Handler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	err := h.reports.Delete(r.Context(), chi.URLParam(r, "reportID"), identity.UserID)
	if errors.Is(err, storemodels.ErrNotFound) {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to delete report")
		http.Error(w, "delete failed", http.StatusInternalServerError)
		return
	}
	respondOutcome(w, logger, editor.Applied, "")
}
