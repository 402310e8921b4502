package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mediadesk/taqrir/pkg/models/store"
)

// Store persists saved-report snapshots. Every query is scoped to a user id,
// so one user can never read or touch another user's rows.
type Store interface {
	Create(ctx context.Context, report *store.SavedReport) (string, error)
	ListByUser(ctx context.Context, userID string) ([]store.SavedReportMeta, error)
	Get(ctx context.Context, id, userID string) (*store.SavedReport, error)
	Update(ctx context.Context, report *store.SavedReport) error
	Delete(ctx context.Context, id, userID string) error
}

type defaultStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &defaultStore{db: db}, nil
}

func (s *defaultStore) Create(ctx context.Context, report *store.SavedReport) (string, error) {
	id := report.ID
	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reports (id, user_id, title, month, year, report_type, campaign_name, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, report.UserID, report.Title, report.Month, report.Year,
		report.ReportType, report.CampaignName, string(report.Data), now, now,
	)
	if err != nil {
		return "", fmt.Errorf("insert report: %w", err)
	}
	return id, nil
}

// ListByUser returns snapshot metadata, most recent first.
func (s *defaultStore) ListByUser(ctx context.Context, userID string) ([]store.SavedReportMeta, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, month, year, COALESCE(report_type, ''), COALESCE(campaign_name, ''), created_at, updated_at
		FROM reports
		WHERE user_id = ?
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var metas []store.SavedReportMeta
	for rows.Next() {
		var m store.SavedReportMeta
		err := rows.Scan(&m.ID, &m.Title, &m.Month, &m.Year, &m.ReportType, &m.CampaignName, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		metas = append(metas, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate report rows: %w", err)
	}
	return metas, nil
}

func (s *defaultStore) Get(ctx context.Context, id, userID string) (*store.SavedReport, error) {
	var r store.SavedReport
	var data string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, month, year, COALESCE(report_type, ''), COALESCE(campaign_name, ''), data, created_at, updated_at
		FROM reports
		WHERE id = ? AND user_id = ?`,
		id, userID,
	).Scan(&r.ID, &r.UserID, &r.Title, &r.Month, &r.Year, &r.ReportType, &r.CampaignName, &data, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	r.Data = []byte(data)
	return &r, nil
}

func (s *defaultStore) Update(ctx context.Context, report *store.SavedReport) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE reports
		SET title = ?, month = ?, year = ?, report_type = ?, campaign_name = ?, data = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		report.Title, report.Month, report.Year, report.ReportType, report.CampaignName,
		string(report.Data), time.Now().UTC(), report.ID, report.UserID,
	)
	if err != nil {
		return fmt.Errorf("update report: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update report: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *defaultStore) Delete(ctx context.Context, id, userID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM reports WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
