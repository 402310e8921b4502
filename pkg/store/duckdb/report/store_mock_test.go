package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mediadesk/taqrir/pkg/models/store"
)

// Driver-level failure paths that an in-memory database cannot produce.

func TestReportStore_Create_DriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO reports").
		WillReturnError(errors.New("disk full"))

	s, err := NewStore(db)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	_, err = s.Create(context.Background(), sampleReport("user-1", "تقرير"))
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestReportStore_Update_NoRowsAffected(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE reports").
		WillReturnResult(sqlmock.NewResult(0, 0))

	s, err := NewStore(db)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	r := sampleReport("user-1", "تقرير")
	r.ID = "missing"
	err = s.Update(context.Background(), r)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestReportStore_Get_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	cols := []string{
		"id", "user_id", "title", "month", "year",
		"report_type", "campaign_name", "data", "created_at", "updated_at",
	}
	now := time.Now()
	rows := sqlmock.NewRows(cols).
		AddRow("r1", "user-1", "تقرير", "نوفمبر", "2025", "", "", "{}", now, now).
		RowError(0, errors.New("connection reset"))

	mock.ExpectQuery("SELECT (.+) FROM reports").
		WillReturnRows(rows)

	s, err := NewStore(db)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	_, err = s.Get(context.Background(), "r1", "user-1")
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
