package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/hirestack/crm/types"
)

func setupCandidateMock(t *testing.T) (*CandidateRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewCandidateRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func TestCandidateRepository_Create(t *testing.T) {
	repo, mock, cleanup := setupCandidateMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO candidates (first_name, last_name, email, user_id, created_at)`)).
		WithArgs("Grace", "Hopper", "grace@example.com", 7, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	created, err := repo.Create(context.Background(), types.Candidate{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		UserID:    7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 11 {
		t.Errorf("expected id 11, got %d", created.ID)
	}
	if created.UserID != 7 {
		t.Errorf("expected owner 7, got %d", created.UserID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCandidateRepository_ListByUserID(t *testing.T) {
	repo, mock, cleanup := setupCandidateMock(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "user_id", "created_at"}).
		AddRow(1, "Grace", "Hopper", "grace@example.com", 7, now).
		AddRow(2, "Alan", "Turing", "alan@example.com", 7, now)

	mock.ExpectQuery("SELECT (.+) FROM candidates").
		WithArgs(7).
		WillReturnRows(rows)

	candidates, err := repo.ListByUserID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].ID != 1 || candidates[1].ID != 2 {
		t.Errorf("unexpected order: %+v", candidates)
	}
	for _, c := range candidates {
		if c.UserID != 7 {
			t.Errorf("expected owner 7, got %d", c.UserID)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCandidateRepository_ListByUserID_Empty(t *testing.T) {
	repo, mock, cleanup := setupCandidateMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM candidates").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "user_id", "created_at"}))

	candidates, err := repo.ListByUserID(context.Background(), 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if candidates == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(candidates) != 0 {
		t.Errorf("expected no candidates, got %d", len(candidates))
	}
}

func TestCandidateRepository_ListByUserID_Error(t *testing.T) {
	repo, mock, cleanup := setupCandidateMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM candidates").
		WithArgs(7).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListByUserID(context.Background(), 7)
	if err == nil {
		t.Errorf("expected error, got nil")
	}
}
