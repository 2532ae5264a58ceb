package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/hirestack/crm/types"
)

// CandidateRepository handles persistence for candidates.
type CandidateRepository struct {
	db *sql.DB
}

func NewCandidateRepository(db *sql.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

func (r *CandidateRepository) Create(ctx context.Context, candidate types.Candidate) (types.Candidate, error) {
	candidate.CreatedAt = time.Now()

	const query = `
		INSERT INTO candidates (first_name, last_name, email, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		candidate.FirstName,
		candidate.LastName,
		candidate.Email,
		candidate.UserID,
		candidate.CreatedAt,
	).Scan(&candidate.ID); err != nil {
		return types.Candidate{}, err
	}
	return candidate, nil
}

// ListByUserID returns every candidate owned by the given user,
// ordered by id.
func (r *CandidateRepository) ListByUserID(ctx context.Context, userID int) ([]types.Candidate, error) {
	const query = `
		SELECT id, first_name, last_name, email, user_id, created_at
		FROM candidates
		WHERE user_id = $1
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := make([]types.Candidate, 0)
	for rows.Next() {
		var candidate types.Candidate
		if err := rows.Scan(
			&candidate.ID,
			&candidate.FirstName,
			&candidate.LastName,
			&candidate.Email,
			&candidate.UserID,
			&candidate.CreatedAt,
		); err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return candidates, nil
}
