package services

import (
	"context"

	"github.com/hirestack/crm/types"
)

// CandidateRepository defines persistence operations for candidates.
type CandidateRepository interface {
	Create(ctx context.Context, candidate types.Candidate) (types.Candidate, error)
	ListByUserID(ctx context.Context, userID int) ([]types.Candidate, error)
}

// CandidateService encapsulates candidate use-cases.
type CandidateService struct {
	repo CandidateRepository
}

func NewCandidateService(repo CandidateRepository) *CandidateService {
	return &CandidateService{repo: repo}
}

func (s *CandidateService) Create(ctx context.Context, candidate types.Candidate) (types.Candidate, error) {
	return s.repo.Create(ctx, candidate)
}

func (s *CandidateService) ListByUserID(ctx context.Context, userID int) ([]types.Candidate, error) {
	return s.repo.ListByUserID(ctx, userID)
}
