package handlers

import (
	"context"

	"github.com/hirestack/crm/internal/store"
	"github.com/hirestack/crm/types"
)

// fakeUserRepo is an in-memory UserRepository for handler tests.
type fakeUserRepo struct {
	users  []types.User
	nextID int
	err    error
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (types.User, error) {
	if f.err != nil {
		return types.User{}, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (types.User, error) {
	if f.err != nil {
		return types.User{}, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (f *fakeUserRepo) GetByAPIKey(ctx context.Context, apiKey string) (types.User, error) {
	if f.err != nil {
		return types.User{}, f.err
	}
	for _, u := range f.users {
		if u.APIKey == apiKey {
			return u, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, user types.User) (types.User, error) {
	if f.err != nil {
		return types.User{}, f.err
	}
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, user)
	return user, nil
}

// fakeCandidateRepo is an in-memory CandidateRepository for handler tests.
type fakeCandidateRepo struct {
	candidates []types.Candidate
	nextID     int
	err        error
}

func (f *fakeCandidateRepo) Create(ctx context.Context, candidate types.Candidate) (types.Candidate, error) {
	if f.err != nil {
		return types.Candidate{}, f.err
	}
	f.nextID++
	candidate.ID = f.nextID
	f.candidates = append(f.candidates, candidate)
	return candidate, nil
}

func (f *fakeCandidateRepo) ListByUserID(ctx context.Context, userID int) ([]types.Candidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	owned := make([]types.Candidate, 0)
	for _, c := range f.candidates {
		if c.UserID == userID {
			owned = append(owned, c)
		}
	}
	return owned, nil
}
