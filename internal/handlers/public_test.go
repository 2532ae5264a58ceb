package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hirestack/crm/internal/services"
	"github.com/hirestack/crm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPublicRouter(userRepo *fakeUserRepo, candidateRepo *fakeCandidateRepo) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/public", func(r chi.Router) {
		PublicRouter(r, services.NewUserService(userRepo), services.NewCandidateService(candidateRepo))
	})
	return r
}

func seededPublicRouter() http.Handler {
	userRepo := &fakeUserRepo{
		users: []types.User{{
			ID:           7,
			FirstName:    "Ada",
			LastName:     "Lovelace",
			Email:        "ada@example.com",
			PasswordHash: "$2a$10$secret-hash",
			APIKey:       "key-7",
		}},
		nextID: 7,
	}
	candidateRepo := &fakeCandidateRepo{
		candidates: []types.Candidate{
			{ID: 1, FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", UserID: 7},
			{ID: 2, FirstName: "Alan", LastName: "Turing", Email: "alan@example.com", UserID: 8},
		},
		nextID: 2,
	}
	return newPublicRouter(userRepo, candidateRepo)
}

func TestPublicProfile(t *testing.T) {
	router := seededPublicRouter()

	rec := postJSON(t, router, "/api/public/profile", `{"api_key":"key-7"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Ada", resp.FirstName)
	assert.Equal(t, "Lovelace", resp.LastName)
	assert.Equal(t, "ada@example.com", resp.Email)

	// Secret material must never appear in the public view.
	body := rec.Body.String()
	assert.NotContains(t, body, "secret-hash")
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "key-7")
}

func TestPublicProfile_UnknownKey(t *testing.T) {
	router := seededPublicRouter()

	rec := postJSON(t, router, "/api/public/profile", `{"api_key":"no-such-key"}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPublicProfile_MissingKey(t *testing.T) {
	router := seededPublicRouter()

	rec := postJSON(t, router, "/api/public/profile", `{}`, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPublicCandidates(t *testing.T) {
	router := seededPublicRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/public/candidate?api_key=key-7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []types.Candidate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Grace", got[0].FirstName)
	assert.Equal(t, 7, got[0].UserID)
}

func TestPublicCandidates_UnknownKey(t *testing.T) {
	router := seededPublicRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/public/candidate?api_key=no-such-key", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPublicCandidates_MissingKey(t *testing.T) {
	router := seededPublicRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/public/candidate", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestExtractAPIKey_QueryWinsOverBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/x?api_key=from-query",
		bytes.NewBufferString(`{"api_key":"from-body"}`))
	assert.Equal(t, "from-query", extractAPIKey(req))
}

func TestPublicGate_StoreFailure(t *testing.T) {
	userRepo := &fakeUserRepo{err: assert.AnError}
	router := newPublicRouter(userRepo, &fakeCandidateRepo{})

	rec := postJSON(t, router, "/api/public/profile", `{"api_key":"key-7"}`, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
