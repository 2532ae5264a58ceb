package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/hirestack/crm/internal/services"
	"github.com/hirestack/crm/internal/store"
)

// PublicHandler serves the directory service's API-key endpoints.
type PublicHandler struct {
	userService      *services.UserService
	candidateService *services.CandidateService
}

// NewPublicHandler constructs a handler with the provided services.
func NewPublicHandler(userService *services.UserService, candidateService *services.CandidateService) *PublicHandler {
	return &PublicHandler{
		userService:      userService,
		candidateService: candidateService,
	}
}

// PublicRouter registers the public API routes on the given router.
func PublicRouter(r chi.Router, userService *services.UserService, candidateService *services.CandidateService) {
	handler := NewPublicHandler(userService, candidateService)

	r.Group(func(r chi.Router) {
		r.Use(handler.RequireAPIKey)
		r.Post("/profile", handler.Profile)
		r.Get("/candidate", handler.Candidates)
	})
}

// RequireAPIKey resolves the presented API key to an account exactly
// once and stores it in the request context. A missing key is
// forbidden; a key that matches no account is not found. Handlers
// never see an unresolved key.
func (h *PublicHandler) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := extractAPIKey(r)
		if apiKey == "" {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}

		user, err := h.userService.GetByAPIKey(r.Context(), apiKey)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusNotFound, "user not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to verify api key")
			return
		}

		ctx := context.WithValue(r.Context(), contextUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Profile returns the key owner's name and email. The password hash
// and the key itself are never serialized.
func (h *PublicHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := userFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	})
}

// Candidates returns the candidates owned by the key owner.
func (h *PublicHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	user, err := userFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	candidates, err := h.candidateService.ListByUserID(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list candidates")
		return
	}

	writeJSON(w, http.StatusOK, candidates)
}

// extractAPIKey pulls the key from the query string or, failing that,
// from a JSON request body.
func extractAPIKey(r *http.Request) string {
	if key := strings.TrimSpace(r.URL.Query().Get("api_key")); key != "" {
		return key
	}
	if r.Body == nil {
		return ""
	}
	var req struct {
		APIKey string `json:"api_key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return ""
	}
	return strings.TrimSpace(req.APIKey)
}

// ProfileResponse is the public view of an account.
type ProfileResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
