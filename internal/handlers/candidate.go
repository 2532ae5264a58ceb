package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/hirestack/crm/internal/services"
	"github.com/hirestack/crm/types"
)

// CandidateHandler provides HTTP handlers for candidate records.
type CandidateHandler struct {
	candidateService *services.CandidateService
}

// NewCandidateHandler constructs a handler with the provided service.
func NewCandidateHandler(candidateService *services.CandidateService) *CandidateHandler {
	return &CandidateHandler{candidateService: candidateService}
}

// CandidateRouter registers candidate routes on the given router.
// All routes require a verified JWT identity.
func CandidateRouter(
	r chi.Router,
	candidateService *services.CandidateService,
	authMiddleware func(http.Handler) http.Handler,
) {
	handler := NewCandidateHandler(candidateService)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", handler.CreateCandidate)
		r.Get("/", handler.ListCandidates)
	})
}

// CreateCandidate persists a new candidate stamped with the caller's
// user id. The owner always comes from the verified identity, never
// from the request body.
func (h *CandidateHandler) CreateCandidate(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	var req CandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)

	if _, err := h.candidateService.Create(r.Context(), types.Candidate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		UserID:    userID,
	}); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create candidate")
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Message: "candidate added"})
}

// ListCandidates returns the candidates owned by the caller.
func (h *CandidateHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	candidates, err := h.candidateService.ListByUserID(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list candidates")
		return
	}

	writeJSON(w, http.StatusOK, candidates)
}

type CandidateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
