package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hirestack/crm/types"
)

type contextKey string

const (
	contextClaimsKey contextKey = "claims"
	contextUserKey   contextKey = "user"
)

// claimsFromContext returns the verified JWT claims stored by the
// authentication middleware.
func claimsFromContext(ctx context.Context) (jwt.RegisteredClaims, error) {
	claims, ok := ctx.Value(contextClaimsKey).(jwt.RegisteredClaims)
	if !ok {
		return jwt.RegisteredClaims{}, errors.New("missing claims")
	}
	return claims, nil
}

// userIDFromContext derives the authenticated user id from the claims subject.
func userIDFromContext(ctx context.Context) (int, error) {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(strings.TrimSpace(claims.Subject))
	if err != nil || id < 1 {
		return 0, errors.New("invalid subject")
	}
	return id, nil
}

// userFromContext returns the account resolved by the API-key gate.
func userFromContext(ctx context.Context) (types.User, error) {
	user, ok := ctx.Value(contextUserKey).(types.User)
	if !ok {
		return types.User{}, errors.New("missing user")
	}
	return user, nil
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// ErrorResponse is a simple error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a simple acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message"`
}
