package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/hirestack/crm/internal/directory"
)

// ProxyHandler forwards API-key lookups to the directory service and
// relays the upstream response verbatim.
type ProxyHandler struct {
	client *directory.Client
}

// NewProxyHandler constructs a handler with the provided client.
func NewProxyHandler(client *directory.Client) *ProxyHandler {
	return &ProxyHandler{client: client}
}

// ProxyRouter registers the pass-through routes on the given router.
func ProxyRouter(r chi.Router, client *directory.Client) {
	handler := NewProxyHandler(client)

	r.Post("/fetch-profile", handler.FetchProfile)
	r.Get("/fetch-candidates", handler.FetchCandidates)
}

// FetchProfile reads an API key from the request body and forwards it
// to the directory profile endpoint.
func (h *ProxyHandler) FetchProfile(w http.ResponseWriter, r *http.Request) {
	var req ProxyProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	apiKey := strings.TrimSpace(req.APIKey)
	if apiKey == "" {
		writeError(w, http.StatusBadRequest, "api key is required")
		return
	}

	resp, err := h.client.FetchProfile(r.Context(), apiKey)
	h.relay(w, resp, err)
}

// FetchCandidates reads an API key from the query string and forwards
// it to the directory candidate endpoint.
func (h *ProxyHandler) FetchCandidates(w http.ResponseWriter, r *http.Request) {
	apiKey := strings.TrimSpace(r.URL.Query().Get("api_key"))
	if apiKey == "" {
		writeError(w, http.StatusBadRequest, "api key is required")
		return
	}

	resp, err := h.client.FetchCandidates(r.Context(), apiKey)
	h.relay(w, resp, err)
}

// relay writes the upstream reply through unchanged. Transport
// failures collapse to a generic server error; an upstream HTTP error
// status is still a reply and is passed along as-is.
func (h *ProxyHandler) relay(w http.ResponseWriter, resp directory.Response, err error) {
	if err != nil {
		if errors.Is(err, directory.ErrRequestSetup) {
			writeError(w, http.StatusInternalServerError, "failed to build upstream request")
			return
		}
		writeError(w, http.StatusInternalServerError, "no response from directory service")
		return
	}

	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(resp.Body)
}

type ProxyProfileRequest struct {
	APIKey string `json:"api_key"`
}
