package handler

import (
	"encoding/json"
	"net/http"

	"github.com/oncampus-api/internal/application/profile"
	"github.com/oncampus-api/internal/domain"
	"github.com/oncampus-api/internal/transport/http/middleware"
)

// ProfileHandler handles profile update and search endpoints.
type ProfileHandler struct {
	svc profile.Service
}

func NewProfileHandler(svc profile.Service) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.Update(r.Context(), claims.Subject, req); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "profile updated"})
}

func (h *ProfileHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("string")
	if query == "" {
		writeError(w, http.StatusBadRequest, "query string required")
		return
	}
	profiles, err := h.svc.Search(r.Context(), query)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}
