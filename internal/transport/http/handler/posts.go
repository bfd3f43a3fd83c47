package handler

import (
	"net/http"

	"github.com/oncampus-api/internal/application/post"
	"github.com/oncampus-api/internal/transport/http/middleware"
)

// PostHandler handles post media endpoints.
type PostHandler struct {
	svc post.Service
}

func NewPostHandler(svc post.Service) *PostHandler {
	return &PostHandler{svc: svc}
}

func (h *PostHandler) UploadURL(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	target, err := h.svc.UploadURL(r.Context(), claims.Subject)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, target)
}
