package handler

import (
	"net/http"

	"appraise/internal/auth"
)

type MeHandler struct{}

// Me returns the authenticated user. The password hash is never serialized.
func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.UserFromContext(r.Context())
	writeJSON(w, http.StatusOK, u)
}
