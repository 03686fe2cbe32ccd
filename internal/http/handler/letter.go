package handler

import (
	"errors"
	"net/http"

	"appraise/internal/apperr"
	"appraise/internal/assessment"
	"appraise/internal/auth"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type letterResp struct {
	Success    bool                   `json:"success"`
	Assessment *assessment.Assessment `json:"assessment"`
}

// GenerateLetter locates the caller's assessment. Rendering the letter itself
// is not implemented yet; the assessment is returned as-is.
func (h *AssessmentHandler) GenerateLetter(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.UserFromContext(r.Context())
	id := chi.URLParam(r, "assessmentId")

	a, err := h.Svc.Get(r.Context(), u.ID, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeError(w, err, "Assessment not found")
			return
		}
		h.Log.Error("generate letter", zap.String("assessment_id", id), zap.Error(err))
		writeError(w, apperr.ErrInternal, "Error generating letter")
		return
	}

	writeJSON(w, http.StatusOK, letterResp{Success: true, Assessment: a})
}
