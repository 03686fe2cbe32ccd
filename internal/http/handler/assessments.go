package handler

import (
	"encoding/json"
	"net/http"

	"appraise/internal/apperr"
	"appraise/internal/assessment"
	"appraise/internal/auth"

	"go.uber.org/zap"
)

type AssessmentHandler struct {
	Svc *assessment.Service
	Log *zap.Logger
}

func (h *AssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.UserFromContext(r.Context())

	var body json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.Log.Warn("create assessment: bad json", zap.Error(err))
		writeError(w, apperr.ErrInternal, "Error creating assessment")
		return
	}

	a, err := h.Svc.Create(r.Context(), u.ID, body)
	if err != nil {
		h.Log.Error("create assessment", zap.Uint64("user_id", u.ID), zap.Error(err))
		writeError(w, apperr.ErrInternal, "Error creating assessment")
		return
	}

	writeJSON(w, http.StatusCreated, a)
}

func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.UserFromContext(r.Context())

	list, err := h.Svc.List(r.Context(), u.ID)
	if err != nil {
		h.Log.Error("list assessments", zap.Uint64("user_id", u.ID), zap.Error(err))
		writeError(w, apperr.ErrInternal, "Error fetching assessments")
		return
	}

	writeJSON(w, http.StatusOK, list)
}
