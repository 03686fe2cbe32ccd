package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"appraise/internal/apperr"
	"appraise/internal/auth"

	"go.uber.org/zap"
)

type AuthHandler struct {
	Users auth.UserStore
	JWT   *auth.JWT
	Log   *zap.Logger
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResp struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	const failMsg = "Error creating user"

	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Log.Warn("register: bad json", zap.Error(err))
		writeError(w, apperr.ErrInternal, failMsg)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	_, err := h.Users.FindByEmail(r.Context(), req.Email)
	switch {
	case err == nil:
		writeError(w, apperr.ErrConflict, "Email already registered")
		return
	case !errors.Is(err, apperr.ErrNotFound):
		h.Log.Error("register: lookup user", zap.Error(err))
		writeError(w, apperr.ErrInternal, failMsg)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.Log.Error("register: hash password", zap.Error(err))
		writeError(w, apperr.ErrInternal, failMsg)
		return
	}

	u, err := h.Users.Insert(r.Context(), &auth.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Assessments:  []string{},
	})
	if err != nil {
		// lost a race with a concurrent registration of the same email
		if errors.Is(err, apperr.ErrConflict) {
			writeError(w, apperr.ErrConflict, "Email already registered")
			return
		}
		h.Log.Error("register: insert user", zap.Error(err))
		writeError(w, apperr.ErrInternal, failMsg)
		return
	}

	token, err := h.JWT.Sign(u.ID)
	if err != nil {
		h.Log.Error("register: sign token", zap.Error(err))
		writeError(w, apperr.ErrInternal, failMsg)
		return
	}

	h.Log.Info("user registered", zap.Uint64("user_id", u.ID))
	writeJSON(w, http.StatusCreated, tokenResp{Token: token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	const failMsg = "Error logging in"

	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Log.Warn("login: bad json", zap.Error(err))
		writeError(w, apperr.ErrInternal, failMsg)
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	u, err := h.Users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeError(w, apperr.ErrUnauthorized, "Invalid credentials")
			return
		}
		h.Log.Error("login: lookup user", zap.Error(err))
		writeError(w, apperr.ErrInternal, failMsg)
		return
	}
	if !auth.ComparePassword(u.PasswordHash, req.Password) {
		writeError(w, apperr.ErrUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.JWT.Sign(u.ID)
	if err != nil {
		h.Log.Error("login: sign token", zap.Error(err))
		writeError(w, apperr.ErrInternal, failMsg)
		return
	}

	writeJSON(w, http.StatusOK, tokenResp{Token: token})
}
