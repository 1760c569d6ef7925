package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"adpilot/internal/core/port"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.auth.Register(r.Context(), req.Email, req.Password, req.FullName)
	switch {
	case errors.Is(err, port.ErrEmailTaken):
		h.writeError(w, http.StatusBadRequest, "Email already in use")
	case errors.Is(err, port.ErrInvalidRequest):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		h.logger.Error("register error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
	default:
		h.writeJSON(w, http.StatusOK, res)
	}
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.auth.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, port.ErrInvalidCredentials):
		h.writeError(w, http.StatusBadRequest, "Invalid credentials")
	case err != nil:
		h.logger.Error("login error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
	default:
		h.writeJSON(w, http.StatusOK, res)
	}
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		h.writeError(w, http.StatusUnauthorized, "Invalid or missing Authorization header")
		return
	}
	user, err := h.auth.Me(r.Context(), token)
	switch {
	case errors.Is(err, port.ErrUnauthorized):
		h.writeError(w, http.StatusUnauthorized, "Invalid token or user not found")
	case err != nil:
		h.logger.Error("me error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
	default:
		h.writeJSON(w, http.StatusOK, user)
	}
}
