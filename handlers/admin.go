// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/pointy/auth"
	"github.com/danielhkuo/pointy/cliparse"
	"github.com/danielhkuo/pointy/middleware"
	"github.com/danielhkuo/pointy/session"
)

// AdminHandler serves the operator dashboard endpoints. These authenticate
// with the shared X-Admin-Key header instead of a member token, and they
// bypass both the host check and the reveal-gated vote visibility.
type AdminHandler struct {
	svc *session.Service
	cfg cliparse.Config
}

func NewAdminHandler(svc *session.Service, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{svc: svc, cfg: cfg}
}

// requireAdminKey writes the 401 itself on failure.
func (h *AdminHandler) requireAdminKey(w http.ResponseWriter, r *http.Request) bool {
	if err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), h.cfg.AdminKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, CodeUnauthorized, "Invalid admin key")
		return false
	}
	return true
}

// ListRooms handles GET /admin/rooms
func (h *AdminHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdminKey(w, r) {
		return
	}

	views, err := h.svc.AdminRooms()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, views)
}

// GetRoom handles GET /admin/rooms/{code}
func (h *AdminHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdminKey(w, r) {
		return
	}

	details, err := h.svc.AdminRoomDetails(r.PathValue("code"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, details)
}

// DeleteRoom handles DELETE /admin/rooms/{code}
func (h *AdminHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdminKey(w, r) {
		return
	}

	if err := h.svc.AdminDeleteRoom(r.PathValue("code")); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
