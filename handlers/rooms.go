// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pointy/cliparse"
	"github.com/danielhkuo/pointy/middleware"
	"github.com/danielhkuo/pointy/models"
	"github.com/danielhkuo/pointy/session"
)

type RoomHandler struct {
	svc *session.Service
	cfg cliparse.Config
}

func NewRoomHandler(svc *session.Service, cfg cliparse.Config) *RoomHandler {
	return &RoomHandler{svc: svc, cfg: cfg}
}

// CreateRoom handles POST /rooms
//
// The body is optional; an absent or empty one defaults the host's display
// name. The host is auto-joined so the first state poll already shows them
// in the roster.
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	hostID, ok := requireIdentity(w, r, h.cfg.JWTSecret)
	if !ok {
		return
	}

	var req models.CreateRoomRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, CodeBadRequest, "Invalid JSON")
		return
	}
	if req.DisplayName == "" {
		req.DisplayName = "Host"
	}

	room, err := h.svc.CreateRoom(hostID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if _, _, err := h.svc.Join(room.RoomCode, hostID, req.DisplayName); err != nil {
		slog.Error("host auto-join failed", "room_code", room.RoomCode, "error", err)
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateRoomResponse{
		RoomCode: room.RoomCode,
	})
}

// GetRoom handles GET /rooms/{code}
//
// This is the polling endpoint: clients hit it every couple of seconds and
// get the state projected for their identity.
func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := requireIdentity(w, r, h.cfg.JWTSecret)
	if !ok {
		return
	}

	state, err := h.svc.State(r.PathValue("code"), viewerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, state)
}

// DeleteRoom handles DELETE /rooms/{code}
func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := requireIdentity(w, r, h.cfg.JWTSecret)
	if !ok {
		return
	}

	if err := h.svc.DeleteRoom(r.PathValue("code"), requesterID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Join handles POST /rooms/{code}/join
//
// First join returns 201 with the participant record; a repeat join from
// the same member returns 200 with the existing record untouched.
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	memberID, ok := requireIdentity(w, r, h.cfg.JWTSecret)
	if !ok {
		return
	}

	var req models.JoinRoomRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, CodeBadRequest, "Invalid JSON")
		return
	}
	if req.DisplayName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, CodeBadRequest, "displayName is required")
		return
	}

	p, created, err := h.svc.Join(r.PathValue("code"), memberID, req.DisplayName)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if !created {
		middleware.JSONResponse(w, http.StatusOK, models.JoinRoomResponse{
			Message:     "Already joined",
			Participant: p,
		})
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.JoinRoomResponse{
		Message:     "Joined",
		Participant: p,
	})
}

// Leave handles DELETE /rooms/{code}/leave
//
// Always 204: leaving a room you never joined is a no-op, not an error.
func (h *RoomHandler) Leave(w http.ResponseWriter, r *http.Request) {
	memberID, ok := requireIdentity(w, r, h.cfg.JWTSecret)
	if !ok {
		return
	}

	if err := h.svc.Leave(r.PathValue("code"), memberID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetTopic handles POST /rooms/{code}/topic
func (h *RoomHandler) SetTopic(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := requireIdentity(w, r, h.cfg.JWTSecret)
	if !ok {
		return
	}

	var req models.SetTopicRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, CodeBadRequest, "Invalid JSON")
		return
	}

	room, err := h.svc.SetTopic(r.PathValue("code"), requesterID, req.Topic)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SetTopicResponse{
		Topic: room.Topic,
	})
}
