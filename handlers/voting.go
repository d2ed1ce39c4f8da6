// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/pointy/cliparse"
	"github.com/danielhkuo/pointy/middleware"
	"github.com/danielhkuo/pointy/models"
	"github.com/danielhkuo/pointy/session"
)

type VotingHandler struct {
	svc *session.Service
	cfg cliparse.Config
}

func NewVotingHandler(svc *session.Service, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{svc: svc, cfg: cfg}
}

// Vote handles POST /rooms/{code}/vote
//
// The vote value is validated at decode time: Vote.UnmarshalJSON rejects
// anything off the ladder, so an off-ladder number and a malformed body
// both stop here, but with distinct codes.
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	memberID, ok := requireIdentity(w, r, h.cfg.JWTSecret)
	if !ok {
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		if errors.Is(err, models.ErrInvalidVote) {
			writeServiceError(w, models.ErrInvalidVote)
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, CodeBadRequest, "Invalid JSON")
		return
	}
	if req.Vote == nil {
		writeServiceError(w, models.ErrInvalidVote)
		return
	}

	p, err := h.svc.SubmitVote(r.PathValue("code"), memberID, *req.Vote)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Vote: p.Vote,
	})
}

// Reveal handles POST /rooms/{code}/reveal
func (h *VotingHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := requireIdentity(w, r, h.cfg.JWTSecret)
	if !ok {
		return
	}

	room, err := h.svc.Reveal(r.PathValue("code"), requesterID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RevealResponse{
		Revealed: room.Revealed,
	})
}

// Reset handles POST /rooms/{code}/reset
func (h *VotingHandler) Reset(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := requireIdentity(w, r, h.cfg.JWTSecret)
	if !ok {
		return
	}

	if err := h.svc.Reset(r.PathValue("code"), requesterID); err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{
		Reset: true,
	})
}
