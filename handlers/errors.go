// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pointy/auth"
	"github.com/danielhkuo/pointy/middleware"
	"github.com/danielhkuo/pointy/models"
	"github.com/danielhkuo/pointy/session"
)

// Stable error codes clients branch on. The message text alongside them
// can change; these cannot.
const (
	CodeRoomNotFound        = "room_not_found"
	CodeParticipantNotFound = "participant_not_found"
	CodeForbidden           = "forbidden"
	CodeInvalidVote         = "invalid_vote"
	CodeRoomRevealed        = "room_revealed"
	CodeCodeExhausted       = "code_exhausted"
	CodeStoreUnavailable    = "store_unavailable"
	CodeUnauthorized        = "unauthorized"
	CodeBadRequest          = "bad_request"
)

// writeServiceError maps a session-layer error onto the HTTP surface.
// Anything unrecognized is treated as a store failure: logged with detail,
// reported without it.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrRoomNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, CodeRoomNotFound, "Room not found")
	case errors.Is(err, session.ErrParticipantNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, CodeParticipantNotFound, "You have not joined this room")
	case errors.Is(err, session.ErrForbidden):
		middleware.ErrorResponse(w, http.StatusForbidden, CodeForbidden, "Only the host may do that")
	case errors.Is(err, models.ErrInvalidVote):
		middleware.ErrorResponse(w, http.StatusBadRequest, CodeInvalidVote, "Vote must be 1, 2, 3, 5, 8, 13, 21, or \"?\"")
	case errors.Is(err, session.ErrRoomRevealed):
		middleware.ErrorResponse(w, http.StatusConflict, CodeRoomRevealed, "Votes are already revealed; reset the room first")
	case errors.Is(err, session.ErrCodeExhausted):
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, CodeCodeExhausted, "Could not allocate a room code; try again")
	default:
		// store.ErrUnavailable and anything else unexpected land here.
		slog.Error("store failure", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, CodeStoreUnavailable, "Storage error")
	}
}

// requireIdentity authenticates the request and writes the 401 itself on
// failure. The second return value reports whether the caller may proceed.
func requireIdentity(w http.ResponseWriter, r *http.Request, secret string) (string, bool) {
	memberID, err := auth.MemberIdentity(r, secret)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, CodeUnauthorized, "A valid bearer token is required")
		return "", false
	}
	return memberID, true
}
