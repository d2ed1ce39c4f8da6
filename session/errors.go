// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import "errors"

var (
	// ErrRoomNotFound means the room record is absent (deleted or expired).
	ErrRoomNotFound = errors.New("room not found")
	// ErrParticipantNotFound means a voting action came from a member who
	// never joined the room. Votes never auto-join.
	ErrParticipantNotFound = errors.New("participant not found")
	// ErrForbidden means a non-host attempted a host-only action.
	ErrForbidden = errors.New("requester is not the room host")
	// ErrRoomRevealed means a vote arrived after the reveal; votes are
	// frozen until the next reset.
	ErrRoomRevealed = errors.New("votes are already revealed")
	// ErrCodeExhausted means every generated room code collided within the
	// bounded retry budget.
	ErrCodeExhausted = errors.New("room code attempts exhausted")
)
