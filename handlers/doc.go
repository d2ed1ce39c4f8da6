// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Pointy API.

# Handler Types

Each handler is a struct with service and config dependencies:

  - RoomHandler: Room lifecycle and membership (create, state, join, leave, topic, delete)
  - VotingHandler: Vote submission and the reveal/reset cycle
  - AdminHandler: Operator dashboard (list, inspect, delete any room)

Handlers are created via constructor functions that accept *session.Service
and Config:

	roomHandler := handlers.NewRoomHandler(svc, cfg)

# Session Flow

A room is created by its host and polled by everyone:

	POST   /rooms               → CreateRoom (auto-joins the host, returns roomCode)
	GET    /rooms/{code}        → GetRoom (viewer-specific projection; the polling endpoint)
	POST   /rooms/{code}/join   → Join (201 new, 200 repeat)
	DELETE /rooms/{code}/leave  → Leave (always 204)
	POST   /rooms/{code}/topic  → SetTopic (host only)
	DELETE /rooms/{code}        → DeleteRoom (host only)

	POST   /rooms/{code}/vote   → Vote (ladder values or "?", closed once revealed)
	POST   /rooms/{code}/reveal → Reveal (host only)
	POST   /rooms/{code}/reset  → Reset (host only; clears topic and votes)

Session operations require a bearer JWT; the token's "sub" claim is the
member identity used for host checks and participant records.

# Error Codes

Every error body carries a stable code string alongside the HTTP status:

	room_not_found, participant_not_found  404
	forbidden                              403
	invalid_vote, bad_request              400
	room_revealed                          409
	code_exhausted                         503
	store_unavailable                      500
	unauthorized                           401

Clients branch on the code, never on the message text.

# Admin Dashboard

Operator endpoints authenticate with the X-Admin-Key header:

	GET    /admin/rooms        → ListRooms
	GET    /admin/rooms/{code} → GetRoom (votes visible regardless of reveal)
	DELETE /admin/rooms/{code} → DeleteRoom (no host check)
*/
package handlers
