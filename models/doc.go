// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Vote Values

Votes are a tagged variant over the fixed ladder {1, 2, 3, 5, 8, 13, 21}
plus the "?" sentinel for "unsure":

	v := models.NumericVote(5)
	u := models.UnsureVote()

On the wire a numeric vote is a JSON number and an unsure vote is the
string "?". Vote.UnmarshalJSON is strict: anything outside the ladder
yields ErrInvalidVote at the decoding boundary.

# Request Types

Types for parsing incoming JSON:

  - CreateRoomRequest: displayName (optional, defaults to "Host")
  - JoinRoomRequest: displayName
  - SetTopicRequest: topic
  - VoteRequest: vote (ladder number or "?")

# Response Types

Types for JSON responses:

  - CreateRoomResponse: roomCode
  - JoinRoomResponse: message, participant (re-join case)
  - SetTopicResponse: topic
  - VoteResponse: vote
  - RevealResponse / ResetResponse: confirmation flags
  - ErrorResponse: error, code, message

ErrorResponse.Code is a stable machine discriminator (e.g. "room_not_found",
"forbidden", "invalid_vote") so clients disambiguate outcomes without
string-matching messages.

# Domain Types

Persisted record shapes:

  - Room: one estimation session, keyed by room code, owned by a host
  - Participant: one member's membership and vote within a room, keyed by
    (roomCode, memberId)

Timestamps are unix seconds; Participant.VotedAt is unix milliseconds and
orders votes for the first-seen mode tie-break.

# Projections

Derived, never persisted:

  - RoomState: the viewer-specific snapshot a polling client receives
  - ParticipantView: per-member entry with the vote hidden until reveal
  - VoteStats: average and mode over the numeric votes
  - RoomAdminView / RoomAdminDetails: operator dashboard views
*/
package models
