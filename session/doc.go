// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session implements the room state machine and its mutation
protocol: lifecycle, membership, voting, and the per-viewer projection.

# Service

Service is constructed with explicit store handles (never process-wide
singletons) and is safe for concurrent use because it keeps no state of
its own - all shared state lives in the stores and every call re-reads
them:

	svc := session.NewService(rooms, participants, 24*time.Hour)

# Room Lifecycle

A room moves through a small machine:

	Open(revealed=false) --vote--> Open          (self-loop)
	Open --host reveal--> Revealed(revealed=true)
	Revealed --host reset--> Open                (topic and votes cleared)
	any --host delete / TTL expiry--> Closed     (record absent, terminal)

Joining and leaving are orthogonal and legal in any non-Closed state.
Reveal is purely a visibility transition; it never mutates votes.

# Codes

CreateRoom draws 6-character codes from a 32-symbol alphabet with the
ambiguous I/O/0/1 removed, retrying on collision up to five times before
failing with ErrCodeExhausted. The existence-check-then-write pair is not
transactional: two hosts can race to the same candidate. With a 32^6 space
this is accepted and logged rather than locked away.

# Voting

SubmitVote accepts only the fixed ladder {1, 2, 3, 5, 8, 13, 21, "?"},
rejects votes once the room is revealed (ErrRoomRevealed), and requires an
existing participant (ErrParticipantNotFound). ComputeVoteStats averages
the numeric votes (round-half-up, one decimal) and picks the mode with a
first-seen-in-submission-order tie-break keyed on Participant.VotedAt.

# Projection

ProjectRoomState is a pure function of (room, participants, viewer):
the viewer's own vote is always visible, others' votes are hidden until
reveal, and stats appear only once revealed.

# Multi-record Writes

Three sequences span multiple records and are deliberately not atomic:
create-then-host-join, the delete cascade, and reset's vote clearing.
Each individual write is atomic; a poller can observe the documented
intermediate states for at most the duration of one call. Participant
records carry the room's remaining TTL, so any stragglers expire with the
room.

# Errors

ErrRoomNotFound, ErrParticipantNotFound, ErrForbidden, ErrRoomRevealed,
and ErrCodeExhausted (plus models.ErrInvalidVote and the store package's
ErrUnavailable) are distinct sentinels so the HTTP layer can map each to a
stable outcome. Authorization failures return ErrForbidden and leave the
room untouched - never a silent no-op.
*/
package session
