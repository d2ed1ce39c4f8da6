// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists Room and Participant records in a keyed store.

# Contract

Two narrow interfaces cover everything the session layer needs:

	store.RoomStore        - put/get/delete by room code, plus AllRooms
	store.ParticipantStore - put/get/delete by (room code, member id),
	                         plus the per-room partition query

Both provide read-after-write consistency on a single key. Multi-record
sequences (delete cascade, reset vote clearing) are the session layer's
problem and are intentionally not transactional here.

# BuntDB Implementation

BuntStore backs both interfaces with a single BuntDB database:

	st, err := store.Open(cfg.DatabasePath) // file path or ":memory:"
	defer st.Close()

Keys are "room:<code>" and "participant:<code>:<member>". The partition
query is a prefix scan over "participant:<code>:*".

# Expiry

Every record is written with buntdb.SetOptions{Expires: true}. Rooms derive
their TTL from Room.ExpiresAt; participants are written with the room's
remaining TTL, so they never outlive their room by more than the documented
failure windows. Expired keys vanish inside the store - there is no sweeper
in this codebase.

# Errors

ErrNotFound covers missing and already-expired records. Any other failure
is wrapped in ErrUnavailable and propagated untouched; callers do not
retry.
*/
package store
