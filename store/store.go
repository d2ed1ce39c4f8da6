// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"time"

	"github.com/danielhkuo/pointy/models"
)

var (
	// ErrNotFound is returned when the requested record does not exist
	// (including records the store has already expired).
	ErrNotFound = errors.New("record not found")
	// ErrUnavailable wraps transient store failures. The service layer
	// propagates these untouched; it never retries store operations.
	ErrUnavailable = errors.New("store unavailable")
)

// RoomStore is the keyed store of Room records, one per active session.
type RoomStore interface {
	PutRoom(room models.Room) error
	GetRoom(code string) (models.Room, error)
	DeleteRoom(code string) error
	AllRooms() ([]models.Room, error)
}

// ParticipantStore is the keyed store of Participant records, keyed by the
// (room code, member id) composite. Records are written with a TTL so
// participants of an expired room expire with it.
type ParticipantStore interface {
	PutParticipant(p models.Participant, ttl time.Duration) error
	GetParticipant(code, memberID string) (models.Participant, error)
	DeleteParticipant(code, memberID string) error
	ParticipantsByRoom(code string) ([]models.Participant, error)
}
