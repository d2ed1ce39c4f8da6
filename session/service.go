// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/danielhkuo/pointy/models"
	"github.com/danielhkuo/pointy/store"
)

const (
	// DefaultRoomTTL is how long a room lives before the store expires it.
	DefaultRoomTTL = 24 * time.Hour
	// codeAttempts bounds the collision retry loop in CreateRoom.
	codeAttempts = 5
)

// Service orchestrates room lifecycle, membership, and voting on top of
// the two keyed stores. It holds no state of its own: every call re-reads
// the store, so concurrent pollers always see the latest committed
// records and nothing is cached across requests.
type Service struct {
	rooms        store.RoomStore
	participants store.ParticipantStore
	ttl          time.Duration

	// Swappable in tests to force collisions and fixed clocks.
	generateCode func() (string, error)
	now          func() time.Time
}

// NewService wires the service to its stores. A non-positive ttl selects
// DefaultRoomTTL.
func NewService(rooms store.RoomStore, participants store.ParticipantStore, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultRoomTTL
	}
	return &Service{
		rooms:        rooms,
		participants: participants,
		ttl:          ttl,
		generateCode: GenerateRoomCode,
		now:          time.Now,
	}
}

// NormalizeCode upper-cases a client-typed room code so lookups are
// case-insensitive.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CreateRoom allocates a fresh code and persists the room: not revealed,
// empty topic, expiry at now + TTL. The caller auto-joins the host
// afterwards; if that second write fails the room stays behind until the
// store expires it (accepted single-session failure mode, not rolled
// back).
func (s *Service) CreateRoom(hostID string) (models.Room, error) {
	code, err := s.freshCode()
	if err != nil {
		return models.Room{}, err
	}

	now := s.now()
	room := models.Room{
		RoomCode:  code,
		HostID:    hostID,
		Topic:     "",
		Revealed:  false,
		CreatedAt: now.Unix(),
		ExpiresAt: now.Add(s.ttl).Unix(),
	}
	if err := s.rooms.PutRoom(room); err != nil {
		return models.Room{}, fmt.Errorf("failed to persist room: %w", err)
	}

	slog.Info("room created", "room_code", code, "host_id", hostID)
	return room, nil
}

// freshCode generates candidates until one is unoccupied, up to
// codeAttempts. Two hosts racing to the same candidate can both pass the
// existence check; with a 32^6 code space that lost race is accepted
// rather than closed with a store transaction.
func (s *Service) freshCode() (string, error) {
	for attempt := 1; attempt <= codeAttempts; attempt++ {
		code, err := s.generateCode()
		if err != nil {
			return "", err
		}

		_, err = s.rooms.GetRoom(code)
		if errors.Is(err, store.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check code occupancy: %w", err)
		}
		slog.Warn("room code collision", "room_code", code, "attempt", attempt)
	}
	return "", ErrCodeExhausted
}

// GetRoom returns the room or ErrRoomNotFound.
func (s *Service) GetRoom(code string) (models.Room, error) {
	room, err := s.rooms.GetRoom(NormalizeCode(code))
	if errors.Is(err, store.ErrNotFound) {
		return models.Room{}, ErrRoomNotFound
	}
	if err != nil {
		return models.Room{}, err
	}
	return room, nil
}

// State builds the viewer-specific snapshot for a polling client.
func (s *Service) State(code, viewerID string) (models.RoomState, error) {
	room, err := s.GetRoom(code)
	if err != nil {
		return models.RoomState{}, err
	}
	participants, err := s.participants.ParticipantsByRoom(room.RoomCode)
	if err != nil {
		return models.RoomState{}, err
	}
	return ProjectRoomState(room, participants, viewerID), nil
}

// SetTopic replaces the room topic. Host only.
func (s *Service) SetTopic(code, requesterID, topic string) (models.Room, error) {
	room, err := s.GetRoom(code)
	if err != nil {
		return models.Room{}, err
	}
	if room.HostID != requesterID {
		return models.Room{}, ErrForbidden
	}

	room.Topic = topic
	if err := s.rooms.PutRoom(room); err != nil {
		return models.Room{}, fmt.Errorf("failed to update topic: %w", err)
	}
	slog.Info("topic set", "room_code", room.RoomCode)
	return room, nil
}

// DeleteRoom removes the room and all of its participant records. Host
// only; admins use AdminDeleteRoom.
func (s *Service) DeleteRoom(code, requesterID string) error {
	room, err := s.GetRoom(code)
	if err != nil {
		return err
	}
	if room.HostID != requesterID {
		return ErrForbidden
	}
	return s.removeRoom(room)
}

// removeRoom cascades: participants first, then the room, so a crash
// mid-cascade never leaves orphans behind a live room. Stragglers from the
// reverse window expire with their TTL.
func (s *Service) removeRoom(room models.Room) error {
	participants, err := s.participants.ParticipantsByRoom(room.RoomCode)
	if err != nil {
		return err
	}
	for _, p := range participants {
		if err := s.participants.DeleteParticipant(room.RoomCode, p.MemberID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("failed to cascade participant delete: %w", err)
		}
	}
	if err := s.rooms.DeleteRoom(room.RoomCode); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}

	slog.Info("room deleted", "room_code", room.RoomCode, "participants", len(participants))
	return nil
}

// Join adds a member to the room. Idempotent: a member who already joined
// gets their existing record back with vote and join time untouched. The
// second return value reports whether a new record was created.
func (s *Service) Join(code, memberID, displayName string) (models.Participant, bool, error) {
	room, err := s.GetRoom(code)
	if err != nil {
		return models.Participant{}, false, err
	}

	existing, err := s.participants.GetParticipant(room.RoomCode, memberID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.Participant{}, false, err
	}

	p := models.Participant{
		RoomCode:    room.RoomCode,
		MemberID:    memberID,
		DisplayName: displayName,
		JoinedAt:    s.now().Unix(),
	}
	if err := s.participants.PutParticipant(p, s.remainingTTL(room)); err != nil {
		return models.Participant{}, false, fmt.Errorf("failed to join room: %w", err)
	}

	slog.Info("participant joined", "room_code", room.RoomCode, "member_id", memberID, "display_name", displayName)
	return p, true, nil
}

// Leave removes the membership record. Leaving a room you never joined
// (or a room that is gone) is not an error.
func (s *Service) Leave(code, memberID string) error {
	err := s.participants.DeleteParticipant(NormalizeCode(code), memberID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	slog.Info("participant left", "room_code", NormalizeCode(code), "member_id", memberID)
	return nil
}

// remainingTTL is how long the room has left to live; participant records
// are written with this so they expire alongside their room.
func (s *Service) remainingTTL(room models.Room) time.Duration {
	return time.Unix(room.ExpiresAt, 0).Sub(s.now())
}
