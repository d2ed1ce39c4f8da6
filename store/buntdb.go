// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/buntdb"

	"github.com/danielhkuo/pointy/models"
)

const (
	roomPrefix        = "room:"
	participantPrefix = "participant:"
)

// BuntStore keeps rooms and participants in a single BuntDB database
// (a file path, or ":memory:" for an ephemeral store). Every record is
// written with a TTL, so expiry happens inside the store; nothing in this
// codebase sweeps for stale rooms.
//
// BuntStore satisfies both RoomStore and ParticipantStore; main passes the
// same instance for both roles.
type BuntStore struct {
	db *buntdb.DB
}

// Open opens (or creates) the database at path.
func Open(path string) (*BuntStore, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return &BuntStore{db: db}, nil
}

func (s *BuntStore) Close() error {
	return s.db.Close()
}

func roomKey(code string) string {
	return roomPrefix + code
}

func participantKey(code, memberID string) string {
	return participantPrefix + code + ":" + memberID
}

// mapErr translates BuntDB errors into the store taxonomy.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, buntdb.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// setOptions builds per-key expiry options. A non-positive TTL means the
// record is already past its expiry; one second keeps the write atomic
// while letting the store reap it immediately after.
func setOptions(ttl time.Duration) *buntdb.SetOptions {
	if ttl <= 0 {
		ttl = time.Second
	}
	return &buntdb.SetOptions{Expires: true, TTL: ttl}
}

func (s *BuntStore) PutRoom(room models.Room) error {
	val, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}
	ttl := time.Until(time.Unix(room.ExpiresAt, 0))
	return mapErr(s.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(roomKey(room.RoomCode), string(val), setOptions(ttl))
		return err
	}))
}

func (s *BuntStore) GetRoom(code string) (models.Room, error) {
	var raw string
	err := s.db.View(func(tx *buntdb.Tx) error {
		var err error
		raw, err = tx.Get(roomKey(code))
		return err
	})
	if err != nil {
		return models.Room{}, mapErr(err)
	}

	var room models.Room
	if err := json.Unmarshal([]byte(raw), &room); err != nil {
		return models.Room{}, fmt.Errorf("%w: corrupt room record: %v", ErrUnavailable, err)
	}
	return room, nil
}

func (s *BuntStore) DeleteRoom(code string) error {
	return mapErr(s.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(roomKey(code))
		return err
	}))
}

// AllRooms returns every live room. Used by the admin surface only; the
// session endpoints always address rooms by code.
func (s *BuntStore) AllRooms() ([]models.Room, error) {
	raws := make([]string, 0)
	err := s.db.View(func(tx *buntdb.Tx) error {
		return tx.AscendKeys(roomPrefix+"*", func(key, val string) bool {
			raws = append(raws, val)
			return true
		})
	})
	if err != nil {
		return nil, mapErr(err)
	}

	rooms := make([]models.Room, 0, len(raws))
	for _, raw := range raws {
		var room models.Room
		if err := json.Unmarshal([]byte(raw), &room); err != nil {
			return nil, fmt.Errorf("%w: corrupt room record: %v", ErrUnavailable, err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (s *BuntStore) PutParticipant(p models.Participant, ttl time.Duration) error {
	val, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal participant: %w", err)
	}
	return mapErr(s.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(participantKey(p.RoomCode, p.MemberID), string(val), setOptions(ttl))
		return err
	}))
}

func (s *BuntStore) GetParticipant(code, memberID string) (models.Participant, error) {
	var raw string
	err := s.db.View(func(tx *buntdb.Tx) error {
		var err error
		raw, err = tx.Get(participantKey(code, memberID))
		return err
	})
	if err != nil {
		return models.Participant{}, mapErr(err)
	}

	var p models.Participant
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return models.Participant{}, fmt.Errorf("%w: corrupt participant record: %v", ErrUnavailable, err)
	}
	return p, nil
}

func (s *BuntStore) DeleteParticipant(code, memberID string) error {
	return mapErr(s.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(participantKey(code, memberID))
		return err
	}))
}

// ParticipantsByRoom is the partition query: every participant whose key
// starts with the room code.
func (s *BuntStore) ParticipantsByRoom(code string) ([]models.Participant, error) {
	raws := make([]string, 0)
	err := s.db.View(func(tx *buntdb.Tx) error {
		return tx.AscendKeys(participantPrefix+code+":*", func(key, val string) bool {
			raws = append(raws, val)
			return true
		})
	})
	if err != nil {
		return nil, mapErr(err)
	}

	participants := make([]models.Participant, 0, len(raws))
	for _, raw := range raws {
		var p models.Participant
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("%w: corrupt participant record: %v", ErrUnavailable, err)
		}
		participants = append(participants, p)
	}
	return participants, nil
}
