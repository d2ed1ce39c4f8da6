// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/pointy/models"
	"github.com/danielhkuo/pointy/store"
)

// SubmitVote records one participant's estimate for the current round.
// The value must be on the ladder (or "?"), the room must not be revealed,
// and the member must already be a participant - a vote from a non-member
// is rejected, never auto-joined.
func (s *Service) SubmitVote(code, memberID string, vote models.Vote) (models.Participant, error) {
	if !vote.Valid() {
		return models.Participant{}, models.ErrInvalidVote
	}

	room, err := s.GetRoom(code)
	if err != nil {
		return models.Participant{}, err
	}
	if room.Revealed {
		return models.Participant{}, ErrRoomRevealed
	}

	p, err := s.participants.GetParticipant(room.RoomCode, memberID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Participant{}, ErrParticipantNotFound
	}
	if err != nil {
		return models.Participant{}, err
	}

	v := vote
	p.Vote = &v
	p.VotedAt = s.now().UnixMilli()
	if err := s.participants.PutParticipant(p, s.remainingTTL(room)); err != nil {
		return models.Participant{}, fmt.Errorf("failed to record vote: %w", err)
	}

	slog.Info("vote submitted", "room_code", room.RoomCode, "member_id", memberID)
	return p, nil
}

// Reveal makes all current votes visible. Host only. This is purely a
// visibility transition: recorded votes are never touched.
func (s *Service) Reveal(code, requesterID string) (models.Room, error) {
	room, err := s.GetRoom(code)
	if err != nil {
		return models.Room{}, err
	}
	if room.HostID != requesterID {
		return models.Room{}, ErrForbidden
	}

	room.Revealed = true
	if err := s.rooms.PutRoom(room); err != nil {
		return models.Room{}, fmt.Errorf("failed to reveal votes: %w", err)
	}

	slog.Info("votes revealed", "room_code", room.RoomCode)
	return room, nil
}

// Reset starts the next round: re-hide votes, clear the topic, then clear
// every participant's vote. Host only. The vote clearing is N independent
// per-record writes, so a poller racing the reset may briefly observe a
// partially cleared room; that window lasts no longer than this call.
func (s *Service) Reset(code, requesterID string) error {
	room, err := s.GetRoom(code)
	if err != nil {
		return err
	}
	if room.HostID != requesterID {
		return ErrForbidden
	}

	room.Revealed = false
	room.Topic = ""
	if err := s.rooms.PutRoom(room); err != nil {
		return fmt.Errorf("failed to reset room: %w", err)
	}

	participants, err := s.participants.ParticipantsByRoom(room.RoomCode)
	if err != nil {
		return err
	}
	ttl := s.remainingTTL(room)
	for _, p := range participants {
		p.Vote = nil
		p.VotedAt = 0
		if err := s.participants.PutParticipant(p, ttl); err != nil {
			return fmt.Errorf("failed to clear vote for %s: %w", p.MemberID, err)
		}
	}

	slog.Info("room reset", "room_code", room.RoomCode, "participants", len(participants))
	return nil
}
