// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"sort"

	"github.com/danielhkuo/pointy/models"
)

// AdminRooms lists every live room with its participant count, newest
// first. Operator dashboard only; session endpoints always address rooms
// by code.
func (s *Service) AdminRooms() ([]models.RoomAdminView, error) {
	rooms, err := s.rooms.AllRooms()
	if err != nil {
		return nil, err
	}

	views := make([]models.RoomAdminView, 0, len(rooms))
	for _, room := range rooms {
		participants, err := s.participants.ParticipantsByRoom(room.RoomCode)
		if err != nil {
			return nil, err
		}
		views = append(views, adminView(room, len(participants)))
	}

	sort.Slice(views, func(i, j int) bool {
		if views[i].CreatedAt != views[j].CreatedAt {
			return views[i].CreatedAt > views[j].CreatedAt
		}
		return views[i].RoomCode < views[j].RoomCode
	})
	return views, nil
}

// AdminRoomDetails returns one room with its full participant list.
// Unlike the member projection, votes are visible regardless of the
// revealed flag.
func (s *Service) AdminRoomDetails(code string) (models.RoomAdminDetails, error) {
	room, err := s.GetRoom(code)
	if err != nil {
		return models.RoomAdminDetails{}, err
	}
	participants, err := s.participants.ParticipantsByRoom(room.RoomCode)
	if err != nil {
		return models.RoomAdminDetails{}, err
	}

	sort.Slice(participants, func(i, j int) bool {
		if participants[i].JoinedAt != participants[j].JoinedAt {
			return participants[i].JoinedAt < participants[j].JoinedAt
		}
		return participants[i].MemberID < participants[j].MemberID
	})

	details := models.RoomAdminDetails{
		RoomAdminView: adminView(room, len(participants)),
		Participants:  make([]models.AdminParticipant, 0, len(participants)),
	}
	for _, p := range participants {
		details.Participants = append(details.Participants, models.AdminParticipant{
			MemberID:    p.MemberID,
			DisplayName: p.DisplayName,
			HasVoted:    p.Vote != nil,
			Vote:        copyVote(p.Vote),
			JoinedAt:    p.JoinedAt,
		})
	}
	return details, nil
}

// AdminDeleteRoom removes a room and its participants without the host
// check. The operator surface authenticates with the admin key instead.
func (s *Service) AdminDeleteRoom(code string) error {
	room, err := s.GetRoom(code)
	if err != nil {
		return err
	}
	return s.removeRoom(room)
}

func adminView(room models.Room, participantCount int) models.RoomAdminView {
	return models.RoomAdminView{
		RoomCode:         room.RoomCode,
		HostID:           room.HostID,
		Topic:            room.Topic,
		Revealed:         room.Revealed,
		ParticipantCount: participantCount,
		CreatedAt:        room.CreatedAt,
		ExpiresAt:        room.ExpiresAt,
	}
}
