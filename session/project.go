// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"sort"

	"github.com/danielhkuo/pointy/models"
)

// ProjectRoomState builds the per-viewer snapshot from raw Room and
// Participant records. It is a pure function: identical inputs produce
// identical output and nothing is mutated, so it can be called on every
// poll without coordination.
//
// Visibility rules: the viewer always sees their own vote; everyone else's
// vote is nil until the room is revealed; stats are attached only once
// revealed. Participant order is fixed by (joinedAt, memberId) so repeated
// polls render stably.
func ProjectRoomState(room models.Room, participants []models.Participant, viewerID string) models.RoomState {
	ordered := make([]models.Participant, len(participants))
	copy(ordered, participants)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].JoinedAt != ordered[j].JoinedAt {
			return ordered[i].JoinedAt < ordered[j].JoinedAt
		}
		return ordered[i].MemberID < ordered[j].MemberID
	})

	state := models.RoomState{
		RoomCode:     room.RoomCode,
		Topic:        room.Topic,
		Revealed:     room.Revealed,
		IsHost:       room.HostID == viewerID,
		Participants: make([]models.ParticipantView, 0, len(ordered)),
	}

	for _, p := range ordered {
		view := models.ParticipantView{
			MemberID:    p.MemberID,
			DisplayName: p.DisplayName,
			HasVoted:    p.Vote != nil,
		}
		if room.Revealed {
			view.Vote = copyVote(p.Vote)
		}
		state.Participants = append(state.Participants, view)

		if p.MemberID == viewerID {
			state.IsParticipant = true
			state.MyVote = copyVote(p.Vote)
		}
	}

	if room.Revealed {
		stats := ComputeVoteStats(ordered)
		state.Stats = &stats
	}
	return state
}

// copyVote detaches the projection from the record it was built from.
func copyVote(v *models.Vote) *models.Vote {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
