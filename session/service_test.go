package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/pointy/models"
	"github.com/danielhkuo/pointy/store"
)

func newTestService(t *testing.T) (*Service, *store.BuntStore) {
	t.Helper()

	st, err := store.Open(":memory:")
	require.NoError(t, err, "open in-memory store")
	t.Cleanup(func() { st.Close() })
	return NewService(st, st, 24*time.Hour), st
}

func TestCreateRoom(t *testing.T) {
	svc, _ := newTestService(t)

	room, err := svc.CreateRoom("host-1")
	require.NoError(t, err)

	assert.Len(t, room.RoomCode, 6)
	assert.Equal(t, "host-1", room.HostID)
	assert.Empty(t, room.Topic)
	assert.False(t, room.Revealed)
	assert.Equal(t, room.CreatedAt+24*60*60, room.ExpiresAt)

	got, err := svc.GetRoom(room.RoomCode)
	require.NoError(t, err)
	assert.Equal(t, room, got)
}

func TestCreateRoomRetriesOnCollision(t *testing.T) {
	svc, _ := newTestService(t)

	occupied, err := svc.CreateRoom("someone-else")
	require.NoError(t, err)

	// First two candidates collide with the existing room, the third is
	// fresh.
	candidates := []string{occupied.RoomCode, occupied.RoomCode, "FRESH2"}
	svc.generateCode = func() (string, error) {
		code := candidates[0]
		if len(candidates) > 1 {
			candidates = candidates[1:]
		}
		return code, nil
	}

	room, err := svc.CreateRoom("host-1")
	require.NoError(t, err)
	assert.Equal(t, "FRESH2", room.RoomCode)
}

func TestCreateRoomCodeExhausted(t *testing.T) {
	svc, _ := newTestService(t)

	occupied, err := svc.CreateRoom("someone-else")
	require.NoError(t, err)

	svc.generateCode = func() (string, error) { return occupied.RoomCode, nil }

	_, err = svc.CreateRoom("host-1")
	assert.ErrorIs(t, err, ErrCodeExhausted)
}

func TestGetRoomNormalizesCase(t *testing.T) {
	svc, _ := newTestService(t)

	room, err := svc.CreateRoom("host-1")
	require.NoError(t, err)

	got, err := svc.GetRoom(" " + string(room.RoomCode[0]|0x20) + room.RoomCode[1:] + " ")
	require.NoError(t, err)
	assert.Equal(t, room.RoomCode, got.RoomCode)
}

func TestGetRoomNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetRoom("NOSUCH")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestJoinIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)

	room, err := svc.CreateRoom("host-1")
	require.NoError(t, err)

	first, created, err := svc.Join(room.RoomCode, "ada-2", "Ada")
	require.NoError(t, err)
	assert.True(t, created)

	// Cast a vote, then re-join; the record must come back untouched.
	_, err = svc.SubmitVote(room.RoomCode, "ada-2", models.NumericVote(8))
	require.NoError(t, err)

	again, created, err := svc.Join(room.RoomCode, "ada-2", "Ada Lovelace")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.JoinedAt, again.JoinedAt, "join timestamp must not reset")
	assert.Equal(t, "Ada", again.DisplayName, "display name must not be overwritten")
	require.NotNil(t, again.Vote, "an existing vote must survive a re-join")
	assert.Equal(t, models.NumericVote(8), *again.Vote)
}

func TestJoinMissingRoom(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Join("NOSUCH", "ada-2", "Ada")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestLeaveIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)

	room, err := svc.CreateRoom("host-1")
	require.NoError(t, err)
	_, _, err = svc.Join(room.RoomCode, "ada-2", "Ada")
	require.NoError(t, err)

	require.NoError(t, svc.Leave(room.RoomCode, "ada-2"))
	// Second leave, and a leave from someone who never joined: both no-ops.
	require.NoError(t, svc.Leave(room.RoomCode, "ada-2"))
	require.NoError(t, svc.Leave(room.RoomCode, "stranger-9"))

	state, err := svc.State(room.RoomCode, "host-1")
	require.NoError(t, err)
	assert.Empty(t, state.Participants)
}

func TestSetTopicHostOnly(t *testing.T) {
	svc, _ := newTestService(t)

	room, err := svc.CreateRoom("host-1")
	require.NoError(t, err)

	updated, err := svc.SetTopic(room.RoomCode, "host-1", "payment service")
	require.NoError(t, err)
	assert.Equal(t, "payment service", updated.Topic)

	_, err = svc.SetTopic(room.RoomCode, "ada-2", "hijacked")
	assert.ErrorIs(t, err, ErrForbidden)

	// The forbidden attempt must leave the record unchanged.
	got, err := svc.GetRoom(room.RoomCode)
	require.NoError(t, err)
	assert.Equal(t, "payment service", got.Topic)
}

func TestSubmitVoteRules(t *testing.T) {
	svc, _ := newTestService(t)

	room, err := svc.CreateRoom("host-1")
	require.NoError(t, err)
	_, _, err = svc.Join(room.RoomCode, "host-1", "Host")
	require.NoError(t, err)

	t.Run("valid ladder values", func(t *testing.T) {
		for _, points := range models.VoteLadder {
			p, err := svc.SubmitVote(room.RoomCode, "host-1", models.NumericVote(points))
			require.NoError(t, err)
			require.NotNil(t, p.Vote)
			assert.Equal(t, points, p.Vote.Points)
			assert.NotZero(t, p.VotedAt)
		}
		p, err := svc.SubmitVote(room.RoomCode, "host-1", models.UnsureVote())
		require.NoError(t, err)
		assert.True(t, p.Vote.Unsure)
	})

	t.Run("off-ladder value rejected", func(t *testing.T) {
		_, err := svc.SubmitVote(room.RoomCode, "host-1", models.NumericVote(4))
		assert.ErrorIs(t, err, models.ErrInvalidVote)
	})

	t.Run("non-member rejected", func(t *testing.T) {
		_, err := svc.SubmitVote(room.RoomCode, "stranger-9", models.NumericVote(5))
		assert.ErrorIs(t, err, ErrParticipantNotFound)
	})

	t.Run("rejected after reveal", func(t *testing.T) {
		_, err := svc.Reveal(room.RoomCode, "host-1")
		require.NoError(t, err)

		_, err = svc.SubmitVote(room.RoomCode, "host-1", models.NumericVote(5))
		assert.ErrorIs(t, err, ErrRoomRevealed)
	})
}

func TestRevealIsVisibilityOnly(t *testing.T) {
	svc, _ := newTestService(t)

	room, err := svc.CreateRoom("host-1")
	require.NoError(t, err)
	_, _, err = svc.Join(room.RoomCode, "host-1", "Host")
	require.NoError(t, err)
	_, err = svc.SubmitVote(room.RoomCode, "host-1", models.NumericVote(13))
	require.NoError(t, err)

	_, err = svc.Reveal(room.RoomCode, "ada-2")
	assert.ErrorIs(t, err, ErrForbidden)

	revealed, err := svc.Reveal(room.RoomCode, "host-1")
	require.NoError(t, err)
	assert.True(t, revealed.Revealed)

	state, err := svc.State(room.RoomCode, "host-1")
	require.NoError(t, err)
	require.Len(t, state.Participants, 1)
	require.NotNil(t, state.Participants[0].Vote, "reveal must expose the recorded vote")
	assert.Equal(t, models.NumericVote(13), *state.Participants[0].Vote)
}

func TestResetClearsRound(t *testing.T) {
	svc, _ := newTestService(t)

	room, err := svc.CreateRoom("host-1")
	require.NoError(t, err)
	_, _, err = svc.Join(room.RoomCode, "host-1", "Host")
	require.NoError(t, err)
	_, _, err = svc.Join(room.RoomCode, "ada-2", "Ada")
	require.NoError(t, err)

	_, err = svc.SetTopic(room.RoomCode, "host-1", "login page")
	require.NoError(t, err)
	_, err = svc.SubmitVote(room.RoomCode, "host-1", models.NumericVote(5))
	require.NoError(t, err)
	_, err = svc.SubmitVote(room.RoomCode, "ada-2", models.UnsureVote())
	require.NoError(t, err)
	_, err = svc.Reveal(room.RoomCode, "host-1")
	require.NoError(t, err)

	require.ErrorIs(t, svc.Reset(room.RoomCode, "ada-2"), ErrForbidden)
	require.NoError(t, svc.Reset(room.RoomCode, "host-1"))

	state, err := svc.State(room.RoomCode, "ada-2")
	require.NoError(t, err)
	assert.False(t, state.Revealed)
	assert.Empty(t, state.Topic)
	assert.Nil(t, state.Stats)
	assert.Nil(t, state.MyVote)
	for _, p := range state.Participants {
		assert.False(t, p.HasVoted, "reset must clear %s's vote", p.MemberID)
	}

	// The next round accepts votes again.
	_, err = svc.SubmitVote(room.RoomCode, "ada-2", models.NumericVote(2))
	require.NoError(t, err)
}

func TestDeleteRoomCascades(t *testing.T) {
	svc, st := newTestService(t)

	room, err := svc.CreateRoom("host-1")
	require.NoError(t, err)
	_, _, err = svc.Join(room.RoomCode, "host-1", "Host")
	require.NoError(t, err)
	_, _, err = svc.Join(room.RoomCode, "ada-2", "Ada")
	require.NoError(t, err)

	require.ErrorIs(t, svc.DeleteRoom(room.RoomCode, "ada-2"), ErrForbidden)
	require.NoError(t, svc.DeleteRoom(room.RoomCode, "host-1"))

	_, err = svc.GetRoom(room.RoomCode)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	// No orphaned participant records survive the cascade.
	orphans, err := st.ParticipantsByRoom(room.RoomCode)
	require.NoError(t, err)
	assert.Empty(t, orphans)
}

func TestDeleteMissingRoom(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.DeleteRoom("NOSUCH", "host-1")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestAdminViews(t *testing.T) {
	svc, _ := newTestService(t)

	// Pin the clock so creation order is deterministic in the listing.
	base := time.Now()
	svc.now = func() time.Time { return base }
	older, err := svc.CreateRoom("host-1")
	require.NoError(t, err)
	svc.now = func() time.Time { return base.Add(time.Minute) }
	newer, err := svc.CreateRoom("host-2")
	require.NoError(t, err)

	_, _, err = svc.Join(older.RoomCode, "host-1", "Host")
	require.NoError(t, err)
	_, _, err = svc.Join(older.RoomCode, "ada-2", "Ada")
	require.NoError(t, err)
	_, err = svc.SubmitVote(older.RoomCode, "ada-2", models.NumericVote(3))
	require.NoError(t, err)

	views, err := svc.AdminRooms()
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, newer.RoomCode, views[0].RoomCode, "newest room lists first")
	assert.Equal(t, older.RoomCode, views[1].RoomCode)
	assert.Equal(t, 2, views[1].ParticipantCount)

	details, err := svc.AdminRoomDetails(older.RoomCode)
	require.NoError(t, err)
	require.Len(t, details.Participants, 2)
	// Both members joined under the pinned clock, so ordering falls back
	// to MemberID; locate them by ID rather than position.
	byID := make(map[string]models.AdminParticipant, len(details.Participants))
	for _, p := range details.Participants {
		byID[p.MemberID] = p
	}
	// Admin sees votes even before reveal.
	require.NotNil(t, byID["ada-2"].Vote)
	assert.Equal(t, models.NumericVote(3), *byID["ada-2"].Vote)
	assert.False(t, byID["host-1"].HasVoted)

	require.NoError(t, svc.AdminDeleteRoom(older.RoomCode))
	_, err = svc.GetRoom(older.RoomCode)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	err = svc.AdminDeleteRoom("NOSUCH")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestStoreErrorsPropagate(t *testing.T) {
	svc, st := newTestService(t)

	room, err := svc.CreateRoom("host-1")
	require.NoError(t, err)

	// A closed store surfaces as ErrUnavailable, untouched by the service.
	require.NoError(t, st.Close())
	_, err = svc.GetRoom(room.RoomCode)
	assert.ErrorIs(t, err, store.ErrUnavailable)
	assert.NotErrorIs(t, err, ErrRoomNotFound)
}
