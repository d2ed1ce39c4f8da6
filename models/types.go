// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type CreateRoomRequest struct {
	DisplayName string `json:"displayName"`
}

type JoinRoomRequest struct {
	DisplayName string `json:"displayName"`
}

type SetTopicRequest struct {
	Topic string `json:"topic"`
}

type VoteRequest struct {
	Vote *Vote `json:"vote"`
}

// Response types

type CreateRoomResponse struct {
	RoomCode string `json:"roomCode"`
}

type JoinRoomResponse struct {
	Message     string      `json:"message,omitempty"`
	Participant Participant `json:"participant"`
}

type SetTopicResponse struct {
	Topic string `json:"topic"`
}

type VoteResponse struct {
	Vote *Vote `json:"vote"`
}

type RevealResponse struct {
	Revealed bool `json:"revealed"`
}

type ResetResponse struct {
	Reset bool `json:"reset"`
}

// Error response. Code is a stable machine-readable discriminator so
// clients never have to string-match Message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// Domain types

type Room struct {
	RoomCode  string `json:"roomCode"`
	HostID    string `json:"hostId"`
	Topic     string `json:"topic"`
	Revealed  bool   `json:"revealed"`
	CreatedAt int64  `json:"createdAt"`
	ExpiresAt int64  `json:"expiresAt"`
}

type Participant struct {
	RoomCode    string `json:"roomCode"`
	MemberID    string `json:"memberId"`
	DisplayName string `json:"displayName"`
	Vote        *Vote  `json:"vote"` // nil until the member has voted this round
	JoinedAt    int64  `json:"joinedAt"`
	// VotedAt is the unix-millisecond stamp of the last accepted vote
	// (0 when absent). It fixes the submission order used for the mode
	// tie-break in stats.
	VotedAt int64 `json:"votedAt,omitempty"`
}

// RoomState is the viewer-specific projection of a room, rebuilt on every
// poll. Never persisted or cached.
type RoomState struct {
	RoomCode      string            `json:"roomCode"`
	Topic         string            `json:"topic"`
	Revealed      bool              `json:"revealed"`
	IsHost        bool              `json:"isHost"`
	IsParticipant bool              `json:"isParticipant"`
	MyVote        *Vote             `json:"myVote"`
	Participants  []ParticipantView `json:"participants"`
	Stats         *VoteStats        `json:"stats,omitempty"`
}

type ParticipantView struct {
	MemberID    string `json:"memberId"`
	DisplayName string `json:"displayName"`
	HasVoted    bool   `json:"hasVoted"`
	Vote        *Vote  `json:"vote"` // nil until the room is revealed
}

type VoteStats struct {
	Average float64 `json:"average"`
	Mode    int     `json:"mode"`
}

// Admin dashboard views

type RoomAdminView struct {
	RoomCode         string `json:"roomCode"`
	HostID           string `json:"hostId"`
	Topic            string `json:"topic"`
	Revealed         bool   `json:"revealed"`
	ParticipantCount int    `json:"participantCount"`
	CreatedAt        int64  `json:"createdAt"`
	ExpiresAt        int64  `json:"expiresAt"`
}

type AdminParticipant struct {
	MemberID    string `json:"memberId"`
	DisplayName string `json:"displayName"`
	HasVoted    bool   `json:"hasVoted"`
	Vote        *Vote  `json:"vote"`
	JoinedAt    int64  `json:"joinedAt"`
}

type RoomAdminDetails struct {
	RoomAdminView
	Participants []AdminParticipant `json:"participants"`
}
