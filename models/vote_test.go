package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestVoteUnmarshalLadder(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Vote
		wantErr bool
	}{
		{name: "ladder value 1", input: `1`, want: NumericVote(1)},
		{name: "ladder value 13", input: `13`, want: NumericVote(13)},
		{name: "unsure sentinel", input: `"?"`, want: UnsureVote()},
		{name: "off-ladder number", input: `4`, wantErr: true},
		{name: "negative number", input: `-5`, wantErr: true},
		{name: "fractional number", input: `5.5`, wantErr: true},
		{name: "arbitrary string", input: `"five"`, wantErr: true},
		{name: "boolean", input: `true`, wantErr: true},
		{name: "object", input: `{"points":5}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Vote
			err := json.Unmarshal([]byte(tt.input), &v)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidVote) {
					t.Errorf("Expected ErrInvalidVote, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if v != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, v)
			}
		})
	}
}

func TestVoteMarshalRoundTrip(t *testing.T) {
	numeric, err := json.Marshal(NumericVote(8))
	if err != nil {
		t.Fatalf("Failed to marshal numeric vote: %v", err)
	}
	if string(numeric) != "8" {
		t.Errorf("Expected numeric vote to marshal as 8, got %s", numeric)
	}

	unsure, err := json.Marshal(UnsureVote())
	if err != nil {
		t.Fatalf("Failed to marshal unsure vote: %v", err)
	}
	if string(unsure) != `"?"` {
		t.Errorf(`Expected unsure vote to marshal as "?", got %s`, unsure)
	}
}

func TestParticipantVoteNull(t *testing.T) {
	p := Participant{
		RoomCode:    "K7H2M9",
		MemberID:    "member-1",
		DisplayName: "Ada",
		JoinedAt:    1700000000,
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Failed to marshal participant: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal participant: %v", err)
	}
	if v, ok := decoded["vote"]; !ok || v != nil {
		t.Errorf("Expected absent vote to serialize as null, got %v", decoded["vote"])
	}
}

func TestVoteValid(t *testing.T) {
	for _, points := range VoteLadder {
		if !NumericVote(points).Valid() {
			t.Errorf("Expected ladder value %d to be valid", points)
		}
	}
	if !UnsureVote().Valid() {
		t.Error("Expected unsure vote to be valid")
	}
	for _, points := range []int{0, 4, 6, 22, -1} {
		if NumericVote(points).Valid() {
			t.Errorf("Expected %d to be invalid", points)
		}
	}
}
