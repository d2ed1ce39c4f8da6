// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"errors"
	"strconv"
)

// ErrInvalidVote is returned when a vote value is outside the fixed ladder.
var ErrInvalidVote = errors.New("invalid vote value")

// VoteLadder is the fixed set of numeric estimates a participant may cast.
var VoteLadder = []int{1, 2, 3, 5, 8, 13, 21}

// VoteUnsure is the wire sentinel for an "unsure" vote.
const VoteUnsure = "?"

// Vote is a single cast estimate: a value from the ladder or the "?"
// sentinel. On the wire it is a JSON number for numeric votes and the
// string "?" for unsure, matching what clients send and poll back.
type Vote struct {
	Points int
	Unsure bool
}

// NumericVote returns a ladder vote with the given points.
func NumericVote(points int) Vote {
	return Vote{Points: points}
}

// UnsureVote returns the "?" sentinel vote.
func UnsureVote() Vote {
	return Vote{Unsure: true}
}

// Valid reports whether the vote is the sentinel or a ladder value.
func (v Vote) Valid() bool {
	if v.Unsure {
		return true
	}
	for _, p := range VoteLadder {
		if v.Points == p {
			return true
		}
	}
	return false
}

func (v Vote) MarshalJSON() ([]byte, error) {
	if v.Unsure {
		return json.Marshal(VoteUnsure)
	}
	return []byte(strconv.Itoa(v.Points)), nil
}

// UnmarshalJSON accepts only ladder numbers and the "?" string; everything
// else yields ErrInvalidVote, so malformed votes are rejected at the
// decoding boundary rather than stored and discovered later.
func (v *Vote) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != VoteUnsure {
			return ErrInvalidVote
		}
		*v = Vote{Unsure: true}
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return ErrInvalidVote
	}
	cand := Vote{Points: n}
	if !cand.Valid() {
		return ErrInvalidVote
	}
	*v = cand
	return nil
}
