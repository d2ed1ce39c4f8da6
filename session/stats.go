// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"math"
	"sort"

	"github.com/danielhkuo/pointy/models"
)

// ComputeVoteStats aggregates the numeric votes in a room. Unsure ("?")
// and absent votes are excluded from both aggregates but never block the
// computation; with zero numeric votes the zero stats {0, 0} are returned
// rather than an error.
//
// Average is the arithmetic mean rounded half-up to one decimal place.
// Mode is the most frequent value; frequency ties resolve to the value
// seen earliest in vote submission order (first-seen wins), ordered by
// each participant's VotedAt stamp - never by map iteration order.
func ComputeVoteStats(participants []models.Participant) models.VoteStats {
	type cast struct {
		points  int
		votedAt int64
	}

	casts := make([]cast, 0, len(participants))
	for _, p := range participants {
		if p.Vote == nil || p.Vote.Unsure {
			continue
		}
		casts = append(casts, cast{points: p.Vote.Points, votedAt: p.VotedAt})
	}
	if len(casts) == 0 {
		return models.VoteStats{}
	}
	// VotedAt is unix millis; two casts landing in the same millisecond
	// keep their incoming order, which is the store's key order rather
	// than true submission order.
	sort.SliceStable(casts, func(i, j int) bool { return casts[i].votedAt < casts[j].votedAt })

	sum := 0
	for _, c := range casts {
		sum += c.points
	}
	average := roundHalfUp(float64(sum) / float64(len(casts)))

	freq := make(map[int]int, len(casts))
	mode := casts[0].points
	maxFreq := 0
	for _, c := range casts {
		freq[c.points]++
		if freq[c.points] > maxFreq {
			maxFreq = freq[c.points]
			mode = c.points
		}
	}

	return models.VoteStats{Average: average, Mode: mode}
}

// roundHalfUp rounds to one decimal place with .x5 rounding up. Ladder
// values are non-negative, so floor(x*10 + 0.5) is exact enough here.
func roundHalfUp(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}
