// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"crypto/rand"
	"fmt"
)

// codeAlphabet excludes visually ambiguous characters (I, O, 0, 1) so codes
// survive being read aloud or scrawled on a whiteboard.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// codeLength is the fixed room code length.
const codeLength = 6

// GenerateRoomCode returns one candidate room code. It carries no
// uniqueness guarantee by itself; callers check the room store for
// occupancy and retry on collision.
func GenerateRoomCode() (string, error) {
	b := make([]byte, codeLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate room code: %w", err)
	}

	// The alphabet has 32 symbols, which divides 256 evenly, so reducing a
	// random byte modulo the alphabet stays uniform per position.
	code := make([]byte, codeLength)
	for i, v := range b {
		code[i] = codeAlphabet[int(v)%len(codeAlphabet)]
	}
	return string(code), nil
}
