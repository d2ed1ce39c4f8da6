// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/pointy/auth"
	"github.com/danielhkuo/pointy/cliparse"
	"github.com/danielhkuo/pointy/session"
	"github.com/danielhkuo/pointy/store"
)

const (
	TestJWTSecret = "test-jwt-secret"
	TestAdminKey  = "test-admin-key"
)

// SetupTestStore opens a fresh in-memory store and closes it with the test.
func SetupTestStore(t *testing.T) *store.BuntStore {
	t.Helper()

	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

// SetupTestService wires a Service to a fresh in-memory store.
func SetupTestService(t *testing.T) *session.Service {
	t.Helper()

	st := SetupTestStore(t)
	return session.NewService(st, st, 24*time.Hour)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         4000,
		DatabasePath: ":memory:",
		JWTSecret:    TestJWTSecret,
		AdminKey:     TestAdminKey,
		RoomTTLHours: 24,
	}
}

// NewMemberID returns a unique member identity for a test actor.
func NewMemberID() string {
	return uuid.NewString()
}

// MintToken creates a bearer token for the given member, signed with the
// test secret.
func MintToken(t *testing.T, memberID string) string {
	t.Helper()

	token, err := auth.NewToken(memberID, TestJWTSecret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to mint test token: %v", err)
	}
	return token
}

// CreateTestRoom creates a room with the given host already joined, and
// returns the room code.
func CreateTestRoom(t *testing.T, svc *session.Service, hostID string) string {
	t.Helper()

	room, err := svc.CreateRoom(hostID)
	if err != nil {
		t.Fatalf("Failed to create test room: %v", err)
	}
	if _, _, err := svc.Join(room.RoomCode, hostID, "Host"); err != nil {
		t.Fatalf("Failed to join host to test room: %v", err)
	}
	return room.RoomCode
}

// JoinTestMember adds a member to a room.
func JoinTestMember(t *testing.T, svc *session.Service, roomCode, memberID, displayName string) {
	t.Helper()

	if _, _, err := svc.Join(roomCode, memberID, displayName); err != nil {
		t.Fatalf("Failed to join %s to test room: %v", displayName, err)
	}
}

// MakeRequest creates an HTTP test request. A non-empty memberID attaches
// a freshly minted bearer token for that identity.
func MakeRequest(t *testing.T, method, path string, body interface{}, memberID string) *http.Request {
	t.Helper()

	var req *http.Request
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if memberID != "" {
		req.Header.Set("Authorization", "Bearer "+MintToken(t, memberID))
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
