// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/pointy/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	svc := testutil.SetupTestService(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(svc, cfg)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	svc := testutil.SetupTestService(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(svc, cfg)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "pointy API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	svc := testutil.SetupTestService(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(svc, cfg)

	// Test that routes respond (handler is invoked)
	// Unauthenticated requests return 401, which still proves the route
	// matched; only 405 would mean a missing registration.
	testCases := []struct {
		method string
		path   string
	}{
		// Health and root
		{"GET", "/health"},
		{"GET", "/"},

		// Room routes
		{"POST", "/rooms"},
		{"GET", "/rooms/K7H2M9"},
		{"DELETE", "/rooms/K7H2M9"},
		{"POST", "/rooms/K7H2M9/join"},
		{"DELETE", "/rooms/K7H2M9/leave"},
		{"POST", "/rooms/K7H2M9/topic"},

		// Voting routes
		{"POST", "/rooms/K7H2M9/vote"},
		{"POST", "/rooms/K7H2M9/reveal"},
		{"POST", "/rooms/K7H2M9/reset"},

		// Admin routes
		{"GET", "/admin/rooms"},
		{"GET", "/admin/rooms/K7H2M9"},
		{"DELETE", "/admin/rooms/K7H2M9"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	svc := testutil.SetupTestService(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(svc, cfg)

	// Test that unsupported methods on defined routes return 405
	testCases := []struct {
		method string
		path   string
	}{
		// GET is left out here: the catch-all "GET /" route absorbs any
		// unmatched GET path, so only non-GET methods can 405.
		{"POST", "/health"},              // Only GET is defined
		{"PUT", "/rooms/K7H2M9/topic"},   // Only POST is defined
		{"DELETE", "/rooms/K7H2M9/vote"}, // Only POST is defined
		{"POST", "/admin/rooms/K7H2M9"},  // Only GET and DELETE are defined
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	svc := testutil.SetupTestService(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(svc, cfg)

	hostID := testutil.NewMemberID()
	roomCode := testutil.CreateTestRoom(t, svc, hostID)

	// Test that {code} extracts correctly end to end
	t.Run("room code extraction", func(t *testing.T) {
		req := testutil.MakeRequest(t, "GET", "/rooms/"+roomCode, nil, hostID)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200 with valid token and room, got %d. Body: %s", w.Code, w.Body.String())
		}
	})

	t.Run("admin code extraction", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin/rooms/"+roomCode, nil)
		req.Header.Set("X-Admin-Key", testutil.TestAdminKey)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200 with valid admin key, got %d. Body: %s", w.Code, w.Body.String())
		}
	})
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	svc := testutil.SetupTestService(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(svc, cfg)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/rooms"},
		{"GET", "/rooms/K7H2M9"},
		{"POST", "/rooms/K7H2M9/vote"},
		{"GET", "/admin/rooms"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("Expected 401 for %s %s without credentials, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}
