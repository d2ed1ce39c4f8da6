// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/pointy/cliparse"
	"github.com/danielhkuo/pointy/handlers"
	"github.com/danielhkuo/pointy/middleware"
	"github.com/danielhkuo/pointy/session"
)

func NewRouter(svc *session.Service, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	roomHandler := handlers.NewRoomHandler(svc, cfg)
	votingHandler := handlers.NewVotingHandler(svc, cfg)
	adminHandler := handlers.NewAdminHandler(svc, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Room lifecycle and membership
	mux.HandleFunc("POST /rooms", middleware.WithLogging(roomHandler.CreateRoom))
	mux.HandleFunc("GET /rooms/{code}", middleware.WithLogging(roomHandler.GetRoom))
	mux.HandleFunc("DELETE /rooms/{code}", middleware.WithLogging(roomHandler.DeleteRoom))
	mux.HandleFunc("POST /rooms/{code}/join", middleware.WithLogging(roomHandler.Join))
	mux.HandleFunc("DELETE /rooms/{code}/leave", middleware.WithLogging(roomHandler.Leave))
	mux.HandleFunc("POST /rooms/{code}/topic", middleware.WithLogging(roomHandler.SetTopic))

	// Voting round
	mux.HandleFunc("POST /rooms/{code}/vote", middleware.WithLogging(votingHandler.Vote))
	mux.HandleFunc("POST /rooms/{code}/reveal", middleware.WithLogging(votingHandler.Reveal))
	mux.HandleFunc("POST /rooms/{code}/reset", middleware.WithLogging(votingHandler.Reset))

	// Operator dashboard (X-Admin-Key)
	mux.HandleFunc("GET /admin/rooms", middleware.WithLogging(adminHandler.ListRooms))
	mux.HandleFunc("GET /admin/rooms/{code}", middleware.WithLogging(adminHandler.GetRoom))
	mux.HandleFunc("DELETE /admin/rooms/{code}", middleware.WithLogging(adminHandler.DeleteRoom))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pointy API v1"))
	})

	return mux
}
