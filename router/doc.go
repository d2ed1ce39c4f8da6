// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Pointy API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, cfg)

# Endpoints

Health:

	GET /health

Rooms (bearer JWT):

	POST   /rooms              - Create room (host auto-joins)
	GET    /rooms/{code}       - Poll the viewer-specific room state
	DELETE /rooms/{code}       - Delete room (host only)
	POST   /rooms/{code}/join  - Join room
	DELETE /rooms/{code}/leave - Leave room
	POST   /rooms/{code}/topic - Set topic (host only)

Voting round (bearer JWT):

	POST /rooms/{code}/vote   - Submit or change a vote
	POST /rooms/{code}/reveal - Reveal votes (host only)
	POST /rooms/{code}/reset  - Start the next round (host only)

Operator dashboard (X-Admin-Key):

	GET    /admin/rooms        - List all live rooms
	GET    /admin/rooms/{code} - Inspect one room, votes included
	DELETE /admin/rooms/{code} - Delete any room

# Handler Initialization

The router creates handler instances with dependency injection:

	roomHandler := handlers.NewRoomHandler(svc, cfg)
	votingHandler := handlers.NewVotingHandler(svc, cfg)
	adminHandler := handlers.NewAdminHandler(svc, cfg)

All handlers receive the session service and configuration.
*/
package router
