// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Pointy API server.

Pointy is a planning-poker service: a host opens a room, teammates join
with a six-character code, everyone votes on the story ladder
{1, 2, 3, 5, 8, 13, 21, "?"}, and the host reveals the round. Clients are
plain HTTP pollers; there are no sockets to hold open, and every room
expires on its own within a day.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	JWT_SECRET=... ADMIN_KEY=... go run main.go

Or with flags:

	go run main.go -p 4000 -d pointy.db -jwt-secret ... -admin-key ...

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - JWT_SECRET (-jwt-secret): Secret for verifying member bearer tokens
  - ADMIN_KEY (-admin-key): Shared key for the operator endpoints

Optional settings:

  - PORT (-p): Server port (default: 4000)
  - DATABASE_PATH (-d): BuntDB file path (default: ":memory:")
  - ROOM_TTL_HOURS (-room-ttl): Room lifetime (default: 24)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (rooms, voting, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types, including the vote codec
  - session: Room state machine, stats, and per-viewer projection
  - store: BuntDB-backed keyed storage with per-record TTL
  - auth: JWT member identity and the admin key check
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
