// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 4000)
  - DatabasePath: BuntDB file path, or ":memory:" (default: ":memory:")
  - JWTSecret: Secret for verifying member JWTs (required)
  - AdminKey: Shared key for the admin endpoints (required)
  - RoomTTLHours: Room lifetime in hours (default: 24)

# CLI Flags

	-p           Server port
	-d           Database path
	-jwt-secret  JWT signing secret
	-admin-key   Admin API key
	-room-ttl    Room lifetime in hours

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_PATH  → -d
	JWT_SECRET     → -jwt-secret
	ADMIN_KEY      → -admin-key
	ROOM_TTL_HOURS → -room-ttl

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - JWT_SECRET must be provided
  - ADMIN_KEY must be provided

A missing database path is not an error: the server falls back to the
in-memory store, which is the right default for a service whose records
all expire within a day anyway.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	st, err := store.Open(cfg.DatabasePath)
	// ...
	mux := router.NewRouter(svc, cfg)
*/
package cliparse
