// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth verifies the two credentials this server accepts.

# Member Identity

Session endpoints authenticate with an HS256 JWT in the Authorization
header; the "sub" claim is the member ID used for host checks and
participant keys:

	memberID, err := auth.MemberIdentity(r, cfg.JWTSecret)

MemberIdentity returns ErrNoToken when the header is absent and
ErrInvalidToken for everything else that can go wrong (bad scheme, bad
signature, wrong algorithm, expired, empty subject). Handlers map both to
401 without distinguishing them to the client.

NewToken mints tokens with the same secret. The server never hands tokens
to browsers itself - identity is issued out of band - but tooling and
tests need a way to produce valid ones:

	token, err := auth.NewToken("member-123", secret, time.Hour)

# Admin Key

The operator surface authenticates with a single shared key in the
X-Admin-Key header, compared in constant time:

	err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), cfg.AdminKey)

An empty configured key never validates, so a misconfigured server fails
closed.
*/
package auth
