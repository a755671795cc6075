// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

/*
Package auth keeps the signed-in user's token and profile between requests.

The remote backend issues a bearer token on login and registration. Manager
stores it together with the user profile in one of two key-value stores:

  - durable: survives restarts (BadgerDB). Used when the user asks to be
    remembered.
  - session: lives for the life of the process (kvstore.MemoryStore).

Reads check the durable store first, then the session store. Logout clears
both. A token that is a JWT with an expired "exp" claim is treated as absent;
its signature is not checked here because only the backend can verify it.

Manager implements apiclient.TokenSource, so the API client attaches the
current token to every request:

	mgr := auth.NewManager(client, durable, kvstore.NewMemoryStore())
	client.SetTokenSource(mgr)

	user, err := mgr.Login(ctx, models.LoginCredentials{
	    Email:    "kid@90s.example",
	    Password: "hunter22",
	}, true)
*/
package auth
