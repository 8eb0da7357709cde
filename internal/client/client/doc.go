// Package client is the client's link to the outside world.
//
// # Overview
//
//  1. A transport-agnostic backend contract (Client, split into AuthAPI,
//     CatalogAPI and PoemAPI) covering login, registration, the OTP password
//     reset, profile updates and the book/author/poem catalog.
//  2. HTTPClient, the JSON-over-HTTP implementation. Every request carries an
//     X-Request-ID header; non-2xx answers become *APIError with the server's
//     message extracted from the body.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring the
//     SQLite file and the embedded goose migrations.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable; timeouts also match ErrTimeout.
// Backend refusals are *APIError, which also matches ErrUnauthorized
// (401/403) and ErrNotFound (404) with errors.Is. ServerMessage extracts the text to show to the user.
//
// All operations accept context.Context and honor cancellation.
package client
