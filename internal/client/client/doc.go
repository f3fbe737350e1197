// Package client contains the transport side of the console.
//
// # Overview
//
// The package provides:
//  1. The API contract (see the Client interface): login and registration,
//     a liveness Ping, and list/add/update/delete calls for products,
//     purchases, sales and stores.
//  2. A REST/JSON implementation (see HTTPClient) that sends a bearer token
//     when one is set and maps HTTP failures to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable, 401/403 answers wrap
// ErrUnauthorized, and undecodable success bodies wrap ErrMalformedResponse.
// Every non-2xx answer also carries an *APIError with the status and the
// API's message, reachable with errors.As.
package client
