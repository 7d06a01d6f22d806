// Package client contains the client-side building blocks that talk to the
// outside world.
//
// # Overview
//
// The package provides:
//  1. A transport contract (see the Client interface) for the three backend
//     endpoints: login, current user and posts.
//  2. A concrete HTTP implementation (see HTTPClient) that sends JSON, attaches
//     the session token as "Authorization: Token <token>", tags every request
//     with an X-Request-ID and maps failures onto the common error taxonomy.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Failures are classified once, here:
//   - network faults become *common.TransportError with kind
//     common.ErrNoConnectivity, common.ErrTimeout or common.ErrTransport;
//   - non-2xx replies become *common.StatusError (matches common.ErrServerRejected).
//
// Nothing is retried.
//
// # Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context; the configured request timeout applies on top of it.
package client
