// Package torii provides the HTTP client for an Iroha peer's API gateway
// ("Torii"). It handles transaction submission, signed queries, and the
// health, status, and pending-transaction endpoints.
//
// The client validates its base URL up front, decodes brotli-compressed
// responses transparently, and retries idempotent reads with exponential
// backoff. Write paths (transaction and query submission) are never retried
// by the client; resubmission is the caller's decision.
//
// # Getting Started
//
// Construct a client against a local peer and check its health:
//
//	client, err := torii.NewClient(torii.Config{BaseURL: "http://127.0.0.1:8080"})
//	if err != nil { ... }
//	if err := client.Health(ctx); err != nil { ... }
//
// This package is part of the Iroha Go SDK.
package torii
