// Package client is the high-level entry point of the Iroha Go SDK. A
// Client wraps a signing account, the peer's Torii HTTP API, and the event
// stream behind one surface: register domains, accounts, and asset
// definitions, mint, burn, and transfer assets, run signed queries, and wait
// for submitted transactions to commit.
//
// # Configuration
//
// A Client is configured from an explicit Config, from environment
// variables (with .env discovery), or from a resident JSON configuration
// file; see ConfigFromEnv and ConfigFromFile.
//
// # Getting Started
//
// The tutorial flow, end to end:
//
//	cfg, _ := client.ConfigFromEnv()
//	c, err := client.New(cfg)
//	if err != nil { ... }
//
//	event, err := c.RegisterDomainBlocking(ctx, "looking_glass")
//	if err != nil { ... }
//
// This package is part of the Iroha Go SDK.
package client
