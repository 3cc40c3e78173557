// The Iroha Go SDK is a client library for Hyperledger Iroha 2 peers. It
// provides packages for building, signing, and submitting instructions to a
// peer's Torii API, for querying world state, and for subscribing to
// pipeline and data events over the peer's websocket endpoint.
//
// # Packages
//
// The SDK is split into focused packages:
//
//   - pkg/client: the high-level surface tying one signing account to one peer
//   - pkg/crypto: BLAKE2b hashing, multihash keys, ed25519 and secp256k1 signatures
//   - pkg/data: domain, account, and asset identifiers and value types
//   - pkg/isi: Iroha Special Instructions (register, mint, burn, transfer, key-value)
//   - pkg/tx: transaction payloads, the builder, and signing
//   - pkg/query: signed world-state queries and their result views
//   - pkg/torii: the peer's HTTP API (transactions, queries, health, status)
//   - pkg/events: websocket event subscriptions and commitment waiting
//
// # Documentation
//
// Hyperledger Iroha 2 documentation: https://hyperledger.github.io/iroha-2-docs/
//
// # Installation
//
//	go get github.com/QuentinI/iroha-go-sdk@latest
package iroha_go_sdk
