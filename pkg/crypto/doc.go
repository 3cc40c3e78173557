// Package crypto provides the key material and hashing primitives used by
// the Iroha Go SDK. It implements multihash-encoded public keys, private key
// parsing, signing and verification for the ed25519 and secp256k1 signature
// schemes supported by Iroha peers, and BLAKE2b-256 payload hashing.
//
// Keys follow the multihash hex encoding used across the Iroha ecosystem:
// an ed25519 public key is rendered as "ed0120" followed by 32 bytes of hex,
// a secp256k1 public key as "e70121" followed by its 33-byte compressed form.
//
// # Getting Started
//
// Generate a key pair and sign a payload:
//
//	pair, err := crypto.GenerateKeyPair(crypto.AlgorithmEd25519)
//	signature := pair.Sign([]byte("payload"))
//
// This package is part of the Iroha Go SDK.
package crypto
