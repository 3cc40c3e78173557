// Package tx builds, hashes, and signs the transactions submitted to an
// Iroha peer. A transaction bundles a creator account, a list of
// instructions, a creation timestamp, a time-to-live, and an optional nonce
// into a payload; the transaction hash is the BLAKE2b-256 digest of the
// payload's canonical JSON encoding, and signatures are made over that same
// encoding so the hash is stable no matter how many signatories sign.
//
// # Getting Started
//
// Build and sign a transaction carrying one instruction:
//
//	register, _ := isi.RegisterDomain("wonderland")
//	signed, err := tx.NewBuilder(creatorID).
//		WithInstructions(register).
//		Build()
//	if err != nil { ... }
//	if err := signed.Sign(keyPair); err != nil { ... }
//
// This package is part of the Iroha Go SDK.
package tx
