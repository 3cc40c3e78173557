// Package isi implements Iroha Special Instructions: the individual
// operations (register, mint, burn, transfer, key-value updates, grants)
// bundled into transactions and submitted to a peer.
//
// Every instruction validates its operands before encoding and marshals to
// the tagged-union JSON form the peer's transaction endpoint accepts, e.g.
//
//	{"Register": {"Domain": {"id": "wonderland"}}}
//	{"Mint": {"destination": "rose##alice@wonderland", "value": {"Quantity": 42}}}
//
// # Getting Started
//
// Build the instructions from the tutorial flow:
//
//	domain, _ := isi.RegisterDomain("wonderland")
//	account, _ := isi.RegisterAccount("alice@wonderland", signatory)
//	definition, _ := isi.RegisterAssetDefinition("rose#wonderland", data.ValueTypeQuantity, data.MintableInfinitely)
//	mint, _ := isi.MintQuantity(42, "rose##alice@wonderland")
//
// This package is part of the Iroha Go SDK.
package isi
