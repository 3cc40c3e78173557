// Package query builds the signed query requests Iroha peers answer: finding
// domains, accounts, and assets by ID, and listing collections of them. A
// query is signed by the requesting account the same way a transaction is,
// so the peer can check the requester's permissions.
//
// # Getting Started
//
// Build a signed lookup for an account's assets:
//
//	find, _ := query.FindAccountAssets("alice@wonderland")
//	request, err := query.Sign(find, requesterID, keyPair)
//
// This package is part of the Iroha Go SDK.
package query
