// Package data defines the identifier and value model shared by every other
// package in the Iroha Go SDK: domain, account, asset definition, and asset
// identifiers, asset value kinds, mintability, and entry metadata.
//
// Identifiers follow the textual grammar used throughout the Iroha
// ecosystem: accounts are written "name@domain", asset definitions
// "name#domain", and concrete assets "name#domain#account@domain" (with the
// "name##account@domain" shorthand when the definition lives in the holding
// account's own domain). All identifier types round-trip through their
// String and Parse forms and marshal as JSON strings.
//
// This package is part of the Iroha Go SDK.
package data
