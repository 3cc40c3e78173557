// Package events subscribes to an Iroha peer's event stream over websocket.
// Pipeline events report the lifecycle of submitted transactions and blocks
// (validating, committed, rejected); data events report changes to domains,
// accounts, and assets.
//
// A subscription opens with a filter; unset filter fields match anything, so
// a filter carrying only a transaction hash observes that transaction's
// whole lifecycle. The peer expects each delivered event to be acknowledged
// before it sends the next, and the stream handles that.
//
// # Getting Started
//
// Wait for a submitted transaction to commit:
//
//	subscriber, _ := events.NewSubscriber(events.SubscriberConfig{URL: "ws://127.0.0.1:8080/events"})
//	event, err := subscriber.WaitForTransaction(ctx, hash)
//
// This package is part of the Iroha Go SDK.
package events
