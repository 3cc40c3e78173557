package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/QuentinI/iroha-go-sdk/pkg/crypto"
)

var testUpgrader = websocket.Upgrader{}

// fakePeer serves one websocket subscription: it checks the subscription
// request, then sends each event and waits for its acknowledgement.
func fakePeer(t *testing.T, eventsToSend []Event) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("failed to upgrade: %v", err)
			return
		}
		defer conn.Close()

		var request subscriptionRequest
		if err := conn.ReadJSON(&request); err != nil {
			t.Errorf("failed to read subscription request: %v", err)
			return
		}
		if err := request.Filter.Validate(); err != nil {
			t.Errorf("peer received invalid filter: %v", err)
			return
		}

		for _, event := range eventsToSend {
			if err := conn.WriteJSON(eventEnvelope{Event: &event}); err != nil {
				return
			}
			var receipt eventReceipt
			if err := conn.ReadJSON(&receipt); err != nil {
				t.Errorf("failed to read event receipt: %v", err)
				return
			}
			if !receipt.Received {
				t.Error("event was not acknowledged")
				return
			}
		}

		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
	}))
}

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestNewSubscriberValidatesURL(t *testing.T) {
	if _, err := NewSubscriber(SubscriberConfig{}); err == nil {
		t.Fatal("expected error for missing URL")
	}
	if _, err := NewSubscriber(SubscriberConfig{URL: "http://peer/events"}); err == nil {
		t.Fatal("expected error for non-ws scheme")
	}
	if _, err := NewSubscriber(SubscriberConfig{URL: "ws://peer/events"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSubscribeDeliversMatchingEvents(t *testing.T) {
	hash := crypto.HashOf([]byte("tx"))
	otherHash := crypto.HashOf([]byte("other"))

	server := fakePeer(t, []Event{
		{Pipeline: &PipelineEvent{Entity: EntityTransaction, Status: StatusValidating, Hash: otherHash}},
		{Pipeline: &PipelineEvent{Entity: EntityTransaction, Status: StatusValidating, Hash: hash}},
		{Pipeline: &PipelineEvent{Entity: EntityTransaction, Status: StatusCommitted, Hash: hash}},
	})
	defer server.Close()

	subscriber, err := NewSubscriber(SubscriberConfig{URL: wsURL(server)})
	if err != nil {
		t.Fatalf("failed to create subscriber: %v", err)
	}

	filter := TransactionByHash(hash)
	stream, err := subscriber.Subscribe(context.Background(), Filter{Pipeline: &filter})
	if err != nil {
		t.Fatalf("failed to subscribe: %v", err)
	}
	defer stream.Close()

	var received []Event
	for event := range stream.Events() {
		received = append(received, event)
	}
	if err := stream.Err(); err != nil {
		t.Fatalf("stream failed: %v", err)
	}

	if len(received) != 2 {
		t.Fatalf("expected 2 matching events, got %d", len(received))
	}
	if received[0].Pipeline.Status != StatusValidating {
		t.Fatalf("unexpected first status: %s", received[0].Pipeline.Status)
	}
	if received[1].Pipeline.Status != StatusCommitted {
		t.Fatalf("unexpected second status: %s", received[1].Pipeline.Status)
	}
}

func TestSubscribeRejectsInvalidFilter(t *testing.T) {
	subscriber, err := NewSubscriber(SubscriberConfig{URL: "ws://peer/events"})
	if err != nil {
		t.Fatalf("failed to create subscriber: %v", err)
	}
	if _, err := subscriber.Subscribe(context.Background(), Filter{}); err == nil {
		t.Fatal("expected error for invalid filter")
	}
}

func TestSubscribeContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var request subscriptionRequest
		_ = conn.ReadJSON(&request)
		// Hold the connection open without sending events.
		var receipt json.RawMessage
		_ = conn.ReadJSON(&receipt)
	}))
	defer server.Close()

	subscriber, err := NewSubscriber(SubscriberConfig{URL: wsURL(server)})
	if err != nil {
		t.Fatalf("failed to create subscriber: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	filter := PipelineEventFilter{}
	stream, err := subscriber.Subscribe(ctx, Filter{Pipeline: &filter})
	if err != nil {
		t.Fatalf("failed to subscribe: %v", err)
	}
	defer stream.Close()

	cancel()

	select {
	case _, ok := <-stream.Events():
		if ok {
			t.Fatal("expected channel close, not an event")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not close after context cancellation")
	}
	if !errors.Is(stream.Err(), context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", stream.Err())
	}
}

func TestCloseLeavesNoError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var request subscriptionRequest
		_ = conn.ReadJSON(&request)
		var receipt json.RawMessage
		_ = conn.ReadJSON(&receipt)
	}))
	defer server.Close()

	subscriber, err := NewSubscriber(SubscriberConfig{URL: wsURL(server)})
	if err != nil {
		t.Fatalf("failed to create subscriber: %v", err)
	}

	filter := PipelineEventFilter{}
	stream, err := subscriber.Subscribe(context.Background(), Filter{Pipeline: &filter})
	if err != nil {
		t.Fatalf("failed to subscribe: %v", err)
	}

	stream.Close()

	select {
	case _, ok := <-stream.Events():
		if ok {
			t.Fatal("expected channel close, not an event")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not close")
	}
	if err := stream.Err(); err != nil {
		t.Fatalf("closed stream must report no error, got %v", err)
	}
}

func TestInactivityTimeoutClosesSilentStream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		// Accept the subscription, then never send an event.
		var request subscriptionRequest
		_ = conn.ReadJSON(&request)
		var receipt json.RawMessage
		_ = conn.ReadJSON(&receipt)
	}))
	defer server.Close()

	subscriber, err := NewSubscriber(SubscriberConfig{
		URL:               wsURL(server),
		InactivityTimeout: 200 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("failed to create subscriber: %v", err)
	}

	filter := PipelineEventFilter{}
	stream, err := subscriber.Subscribe(context.Background(), Filter{Pipeline: &filter})
	if err != nil {
		t.Fatalf("failed to subscribe: %v", err)
	}
	defer stream.Close()

	select {
	case _, ok := <-stream.Events():
		if ok {
			t.Fatal("expected channel close, not an event")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("silent stream did not time out")
	}
	if err := stream.Err(); err == nil {
		t.Fatal("expected an error after the inactivity timeout")
	} else if !strings.Contains(err.Error(), "read failed") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCancellationAfterDeliveryShutsDownPromptly(t *testing.T) {
	hash := crypto.HashOf([]byte("tx"))
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var request subscriptionRequest
		_ = conn.ReadJSON(&request)

		event := Event{Pipeline: &PipelineEvent{
			Entity: EntityTransaction,
			Status: StatusValidating,
			Hash:   hash,
		}}
		if err := conn.WriteJSON(eventEnvelope{Event: &event}); err != nil {
			return
		}
		var receipt eventReceipt
		_ = conn.ReadJSON(&receipt)

		// Hold the connection open without sending more events.
		var next json.RawMessage
		_ = conn.ReadJSON(&next)
	}))
	defer server.Close()

	// A long inactivity timeout must not delay shutdown after cancellation.
	subscriber, err := NewSubscriber(SubscriberConfig{
		URL:               wsURL(server),
		InactivityTimeout: time.Minute,
	})
	if err != nil {
		t.Fatalf("failed to create subscriber: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	filter := PipelineEventFilter{}
	stream, err := subscriber.Subscribe(ctx, Filter{Pipeline: &filter})
	if err != nil {
		t.Fatalf("failed to subscribe: %v", err)
	}
	defer stream.Close()

	select {
	case event, ok := <-stream.Events():
		if !ok {
			t.Fatal("stream ended before delivering the event")
		}
		if event.Pipeline == nil || event.Pipeline.Hash != hash {
			t.Fatalf("unexpected event: %+v", event)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("event was not delivered")
	}

	cancel()

	select {
	case _, ok := <-stream.Events():
		if ok {
			t.Fatal("expected channel close, not an event")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not close promptly after cancellation")
	}
	if !errors.Is(stream.Err(), context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", stream.Err())
	}
}

func TestWaitForTransactionCommitted(t *testing.T) {
	hash := crypto.HashOf([]byte("tx"))
	server := fakePeer(t, []Event{
		{Pipeline: &PipelineEvent{Entity: EntityTransaction, Status: StatusValidating, Hash: hash}},
		{Pipeline: &PipelineEvent{Entity: EntityTransaction, Status: StatusCommitted, Hash: hash}},
	})
	defer server.Close()

	subscriber, err := NewSubscriber(SubscriberConfig{URL: wsURL(server)})
	if err != nil {
		t.Fatalf("failed to create subscriber: %v", err)
	}

	event, err := subscriber.WaitForTransaction(context.Background(), hash)
	if err != nil {
		t.Fatalf("wait failed: %v", err)
	}
	if event.Status != StatusCommitted || event.Hash != hash {
		t.Fatalf("unexpected terminal event: %+v", event)
	}
}

func TestWaitForTransactionRejected(t *testing.T) {
	hash := crypto.HashOf([]byte("tx"))
	server := fakePeer(t, []Event{
		{Pipeline: &PipelineEvent{
			Entity:          EntityTransaction,
			Status:          StatusRejected,
			Hash:            hash,
			RejectionReason: "account alice@wonderland not found",
		}},
	})
	defer server.Close()

	subscriber, err := NewSubscriber(SubscriberConfig{URL: wsURL(server)})
	if err != nil {
		t.Fatalf("failed to create subscriber: %v", err)
	}

	_, err = subscriber.WaitForTransaction(context.Background(), hash)
	var rejected *ErrTransactionRejected
	if !errors.As(err, &rejected) {
		t.Fatalf("expected ErrTransactionRejected, got %v", err)
	}
	if rejected.Reason != "account alice@wonderland not found" {
		t.Fatalf("unexpected rejection reason: %s", rejected.Reason)
	}
}

func TestWaitForTransactionRequiresHash(t *testing.T) {
	subscriber, err := NewSubscriber(SubscriberConfig{URL: "ws://peer/events"})
	if err != nil {
		t.Fatalf("failed to create subscriber: %v", err)
	}
	if _, err := subscriber.WaitForTransaction(context.Background(), crypto.Hash{}); err == nil {
		t.Fatal("expected error for zero hash")
	}
}

func TestWaitForTransactionStreamEndsEarly(t *testing.T) {
	hash := crypto.HashOf([]byte("tx"))
	server := fakePeer(t, []Event{
		{Pipeline: &PipelineEvent{Entity: EntityTransaction, Status: StatusValidating, Hash: hash}},
	})
	defer server.Close()

	subscriber, err := NewSubscriber(SubscriberConfig{URL: wsURL(server)})
	if err != nil {
		t.Fatalf("failed to create subscriber: %v", err)
	}

	if _, err := subscriber.WaitForTransaction(context.Background(), hash); err == nil {
		t.Fatal("expected error when stream ends before a terminal status")
	}
}
