package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/QuentinI/iroha-go-sdk/pkg/logging"
)

// DefaultInactivityTimeout closes a stream that has not delivered an event
// for this long. Zero in SubscriberConfig selects it; a negative value
// disables the timeout.
const DefaultInactivityTimeout = 30 * time.Second

type SubscriberConfig struct {
	// URL of the peer's event endpoint, e.g. "ws://127.0.0.1:8080/events".
	URL string
	// Dialer overrides the default websocket dialer.
	Dialer *websocket.Dialer
	// InactivityTimeout bounds the wait between events.
	InactivityTimeout time.Duration
}

// Subscriber opens event streams against one peer.
type Subscriber struct {
	url               string
	dialer            *websocket.Dialer
	inactivityTimeout time.Duration
	logger            zerolog.Logger
}

// NewSubscriber creates a new Subscriber.
func NewSubscriber(config SubscriberConfig) (*Subscriber, error) {
	trimmed := strings.TrimSpace(config.URL)
	if trimmed == "" {
		return nil, fmt.Errorf("event endpoint URL is required")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid event endpoint URL: %w", err)
	}
	if parsed.Scheme != "ws" && parsed.Scheme != "wss" {
		return nil, fmt.Errorf("invalid event endpoint URL: scheme must be ws or wss")
	}

	dialer := config.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}

	timeout := config.InactivityTimeout
	if timeout == 0 {
		timeout = DefaultInactivityTimeout
	}

	return &Subscriber{
		url:               trimmed,
		dialer:            dialer,
		inactivityTimeout: timeout,
		logger:            logging.With("events"),
	}, nil
}

type subscriptionRequest struct {
	Filter Filter `json:"filter"`
}

type eventEnvelope struct {
	Event *Event `json:"event,omitempty"`
}

type eventReceipt struct {
	Received bool `json:"received"`
}

// Stream is one open subscription. Events arrive on Events; after the
// channel closes, Err reports why.
type Stream struct {
	events chan Event
	cancel context.CancelFunc
	conn   *websocket.Conn

	mutex     sync.Mutex
	err       error
	closed    bool
	closeOnce sync.Once
}

// Events returns the delivery channel. It closes when the stream ends.
func (s *Stream) Events() <-chan Event {
	return s.events
}

// Err returns the terminal error, if any, once Events has closed.
func (s *Stream) Err() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.err
}

// Close tears the subscription down. A stream ended by Close reports a nil
// Err.
func (s *Stream) Close() {
	s.closeOnce.Do(func() {
		s.mutex.Lock()
		s.closed = true
		s.mutex.Unlock()
		s.cancel()
		_ = s.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		_ = s.conn.Close()
	})
}

func (s *Stream) fail(err error) {
	s.mutex.Lock()
	if s.err == nil {
		s.err = err
	}
	s.mutex.Unlock()
}

func (s *Stream) wasClosed() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.closed
}

// Subscribe opens a stream delivering the events the filter selects. The
// subscription request is sent immediately; the returned stream is live.
func (s *Subscriber) Subscribe(ctx context.Context, filter Filter) (*Stream, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	conn, _, err := s.dialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to event endpoint: %w", err)
	}

	if err := conn.WriteJSON(subscriptionRequest{Filter: filter}); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to send subscription request: %w", err)
	}

	streamCtx, cancel := context.WithCancel(ctx)
	stream := &Stream{
		events: make(chan Event, 8),
		cancel: cancel,
		conn:   conn,
	}

	go s.readLoop(streamCtx, conn, filter, stream)

	s.logger.Debug().Str("url", s.url).Msg("event subscription opened")
	return stream, nil
}

func (s *Subscriber) readLoop(
	ctx context.Context,
	conn *websocket.Conn,
	filter Filter,
	stream *Stream,
) {
	defer close(stream.events)
	defer stream.Close()

	// Unblock the read when the context ends.
	go func() {
		<-ctx.Done()
		_ = conn.SetReadDeadline(time.Now())
	}()

	for {
		// Cancellation may land while an event is being processed; checking
		// here keeps the next deadline reset from masking it.
		if ctx.Err() != nil {
			if !stream.wasClosed() {
				stream.fail(ctx.Err())
			}
			return
		}
		if s.inactivityTimeout > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(s.inactivityTimeout))
		}

		_, payload, err := conn.ReadMessage()
		if err != nil {
			switch {
			case stream.wasClosed():
				// The subscriber tore the stream down.
			case ctx.Err() != nil:
				stream.fail(ctx.Err())
			case websocket.IsCloseError(err, websocket.CloseNormalClosure):
				// Peer ended the stream cleanly.
			default:
				stream.fail(fmt.Errorf("event stream read failed: %w", err))
			}
			return
		}

		var envelope eventEnvelope
		if err := json.Unmarshal(payload, &envelope); err != nil {
			stream.fail(fmt.Errorf("failed to decode event: %w", err))
			return
		}
		if envelope.Event == nil {
			continue
		}

		// The peer holds the next event until this one is acknowledged.
		if err := conn.WriteJSON(eventReceipt{Received: true}); err != nil {
			stream.fail(fmt.Errorf("failed to acknowledge event: %w", err))
			return
		}

		if !filter.Matches(*envelope.Event) {
			continue
		}

		select {
		case stream.events <- *envelope.Event:
		case <-ctx.Done():
			if !stream.wasClosed() {
				stream.fail(ctx.Err())
			}
			return
		}
	}
}
