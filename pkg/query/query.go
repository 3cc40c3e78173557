package query

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/QuentinI/iroha-go-sdk/pkg/crypto"
	"github.com/QuentinI/iroha-go-sdk/pkg/data"
)

// Query is a read request answerable by a peer.
type Query interface {
	// Kind returns the wire tag of the query, e.g. "FindDomainById".
	Kind() string
	// Body returns the payload placed under the wire tag.
	Body() any
	// Validate checks the query's operands.
	Validate() error
}

// Payload is the signed portion of a query request.
type Payload struct {
	Account     data.AccountID  `json:"account_id"`
	Query       json.RawMessage `json:"query"`
	TimestampMs int64           `json:"timestamp_ms"`
}

// Request is a signed query in the wire form posted to the peer.
type Request struct {
	Payload   Payload          `json:"payload"`
	Signature crypto.Signature `json:"signature"`
}

// Encode validates the query and renders its tagged wire form.
func Encode(q Query) (json.RawMessage, error) {
	if q == nil {
		return nil, fmt.Errorf("query is nil")
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	encoded, err := json.Marshal(map[string]any{q.Kind(): q.Body()})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s query: %w", q.Kind(), err)
	}
	return encoded, nil
}

// Sign builds and signs a query request on behalf of the given account.
func Sign(q Query, account data.AccountID, pair crypto.KeyPair) (Request, error) {
	return SignAt(q, account, pair, time.Now())
}

// SignAt is Sign with an explicit timestamp.
func SignAt(q Query, account data.AccountID, pair crypto.KeyPair, at time.Time) (Request, error) {
	if account.IsZero() {
		return Request{}, fmt.Errorf("query requires a requesting account")
	}

	encoded, err := Encode(q)
	if err != nil {
		return Request{}, err
	}

	payload := Payload{
		Account:     account,
		Query:       encoded,
		TimestampMs: at.UnixMilli(),
	}

	canonical, err := json.Marshal(payload)
	if err != nil {
		return Request{}, fmt.Errorf("failed to encode query payload: %w", err)
	}
	signature, err := pair.Sign(canonical)
	if err != nil {
		return Request{}, err
	}

	return Request{Payload: payload, Signature: signature}, nil
}

// Validate checks the request is complete before submission.
func (r Request) Validate() error {
	if r.Payload.Account.IsZero() {
		return fmt.Errorf("query request requires a requesting account")
	}
	if len(r.Payload.Query) == 0 {
		return fmt.Errorf("query request carries no query")
	}
	if len(r.Signature.Payload) == 0 {
		return fmt.Errorf("query request is unsigned")
	}
	return nil
}
