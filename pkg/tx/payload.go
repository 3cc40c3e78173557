package tx

import (
	"encoding/json"
	"fmt"

	"github.com/QuentinI/iroha-go-sdk/pkg/crypto"
	"github.com/QuentinI/iroha-go-sdk/pkg/data"
)

// TTL bounds enforced on transaction payloads, in milliseconds.
const (
	DefaultTTLMs int64 = 100_000
	MinTTLMs     int64 = 1_000
	MaxTTLMs     int64 = 86_400_000
)

// Payload is the signed portion of a transaction. Its canonical JSON
// encoding is what gets hashed and signed; signatures live outside it.
type Payload struct {
	Account        data.AccountID    `json:"account_id"`
	Instructions   []json.RawMessage `json:"instructions"`
	CreationTimeMs int64             `json:"creation_time"`
	TimeToLiveMs   int64             `json:"time_to_live_ms"`
	Nonce          uint32            `json:"nonce,omitempty"`
	Metadata       data.Metadata     `json:"metadata,omitempty"`
}

// Validate checks the payload against the ledger's transaction limits.
func (p Payload) Validate() error {
	if p.Account.IsZero() {
		return fmt.Errorf("transaction requires a creator account")
	}
	if len(p.Instructions) == 0 {
		return fmt.Errorf("transaction requires at least one instruction")
	}
	if p.CreationTimeMs <= 0 {
		return fmt.Errorf("transaction requires a creation time")
	}
	if p.TimeToLiveMs < MinTTLMs || p.TimeToLiveMs > MaxTTLMs {
		return fmt.Errorf(
			"transaction TTL %dms outside [%d, %d]", p.TimeToLiveMs, MinTTLMs, MaxTTLMs,
		)
	}
	if err := p.Metadata.Validate(); err != nil {
		return fmt.Errorf("transaction metadata: %w", err)
	}
	return nil
}

// Encode renders the canonical encoding hashed and signed by signatories.
// encoding/json writes struct fields in declaration order and sorts map
// keys, so the output is deterministic for a given payload.
func (p Payload) Encode() ([]byte, error) {
	encoded, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transaction payload: %w", err)
	}
	return encoded, nil
}

// Hash computes the transaction hash: the BLAKE2b-256 digest of the
// canonical payload encoding.
func (p Payload) Hash() (crypto.Hash, error) {
	encoded, err := p.Encode()
	if err != nil {
		return crypto.Hash{}, err
	}
	return crypto.HashOf(encoded), nil
}
