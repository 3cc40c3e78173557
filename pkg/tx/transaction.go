package tx

import (
	"fmt"
	"time"

	"github.com/QuentinI/iroha-go-sdk/pkg/crypto"
)

// Transaction is a payload plus the signatures collected so far. A
// transaction with at least one signature is submittable.
type Transaction struct {
	Payload    Payload            `json:"payload"`
	Signatures []crypto.Signature `json:"signatures"`
}

// Hash returns the transaction hash. Signatures do not affect it.
func (t *Transaction) Hash() (crypto.Hash, error) {
	return t.Payload.Hash()
}

// Sign signs the payload with the given key pair and appends the signature.
// Signing twice with the same key is rejected.
func (t *Transaction) Sign(pair crypto.KeyPair) error {
	encoded, err := t.Payload.Encode()
	if err != nil {
		return err
	}

	for _, existing := range t.Signatures {
		if existing.PublicKey.Equal(pair.PublicKey()) {
			return fmt.Errorf("transaction already signed by %s", pair.PublicKey())
		}
	}

	signature, err := pair.Sign(encoded)
	if err != nil {
		return err
	}

	t.Signatures = append(t.Signatures, signature)
	return nil
}

// VerifySignatures checks every collected signature against the payload.
func (t *Transaction) VerifySignatures() error {
	if len(t.Signatures) == 0 {
		return fmt.Errorf("transaction has no signatures")
	}

	encoded, err := t.Payload.Encode()
	if err != nil {
		return err
	}

	for _, signature := range t.Signatures {
		if !signature.Verify(encoded) {
			return fmt.Errorf("invalid signature from %s", signature.PublicKey)
		}
	}
	return nil
}

// Expired reports whether the transaction's TTL has elapsed at the given
// time.
func (t *Transaction) Expired(now time.Time) bool {
	deadline := t.Payload.CreationTimeMs + t.Payload.TimeToLiveMs
	return now.UnixMilli() > deadline
}
