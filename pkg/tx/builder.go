package tx

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/QuentinI/iroha-go-sdk/pkg/data"
	"github.com/QuentinI/iroha-go-sdk/pkg/isi"
)

// Builder accumulates the parts of a transaction payload. The zero value is
// not usable; construct with NewBuilder.
type Builder struct {
	account      data.AccountID
	instructions []isi.Instruction
	ttl          time.Duration
	creationTime time.Time
	withNonce    bool
	metadata     data.Metadata
	err          error
}

// NewBuilder creates a new Builder for the given creator account.
func NewBuilder(account data.AccountID) *Builder {
	return &Builder{account: account}
}

// NewBuilderFor creates a new Builder parsing the creator from its
// "name@domain" form.
func NewBuilderFor(accountID string) *Builder {
	account, err := data.ParseAccountID(accountID)
	return &Builder{account: account, err: err}
}

// WithInstructions appends instructions to the transaction.
func (b *Builder) WithInstructions(instructions ...isi.Instruction) *Builder {
	b.instructions = append(b.instructions, instructions...)
	return b
}

// WithTTL overrides the default time-to-live.
func (b *Builder) WithTTL(ttl time.Duration) *Builder {
	b.ttl = ttl
	return b
}

// WithCreationTime pins the creation time; defaults to time.Now at Build.
func (b *Builder) WithCreationTime(creationTime time.Time) *Builder {
	b.creationTime = creationTime
	return b
}

// WithNonce adds a random nonce so identical instruction lists produce
// distinct transaction hashes.
func (b *Builder) WithNonce() *Builder {
	b.withNonce = true
	return b
}

// WithMetadata attaches metadata to the transaction.
func (b *Builder) WithMetadata(metadata data.Metadata) *Builder {
	b.metadata = metadata
	return b
}

// Build validates the accumulated parts and produces an unsigned
// transaction.
func (b *Builder) Build() (*Transaction, error) {
	if b.err != nil {
		return nil, b.err
	}

	encoded, err := isi.EncodeAll(b.instructions)
	if err != nil {
		return nil, err
	}

	creationTime := b.creationTime
	if creationTime.IsZero() {
		creationTime = time.Now()
	}

	ttl := b.ttl
	if ttl == 0 {
		ttl = time.Duration(DefaultTTLMs) * time.Millisecond
	}

	payload := Payload{
		Account:        b.account,
		Instructions:   encoded,
		CreationTimeMs: creationTime.UnixMilli(),
		TimeToLiveMs:   ttl.Milliseconds(),
		Metadata:       b.metadata,
	}

	if b.withNonce {
		nonce, err := randomNonce()
		if err != nil {
			return nil, err
		}
		payload.Nonce = nonce
	}

	if err := payload.Validate(); err != nil {
		return nil, err
	}

	return &Transaction{Payload: payload}, nil
}

func randomNonce() (uint32, error) {
	var buffer [4]byte
	if _, err := rand.Read(buffer[:]); err != nil {
		return 0, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return binary.BigEndian.Uint32(buffer[:]), nil
}
