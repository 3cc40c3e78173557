package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/QuentinI/iroha-go-sdk/pkg/crypto"
	"github.com/QuentinI/iroha-go-sdk/pkg/data"
	"github.com/QuentinI/iroha-go-sdk/pkg/events"
	"github.com/QuentinI/iroha-go-sdk/pkg/isi"
	"github.com/QuentinI/iroha-go-sdk/pkg/logging"
	"github.com/QuentinI/iroha-go-sdk/pkg/torii"
	"github.com/QuentinI/iroha-go-sdk/pkg/tx"
)

// Client is the high-level SDK surface: one signing account talking to one
// peer.
type Client struct {
	account    data.AccountID
	keyPair    crypto.KeyPair
	torii      *torii.Client
	subscriber *events.Subscriber
	ttl        time.Duration
	addNonce   bool
	logger     zerolog.Logger

	// mintable tracks definitions this client has registered or minted, so
	// obviously doomed mints fail before submission. The peer stays
	// authoritative.
	mutex      sync.Mutex
	mintable   map[string]data.Mintable
	mintedOnce map[string]bool
}

// New creates a Client from the given configuration.
func New(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	account, err := data.ParseAccountID(config.AccountID)
	if err != nil {
		return nil, err
	}

	keyPair, err := config.KeyPair()
	if err != nil {
		return nil, err
	}

	toriiClient, err := torii.NewClient(torii.Config{
		BaseURL: config.ToriiURL,
		APIKey:  config.APIKey,
	})
	if err != nil {
		return nil, err
	}

	eventsURL, err := config.ResolveEventsURL()
	if err != nil {
		return nil, err
	}
	subscriber, err := events.NewSubscriber(events.SubscriberConfig{URL: eventsURL})
	if err != nil {
		return nil, err
	}

	ttl := config.TransactionTTL
	if ttl == 0 {
		ttl = time.Duration(tx.DefaultTTLMs) * time.Millisecond
	}

	return &Client{
		account:    account,
		keyPair:    keyPair,
		torii:      toriiClient,
		subscriber: subscriber,
		ttl:        ttl,
		addNonce:   config.AddNonce,
		logger:     logging.With("client"),
		mintable:   map[string]data.Mintable{},
		mintedOnce: map[string]bool{},
	}, nil
}

// AccountID returns the signer account.
func (c *Client) AccountID() data.AccountID {
	return c.account
}

// PublicKey returns the signer's public key.
func (c *Client) PublicKey() crypto.PublicKey {
	return c.keyPair.PublicKey()
}

// Torii returns the underlying peer API client.
func (c *Client) Torii() *torii.Client {
	return c.torii
}

// Subscriber returns the underlying event subscriber.
func (c *Client) Subscriber() *events.Subscriber {
	return c.subscriber
}

// SubmitInstructions signs and submits the instructions as one transaction
// and returns its hash without waiting for commitment.
func (c *Client) SubmitInstructions(
	ctx context.Context,
	instructions ...isi.Instruction,
) (crypto.Hash, error) {
	builder := tx.NewBuilder(c.account).
		WithInstructions(instructions...).
		WithTTL(c.ttl)
	if c.addNonce {
		builder = builder.WithNonce()
	}

	transaction, err := builder.Build()
	if err != nil {
		return crypto.Hash{}, err
	}
	if err := transaction.Sign(c.keyPair); err != nil {
		return crypto.Hash{}, err
	}

	return c.torii.SubmitTransaction(ctx, transaction)
}

// SubmitInstructionsBlocking submits the instructions and waits for the
// transaction to reach a terminal status. Rejection surfaces as
// *events.ErrTransactionRejected carrying the peer's reason.
func (c *Client) SubmitInstructionsBlocking(
	ctx context.Context,
	instructions ...isi.Instruction,
) (events.PipelineEvent, error) {
	hash, err := c.SubmitInstructions(ctx, instructions...)
	if err != nil {
		return events.PipelineEvent{}, err
	}
	return c.WaitForTransaction(ctx, hash)
}

// WaitForTransaction blocks until the transaction commits or is rejected.
func (c *Client) WaitForTransaction(
	ctx context.Context,
	hash crypto.Hash,
) (events.PipelineEvent, error) {
	event, err := c.subscriber.WaitForTransaction(ctx, hash)
	if err != nil {
		return events.PipelineEvent{}, err
	}

	c.logger.Debug().
		Str("hash", hash.String()).
		Str("status", string(event.Status)).
		Msg("transaction reached terminal status")
	return event, nil
}

// Health checks the peer.
func (c *Client) Health(ctx context.Context) error {
	return c.torii.Health(ctx)
}

// Status fetches the peer's status counters.
func (c *Client) Status(ctx context.Context) (torii.Status, error) {
	return c.torii.Status(ctx)
}

func (c *Client) rememberDefinition(id data.AssetDefinitionID, mintable data.Mintable) {
	c.mutex.Lock()
	c.mintable[id.String()] = mintable
	c.mutex.Unlock()
}

// checkMintAllowed rejects mints this client already knows cannot succeed.
func (c *Client) checkMintAllowed(definition data.AssetDefinitionID) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	key := definition.String()
	mintable, known := c.mintable[key]
	if !known {
		return nil
	}

	switch mintable {
	case data.MintableNot:
		return fmt.Errorf("asset definition %s is not mintable", definition)
	case data.MintableOnce:
		if c.mintedOnce[key] {
			return fmt.Errorf("asset definition %s is mintable once and was already minted", definition)
		}
	}
	return nil
}

func (c *Client) recordMint(definition data.AssetDefinitionID) {
	c.mutex.Lock()
	c.mintedOnce[definition.String()] = true
	c.mutex.Unlock()
}
