package events

import (
	"context"
	"fmt"

	"github.com/QuentinI/iroha-go-sdk/pkg/crypto"
)

// ErrTransactionRejected wraps the peer's rejection of a watched
// transaction.
type ErrTransactionRejected struct {
	Hash   crypto.Hash
	Reason string
}

// Error implements the error interface.
func (e *ErrTransactionRejected) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("transaction %s was rejected", e.Hash)
	}
	return fmt.Sprintf("transaction %s was rejected: %s", e.Hash, e.Reason)
}

// WaitForTransaction subscribes filtered by the transaction hash and blocks
// until a terminal status arrives. Commitment returns the event; rejection
// returns an ErrTransactionRejected carrying the peer's reason.
func (s *Subscriber) WaitForTransaction(
	ctx context.Context,
	hash crypto.Hash,
) (PipelineEvent, error) {
	if hash.IsZero() {
		return PipelineEvent{}, fmt.Errorf("transaction hash is required")
	}

	filter := TransactionByHash(hash)
	stream, err := s.Subscribe(ctx, Filter{Pipeline: &filter})
	if err != nil {
		return PipelineEvent{}, err
	}
	defer stream.Close()

	for {
		select {
		case <-ctx.Done():
			return PipelineEvent{}, ctx.Err()
		case event, ok := <-stream.Events():
			if !ok {
				if streamErr := stream.Err(); streamErr != nil {
					return PipelineEvent{}, streamErr
				}
				return PipelineEvent{}, fmt.Errorf(
					"event stream ended before transaction %s reached a terminal status", hash,
				)
			}
			if event.Pipeline == nil {
				continue
			}

			switch event.Pipeline.Status {
			case StatusCommitted:
				return *event.Pipeline, nil
			case StatusRejected:
				return PipelineEvent{}, &ErrTransactionRejected{
					Hash:   hash,
					Reason: event.Pipeline.RejectionReason,
				}
			default:
				s.logger.Debug().
					Str("hash", hash.String()).
					Str("status", string(event.Pipeline.Status)).
					Msg("transaction progressing")
			}
		}
	}
}
