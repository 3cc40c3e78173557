package events

import (
	"fmt"

	"github.com/QuentinI/iroha-go-sdk/pkg/crypto"
)

// EntityKind is the pipeline entity a filter or event refers to.
type EntityKind string

const (
	EntityTransaction EntityKind = "Transaction"
	EntityBlock       EntityKind = "Block"
)

// StatusKind is a pipeline lifecycle status.
type StatusKind string

const (
	StatusValidating StatusKind = "Validating"
	StatusCommitted  StatusKind = "Committed"
	StatusRejected   StatusKind = "Rejected"
)

// DataEntityKind is the world-state entity a data event refers to.
type DataEntityKind string

const (
	DataEntityDomain          DataEntityKind = "Domain"
	DataEntityAccount         DataEntityKind = "Account"
	DataEntityAsset           DataEntityKind = "Asset"
	DataEntityAssetDefinition DataEntityKind = "AssetDefinition"
)

// PipelineEvent is one lifecycle notification for a transaction or block.
type PipelineEvent struct {
	Entity          EntityKind  `json:"entity_kind"`
	Status          StatusKind  `json:"status"`
	Hash            crypto.Hash `json:"hash"`
	RejectionReason string      `json:"rejection_reason,omitempty"`
}

// Terminal reports whether the status ends the entity's pipeline lifecycle.
func (e PipelineEvent) Terminal() bool {
	return e.Status == StatusCommitted || e.Status == StatusRejected
}

// DataEvent is one world-state change notification.
type DataEvent struct {
	Entity DataEntityKind `json:"entity_kind"`
	ID     string         `json:"id"`
	Change string         `json:"change"`
}

// Event is the envelope delivered on a stream; exactly one field is set.
type Event struct {
	Pipeline *PipelineEvent `json:"pipeline,omitempty"`
	Data     *DataEvent     `json:"data,omitempty"`
}

// PipelineEventFilter selects pipeline events. Unset fields match anything.
type PipelineEventFilter struct {
	Entity EntityKind   `json:"entity_kind,omitempty"`
	Status StatusKind   `json:"status,omitempty"`
	Hash   *crypto.Hash `json:"hash,omitempty"`
}

// TransactionByHash builds the filter observing one transaction's lifecycle.
func TransactionByHash(hash crypto.Hash) PipelineEventFilter {
	return PipelineEventFilter{Entity: EntityTransaction, Hash: &hash}
}

// Matches reports whether the event passes the filter.
func (f PipelineEventFilter) Matches(event PipelineEvent) bool {
	if f.Entity != "" && f.Entity != event.Entity {
		return false
	}
	if f.Status != "" && f.Status != event.Status {
		return false
	}
	if f.Hash != nil && *f.Hash != event.Hash {
		return false
	}
	return true
}

// Validate checks the filter's fields against the known kinds.
func (f PipelineEventFilter) Validate() error {
	switch f.Entity {
	case "", EntityTransaction, EntityBlock:
	default:
		return fmt.Errorf("unsupported pipeline entity kind %q", f.Entity)
	}
	switch f.Status {
	case "", StatusValidating, StatusCommitted, StatusRejected:
	default:
		return fmt.Errorf("unsupported pipeline status kind %q", f.Status)
	}
	return nil
}

// DataEventFilter selects data events. Unset fields match anything.
type DataEventFilter struct {
	Entity DataEntityKind `json:"entity_kind,omitempty"`
	ID     string         `json:"id,omitempty"`
}

// Matches reports whether the event passes the filter.
func (f DataEventFilter) Matches(event DataEvent) bool {
	if f.Entity != "" && f.Entity != event.Entity {
		return false
	}
	if f.ID != "" && f.ID != event.ID {
		return false
	}
	return true
}

// Validate checks the filter's fields against the known kinds.
func (f DataEventFilter) Validate() error {
	switch f.Entity {
	case "", DataEntityDomain, DataEntityAccount, DataEntityAsset, DataEntityAssetDefinition:
		return nil
	default:
		return fmt.Errorf("unsupported data entity kind %q", f.Entity)
	}
}

// Filter is a subscription request; exactly one branch must be set.
type Filter struct {
	Pipeline *PipelineEventFilter `json:"pipeline,omitempty"`
	Data     *DataEventFilter     `json:"data,omitempty"`
}

// Validate checks the subscription filter.
func (f Filter) Validate() error {
	if (f.Pipeline == nil) == (f.Data == nil) {
		return fmt.Errorf("filter requires exactly one of pipeline or data")
	}
	if f.Pipeline != nil {
		return f.Pipeline.Validate()
	}
	return f.Data.Validate()
}

// Matches reports whether a delivered event passes the subscription filter.
func (f Filter) Matches(event Event) bool {
	if f.Pipeline != nil {
		return event.Pipeline != nil && f.Pipeline.Matches(*event.Pipeline)
	}
	if f.Data != nil {
		return event.Data != nil && f.Data.Matches(*event.Data)
	}
	return false
}
