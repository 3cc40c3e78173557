package query

import (
	"github.com/QuentinI/iroha-go-sdk/pkg/crypto"
	"github.com/QuentinI/iroha-go-sdk/pkg/data"
	"github.com/QuentinI/iroha-go-sdk/pkg/isi"
)

// Domain is the peer's view of a registered domain.
type Domain struct {
	ID       data.DomainID `json:"id"`
	Logo     string        `json:"logo,omitempty"`
	Metadata data.Metadata `json:"metadata,omitempty"`
}

// Account is the peer's view of a registered account.
type Account struct {
	ID          data.AccountID     `json:"id"`
	Signatories []crypto.PublicKey `json:"signatories"`
	Metadata    data.Metadata      `json:"metadata,omitempty"`
}

// Asset is the peer's view of an asset held by an account.
type Asset struct {
	ID    data.AssetID `json:"id"`
	Value isi.Value    `json:"value"`
}
