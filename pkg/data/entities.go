package data

import (
	"fmt"

	"github.com/QuentinI/iroha-go-sdk/pkg/crypto"
)

// NewDomain is the registrable form of a domain.
type NewDomain struct {
	ID       DomainID `json:"id"`
	Logo     string   `json:"logo,omitempty"`
	Metadata Metadata `json:"metadata,omitempty"`
}

// Validate checks the domain operand before registration.
func (d NewDomain) Validate() error {
	if d.ID.IsZero() {
		return fmt.Errorf("domain requires an ID")
	}
	if err := d.Metadata.Validate(); err != nil {
		return fmt.Errorf("domain %s: %w", d.ID, err)
	}
	return nil
}

// NewAccount is the registrable form of an account.
type NewAccount struct {
	ID          AccountID          `json:"id"`
	Signatories []crypto.PublicKey `json:"signatories"`
	Metadata    Metadata           `json:"metadata,omitempty"`
}

// Validate checks the account operand before registration.
func (a NewAccount) Validate() error {
	if a.ID.IsZero() {
		return fmt.Errorf("account requires an ID")
	}
	if len(a.Signatories) == 0 {
		return fmt.Errorf("account %s requires at least one signatory", a.ID)
	}
	for _, signatory := range a.Signatories {
		if signatory.IsZero() {
			return fmt.Errorf("account %s has an empty signatory", a.ID)
		}
	}
	if err := a.Metadata.Validate(); err != nil {
		return fmt.Errorf("account %s: %w", a.ID, err)
	}
	return nil
}

// NewAssetDefinition is the registrable form of an asset definition.
type NewAssetDefinition struct {
	ID        AssetDefinitionID `json:"id"`
	ValueType AssetValueType    `json:"value_type"`
	Mintable  Mintable          `json:"mintable,omitempty"`
	Metadata  Metadata          `json:"metadata,omitempty"`
}

// Validate checks the asset definition operand before registration.
func (d NewAssetDefinition) Validate() error {
	if d.ID.IsZero() {
		return fmt.Errorf("asset definition requires an ID")
	}
	if !ValidValueType(d.ValueType) {
		return fmt.Errorf("asset definition %s has unsupported value type %q", d.ID, d.ValueType)
	}
	if d.Mintable != "" && !ValidMintable(d.Mintable) {
		return fmt.Errorf("asset definition %s has unsupported mintability %q", d.ID, d.Mintable)
	}
	if err := d.Metadata.Validate(); err != nil {
		return fmt.Errorf("asset definition %s: %w", d.ID, err)
	}
	return nil
}

// EffectiveMintable resolves the default mintability.
func (d NewAssetDefinition) EffectiveMintable() Mintable {
	if d.Mintable == "" {
		return MintableInfinitely
	}
	return d.Mintable
}
