package isi

import (
	"fmt"

	"github.com/QuentinI/iroha-go-sdk/pkg/data"
)

// Mint increases the value of an asset held by an account.
type Mint struct {
	Value       Value
	Destination data.AssetID
}

// MintQuantity builds a quantity mint targeting the asset in its textual
// form, e.g. "rose##alice@wonderland".
func MintQuantity(amount uint32, assetID string) (Mint, error) {
	parsed, err := data.ParseAssetID(assetID)
	if err != nil {
		return Mint{}, err
	}
	return Mint{Value: Quantity(amount), Destination: parsed}, nil
}

// MintFixed builds a fixed-point mint from a decimal string.
func MintFixed(amount string, assetID string) (Mint, error) {
	fixed, err := data.ParseFixed(amount)
	if err != nil {
		return Mint{}, err
	}
	parsed, err := data.ParseAssetID(assetID)
	if err != nil {
		return Mint{}, err
	}
	return Mint{Value: FixedValue(fixed), Destination: parsed}, nil
}

// Kind returns the wire tag of the instruction.
func (m Mint) Kind() string {
	return "Mint"
}

// Validate checks the instruction's operands.
func (m Mint) Validate() error {
	if err := m.Value.Validate(); err != nil {
		return fmt.Errorf("mint: %w", err)
	}
	if m.Destination.IsZero() {
		return fmt.Errorf("mint requires a destination asset")
	}
	return nil
}

// Body returns the payload placed under the wire tag.
func (m Mint) Body() (any, error) {
	return map[string]any{
		"value":       m.Value,
		"destination": m.Destination,
	}, nil
}

// Burn decreases the value of an asset held by an account.
type Burn struct {
	Value       Value
	Destination data.AssetID
}

// BurnQuantity builds a quantity burn targeting the asset in its textual form.
func BurnQuantity(amount uint32, assetID string) (Burn, error) {
	parsed, err := data.ParseAssetID(assetID)
	if err != nil {
		return Burn{}, err
	}
	return Burn{Value: Quantity(amount), Destination: parsed}, nil
}

// Kind returns the wire tag of the instruction.
func (b Burn) Kind() string {
	return "Burn"
}

// Validate checks the instruction's operands.
func (b Burn) Validate() error {
	if err := b.Value.Validate(); err != nil {
		return fmt.Errorf("burn: %w", err)
	}
	if b.Destination.IsZero() {
		return fmt.Errorf("burn requires a destination asset")
	}
	return nil
}

// Body returns the payload placed under the wire tag.
func (b Burn) Body() (any, error) {
	return map[string]any{
		"value":       b.Value,
		"destination": b.Destination,
	}, nil
}

// Transfer moves asset value between two accounts holding the same asset
// definition.
type Transfer struct {
	Source      data.AssetID
	Value       Value
	Destination data.AccountID
}

// TransferQuantity builds a quantity transfer between textual IDs.
func TransferQuantity(amount uint32, sourceAssetID, destinationAccountID string) (Transfer, error) {
	source, err := data.ParseAssetID(sourceAssetID)
	if err != nil {
		return Transfer{}, err
	}
	destination, err := data.ParseAccountID(destinationAccountID)
	if err != nil {
		return Transfer{}, err
	}
	return Transfer{Source: source, Value: Quantity(amount), Destination: destination}, nil
}

// Kind returns the wire tag of the instruction.
func (t Transfer) Kind() string {
	return "Transfer"
}

// Validate checks the instruction's operands.
func (t Transfer) Validate() error {
	if t.Source.IsZero() {
		return fmt.Errorf("transfer requires a source asset")
	}
	if err := t.Value.Validate(); err != nil {
		return fmt.Errorf("transfer: %w", err)
	}
	if t.Destination.IsZero() {
		return fmt.Errorf("transfer requires a destination account")
	}
	return nil
}

// Body returns the payload placed under the wire tag.
func (t Transfer) Body() (any, error) {
	return map[string]any{
		"source":      t.Source,
		"value":       t.Value,
		"destination": t.Destination,
	}, nil
}
