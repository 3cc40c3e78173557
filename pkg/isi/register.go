package isi

import (
	"fmt"

	"github.com/QuentinI/iroha-go-sdk/pkg/crypto"
	"github.com/QuentinI/iroha-go-sdk/pkg/data"
)

// Object kinds accepted by register and unregister instructions.
const (
	ObjectDomain          = "Domain"
	ObjectAccount         = "Account"
	ObjectAssetDefinition = "AssetDefinition"
)

// Register adds a new domain, account, or asset definition to the ledger.
// Exactly one of the operand fields must be set.
type Register struct {
	Domain          *data.NewDomain
	Account         *data.NewAccount
	AssetDefinition *data.NewAssetDefinition
}

// RegisterDomain builds a domain registration from its textual name.
func RegisterDomain(name string) (Register, error) {
	domainID, err := data.NewDomainID(name)
	if err != nil {
		return Register{}, err
	}
	return Register{Domain: &data.NewDomain{ID: domainID}}, nil
}

// RegisterAccount builds an account registration from the "name@domain" form
// and the account's signatories.
func RegisterAccount(accountID string, signatories ...crypto.PublicKey) (Register, error) {
	parsed, err := data.ParseAccountID(accountID)
	if err != nil {
		return Register{}, err
	}
	return Register{Account: &data.NewAccount{
		ID:          parsed,
		Signatories: signatories,
	}}, nil
}

// RegisterAssetDefinition builds an asset definition registration from the
// "name#domain" form.
func RegisterAssetDefinition(
	definitionID string,
	valueType data.AssetValueType,
	mintable data.Mintable,
) (Register, error) {
	parsed, err := data.ParseAssetDefinitionID(definitionID)
	if err != nil {
		return Register{}, err
	}
	return Register{AssetDefinition: &data.NewAssetDefinition{
		ID:        parsed,
		ValueType: valueType,
		Mintable:  mintable,
	}}, nil
}

// Kind returns the wire tag of the instruction.
func (r Register) Kind() string {
	return "Register"
}

// Validate checks the instruction's operands.
func (r Register) Validate() error {
	set := 0
	if r.Domain != nil {
		set++
	}
	if r.Account != nil {
		set++
	}
	if r.AssetDefinition != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("register requires exactly one object, got %d", set)
	}

	switch {
	case r.Domain != nil:
		return r.Domain.Validate()
	case r.Account != nil:
		return r.Account.Validate()
	default:
		return r.AssetDefinition.Validate()
	}
}

// Body returns the payload placed under the wire tag.
func (r Register) Body() (any, error) {
	switch {
	case r.Domain != nil:
		return map[string]any{ObjectDomain: r.Domain}, nil
	case r.Account != nil:
		return map[string]any{ObjectAccount: r.Account}, nil
	case r.AssetDefinition != nil:
		definition := *r.AssetDefinition
		definition.Mintable = definition.EffectiveMintable()
		return map[string]any{ObjectAssetDefinition: definition}, nil
	default:
		return nil, fmt.Errorf("register has no object")
	}
}

// Unregister removes a previously registered object from the ledger.
type Unregister struct {
	ObjectKind string
	ObjectID   string
}

// Kind returns the wire tag of the instruction.
func (u Unregister) Kind() string {
	return "Unregister"
}

// Validate checks the instruction's operands.
func (u Unregister) Validate() error {
	switch u.ObjectKind {
	case ObjectDomain:
		_, err := data.NewDomainID(u.ObjectID)
		return err
	case ObjectAccount:
		_, err := data.ParseAccountID(u.ObjectID)
		return err
	case ObjectAssetDefinition:
		_, err := data.ParseAssetDefinitionID(u.ObjectID)
		return err
	default:
		return fmt.Errorf("unsupported unregister object kind %q", u.ObjectKind)
	}
}

// Body returns the payload placed under the wire tag.
func (u Unregister) Body() (any, error) {
	return map[string]string{u.ObjectKind: u.ObjectID}, nil
}
