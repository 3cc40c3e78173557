package data

import (
	"testing"

	"github.com/QuentinI/iroha-go-sdk/pkg/crypto"
)

func TestNewDomainValidate(t *testing.T) {
	domain := NewDomain{ID: DomainID{Name: "wonderland"}}
	if err := domain.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := (NewDomain{}).Validate(); err == nil {
		t.Fatal("expected error for domain without ID")
	}
}

func TestNewAccountValidate(t *testing.T) {
	pair, err := crypto.GenerateKeyPair(crypto.AlgorithmEd25519)
	if err != nil {
		t.Fatalf("failed to generate key pair: %v", err)
	}
	accountID, err := ParseAccountID("alice@wonderland")
	if err != nil {
		t.Fatalf("failed to parse account ID: %v", err)
	}

	account := NewAccount{
		ID:          accountID,
		Signatories: []crypto.PublicKey{pair.PublicKey()},
	}
	if err := account.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := (NewAccount{ID: accountID}).Validate(); err == nil {
		t.Fatal("expected error for account without signatories")
	}
	if err := (NewAccount{
		ID:          accountID,
		Signatories: []crypto.PublicKey{{}},
	}).Validate(); err == nil {
		t.Fatal("expected error for empty signatory")
	}
}

func TestNewAssetDefinitionValidate(t *testing.T) {
	definitionID, err := ParseAssetDefinitionID("rose#wonderland")
	if err != nil {
		t.Fatalf("failed to parse definition ID: %v", err)
	}

	definition := NewAssetDefinition{
		ID:        definitionID,
		ValueType: ValueTypeQuantity,
	}
	if err := definition.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if definition.EffectiveMintable() != MintableInfinitely {
		t.Fatalf("unexpected default mintability: %s", definition.EffectiveMintable())
	}

	definition.ValueType = "Token"
	if err := definition.Validate(); err == nil {
		t.Fatal("expected error for unsupported value type")
	}

	definition.ValueType = ValueTypeQuantity
	definition.Mintable = "Sometimes"
	if err := definition.Validate(); err == nil {
		t.Fatal("expected error for unsupported mintability")
	}
}
