package data

import (
	"fmt"
	"regexp"
	"strings"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ValidateName reports whether the value is usable as a domain, account, or
// asset definition name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("name %q contains characters outside [a-zA-Z0-9_]", name)
	}
	if len(name) > 128 {
		return fmt.Errorf("name must not exceed 128 characters")
	}
	return nil
}

// DomainID identifies a domain, the namespace grouping accounts and assets.
type DomainID struct {
	Name string
}

// NewDomainID creates a new DomainID.
func NewDomainID(name string) (DomainID, error) {
	if err := ValidateName(name); err != nil {
		return DomainID{}, fmt.Errorf("invalid domain ID: %w", err)
	}
	return DomainID{Name: name}, nil
}

// String returns the textual form of the ID.
func (id DomainID) String() string {
	return id.Name
}

// IsZero reports whether the ID is unset.
func (id DomainID) IsZero() bool {
	return id.Name == ""
}

// MarshalText implements encoding.TextMarshaler.
func (id DomainID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *DomainID) UnmarshalText(text []byte) error {
	parsed, err := NewDomainID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// AccountID identifies an account within a domain, written "name@domain".
type AccountID struct {
	Name   string
	Domain DomainID
}

// NewAccountID creates a new AccountID.
func NewAccountID(name, domain string) (AccountID, error) {
	if err := ValidateName(name); err != nil {
		return AccountID{}, fmt.Errorf("invalid account name: %w", err)
	}
	domainID, err := NewDomainID(domain)
	if err != nil {
		return AccountID{}, err
	}
	return AccountID{Name: name, Domain: domainID}, nil
}

// ParseAccountID parses the "name@domain" textual form.
func ParseAccountID(value string) (AccountID, error) {
	name, domain, found := strings.Cut(strings.TrimSpace(value), "@")
	if !found {
		return AccountID{}, fmt.Errorf("account ID %q must be in name@domain form", value)
	}
	return NewAccountID(name, domain)
}

// String returns the textual form of the ID.
func (id AccountID) String() string {
	return id.Name + "@" + id.Domain.Name
}

// IsZero reports whether the ID is unset.
func (id AccountID) IsZero() bool {
	return id.Name == "" && id.Domain.IsZero()
}

// MarshalText implements encoding.TextMarshaler.
func (id AccountID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *AccountID) UnmarshalText(text []byte) error {
	parsed, err := ParseAccountID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// AssetDefinitionID identifies an asset definition within a domain, written
// "name#domain".
type AssetDefinitionID struct {
	Name   string
	Domain DomainID
}

// NewAssetDefinitionID creates a new AssetDefinitionID.
func NewAssetDefinitionID(name, domain string) (AssetDefinitionID, error) {
	if err := ValidateName(name); err != nil {
		return AssetDefinitionID{}, fmt.Errorf("invalid asset definition name: %w", err)
	}
	domainID, err := NewDomainID(domain)
	if err != nil {
		return AssetDefinitionID{}, err
	}
	return AssetDefinitionID{Name: name, Domain: domainID}, nil
}

// ParseAssetDefinitionID parses the "name#domain" textual form.
func ParseAssetDefinitionID(value string) (AssetDefinitionID, error) {
	name, domain, found := strings.Cut(strings.TrimSpace(value), "#")
	if !found {
		return AssetDefinitionID{}, fmt.Errorf(
			"asset definition ID %q must be in name#domain form", value,
		)
	}
	return NewAssetDefinitionID(name, domain)
}

// String returns the textual form of the ID.
func (id AssetDefinitionID) String() string {
	return id.Name + "#" + id.Domain.Name
}

// IsZero reports whether the ID is unset.
func (id AssetDefinitionID) IsZero() bool {
	return id.Name == "" && id.Domain.IsZero()
}

// MarshalText implements encoding.TextMarshaler.
func (id AssetDefinitionID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *AssetDefinitionID) UnmarshalText(text []byte) error {
	parsed, err := ParseAssetDefinitionID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// AssetID identifies a concrete asset: a definition held by an account. The
// full textual form is "name#definition_domain#account@account_domain"; when
// the definition lives in the account's own domain the middle segment is
// elided, giving "name##account@domain".
type AssetID struct {
	Definition AssetDefinitionID
	Account    AccountID
}

// NewAssetID creates a new AssetID.
func NewAssetID(definition AssetDefinitionID, account AccountID) (AssetID, error) {
	if definition.IsZero() {
		return AssetID{}, fmt.Errorf("asset ID requires a definition")
	}
	if account.IsZero() {
		return AssetID{}, fmt.Errorf("asset ID requires a holding account")
	}
	return AssetID{Definition: definition, Account: account}, nil
}

// ParseAssetID parses either textual form of an asset ID.
func ParseAssetID(value string) (AssetID, error) {
	segments := strings.Split(strings.TrimSpace(value), "#")
	if len(segments) != 3 {
		return AssetID{}, fmt.Errorf(
			"asset ID %q must be in name#domain#account@domain form", value,
		)
	}

	account, err := ParseAccountID(segments[2])
	if err != nil {
		return AssetID{}, err
	}

	definitionDomain := segments[1]
	if definitionDomain == "" {
		definitionDomain = account.Domain.Name
	}
	definition, err := NewAssetDefinitionID(segments[0], definitionDomain)
	if err != nil {
		return AssetID{}, err
	}

	return NewAssetID(definition, account)
}

// String returns the textual form of the ID.
func (id AssetID) String() string {
	if id.Definition.Domain == id.Account.Domain {
		return id.Definition.Name + "##" + id.Account.String()
	}
	return id.Definition.String() + "#" + id.Account.String()
}

// IsZero reports whether the ID is unset.
func (id AssetID) IsZero() bool {
	return id.Definition.IsZero() && id.Account.IsZero()
}

// MarshalText implements encoding.TextMarshaler.
func (id AssetID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *AssetID) UnmarshalText(text []byte) error {
	parsed, err := ParseAssetID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
