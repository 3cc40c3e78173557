package isi

import (
	"fmt"

	"github.com/QuentinI/iroha-go-sdk/pkg/data"
)

// Grant gives a permission token to an account.
type Grant struct {
	Token       string
	Params      map[string]string
	Destination data.AccountID
}

// GrantPermission builds a grant of the named token to the account in its
// textual form.
func GrantPermission(token, destinationAccountID string, params map[string]string) (Grant, error) {
	destination, err := data.ParseAccountID(destinationAccountID)
	if err != nil {
		return Grant{}, err
	}
	return Grant{Token: token, Params: params, Destination: destination}, nil
}

// Kind returns the wire tag of the instruction.
func (g Grant) Kind() string {
	return "Grant"
}

// Validate checks the instruction's operands.
func (g Grant) Validate() error {
	if g.Token == "" {
		return fmt.Errorf("grant requires a permission token name")
	}
	if g.Destination.IsZero() {
		return fmt.Errorf("grant requires a destination account")
	}
	return nil
}

// Body returns the payload placed under the wire tag.
func (g Grant) Body() (any, error) {
	body := map[string]any{
		"token":       g.Token,
		"destination": g.Destination,
	}
	if len(g.Params) > 0 {
		body["params"] = g.Params
	}
	return body, nil
}
