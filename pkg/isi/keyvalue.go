package isi

import (
	"fmt"

	"github.com/QuentinI/iroha-go-sdk/pkg/data"
)

// SetKeyValue writes a metadata entry on an account or on an asset store.
// Exactly one of AccountID or AssetID must be set.
type SetKeyValue struct {
	AccountID *data.AccountID
	AssetID   *data.AssetID
	Key       string
	Value     any
}

// SetAccountKeyValue builds a metadata write on an account.
func SetAccountKeyValue(accountID, key string, value any) (SetKeyValue, error) {
	parsed, err := data.ParseAccountID(accountID)
	if err != nil {
		return SetKeyValue{}, err
	}
	return SetKeyValue{AccountID: &parsed, Key: key, Value: value}, nil
}

// SetAssetKeyValue builds a metadata write on a store asset.
func SetAssetKeyValue(assetID, key string, value any) (SetKeyValue, error) {
	parsed, err := data.ParseAssetID(assetID)
	if err != nil {
		return SetKeyValue{}, err
	}
	return SetKeyValue{AssetID: &parsed, Key: key, Value: value}, nil
}

// Kind returns the wire tag of the instruction.
func (s SetKeyValue) Kind() string {
	return "SetKeyValue"
}

// Validate checks the instruction's operands.
func (s SetKeyValue) Validate() error {
	if (s.AccountID == nil) == (s.AssetID == nil) {
		return fmt.Errorf("set key value requires exactly one of account or asset")
	}
	if s.Key == "" {
		return fmt.Errorf("set key value requires a key")
	}
	if len(s.Key) > data.MetadataMaxKeyLength {
		return fmt.Errorf("metadata key %q exceeds %d characters", s.Key, data.MetadataMaxKeyLength)
	}
	if s.Value == nil {
		return fmt.Errorf("set key value requires a value")
	}
	return nil
}

// Body returns the payload placed under the wire tag.
func (s SetKeyValue) Body() (any, error) {
	body := map[string]any{
		"key":   s.Key,
		"value": s.Value,
	}
	if s.AccountID != nil {
		body["object"] = map[string]any{ObjectAccount: s.AccountID}
	} else {
		body["object"] = map[string]any{"Asset": s.AssetID}
	}
	return body, nil
}

// RemoveKeyValue deletes a metadata entry from an account or an asset store.
type RemoveKeyValue struct {
	AccountID *data.AccountID
	AssetID   *data.AssetID
	Key       string
}

// Kind returns the wire tag of the instruction.
func (r RemoveKeyValue) Kind() string {
	return "RemoveKeyValue"
}

// Validate checks the instruction's operands.
func (r RemoveKeyValue) Validate() error {
	if (r.AccountID == nil) == (r.AssetID == nil) {
		return fmt.Errorf("remove key value requires exactly one of account or asset")
	}
	if r.Key == "" {
		return fmt.Errorf("remove key value requires a key")
	}
	return nil
}

// Body returns the payload placed under the wire tag.
func (r RemoveKeyValue) Body() (any, error) {
	body := map[string]any{"key": r.Key}
	if r.AccountID != nil {
		body["object"] = map[string]any{ObjectAccount: r.AccountID}
	} else {
		body["object"] = map[string]any{"Asset": r.AssetID}
	}
	return body, nil
}
