package data

import (
	"encoding/json"
	"fmt"
)

// Limits the ledger enforces on metadata attached to entries.
const (
	MetadataMaxEntries   = 4096
	MetadataMaxByteSize  = 1 << 20
	MetadataMaxKeyLength = 128
)

// Metadata is the string-keyed map of JSON values attachable to domains,
// accounts, asset definitions, assets, and transactions.
type Metadata map[string]any

// Validate checks the metadata against the ledger's entry and size limits.
func (m Metadata) Validate() error {
	if len(m) > MetadataMaxEntries {
		return fmt.Errorf("metadata exceeds %d entries", MetadataMaxEntries)
	}

	for key := range m {
		if key == "" {
			return fmt.Errorf("metadata keys cannot be empty")
		}
		if len(key) > MetadataMaxKeyLength {
			return fmt.Errorf("metadata key %q exceeds %d characters", key, MetadataMaxKeyLength)
		}
	}

	encoded, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("metadata is not JSON-encodable: %w", err)
	}
	if len(encoded) > MetadataMaxByteSize {
		return fmt.Errorf("metadata exceeds %d bytes", MetadataMaxByteSize)
	}

	return nil
}
