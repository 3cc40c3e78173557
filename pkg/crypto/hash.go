package crypto

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// HashSize is the size in bytes of a payload hash.
const HashSize = 32

// Hash is the BLAKE2b-256 digest of a canonical payload encoding. Transaction
// and query hashes are of this type.
type Hash [HashSize]byte

// HashOf computes the BLAKE2b-256 digest of the given payload.
func HashOf(payload []byte) Hash {
	return Hash(blake2b.Sum256(payload))
}

// HashFromHex parses the provided input value.
func HashFromHex(value string) (Hash, error) {
	var hash Hash
	decoded, err := hex.DecodeString(value)
	if err != nil {
		return hash, fmt.Errorf("invalid hash hex: %w", err)
	}
	if len(decoded) != HashSize {
		return hash, fmt.Errorf("hash must be %d bytes, got %d", HashSize, len(decoded))
	}
	copy(hash[:], decoded)
	return hash, nil
}

// String returns the lowercase hex rendering of the hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// IsZero reports whether the hash is the all-zero value.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// MarshalText implements encoding.TextMarshaler.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := HashFromHex(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
