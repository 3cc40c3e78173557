package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
)

// Algorithm identifies a signature scheme supported by Iroha peers.
type Algorithm string

const (
	AlgorithmEd25519   Algorithm = "ed25519"
	AlgorithmSecp256k1 Algorithm = "secp256k1"
)

// Multihash prefixes for public keys: a varint digest function code followed
// by the key length in bytes.
const (
	multihashPrefixEd25519   = "ed0120"
	multihashPrefixSecp256k1 = "e70121"
)

const (
	ed25519PublicKeySize   = 32
	secp256k1PublicKeySize = 33
)

// PublicKey is a multihash-encoded public key.
type PublicKey struct {
	algorithm Algorithm
	payload   []byte
}

// PrivateKey holds raw private key material for one of the supported
// signature schemes.
type PrivateKey struct {
	algorithm Algorithm
	payload   []byte
}

// KeyPair bundles a private key with its derived public key.
type KeyPair struct {
	publicKey  PublicKey
	privateKey PrivateKey
}

// GenerateKeyPair creates a fresh key pair for the given algorithm.
func GenerateKeyPair(algorithm Algorithm) (KeyPair, error) {
	switch algorithm {
	case AlgorithmEd25519, "":
		public, private, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return KeyPair{}, fmt.Errorf("failed to generate ed25519 key: %w", err)
		}
		return KeyPair{
			publicKey:  PublicKey{algorithm: AlgorithmEd25519, payload: public},
			privateKey: PrivateKey{algorithm: AlgorithmEd25519, payload: private},
		}, nil
	case AlgorithmSecp256k1:
		private, err := btcec.NewPrivateKey()
		if err != nil {
			return KeyPair{}, fmt.Errorf("failed to generate secp256k1 key: %w", err)
		}
		return KeyPair{
			publicKey: PublicKey{
				algorithm: AlgorithmSecp256k1,
				payload:   private.PubKey().SerializeCompressed(),
			},
			privateKey: PrivateKey{
				algorithm: AlgorithmSecp256k1,
				payload:   private.Serialize(),
			},
		}, nil
	default:
		return KeyPair{}, fmt.Errorf("unsupported key algorithm %q", algorithm)
	}
}

// PublicKeyFromString parses a multihash-encoded public key such as
// "ed0120<64 hex chars>".
func PublicKeyFromString(value string) (PublicKey, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))

	switch {
	case strings.HasPrefix(normalized, multihashPrefixEd25519):
		payload, err := decodeKeyHex(normalized[len(multihashPrefixEd25519):], ed25519PublicKeySize)
		if err != nil {
			return PublicKey{}, fmt.Errorf("invalid ed25519 public key: %w", err)
		}
		return PublicKey{algorithm: AlgorithmEd25519, payload: payload}, nil
	case strings.HasPrefix(normalized, multihashPrefixSecp256k1):
		payload, err := decodeKeyHex(normalized[len(multihashPrefixSecp256k1):], secp256k1PublicKeySize)
		if err != nil {
			return PublicKey{}, fmt.Errorf("invalid secp256k1 public key: %w", err)
		}
		if _, err := btcec.ParsePubKey(payload); err != nil {
			return PublicKey{}, fmt.Errorf("invalid secp256k1 public key: %w", err)
		}
		return PublicKey{algorithm: AlgorithmSecp256k1, payload: payload}, nil
	default:
		return PublicKey{}, fmt.Errorf("public key %q has no recognized multihash prefix", value)
	}
}

// PrivateKeyFromString parses hex-encoded private key material for the given
// algorithm. Ed25519 accepts either a 32-byte seed or the 64-byte
// seed-and-public-key form used in peer configuration files.
func PrivateKeyFromString(algorithm Algorithm, value string) (PrivateKey, error) {
	decoded, err := hex.DecodeString(strings.TrimSpace(value))
	if err != nil {
		return PrivateKey{}, fmt.Errorf("invalid private key hex: %w", err)
	}

	switch algorithm {
	case AlgorithmEd25519, "":
		switch len(decoded) {
		case ed25519.SeedSize:
			decoded = ed25519.NewKeyFromSeed(decoded)
		case ed25519.PrivateKeySize:
		default:
			return PrivateKey{}, fmt.Errorf(
				"ed25519 private key must be %d or %d bytes, got %d",
				ed25519.SeedSize, ed25519.PrivateKeySize, len(decoded),
			)
		}
		return PrivateKey{algorithm: AlgorithmEd25519, payload: decoded}, nil
	case AlgorithmSecp256k1:
		if len(decoded) != btcec.PrivKeyBytesLen {
			return PrivateKey{}, fmt.Errorf(
				"secp256k1 private key must be %d bytes, got %d",
				btcec.PrivKeyBytesLen, len(decoded),
			)
		}
		return PrivateKey{algorithm: AlgorithmSecp256k1, payload: decoded}, nil
	default:
		return PrivateKey{}, fmt.Errorf("unsupported key algorithm %q", algorithm)
	}
}

// KeyPairFromPrivateKey derives the public half and returns the full pair.
func KeyPairFromPrivateKey(private PrivateKey) (KeyPair, error) {
	switch private.algorithm {
	case AlgorithmEd25519:
		key := ed25519.PrivateKey(private.payload)
		public := key.Public().(ed25519.PublicKey)
		return KeyPair{
			publicKey:  PublicKey{algorithm: AlgorithmEd25519, payload: public},
			privateKey: private,
		}, nil
	case AlgorithmSecp256k1:
		key, _ := btcec.PrivKeyFromBytes(private.payload)
		return KeyPair{
			publicKey: PublicKey{
				algorithm: AlgorithmSecp256k1,
				payload:   key.PubKey().SerializeCompressed(),
			},
			privateKey: private,
		}, nil
	default:
		return KeyPair{}, fmt.Errorf("unsupported key algorithm %q", private.algorithm)
	}
}

// Algorithm returns the key's signature scheme.
func (k PublicKey) Algorithm() Algorithm {
	return k.algorithm
}

// Bytes returns a copy of the raw key payload.
func (k PublicKey) Bytes() []byte {
	payload := make([]byte, len(k.payload))
	copy(payload, k.payload)
	return payload
}

// String returns the multihash hex rendering of the key.
func (k PublicKey) String() string {
	switch k.algorithm {
	case AlgorithmSecp256k1:
		return multihashPrefixSecp256k1 + hex.EncodeToString(k.payload)
	default:
		return multihashPrefixEd25519 + hex.EncodeToString(k.payload)
	}
}

// Equal reports whether two public keys carry the same material.
func (k PublicKey) Equal(other PublicKey) bool {
	return k.String() == other.String()
}

// IsZero reports whether the key is unset.
func (k PublicKey) IsZero() bool {
	return len(k.payload) == 0
}

// MarshalText implements encoding.TextMarshaler.
func (k PublicKey) MarshalText() ([]byte, error) {
	if k.IsZero() {
		return nil, fmt.Errorf("cannot marshal empty public key")
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *PublicKey) UnmarshalText(text []byte) error {
	parsed, err := PublicKeyFromString(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Algorithm returns the key's signature scheme.
func (k PrivateKey) Algorithm() Algorithm {
	return k.algorithm
}

// Hex returns the raw key material as lowercase hex. Handle with care.
func (k PrivateKey) Hex() string {
	return hex.EncodeToString(k.payload)
}

// PublicKey returns the pair's public half.
func (p KeyPair) PublicKey() PublicKey {
	return p.publicKey
}

// PrivateKey returns the pair's private half.
func (p KeyPair) PrivateKey() PrivateKey {
	return p.privateKey
}

func decodeKeyHex(value string, expectedSize int) ([]byte, error) {
	decoded, err := hex.DecodeString(value)
	if err != nil {
		return nil, err
	}
	if len(decoded) != expectedSize {
		return nil, fmt.Errorf("expected %d key bytes, got %d", expectedSize, len(decoded))
	}
	return decoded, nil
}
