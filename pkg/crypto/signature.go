package crypto

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// Signature is a signature over a payload hash together with the public key
// that produced it, in the wire form Iroha peers accept.
type Signature struct {
	PublicKey PublicKey
	Payload   []byte
}

type signatureWire struct {
	PublicKey string `json:"public_key"`
	Payload   string `json:"payload"`
}

// Sign signs the BLAKE2b-256 digest of the given payload.
func (p KeyPair) Sign(payload []byte) (Signature, error) {
	digest := HashOf(payload)

	switch p.privateKey.algorithm {
	case AlgorithmEd25519:
		key := ed25519.PrivateKey(p.privateKey.payload)
		return Signature{
			PublicKey: p.publicKey,
			Payload:   ed25519.Sign(key, digest[:]),
		}, nil
	case AlgorithmSecp256k1:
		key, _ := btcec.PrivKeyFromBytes(p.privateKey.payload)
		return Signature{
			PublicKey: p.publicKey,
			Payload:   btcecdsa.Sign(key, digest[:]).Serialize(),
		}, nil
	default:
		return Signature{}, fmt.Errorf("unsupported key algorithm %q", p.privateKey.algorithm)
	}
}

// Verify reports whether the signature is valid for the given payload.
func (s Signature) Verify(payload []byte) bool {
	digest := HashOf(payload)

	switch s.PublicKey.algorithm {
	case AlgorithmEd25519:
		if len(s.PublicKey.payload) != ed25519.PublicKeySize {
			return false
		}
		return ed25519.Verify(ed25519.PublicKey(s.PublicKey.payload), digest[:], s.Payload)
	case AlgorithmSecp256k1:
		publicKey, err := btcec.ParsePubKey(s.PublicKey.payload)
		if err != nil {
			return false
		}
		signature, err := btcecdsa.ParseDERSignature(s.Payload)
		if err != nil {
			return false
		}
		return signature.Verify(digest[:], publicKey)
	default:
		return false
	}
}

// MarshalJSON implements json.Marshaler.
func (s Signature) MarshalJSON() ([]byte, error) {
	if s.PublicKey.IsZero() {
		return nil, fmt.Errorf("cannot marshal signature without public key")
	}
	return json.Marshal(signatureWire{
		PublicKey: s.PublicKey.String(),
		Payload:   hex.EncodeToString(s.Payload),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Signature) UnmarshalJSON(data []byte) error {
	var wire signatureWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	publicKey, err := PublicKeyFromString(wire.PublicKey)
	if err != nil {
		return err
	}
	payload, err := hex.DecodeString(wire.Payload)
	if err != nil {
		return fmt.Errorf("invalid signature payload hex: %w", err)
	}

	s.PublicKey = publicKey
	s.Payload = payload
	return nil
}
