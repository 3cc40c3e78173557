package crypto

import (
	"crypto/ed25519"
	"fmt"

	bip39 "github.com/tyler-smith/go-bip39"
)

// KeyPairFromMnemonic deterministically derives an ed25519 key pair from a
// BIP-39 mnemonic sentence. The first 32 bytes of the BIP-39 seed become the
// ed25519 seed, so the same mnemonic and passphrase always yield the same
// account keys.
func KeyPairFromMnemonic(mnemonic, passphrase string) (KeyPair, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return KeyPair{}, fmt.Errorf("invalid BIP-39 mnemonic")
	}

	seed := bip39.NewSeed(mnemonic, passphrase)
	key := ed25519.NewKeyFromSeed(seed[:ed25519.SeedSize])

	return KeyPairFromPrivateKey(PrivateKey{
		algorithm: AlgorithmEd25519,
		payload:   key,
	})
}

// NewMnemonic generates a fresh 24-word BIP-39 mnemonic suitable for
// KeyPairFromMnemonic.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate mnemonic entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return mnemonic, nil
}
