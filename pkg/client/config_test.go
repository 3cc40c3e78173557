package client

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/QuentinI/iroha-go-sdk/pkg/crypto"
)

func TestConfigFromEnv(t *testing.T) {
	pair, err := crypto.GenerateKeyPair(crypto.AlgorithmEd25519)
	if err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}

	t.Setenv("IROHA_CONFIG", "")
	t.Setenv("IROHA_TORII_URL", "http://peer.example:8080")
	t.Setenv("IROHA_ACCOUNT_ID", "alice@wonderland")
	t.Setenv("IROHA_PRIVATE_KEY", pair.PrivateKey().Hex())
	t.Setenv("IROHA_PUBLIC_KEY", pair.PublicKey().String())
	t.Setenv("IROHA_TRANSACTION_TTL_MS", "5000")
	t.Setenv("IROHA_ADD_NONCE", "true")

	config, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv failed: %v", err)
	}

	if config.ToriiURL != "http://peer.example:8080" {
		t.Errorf("unexpected torii URL: %s", config.ToriiURL)
	}
	if config.AccountID != "alice@wonderland" {
		t.Errorf("unexpected account ID: %s", config.AccountID)
	}
	if config.TransactionTTL != 5*time.Second {
		t.Errorf("unexpected TTL: %v", config.TransactionTTL)
	}
	if !config.AddNonce {
		t.Error("expected AddNonce to be set")
	}
}

func TestConfigFromEnvRequiresAccount(t *testing.T) {
	t.Setenv("IROHA_CONFIG", "")
	t.Setenv("IROHA_TORII_URL", "http://peer.example:8080")
	t.Setenv("IROHA_ACCOUNT_ID", "")
	t.Setenv("ACCOUNT_ID", "")
	t.Setenv("IROHA_PRIVATE_KEY", "abc123")
	t.Setenv("PRIVATE_KEY", "")

	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("expected error when account ID is missing")
	}
}

func TestConfigFromEnvRejectsBadTTL(t *testing.T) {
	t.Setenv("IROHA_CONFIG", "")
	t.Setenv("IROHA_ACCOUNT_ID", "alice@wonderland")
	t.Setenv("IROHA_PRIVATE_KEY", "abc123")
	t.Setenv("IROHA_TRANSACTION_TTL_MS", "not-a-number")

	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("expected error for invalid TTL")
	}
}

func TestConfigFromFile(t *testing.T) {
	pair, err := crypto.GenerateKeyPair(crypto.AlgorithmEd25519)
	if err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}

	contents := `{
		"torii_url": "http://127.0.0.1:8080",
		"account_id": "alice@wonderland",
		"public_key": "` + pair.PublicKey().String() + `",
		"private_key": {
			"algorithm": "ed25519",
			"payload": "` + pair.PrivateKey().Hex() + `"
		},
		"transaction_ttl_ms": 30000,
		"add_nonce": true
	}`

	path := filepath.Join(t.TempDir(), "client.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	config, err := ConfigFromFile(path)
	if err != nil {
		t.Fatalf("ConfigFromFile failed: %v", err)
	}

	if config.AccountID != "alice@wonderland" {
		t.Errorf("unexpected account ID: %s", config.AccountID)
	}
	if config.Algorithm != "ed25519" {
		t.Errorf("unexpected algorithm: %s", config.Algorithm)
	}
	if config.TransactionTTL != 30*time.Second {
		t.Errorf("unexpected TTL: %v", config.TransactionTTL)
	}
	if !config.AddNonce {
		t.Error("expected AddNonce to be set")
	}

	if _, err := config.KeyPair(); err != nil {
		t.Fatalf("KeyPair failed: %v", err)
	}
}

func TestConfigFromEnvDelegatesToFile(t *testing.T) {
	pair, err := crypto.GenerateKeyPair(crypto.AlgorithmEd25519)
	if err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}

	contents := `{
		"torii_url": "http://peer.example:8080",
		"account_id": "bob@wonderland",
		"private_key": {"payload": "` + pair.PrivateKey().Hex() + `"}
	}`
	path := filepath.Join(t.TempDir(), "client.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("IROHA_CONFIG", path)

	config, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv failed: %v", err)
	}
	if config.AccountID != "bob@wonderland" {
		t.Errorf("unexpected account ID: %s", config.AccountID)
	}
}

func TestConfigFromFileMissing(t *testing.T) {
	if _, err := ConfigFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for a missing configuration file")
	}
}

func TestDotEnvDiscovery(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "project", "cmd")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create directories: %v", err)
	}

	contents := "# peer connection\n" +
		"IROHA_DOTENV_TORII_URL=http://peer.example:8080\n" +
		"export IROHA_DOTENV_QUOTED='single quoted'\n" +
		"IROHA_DOTENV_KEPT=from_dotenv\n"
	if err := os.WriteFile(filepath.Join(root, "project", ".env"), []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	// The nearest .env above the start directory wins.
	found := findDotEnv(nested)
	if found != filepath.Join(root, "project", ".env") {
		t.Fatalf("unexpected .env path: %s", found)
	}
	if findDotEnv(filepath.Join(root, "elsewhere")) == found {
		t.Fatal("discovery must not find a sibling directory's .env")
	}

	// Register cleanup, then clear so the file's values are observable.
	t.Setenv("IROHA_DOTENV_TORII_URL", "")
	t.Setenv("IROHA_DOTENV_QUOTED", "")
	t.Setenv("IROHA_DOTENV_KEPT", "already_set")
	os.Unsetenv("IROHA_DOTENV_TORII_URL")
	os.Unsetenv("IROHA_DOTENV_QUOTED")

	loadDotEnvFile(found)

	if got := os.Getenv("IROHA_DOTENV_TORII_URL"); got != "http://peer.example:8080" {
		t.Errorf("unexpected value: %q", got)
	}
	if got := os.Getenv("IROHA_DOTENV_QUOTED"); got != "single quoted" {
		t.Errorf("quotes were not stripped: %q", got)
	}
	if got := os.Getenv("IROHA_DOTENV_KEPT"); got != "already_set" {
		t.Errorf(".env must not override the environment: %q", got)
	}
}

func TestResolveEventsURL(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		want    string
		wantErr bool
	}{
		{
			name:   "derived from http",
			config: Config{ToriiURL: "http://127.0.0.1:8080"},
			want:   "ws://127.0.0.1:8080/events",
		},
		{
			name:   "derived from https",
			config: Config{ToriiURL: "https://torii.iroha.tech"},
			want:   "wss://torii.iroha.tech/events",
		},
		{
			name:   "explicit wins",
			config: Config{ToriiURL: "http://127.0.0.1:8080", EventsURL: "ws://elsewhere:9090/events"},
			want:   "ws://elsewhere:9090/events",
		},
		{
			name:   "empty torii URL falls back to local peer",
			config: Config{},
			want:   "ws://127.0.0.1:8080/events",
		},
		{
			name:    "unsupported scheme",
			config:  Config{ToriiURL: "ftp://peer.example"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.config.ResolveEventsURL()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveEventsURL failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestKeyPairRejectsPinnedMismatch(t *testing.T) {
	pair, err := crypto.GenerateKeyPair(crypto.AlgorithmEd25519)
	if err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}
	other, err := crypto.GenerateKeyPair(crypto.AlgorithmEd25519)
	if err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}

	config := Config{
		AccountID:  "alice@wonderland",
		PrivateKey: pair.PrivateKey().Hex(),
		PublicKey:  other.PublicKey().String(),
	}

	_, err = config.KeyPair()
	if err == nil {
		t.Fatal("expected error for a pinned public key mismatch")
	}
	if !strings.Contains(err.Error(), "pins") {
		t.Errorf("unexpected error: %v", err)
	}
}
