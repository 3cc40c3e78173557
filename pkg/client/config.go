package client

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/QuentinI/iroha-go-sdk/pkg/crypto"
)

// DefaultConfigFile is the resident configuration file searched for when no
// explicit path is given.
const DefaultConfigFile = "client.json"

// Config carries everything needed to construct a Client.
type Config struct {
	// ToriiURL is the peer's HTTP API endpoint.
	ToriiURL string
	// EventsURL is the peer's websocket event endpoint. Derived from
	// ToriiURL when empty.
	EventsURL string
	// AccountID is the signer account in "name@domain" form.
	AccountID string
	// PrivateKey is the signer's hex-encoded private key material.
	PrivateKey string
	// PublicKey optionally pins the expected public key; construction fails
	// if the derived key disagrees.
	PublicKey string
	// Algorithm selects the signature scheme; defaults to ed25519.
	Algorithm string
	// TransactionTTL overrides the default transaction time-to-live.
	TransactionTTL time.Duration
	// AddNonce adds a random nonce to every transaction.
	AddNonce bool
	// APIKey is forwarded to the Torii endpoint as a bearer token.
	APIKey string
}

type configFile struct {
	ToriiURL  string `json:"torii_url"`
	EventsURL string `json:"events_url,omitempty"`
	AccountID string `json:"account_id"`
	PublicKey string `json:"public_key,omitempty"`
	PrivateKey struct {
		Algorithm string `json:"algorithm,omitempty"`
		Payload   string `json:"payload"`
	} `json:"private_key"`
	TransactionTTLMs int64 `json:"transaction_ttl_ms,omitempty"`
	AddNonce         bool  `json:"add_nonce,omitempty"`
}

var dotenvLoadOnce sync.Once

// ConfigFromEnv builds a Config from environment variables, loading the
// nearest .env file first. IROHA_CONFIG, when set, delegates to the named
// configuration file instead.
func ConfigFromEnv() (Config, error) {
	loadDotEnvIfPresent()

	if path := strings.TrimSpace(os.Getenv("IROHA_CONFIG")); path != "" {
		return ConfigFromFile(path)
	}

	config := Config{
		ToriiURL:   firstNonEmptyEnv("IROHA_TORII_URL", "TORII_URL", "TORII_API_URL"),
		EventsURL:  firstNonEmptyEnv("IROHA_EVENTS_URL", "TORII_EVENTS_URL"),
		AccountID:  firstNonEmptyEnv("IROHA_ACCOUNT_ID", "ACCOUNT_ID"),
		PrivateKey: firstNonEmptyEnv("IROHA_PRIVATE_KEY", "PRIVATE_KEY"),
		PublicKey:  firstNonEmptyEnv("IROHA_PUBLIC_KEY", "PUBLIC_KEY"),
		Algorithm:  firstNonEmptyEnv("IROHA_KEY_ALGORITHM", "KEY_ALGORITHM"),
		APIKey:     firstNonEmptyEnv("IROHA_API_KEY"),
	}

	if raw := firstNonEmptyEnv("IROHA_TRANSACTION_TTL_MS", "TRANSACTION_TTL_MS"); raw != "" {
		ttlMs, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid transaction TTL %q: %w", raw, err)
		}
		config.TransactionTTL = time.Duration(ttlMs) * time.Millisecond
	}
	if raw := firstNonEmptyEnv("IROHA_ADD_NONCE"); raw != "" {
		addNonce, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid IROHA_ADD_NONCE %q: %w", raw, err)
		}
		config.AddNonce = addNonce
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// ConfigFromFile reads the resident JSON configuration file. An empty path
// searches for client.json walking up from the working directory.
func ConfigFromFile(path string) (Config, error) {
	resolved := strings.TrimSpace(path)
	if resolved == "" {
		found, err := findConfigFile()
		if err != nil {
			return Config{}, err
		}
		resolved = found
	}

	contents, err := os.ReadFile(resolved)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read configuration file: %w", err)
	}

	var parsed configFile
	if err := json.Unmarshal(contents, &parsed); err != nil {
		return Config{}, fmt.Errorf("invalid configuration file %s: %w", resolved, err)
	}

	config := Config{
		ToriiURL:   parsed.ToriiURL,
		EventsURL:  parsed.EventsURL,
		AccountID:  parsed.AccountID,
		PublicKey:  parsed.PublicKey,
		PrivateKey: parsed.PrivateKey.Payload,
		Algorithm:  parsed.PrivateKey.Algorithm,
		AddNonce:   parsed.AddNonce,
	}
	if parsed.TransactionTTLMs > 0 {
		config.TransactionTTL = time.Duration(parsed.TransactionTTLMs) * time.Millisecond
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration file %s: %w", resolved, err)
	}
	return config, nil
}

// Validate checks the config is complete enough to build a client.
func (c Config) Validate() error {
	if strings.TrimSpace(c.AccountID) == "" {
		return fmt.Errorf("account ID is required")
	}
	if strings.TrimSpace(c.PrivateKey) == "" {
		return fmt.Errorf("private key is required")
	}
	return nil
}

// ResolveEventsURL derives the websocket endpoint from the Torii URL when no
// explicit one is configured.
func (c Config) ResolveEventsURL() (string, error) {
	if strings.TrimSpace(c.EventsURL) != "" {
		return strings.TrimSpace(c.EventsURL), nil
	}

	toriiURL := strings.TrimSpace(c.ToriiURL)
	if toriiURL == "" {
		toriiURL = "http://127.0.0.1:8080"
	}
	parsed, err := url.Parse(toriiURL)
	if err != nil {
		return "", fmt.Errorf("invalid torii URL: %w", err)
	}

	switch parsed.Scheme {
	case "http":
		parsed.Scheme = "ws"
	case "https":
		parsed.Scheme = "wss"
	default:
		return "", fmt.Errorf("cannot derive events URL from scheme %q", parsed.Scheme)
	}
	parsed.Path = strings.TrimRight(parsed.Path, "/") + "/events"

	return parsed.String(), nil
}

// KeyPair parses the configured key material and checks it against the
// pinned public key when one is set.
func (c Config) KeyPair() (crypto.KeyPair, error) {
	privateKey, err := crypto.PrivateKeyFromString(crypto.Algorithm(c.Algorithm), c.PrivateKey)
	if err != nil {
		return crypto.KeyPair{}, err
	}
	pair, err := crypto.KeyPairFromPrivateKey(privateKey)
	if err != nil {
		return crypto.KeyPair{}, err
	}

	if strings.TrimSpace(c.PublicKey) != "" {
		pinned, err := crypto.PublicKeyFromString(c.PublicKey)
		if err != nil {
			return crypto.KeyPair{}, fmt.Errorf("invalid pinned public key: %w", err)
		}
		if !pinned.Equal(pair.PublicKey()) {
			return crypto.KeyPair{}, fmt.Errorf(
				"private key derives %s but configuration pins %s",
				pair.PublicKey(), pinned,
			)
		}
	}

	return pair, nil
}

func findConfigFile() (string, error) {
	current, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}

	for {
		candidate := filepath.Join(current, DefaultConfigFile)
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("no %s found walking up from the working directory", DefaultConfigFile)
		}
		current = parent
	}
}

func loadDotEnvIfPresent() {
	dotenvLoadOnce.Do(func() {
		cwd, err := os.Getwd()
		if err != nil {
			return
		}
		if path := findDotEnv(cwd); path != "" {
			loadDotEnvFile(path)
		}
	})
}

// findDotEnv walks up from the start directory and returns the nearest .env
// file, or "" when none exists.
func findDotEnv(start string) string {
	current := start
	for {
		candidate := filepath.Join(current, ".env")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(current)
		if parent == current {
			return ""
		}
		current = parent
	}
}

// loadDotEnvFile sets variables from a .env file without overriding ones
// already present in the environment.
func loadDotEnvFile(path string) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "export ") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, alreadySet := os.LookupEnv(key); alreadySet {
			continue
		}

		value = strings.TrimSpace(value)
		if len(value) >= 2 {
			first := value[0]
			last := value[len(value)-1]
			if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		_ = os.Setenv(key, value)
	}
}

func firstNonEmptyEnv(keys ...string) string {
	for _, key := range keys {
		value := strings.TrimSpace(os.Getenv(key))
		if value != "" {
			return value
		}
	}
	return ""
}
