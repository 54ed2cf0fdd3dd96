package keystore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	envVar  = "GEMINI_API_KEY"
	service = "uiforge"
	account = "gemini-api-key"
)

// ErrNoKey is returned when no API key can be found anywhere.
var ErrNoKey = errors.New("no API key configured; set GEMINI_API_KEY or run `uiforge key set`")

// KeyStore resolves the generator API key from, in priority order: the
// GEMINI_API_KEY environment variable, the OS-native credential store,
// and a ~/.uiforge/api-key file for hosts without a usable keyring.
type KeyStore struct{}

func New() *KeyStore {
	return &KeyStore{}
}

func (k *KeyStore) Get() (string, error) {
	// 1. Env var takes priority (CI and container environments)
	if key := strings.TrimSpace(os.Getenv(envVar)); key != "" {
		return key, nil
	}

	// 2. OS-native credential store
	if key, err := keyring.Get(service, account); err == nil {
		if key = strings.TrimSpace(key); key != "" {
			return key, nil
		}
	}

	// 3. File fallback (Linux without D-Bus / Secret Service)
	if data, err := os.ReadFile(fallbackPath()); err == nil {
		if key := strings.TrimSpace(string(data)); key != "" {
			return key, nil
		}
	}

	return "", ErrNoKey
}

// Set stores the key in the credential store, falling back to a 0600
// file when no keyring is available. A successful keyring write cleans
// up any leftover fallback file.
func (k *KeyStore) Set(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("empty API key")
	}

	if err := keyring.Set(service, account, key); err == nil {
		_ = os.Remove(fallbackPath())
		return nil
	}

	path := fallbackPath()
	if path == "" {
		return errors.New("no keyring available and no home directory for the file fallback")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(key), 0600)
}

// Delete removes the key from every store it may live in.
func (k *KeyStore) Delete() error {
	err := keyring.Delete(service, account)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	if path := fallbackPath(); path != "" {
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			return rmErr
		}
	}
	return nil
}

func fallbackPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".uiforge", "api-key")
}
