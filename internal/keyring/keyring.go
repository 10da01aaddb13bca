// Package keyring stores evolv secrets (the PostgreSQL connection string and
// the recommendation API key) in the OS keyring.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/constants"
)

var (
	// ErrNotFound is returned when no credentials are found in the keyring
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Secret names one keyring entry under the evolv service.
type Secret string

const (
	SecretConnection Secret = constants.DefaultKeyringUser
	SecretLLMKey     Secret = constants.LLMKeyringUser
)

// Secrets lists every entry evolv manages, for status output.
var Secrets = []Secret{SecretConnection, SecretLLMKey}

// ParseSecret maps a CLI name ("db", "llm") to a Secret.
func ParseSecret(name string) (Secret, error) {
	switch name {
	case "db", "database", string(SecretConnection):
		return SecretConnection, nil
	case "llm", "api-key", string(SecretLLMKey):
		return SecretLLMKey, nil
	default:
		return "", fmt.Errorf("unknown secret %q (expected db or llm)", name)
	}
}

// Get returns ErrNotFound if nothing is stored.
func Get(s Secret) (string, error) {
	v, err := keyring.Get(constants.AppName, string(s))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return v, nil
}

func Set(s Secret, value string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", s)
	}
	if err := keyring.Set(constants.AppName, string(s), value); err != nil {
		return fmt.Errorf("failed to store %s in keyring: %w", s, err)
	}
	return nil
}

func Delete(s Secret) error {
	err := keyring.Delete(constants.AppName, string(s))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete %s from keyring: %w", s, err)
	}
	return nil
}

// GetConnectionString retrieves the database connection string.
func GetConnectionString() (string, error) { return Get(SecretConnection) }

func SetConnectionString(connStr string) error { return Set(SecretConnection, connStr) }

func DeleteConnectionString() error { return Delete(SecretConnection) }

// GetLLMAPIKey retrieves the recommendation service API key.
func GetLLMAPIKey() (string, error) { return Get(SecretLLMKey) }

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
