// Package id generates the prefixed, URL-safe identifiers exposed by the API
// (for example "sub_4fQk9ZtR2bXa"). Internal auto-increment keys never leave
// the service.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	DefaultLength = 12
)

const (
	PrefixSubscription = "sub"
	PrefixPurchase     = "pur"
	PrefixVideo        = "vid"
	PrefixUser         = "usr"
)

// Generate creates a cryptographically random Base62 string.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	max := big.NewInt(int64(len(alphabet)))
	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[n.Int64()]
	}

	return string(result), nil
}

// New returns "<prefix>_<random>".
func New(prefix string) (string, error) {
	s, err := Generate(DefaultLength)
	if err != nil {
		return "", err
	}
	return prefix + "_" + s, nil
}

func NewSubscriptionID() (string, error) { return New(PrefixSubscription) }
func NewPurchaseID() (string, error)     { return New(PrefixPurchase) }
func NewVideoID() (string, error)        { return New(PrefixVideo) }
func NewUserID() (string, error)         { return New(PrefixUser) }

// ValidatePrefix checks that prefixedID is "<expected>_<base62>".
func ValidatePrefix(prefixedID, expected string) error {
	prefix, rest, ok := strings.Cut(prefixedID, "_")
	if !ok || rest == "" {
		return fmt.Errorf("invalid prefixed ID format: %q", prefixedID)
	}
	if prefix != expected {
		return fmt.Errorf("invalid prefix: expected %s, got %s", expected, prefix)
	}
	for _, r := range rest {
		if !strings.ContainsRune(alphabet, r) {
			return fmt.Errorf("invalid character %q in ID", r)
		}
	}
	return nil
}
