// Package id generates the short tokens attached to pages and requests.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// keyAlphabet avoids '-' and '_' so keys read well in URLs and logs.
const keyAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// KeyLength is the length of the random part of a key.
const KeyLength = 12

// Generate creates a prefixed key, e.g. "pg-3fK9aLzQ01bX".
func Generate(prefix string) (string, error) {
	key, err := gonanoid.Generate(keyAlphabet, KeyLength)
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + key, nil
}

// MustGenerate is like Generate but panics if ID generation fails.
func MustGenerate(prefix string) string {
	key, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return key
}
