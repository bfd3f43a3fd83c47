package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// CodeLength is the number of characters in a verification code.
	CodeLength = 6
)

// NewCode generates a 6-character alphanumeric verification code.
// The code is meant to be read and typed by a human, not used as key material.
func NewCode() (string, error) {
	b := make([]byte, CodeLength)
	for i := range b {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", fmt.Errorf("generate otp: %w", err)
		}
		b[i] = alphabet[idx.Int64()]
	}
	return string(b), nil
}
