package util

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/Picocrypt/zxcvbn-go"
)

// Charset selects the character classes used by NewPassword.
type Charset uint8

const (
	Upper Charset = 1 << iota
	Lower
	Digits
	Symbols

	// AllChars enables every character class.
	AllChars = Upper | Lower | Digits | Symbols
)

// DefaultPasswordLength is used by the "Generate" actions.
const DefaultPasswordLength = 24

func (c Charset) alphabet() string {
	var b strings.Builder
	if c&Upper != 0 {
		b.WriteString("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	}
	if c&Lower != 0 {
		b.WriteString("abcdefghijklmnopqrstuvwxyz")
	}
	if c&Digits != 0 {
		b.WriteString("0123456789")
	}
	if c&Symbols != 0 {
		b.WriteString("-=_+!@#$^&()?<>")
	}
	return b.String()
}

// NewPassword returns a random password of the given length drawn from the
// selected character classes using crypto/rand.
// An empty charset or non-positive length yields an empty string.
func NewPassword(length int, set Charset) (string, error) {
	chars := set.alphabet()
	if chars == "" || length <= 0 {
		return "", nil
	}

	n := big.NewInt(int64(len(chars)))
	out := make([]byte, length)
	for i := range out {
		j, err := rand.Int(rand.Reader, n)
		if err != nil {
			return "", fmt.Errorf("crypto/rand: %w", err)
		}
		out[i] = chars[j.Int64()]
	}
	return string(out), nil
}

// PasswordScore returns the zxcvbn strength score (0-4) of a password.
// The empty password scores 0.
func PasswordScore(password string) int {
	if password == "" {
		return 0
	}
	return zxcvbn.PasswordStrength(password, nil).Score
}
