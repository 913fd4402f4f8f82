package util

import (
	"strings"
	"testing"
)

func TestNewPassword(t *testing.T) {
	password, err := NewPassword(32, AllChars)
	if err != nil {
		t.Fatalf("NewPassword failed: %v", err)
	}
	if len(password) != 32 {
		t.Errorf("NewPassword length = %d; want 32", len(password))
	}

	password2, err := NewPassword(32, AllChars)
	if err != nil {
		t.Fatalf("NewPassword failed: %v", err)
	}
	if password == password2 {
		t.Error("NewPassword generated identical passwords (unlikely if random)")
	}
}

func TestNewPasswordCharsets(t *testing.T) {
	tests := []struct {
		name  string
		set   Charset
		valid func(rune) bool
	}{
		{"Upper", Upper, func(c rune) bool { return c >= 'A' && c <= 'Z' }},
		{"Lower", Lower, func(c rune) bool { return c >= 'a' && c <= 'z' }},
		{"Digits", Digits, func(c rune) bool { return c >= '0' && c <= '9' }},
		{"Symbols", Symbols, func(c rune) bool { return strings.ContainsRune("-=_+!@#$^&()?<>", c) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := NewPassword(100, tt.set)
			if err != nil {
				t.Fatalf("NewPassword failed: %v", err)
			}
			for _, c := range password {
				if !tt.valid(c) {
					t.Errorf("%s password contains invalid char: %c", tt.name, c)
				}
			}
		})
	}
}

func TestNewPasswordEmpty(t *testing.T) {
	if p, err := NewPassword(16, 0); err != nil || p != "" {
		t.Errorf("NewPassword with no charset = %q, %v; want empty", p, err)
	}
	if p, err := NewPassword(0, AllChars); err != nil || p != "" {
		t.Errorf("NewPassword with zero length = %q, %v; want empty", p, err)
	}
}

func TestPasswordScore(t *testing.T) {
	if s := PasswordScore(""); s != 0 {
		t.Errorf("PasswordScore(\"\") = %d; want 0", s)
	}
	weak := PasswordScore("password")
	strong := PasswordScore("v9#Lq!7zR2@mXw4&Tn8$")
	if weak > strong {
		t.Errorf("weak score %d > strong score %d", weak, strong)
	}
	if strong < 0 || strong > 4 {
		t.Errorf("score %d out of range", strong)
	}
}
