package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

func TestGenerateToken_Length(t *testing.T) {
	tests := []struct {
		name           string
		byteLength     int
		expectedLength int
	}{
		{name: "zero uses default", byteLength: 0, expectedLength: DefaultTokenLength},
		{name: "negative uses default", byteLength: -10, expectedLength: DefaultTokenLength},
		{name: "16 bytes", byteLength: 16, expectedLength: 16},
		{name: "32 bytes", byteLength: 32, expectedLength: 32},
		{name: "64 bytes", byteLength: 64, expectedLength: 64},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			token, err := generateToken(test.byteLength)
			if err != nil {
				t.Fatalf("generateToken() error = %v", err)
			}
			decoded, err := base64.RawURLEncoding.DecodeString(token)
			if err != nil {
				t.Fatalf("failed to decode token: %v", err)
			}
			if len(decoded) != test.expectedLength {
				t.Errorf("token length = %d bytes, want %d", len(decoded), test.expectedLength)
			}
			if strings.ContainsAny(token, "+/= ") {
				t.Errorf("token contains URL-unsafe characters: %q", token)
			}
		})
	}
}

func TestGenerateToken_Unique(t *testing.T) {
	tokens := make(map[string]bool)
	iterations := 1000

	for i := 0; i < iterations; i++ {
		token, err := generateToken(32)
		if err != nil {
			t.Fatalf("iteration %d: generateToken() error = %v", i, err)
		}
		if tokens[token] {
			t.Errorf("duplicate token generated: %q", token)
		}
		tokens[token] = true
	}
}

func TestGenerateHashedToken(t *testing.T) {
	pair, err := GenerateHashedToken(32)
	if err != nil {
		t.Fatalf("GenerateHashedToken() error = %v", err)
	}

	if pair.Token == "" || pair.Hash == "" {
		t.Fatal("token pair should be fully populated")
	}
	if pair.Token == pair.Hash {
		t.Error("token and hash should be different")
	}

	// SHA-256 produces 32 bytes = 64 hex characters
	if len(pair.Hash) != 64 {
		t.Errorf("hash length = %d, want 64", len(pair.Hash))
	}
	if _, err := hex.DecodeString(pair.Hash); err != nil {
		t.Errorf("hash is not valid hex: %v", err)
	}
	if pair.Hash != HashToken(pair.Token) {
		t.Error("hash should be the sha256 of the token")
	}
}

func TestGenerateHashedToken_DefaultLength(t *testing.T) {
	pair, err := GenerateHashedToken()
	if err != nil {
		t.Fatalf("GenerateHashedToken() error = %v", err)
	}

	decoded, err := base64.RawURLEncoding.DecodeString(pair.Token)
	if err != nil {
		t.Fatalf("failed to decode token: %v", err)
	}
	if len(decoded) != DefaultTokenLength {
		t.Errorf("token length = %d bytes, want %d", len(decoded), DefaultTokenLength)
	}
}

func TestGenerateHashedToken_TooManyArgs(t *testing.T) {
	_, err := GenerateHashedToken(16, 32)
	if !errors.Is(err, ErrTooManyArgs) {
		t.Fatalf("GenerateHashedToken(16, 32) error = %v, want ErrTooManyArgs", err)
	}
}

func TestVerifyToken(t *testing.T) {
	pair, err := GenerateHashedToken(32)
	if err != nil {
		t.Fatalf("GenerateHashedToken() error = %v", err)
	}

	valid, err := VerifyToken(pair.Token, pair.Hash)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if !valid {
		t.Error("should verify correct token")
	}

	valid, err = VerifyToken("wrong_token_value_abc123", pair.Hash)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if valid {
		t.Error("should reject incorrect token")
	}
}

func TestVerifyToken_EmptyInputs(t *testing.T) {
	pair, _ := GenerateHashedToken(32)

	if _, err := VerifyToken("", pair.Hash); err == nil {
		t.Error("empty token should error")
	}
	if _, err := VerifyToken(pair.Token, ""); err == nil {
		t.Error("empty hash should error")
	}
}

func TestHashToken_Deterministic(t *testing.T) {
	if HashToken("abc") != HashToken("abc") {
		t.Error("hashing is deterministic")
	}
	if HashToken("abc") == HashToken("abd") {
		t.Error("different tokens should hash differently")
	}
}
