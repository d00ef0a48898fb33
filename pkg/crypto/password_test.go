package crypto

import (
	"strings"
	"testing"
)

// testArgon2 uses low cost parameters to keep the suite fast.
func testArgon2(t *testing.T) *Argon2 {
	t.Helper()
	return &Argon2{
		Memory:      8 * 1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func TestArgon2Hash_Format(t *testing.T) {
	a := testArgon2(t)
	hash, err := a.Hash("testPassword123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("hash should start with $argon2id$: %s", hash)
	}
	if !strings.Contains(hash, "$v=19$") {
		t.Errorf("hash should contain version 19: %s", hash)
	}
	if len(strings.Split(hash, "$")) != 6 {
		t.Errorf("hash should have 6 parts: %s", hash)
	}
	if strings.Contains(hash, "testPassword123") {
		t.Error("hash must not contain the plaintext")
	}
}

func TestArgon2Hash_UniqueSalts(t *testing.T) {
	a := testArgon2(t)

	hash1, _ := a.Hash("samePassword")
	hash2, _ := a.Hash("samePassword")

	if hash1 == hash2 {
		t.Error("same password should generate different hashes (unique salts)")
	}
}

func TestArgon2Hash_EdgeCases(t *testing.T) {
	a := testArgon2(t)

	tests := []struct {
		name     string
		password string
	}{
		{"empty password", ""},
		{"long password", strings.Repeat("a", 128)},
		{"unicode", "пароль🔐"},
		{"special chars", "p@ssw0rd!#$%"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			hash, err := a.Hash(test.password)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}
			valid, err := a.Verify(test.password, hash)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if !valid {
				t.Error("hash should verify against its own password")
			}
		})
	}
}

func TestArgon2Verify(t *testing.T) {
	a := testArgon2(t)
	hash, err := a.Hash("password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"correct password", "password", true},
		{"one char short", "passwor", false},
		{"one char extra", "password1", false},
		{"case difference", "Password", false},
		{"empty", "", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			valid, err := a.Verify(test.password, hash)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if valid != test.want {
				t.Errorf("Verify(%q) = %v, want %v", test.password, valid, test.want)
			}
		})
	}
}

func TestArgon2Verify_MalformedHash(t *testing.T) {
	a := testArgon2(t)

	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"not a hash", "plaintext"},
		{"wrong algorithm", "$argon2i$v=19$m=8192,t=1,p=1$c2FsdA$aGFzaA"},
		{"missing parts", "$argon2id$v=19$m=8192"},
		{"bad salt encoding", "$argon2id$v=19$m=8192,t=1,p=1$!!!$aGFzaA"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := a.Verify("password", test.hash); err == nil {
				t.Error("Verify() should error on malformed hash")
			}
		})
	}
}

func TestArgon2Verify_CrossParameters(t *testing.T) {
	// A hash produced with one parameter set verifies under another
	// instance: the parameters are read from the encoded hash itself.
	old := &Argon2{Memory: 16 * 1024, Iterations: 2, Parallelism: 1, SaltLength: 16, KeyLength: 32}
	current := testArgon2(t)

	hash, err := old.Hash("password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	valid, err := current.Verify("password", hash)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if !valid {
		t.Error("hash parameters should travel with the hash")
	}
}
