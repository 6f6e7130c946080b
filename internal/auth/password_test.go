package auth_test

import (
	"strings"
	"testing"

	"github.com/taskdeck/taskdeck/internal/auth"
	"golang.org/x/crypto/bcrypt"
)

// MinCost keeps the tests fast; the hashing logic is cost-independent.
func newHasher() *auth.PasswordHasher {
	return auth.NewPasswordHasher(bcrypt.MinCost)
}

func TestHash_NotPlaintext(t *testing.T) {
	h := newHasher()

	hashed, err := h.Hash("CorrectHorse42Battery")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hashed == "CorrectHorse42Battery" {
		t.Fatal("hash equals plaintext")
	}
	if !strings.HasPrefix(hashed, "$2") {
		t.Errorf("hash %q does not look like bcrypt output", hashed)
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	h := newHasher()

	a, err := h.Hash("CorrectHorse42Battery")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := h.Hash("CorrectHorse42Battery")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password are identical — salt missing")
	}
}

func TestCompare(t *testing.T) {
	h := newHasher()

	hashed, err := h.Hash("CorrectHorse42Battery")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if !h.Compare("CorrectHorse42Battery", hashed) {
		t.Error("correct password rejected")
	}
	if h.Compare("WrongHorse42Battery", hashed) {
		t.Error("wrong password accepted")
	}
	if h.Compare("CorrectHorse42Battery", "not-a-hash") {
		t.Error("garbage hash accepted")
	}
}

func TestNewPasswordHasher_OutOfRangeCost_FallsBack(t *testing.T) {
	h := auth.NewPasswordHasher(99)

	hashed, err := h.Hash("CorrectHorse42Battery")
	if err != nil {
		t.Fatalf("hash with fallback cost: %v", err)
	}
	if !h.Compare("CorrectHorse42Battery", hashed) {
		t.Error("round trip failed with fallback cost")
	}
}
