package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/taskdeck/taskdeck/internal/auth"
)

const testKey = "token-test-secret-at-least-32-chars!!"

func newService(t *testing.T) *auth.TokenService {
	t.Helper()
	s, err := auth.NewTokenService([]byte(testKey))
	if err != nil {
		t.Fatalf("new token service: %v", err)
	}
	return s
}

func signWith(t *testing.T, key []byte, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign jwt: %v", err)
	}
	return s
}

func TestNewTokenService_ShortKey_Fails(t *testing.T) {
	if _, err := auth.NewTokenService([]byte("too-short")); err == nil {
		t.Fatal("expected error for short signing key")
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	s := newService(t)

	token, err := s.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	subject, ok := s.Verify(token)
	if !ok {
		t.Fatal("verify rejected a freshly issued token")
	}
	if subject != "user-123" {
		t.Errorf("subject = %q, want %q", subject, "user-123")
	}
}

func TestVerify_Idempotent(t *testing.T) {
	s := newService(t)

	token, err := s.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	first, ok1 := s.Verify(token)
	second, ok2 := s.Verify(token)
	if !ok1 || !ok2 {
		t.Fatal("verify rejected an unexpired token")
	}
	if first != second {
		t.Errorf("subjects differ across calls: %q vs %q", first, second)
	}
}

func TestVerify_Garbage_ReturnsFalse(t *testing.T) {
	s := newService(t)

	for _, raw := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		if _, ok := s.Verify(raw); ok {
			t.Errorf("Verify(%q) accepted garbage", raw)
		}
	}
}

func TestVerify_Expired_ReturnsFalse(t *testing.T) {
	s := newService(t)

	token := signWith(t, []byte(testKey), jwt.MapClaims{
		"sub": "user-123",
		"iat": time.Now().Add(-8 * 24 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	if _, ok := s.Verify(token); ok {
		t.Fatal("expired token was accepted")
	}
}

func TestVerify_WrongKey_ReturnsFalse(t *testing.T) {
	s := newService(t)

	token := signWith(t, []byte("different-key-that-is-32-chars!!"), jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	if _, ok := s.Verify(token); ok {
		t.Fatal("token signed with a different key was accepted")
	}
}

func TestVerify_MissingSubject_ReturnsFalse(t *testing.T) {
	s := newService(t)

	token := signWith(t, []byte(testKey), jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	if _, ok := s.Verify(token); ok {
		t.Fatal("token without sub claim was accepted")
	}
}
