package auth

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/moriswala-burhanuddin/novaworks-api/models"
)

func TestIssueAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{ID: "user-1", Username: "meera"}
	token, err := IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken() failed: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() failed: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("subject = %q, want user-1", claims.Subject)
	}
	if claims.Username != "meera" {
		t.Errorf("username = %q, want meera", claims.Username)
	}
	if claims.ID == "" {
		t.Error("token has no jti, logout cannot blacklist it")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := ParseToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := IssueToken(&models.User{ID: "user-1"})
	if err != nil {
		t.Fatalf("IssueToken() failed: %v", err)
	}

	t.Setenv("JWT_SECRET", "another-secret")
	if _, err := ParseToken(token); err == nil {
		t.Fatal("expected token signed with old secret to be rejected")
	}
}

func TestNewSessionToken(t *testing.T) {
	a := NewSessionToken()
	b := NewSessionToken()

	if a == "" || b == "" {
		t.Fatal("session token must not be empty")
	}
	if a == b {
		t.Fatal("two session tokens collided")
	}
	for _, r := range a {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'z') {
			t.Fatalf("token %q contains non-base36 character %q", a, r)
		}
	}
}

// Guest identities are keyed by this token: any repeat would hand two
// shoppers the same cart.
func TestNewSessionTokenNeverRepeats(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 256; i++ {
		token := NewSessionToken()
		if seen[token] {
			t.Fatalf("token %q issued twice", token)
		}
		seen[token] = true
	}
}
