package auth

import (
	"testing"
	"time"
)

func testTokenService() TokenService {
	return TokenService{
		Secret:   []byte("test-secret"),
		Issuer:   "vitadex-test",
		Duration: time.Hour,
	}
}

func TestSignParseRoundTrip(t *testing.T) {
	ts := testTokenService()
	u := &User{ID: "user-1", Username: "allan", Email: "allan@example.com", TokenVersion: 2}

	token, exp, err := ts.Sign(u)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Error("expiry not in the future")
	}

	claims, err := ts.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != u.ID || claims.Username != u.Username || claims.Email != u.Email {
		t.Errorf("claims = %+v", claims)
	}
	if claims.TokenVersion != u.TokenVersion {
		t.Errorf("token_version = %d, want %d", claims.TokenVersion, u.TokenVersion)
	}
	if claims.Issuer != ts.Issuer {
		t.Errorf("issuer = %q", claims.Issuer)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	ts := testTokenService()
	token, _, err := ts.Sign(&User{ID: "user-1"})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	other := testTokenService()
	other.Secret = []byte("different-secret")
	if _, err := other.Parse(token); err == nil {
		t.Error("expected signature verification to fail")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	ts := testTokenService()
	ts.Duration = -time.Minute
	token, _, err := ts.Sign(&User{ID: "user-1"})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if _, err := ts.Parse(token); err == nil {
		t.Error("expected expired token to fail")
	}
}
