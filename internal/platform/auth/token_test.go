package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokens_IssueVerifyRoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	tok, err := tokens.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	userID, err := tokens.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("user id: got %q, want %q", userID, "user-123")
	}
}

func TestTokens_VerifyExpired(t *testing.T) {
	tokens := NewTokens("test-secret", -time.Minute)

	tok, err := tokens.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = tokens.Verify(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("got %v, want ErrTokenExpired", err)
	}
}

func TestTokens_VerifyMalformed(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	for _, tok := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		if _, err := tokens.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("Verify(%q): got %v, want ErrTokenInvalid", tok, err)
		}
	}
}

func TestTokens_VerifyWrongKey(t *testing.T) {
	issuer := NewTokens("secret-a", time.Hour)
	verifier := NewTokens("secret-b", time.Hour)

	tok, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := verifier.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("got %v, want ErrTokenInvalid", err)
	}
}
