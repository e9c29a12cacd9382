package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := CreateToken("test-secret", 42, "staff", time.Hour)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	claims, err := ValidateToken("test-secret", token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected userId 42, got %d", claims.UserID)
	}
	if claims.Role != "staff" {
		t.Fatalf("expected role staff, got %q", claims.Role)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := CreateToken("secret-a", 1, "admin", time.Hour)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if _, err := ValidateToken("secret-b", token); err == nil {
		t.Fatalf("expected error for token signed with another secret")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := CreateToken("test-secret", 1, "admin", -time.Minute)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if _, err := ValidateToken("test-secret", token); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := ValidateToken("test-secret", "not-a-token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}
