package utils

import (
	"testing"
	"time"
)

func TestGenerateValidateToken(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateToken(secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.Subject != "owner" {
		t.Errorf("subject = %q, want owner", claims.Subject)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("secret-a", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateToken("secret-b", token); err == nil {
		t.Error("token signed with another secret accepted")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := GenerateToken("secret", time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, err := ValidateToken("secret", token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := ValidateToken("secret", "not.a.token"); err == nil {
		t.Error("garbage token accepted")
	}
}
