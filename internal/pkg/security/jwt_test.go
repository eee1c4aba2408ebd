package security

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Baktyiar1/Netflix144p/internal/api/config"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager(config.JWTConfig{Secret: "s3cret", Issuer: "netflix", Expiration: 2})

	token, err := m.GenerateToken(42, []string{"USER", "ADMIN"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 42 || len(claims.Roles) != 2 || claims.Roles[1] != "ADMIN" {
		t.Errorf("claims = %+v", claims)
	}

	ttl := RemainingTTL(claims)
	if ttl <= time.Hour || ttl > 2*time.Hour {
		t.Errorf("ttl = %v", ttl)
	}
}

func TestJWTManager_Rejects(t *testing.T) {
	m := NewJWTManager(config.JWTConfig{Secret: "s3cret", Issuer: "netflix", Expiration: 1})
	token, err := m.GenerateToken(1, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	tests := []struct {
		name    string
		manager *JWTManager
		token   string
	}{
		{"wrong secret", NewJWTManager(config.JWTConfig{Secret: "other", Issuer: "netflix", Expiration: 1}), token},
		{"wrong issuer", NewJWTManager(config.JWTConfig{Secret: "s3cret", Issuer: "elsewhere", Expiration: 1}), token},
		{"garbage", m, "a.b.c"},
		{"expired", m, expiredToken(t)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.manager.ValidateToken(tt.token); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func expiredToken(t *testing.T) string {
	t.Helper()
	m := NewJWTManager(config.JWTConfig{Secret: "s3cret", Issuer: "netflix", Expiration: -1})
	token, err := m.GenerateToken(1, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return token
}

func TestExtractSignature(t *testing.T) {
	sig, err := ExtractSignature("header.payload.signature")
	if err != nil || sig != "signature" {
		t.Errorf("got %q, %v", sig, err)
	}
	if _, err = ExtractSignature("no-dots"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestRemainingTTL_NilClaims(t *testing.T) {
	if ttl := RemainingTTL(nil); ttl != 0 {
		t.Errorf("nil claims ttl = %v", ttl)
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if strings.Contains(hash, "hunter22") {
		t.Error("hash contains the plain password")
	}
	if err = CheckPasswordHash("hunter22", hash); err != nil {
		t.Errorf("check: %v", err)
	}
	if err = CheckPasswordHash("hunter23", hash); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("mismatch: got %v", err)
	}
	if _, err = HashPassword(""); err == nil {
		t.Error("expected error for empty password")
	}
}
