package auth

import (
	"errors"
	"testing"
	"time"

	"ecommerce-backend/internal/entity"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), time.Hour)

	token, err := svc.Generate("42", entity.RoleCustomer)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.Identity != "42" {
		t.Errorf("identity = %q, want %q", claims.Identity, "42")
	}
	if claims.Role != entity.RoleCustomer {
		t.Errorf("role = %q, want %q", claims.Role, entity.RoleCustomer)
	}
}

func TestTokenExpired(t *testing.T) {
	svc := &TokenService{Secret: []byte("test-secret"), TTL: -time.Minute}

	token, err := svc.Generate("7", entity.RoleAdmin)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	_, err = svc.Parse(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Parse error = %v, want ErrTokenExpired", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenService([]byte("secret-a"), time.Hour)
	verifier := NewTokenService([]byte("secret-b"), time.Hour)

	token, err := issuer.Generate("7", entity.RoleProvider)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	_, err = verifier.Parse(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Parse error = %v, want ErrTokenInvalid", err)
	}
}

func TestTokenMalformed(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), time.Hour)

	for _, garbage := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Parse(garbage); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("Parse(%q) error = %v, want ErrTokenInvalid", garbage, err)
		}
	}
}

func TestDefaultTTL(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), 0)
	if svc.TTL != time.Hour {
		t.Errorf("TTL = %v, want 1h default", svc.TTL)
	}
}
