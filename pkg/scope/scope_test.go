package scope

import (
	"context"
	"errors"
	"testing"

	"pharmaclear-api/internal/model"
)

func TestCreateAndVerifyToken(t *testing.T) {
	m := NewManager("test-secret", "test-issuer")

	token, err := m.CreateToken(Payload{UserID: "u1", Email: "u1@example.com"})
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	payload, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if payload.UserID != "u1" || payload.Email != "u1@example.com" {
		t.Errorf("payload = %+v", payload)
	}
	if payload.Issuer != "test-issuer" {
		t.Errorf("issuer = %q", payload.Issuer)
	}
	if payload.Subject != "u1" {
		t.Errorf("subject = %q", payload.Subject)
	}
}

func TestVerifyRejectsInvalidTokens(t *testing.T) {
	m := NewManager("test-secret", "test-issuer")

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Verify(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Verify(%q) error = %v, want ErrInvalidToken", tt.token, err)
			}
		})
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuing := NewManager("secret-a", "test-issuer")
	verifying := NewManager("secret-b", "test-issuer")

	token, err := issuing.CreateToken(Payload{UserID: "u1"})
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	if _, err := verifying.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify with wrong secret error = %v, want ErrInvalidToken", err)
	}
}

func TestScopeContextRoundTrip(t *testing.T) {
	sc := model.Scope{UserID: "u1", Email: "u1@example.com"}
	ctx := SetScopeToContext(context.Background(), sc)

	got := GetScopeFromContext(ctx)
	if got != sc {
		t.Errorf("scope = %+v, want %+v", got, sc)
	}

	if empty := GetScopeFromContext(context.Background()); empty != (model.Scope{}) {
		t.Errorf("missing scope = %+v, want zero value", empty)
	}
}

func TestNewScopeFallsBackToSubject(t *testing.T) {
	payload := Payload{UserID: "u1", Email: "e"}
	if sc := NewScope(payload); sc.UserID != "u1" {
		t.Errorf("UserID = %q, want u1", sc.UserID)
	}

	payload = Payload{}
	payload.Subject = "sub-1"
	if sc := NewScope(payload); sc.UserID != "sub-1" {
		t.Errorf("UserID = %q, want subject fallback", sc.UserID)
	}
}
