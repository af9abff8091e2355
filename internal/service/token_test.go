package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/vportella/agora/internal/domain"
)

func TestJWTSigner_SignAndVerify(t *testing.T) {
	t.Parallel()

	signer := NewJWTSigner("super-secret", time.Hour)
	user := &domain.User{ID: uuid.New(), Username: "alice"}

	tok, err := signer.Sign(user)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	ident, err := signer.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if ident.UserID != user.ID {
		t.Fatalf("user id mismatch: got %s want %s", ident.UserID, user.ID)
	}
	if ident.Username != "alice" {
		t.Fatalf("username mismatch: got %q want %q", ident.Username, "alice")
	}
}

func TestJWTSigner_Expired(t *testing.T) {
	t.Parallel()

	signer := NewJWTSigner("secret", -1*time.Second)
	user := &domain.User{ID: uuid.New(), Username: "bob"}

	tok, err := signer.Sign(user)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	_, err = signer.Verify(tok)
	if err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTSigner_WrongSecret(t *testing.T) {
	t.Parallel()

	signer := NewJWTSigner("right-secret", time.Hour)
	user := &domain.User{ID: uuid.New(), Username: "carol"}

	tok, err := signer.Sign(user)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	other := NewJWTSigner("wrong-secret", time.Hour)
	if _, err := other.Verify(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestJWTSigner_Malformed(t *testing.T) {
	t.Parallel()

	signer := NewJWTSigner("k", time.Hour)
	if _, err := signer.Verify("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
