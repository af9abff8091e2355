package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vportella/agora/internal/repository/memory"
)

func newAuthService() *AuthService {
	signer := NewJWTSigner("test-secret", time.Hour)
	return NewAuthService(memory.NewUserRepo(), signer)
}

func TestAuthService_RegisterDuplicateUsername(t *testing.T) {
	t.Parallel()

	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	// same username with a different password still fails
	_, err = svc.Register(ctx, RegisterInput{Username: "alice", Password: "other-password"})
	require.ErrorIs(t, err, ErrUsernameTaken)

	// the stored hash is untouched: the original password still logs in
	_, err = svc.Login(ctx, LoginInput{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
}

func TestAuthService_LoginRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Password: "secret1",
		Skills:   "Go, SQL",
	})
	require.NoError(t, err)
	require.NotEqual(t, "secret1", user.PasswordHash)

	resp, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, "alice", resp.Username)
	require.Equal(t, "Go, SQL", resp.Skills)
	require.NotEmpty(t, resp.Token)
}

func TestAuthService_LoginUniformError(t *testing.T) {
	t.Parallel()

	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	// unknown user and wrong password fail identically
	_, unknownErr := svc.Login(ctx, LoginInput{Username: "nobody", Password: "secret1"})
	_, wrongPwErr := svc.Login(ctx, LoginInput{Username: "alice", Password: "wrong"})

	require.ErrorIs(t, unknownErr, ErrInvalidCreds)
	require.ErrorIs(t, wrongPwErr, ErrInvalidCreds)
}

func TestAuthService_TokenVerifiableUntilExpiry(t *testing.T) {
	t.Parallel()

	signer := NewJWTSigner("test-secret", time.Hour)
	svc := NewAuthService(memory.NewUserRepo(), signer)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	ident, err := signer.Verify(resp.Token)
	require.NoError(t, err)
	require.Equal(t, "alice", ident.Username)
}
