package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vportella/agora/internal/domain"
	"github.com/vportella/agora/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrInvalidCreds  = errors.New("invalid credentials")
)

type AuthService struct {
	userRepo repository.UserRepository
	signer   TokenSigner
}

func NewAuthService(userRepo repository.UserRepository, signer TokenSigner) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		signer:   signer,
	}
}

type RegisterInput struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Skills      string `json:"skills"`
	Bio         string `json:"bio"`
	Preferences string `json:"preferences"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token       string `json:"token"`
	Username    string `json:"username"`
	Skills      string `json:"skills,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Preferences string `json:"preferences,omitempty"`
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	existing, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: string(hash),
		Skills:       input.Skills,
		Bio:          input.Bio,
		Preferences:  input.Preferences,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

// Login reports the same error for unknown users and wrong passwords so the
// response shape cannot be used to enumerate usernames.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCreds
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCreds
	}

	token, err := s.signer.Sign(user)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	return &AuthResponse{
		Token:       token,
		Username:    user.Username,
		Skills:      user.Skills,
		Bio:         user.Bio,
		Preferences: user.Preferences,
	}, nil
}
