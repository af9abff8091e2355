package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vportella/agora/internal/domain"
	"github.com/vportella/agora/internal/repository"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrNotReviewOwner = errors.New("only the review owner can perform this action")
)

type ReviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo}
}

type ReviewInput struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
}

func (s *ReviewService) Create(ctx context.Context, owner Identity, input ReviewInput) (*domain.Review, error) {
	review := &domain.Review{
		ID:         uuid.New(),
		Title:      input.Title,
		Author:     input.Author,
		Rating:     input.Rating,
		ReviewText: input.ReviewText,
		OwnerID:    owner.UserID,
		CreatedAt:  time.Now(),
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("creating review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) List(ctx context.Context) ([]domain.Review, error) {
	return s.reviewRepo.List(ctx)
}

func (s *ReviewService) ListByRating(ctx context.Context, rating int) ([]domain.Review, error) {
	return s.reviewRepo.ListByRating(ctx, rating)
}

func (s *ReviewService) Update(ctx context.Context, userID, reviewID uuid.UUID, input ReviewInput) (*domain.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	if review.OwnerID != userID {
		return nil, ErrNotReviewOwner
	}

	review.Title = input.Title
	review.Author = input.Author
	review.Rating = input.Rating
	review.ReviewText = input.ReviewText

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("updating review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, userID, reviewID uuid.UUID) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	if review.OwnerID != userID {
		return ErrNotReviewOwner
	}

	return s.reviewRepo.Delete(ctx, reviewID)
}
