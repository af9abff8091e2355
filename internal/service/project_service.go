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
	ErrProjectNotFound = errors.New("project not found")
	ErrNotProjectOwner = errors.New("only the project owner can perform this action")
)

type ProjectService struct {
	projectRepo repository.ProjectRepository
}

func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

type CreateProjectInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
}

type PlaceBidInput struct {
	ProjectID uuid.UUID `json:"project_id"`
	Amount    float64   `json:"amount"`
}

func (s *ProjectService) Create(ctx context.Context, owner Identity, input CreateProjectInput) (*domain.Project, error) {
	project := &domain.Project{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
		OwnerID:     owner.UserID,
		OwnerName:   owner.Username,
		CreatedAt:   time.Now(),
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepo.ListAll(ctx)
}

func (s *ProjectService) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return ErrProjectNotFound
	}
	if project.OwnerID != userID {
		return ErrNotProjectOwner
	}

	return s.projectRepo.Delete(ctx, projectID)
}

func (s *ProjectService) PlaceBid(ctx context.Context, bidder Identity, input PlaceBidInput) (*domain.Bid, error) {
	project, err := s.projectRepo.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	bid := &domain.Bid{
		ID:        uuid.New(),
		ProjectID: input.ProjectID,
		UserID:    bidder.UserID,
		Username:  bidder.Username,
		Amount:    input.Amount,
		CreatedAt: time.Now(),
	}

	if err := s.projectRepo.CreateBid(ctx, bid); err != nil {
		return nil, fmt.Errorf("creating bid: %w", err)
	}
	return bid, nil
}

func (s *ProjectService) ListBids(ctx context.Context, projectID uuid.UUID) ([]domain.Bid, error) {
	return s.projectRepo.ListBids(ctx, projectID)
}
