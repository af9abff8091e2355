package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vportella/agora/internal/domain"
	"github.com/vportella/agora/internal/repository"
)

var (
	ErrJobNotFound    = errors.New("job not found")
	ErrNotJobOwner    = errors.New("only the job owner can perform this action")
	ErrAlreadyApplied = errors.New("already applied to this job")
)

const recommendLimit = 3

type JobService struct {
	jobRepo  repository.JobRepository
	userRepo repository.UserRepository
}

func NewJobService(jobRepo repository.JobRepository, userRepo repository.UserRepository) *JobService {
	return &JobService{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

type CreateJobInput struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	SkillsRequired string `json:"skills_required"`
}

func (s *JobService) Create(ctx context.Context, owner Identity, input CreateJobInput) (*domain.Job, error) {
	job := &domain.Job{
		ID:             uuid.New(),
		Title:          input.Title,
		Description:    input.Description,
		SkillsRequired: input.SkillsRequired,
		OwnerID:        owner.UserID,
		OwnerName:      owner.Username,
		CreatedAt:      time.Now(),
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("creating job: %w", err)
	}
	return job, nil
}

func (s *JobService) List(ctx context.Context, search string, page, limit int) ([]domain.Job, int, error) {
	return s.jobRepo.List(ctx, search, (page-1)*limit, limit)
}

func (s *JobService) Delete(ctx context.Context, userID, jobID uuid.UUID) error {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job == nil {
		return ErrJobNotFound
	}
	if job.OwnerID != userID {
		return ErrNotJobOwner
	}

	return s.jobRepo.Delete(ctx, jobID)
}

func (s *JobService) Apply(ctx context.Context, applicant Identity, jobID uuid.UUID) (*domain.Application, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	existing, err := s.jobRepo.GetApplication(ctx, jobID, applicant.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyApplied
	}

	app := &domain.Application{
		ID:        uuid.New(),
		JobID:     jobID,
		UserID:    applicant.UserID,
		Username:  applicant.Username,
		CreatedAt: time.Now(),
	}

	if err := s.jobRepo.CreateApplication(ctx, app); err != nil {
		return nil, fmt.Errorf("creating application: %w", err)
	}
	return app, nil
}

func (s *JobService) ListApplications(ctx context.Context, jobID uuid.UUID) ([]domain.Application, error) {
	return s.jobRepo.ListApplications(ctx, jobID)
}

// Recommend scores every job against the user's skills by comma-token
// overlap and returns the top matches, best first. Zero-score jobs are
// dropped; ties keep insertion order.
func (s *JobService) Recommend(ctx context.Context, userID uuid.UUID) ([]domain.ScoredJob, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("recommending jobs: user %s not found", userID)
	}

	userSkills := splitTags(user.Skills)
	if len(userSkills) == 0 {
		return []domain.ScoredJob{}, nil
	}

	jobs, err := s.jobRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	scored := []domain.ScoredJob{}
	for _, job := range jobs {
		score := overlapScore(userSkills, splitTags(job.SkillsRequired))
		if score > 0 {
			scored = append(scored, domain.ScoredJob{Job: job, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > recommendLimit {
		scored = scored[:recommendLimit]
	}
	return scored, nil
}

// splitTags breaks a comma-separated attribute string into lowercase tokens.
func splitTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

// overlapScore counts user tokens that match any job token, where a match is
// a substring hit in either direction.
func overlapScore(userTags, jobTags []string) int {
	score := 0
	for _, ut := range userTags {
		for _, jt := range jobTags {
			if strings.Contains(jt, ut) || strings.Contains(ut, jt) {
				score++
				break
			}
		}
	}
	return score
}
