package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/vportella/agora/internal/domain"
	"github.com/vportella/agora/internal/repository/memory"
)

func newJobFixture(t *testing.T) (*JobService, *memory.UserRepo) {
	t.Helper()
	userRepo := memory.NewUserRepo()
	return NewJobService(memory.NewJobRepo(), userRepo), userRepo
}

func addUser(t *testing.T, repo *memory.UserRepo, username, skills string) Identity {
	t.Helper()
	user := &domain.User{
		ID:        uuid.New(),
		Username:  username,
		Skills:    skills,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return Identity{UserID: user.ID, Username: username}
}

func TestJobService_ListPagination(t *testing.T) {
	t.Parallel()

	svc, userRepo := newJobFixture(t)
	ctx := context.Background()
	alice := addUser(t, userRepo, "alice", "")

	for i := 1; i <= 12; i++ {
		_, err := svc.Create(ctx, alice, CreateJobInput{
			Title:          fmt.Sprintf("job-%02d", i),
			Description:    "desc",
			SkillsRequired: "Go",
		})
		require.NoError(t, err)
	}

	jobs, total, err := svc.List(ctx, "", 2, 5)
	require.NoError(t, err)
	require.Equal(t, 12, total)
	require.Len(t, jobs, 5)

	// page 2 of 5 over 12 items is exactly items 6-10, insertion order
	for i, job := range jobs {
		require.Equal(t, fmt.Sprintf("job-%02d", i+6), job.Title)
	}
}

func TestJobService_ListSearch(t *testing.T) {
	t.Parallel()

	svc, userRepo := newJobFixture(t)
	ctx := context.Background()
	alice := addUser(t, userRepo, "alice", "")

	_, err := svc.Create(ctx, alice, CreateJobInput{Title: "Frontend Developer", Description: "build web apps", SkillsRequired: "React"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, alice, CreateJobInput{Title: "Data Scientist", Description: "analyze data", SkillsRequired: "Python"})
	require.NoError(t, err)

	jobs, total, err := svc.List(ctx, "front", 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, "Frontend Developer", jobs[0].Title)

	// search also covers descriptions
	jobs, total, err = svc.List(ctx, "ANALYZE", 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, "Data Scientist", jobs[0].Title)
}

func TestJobService_DeleteOwnerOnlyAndCascade(t *testing.T) {
	t.Parallel()

	svc, userRepo := newJobFixture(t)
	ctx := context.Background()
	alice := addUser(t, userRepo, "alice", "")
	bob := addUser(t, userRepo, "bob", "")

	job, err := svc.Create(ctx, alice, CreateJobInput{Title: "t", Description: "d", SkillsRequired: "Go"})
	require.NoError(t, err)

	_, err = svc.Apply(ctx, bob, job.ID)
	require.NoError(t, err)

	// non-owner delete is refused
	require.ErrorIs(t, svc.Delete(ctx, bob.UserID, job.ID), ErrNotJobOwner)

	// owner delete removes the job and its applications
	require.NoError(t, svc.Delete(ctx, alice.UserID, job.ID))

	jobs, total, err := svc.List(ctx, "", 1, 10)
	require.NoError(t, err)
	require.Equal(t, 0, total)
	require.Empty(t, jobs)

	apps, err := svc.ListApplications(ctx, job.ID)
	require.NoError(t, err)
	require.Empty(t, apps)

	// deleting again reports not found
	require.ErrorIs(t, svc.Delete(ctx, alice.UserID, job.ID), ErrJobNotFound)
}

func TestJobService_ApplyDuplicate(t *testing.T) {
	t.Parallel()

	svc, userRepo := newJobFixture(t)
	ctx := context.Background()
	alice := addUser(t, userRepo, "alice", "")
	bob := addUser(t, userRepo, "bob", "")

	job, err := svc.Create(ctx, alice, CreateJobInput{Title: "t", Description: "d", SkillsRequired: "Go"})
	require.NoError(t, err)

	_, err = svc.Apply(ctx, bob, job.ID)
	require.NoError(t, err)

	_, err = svc.Apply(ctx, bob, job.ID)
	require.ErrorIs(t, err, ErrAlreadyApplied)

	_, err = svc.Apply(ctx, bob, uuid.New())
	require.ErrorIs(t, err, ErrJobNotFound)
}

func TestJobService_RecommendScenario(t *testing.T) {
	t.Parallel()

	svc, userRepo := newJobFixture(t)
	ctx := context.Background()

	alice := addUser(t, userRepo, "alice", "Go, SQL")
	bob := addUser(t, userRepo, "bob", "Go")

	jobA, err := svc.Create(ctx, alice, CreateJobInput{Title: "A", Description: "d", SkillsRequired: "Go, Rust"})
	require.NoError(t, err)

	recs, err := svc.Recommend(ctx, bob.UserID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, jobA.ID, recs[0].ID)
	require.Equal(t, 1, recs[0].Score)
}

func TestJobService_RecommendOrderingAndLimit(t *testing.T) {
	t.Parallel()

	svc, userRepo := newJobFixture(t)
	ctx := context.Background()

	alice := addUser(t, userRepo, "alice", "")
	bob := addUser(t, userRepo, "bob", "Go, SQL, React")

	_, err := svc.Create(ctx, alice, CreateJobInput{Title: "one", Description: "d", SkillsRequired: "Go"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, alice, CreateJobInput{Title: "three", Description: "d", SkillsRequired: "Go, SQL, React"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, alice, CreateJobInput{Title: "zero", Description: "d", SkillsRequired: "COBOL"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, alice, CreateJobInput{Title: "two", Description: "d", SkillsRequired: "Go, SQL"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, alice, CreateJobInput{Title: "one-late", Description: "d", SkillsRequired: "React"})
	require.NoError(t, err)

	recs, err := svc.Recommend(ctx, bob.UserID)
	require.NoError(t, err)

	// top 3 only, zero-score jobs dropped
	require.Len(t, recs, 3)

	// scores never increase down the list, ties keep insertion order
	require.Equal(t, []string{"three", "two", "one"}, []string{recs[0].Title, recs[1].Title, recs[2].Title})
	for i := 1; i < len(recs); i++ {
		require.LessOrEqual(t, recs[i].Score, recs[i-1].Score)
		require.Greater(t, recs[i].Score, 0)
	}
}

func TestJobService_RecommendNoSkills(t *testing.T) {
	t.Parallel()

	svc, userRepo := newJobFixture(t)
	ctx := context.Background()

	alice := addUser(t, userRepo, "alice", "Go")
	noskills := addUser(t, userRepo, "blank", "")

	_, err := svc.Create(ctx, alice, CreateJobInput{Title: "t", Description: "d", SkillsRequired: "Go"})
	require.NoError(t, err)

	recs, err := svc.Recommend(ctx, noskills.UserID)
	require.NoError(t, err)
	require.Empty(t, recs)
}
