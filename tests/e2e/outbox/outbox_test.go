//go:build e2e

package outbox_test

import (
	"context"
	"testing"
	"time"

	"session-booking/internal/infra/repository"
	"session-booking/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type OutboxSuite struct {
	e2e.SharedSuite
	repo *repository.NotificationRepository
}

func (s *OutboxSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.repo = repository.NewNotificationRepository(s.DB)
}

func TestOutboxSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OutboxSuite))
}

func (s *OutboxSuite) TestClaimPendingJobs() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	lease := 5 * time.Minute

	s.Run("success: queued jobs due now are claimed once", func() {
		s.Require().NoError(s.repo.CreateJob(ctx, "message", "notify:user", []byte(`{"text":"due"}`), now.Add(-time.Minute)))
		s.Require().NoError(s.repo.CreateJob(ctx, "message", "notify:user", []byte(`{"text":"later"}`), now.Add(time.Hour)))

		jobs, err := s.repo.ClaimPendingJobs(ctx, now, now.Add(-lease), 10)
		s.Require().NoError(err)
		s.Require().Len(jobs, 1)
		s.Equal(1, jobs[0].Attempts)

		again, err := s.repo.ClaimPendingJobs(ctx, now, now.Add(-lease), 10)
		s.Require().NoError(err)
		s.Empty(again)
	})

	s.Run("success: a processing job is reclaimed once its lease has passed", func() {
		s.Require().NoError(s.repo.CreateJob(ctx, "message", "notify:admin", []byte(`{"text":"stuck"}`), now.Add(-time.Minute)))
		claimed, err := s.repo.ClaimPendingJobs(ctx, now, now.Add(-lease), 10)
		s.Require().NoError(err)
		s.Require().Len(claimed, 1)

		// The relay that claimed it never reports back.
		early := now.Add(lease - time.Second)
		jobs, err := s.repo.ClaimPendingJobs(ctx, early, early.Add(-lease), 10)
		s.Require().NoError(err)
		s.Empty(jobs)

		late := now.Add(lease + time.Second)
		jobs, err = s.repo.ClaimPendingJobs(ctx, late, late.Add(-lease), 10)
		s.Require().NoError(err)
		s.Require().Len(jobs, 1)
		s.Equal(claimed[0].ID, jobs[0].ID)
		s.Equal(2, jobs[0].Attempts)

		s.Require().NoError(s.repo.MarkJobSent(ctx, jobs[0].ID))
		later := late.Add(2 * lease)
		jobs, err = s.repo.ClaimPendingJobs(ctx, later, later.Add(-lease), 10)
		s.Require().NoError(err)
		s.Empty(jobs)
	})
}
