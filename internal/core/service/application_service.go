package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bangalorejobs/job-board/internal/api/metrics"
	"github.com/bangalorejobs/job-board/internal/core/domain"
	"github.com/bangalorejobs/job-board/internal/core/ports"
)

// ApplicationService implements the application ledger use cases. It reads the
// job catalog to validate targets but the catalog never reads back.
type ApplicationService struct {
	apps ports.ApplicationRepository
	jobs ports.JobRepository
	log  zerolog.Logger
}

func NewApplicationService(apps ports.ApplicationRepository, jobs ports.JobRepository, log zerolog.Logger) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs, log: log}
}

// Apply submits an application. Checks run in a fixed order: job exists, job is
// active, no prior application for the pair, caller is a job seeker. The
// repository's unique index settles concurrent duplicates — the first insert
// wins and the loser surfaces ErrDuplicateApplication.
func (s *ApplicationService) Apply(ctx context.Context, in ports.ApplyInput) (*domain.Application, error) {
	job, err := s.jobs.FindByID(ctx, in.JobID)
	if err != nil {
		metrics.ApplicationErrorsTotal.WithLabelValues("job_not_found").Inc()
		return nil, err
	}
	if job.Status != domain.JobStatusActive {
		metrics.ApplicationErrorsTotal.WithLabelValues("job_not_active").Inc()
		return nil, domain.ErrJobNotActive
	}
	if existing, err := s.apps.FindByJobAndApplicant(ctx, in.JobID, in.ApplicantID); err == nil && existing != nil {
		metrics.ApplicationErrorsTotal.WithLabelValues("duplicate").Inc()
		return nil, domain.ErrDuplicateApplication
	}
	if domain.Role(in.Role) != domain.RoleJobSeeker {
		metrics.ApplicationErrorsTotal.WithLabelValues("wrong_role").Inc()
		return nil, domain.ErrWrongRole
	}

	now := time.Now().UTC()
	app := &domain.Application{
		JobID:       in.JobID,
		ApplicantID: in.ApplicantID,
		Status:      domain.ApplicationPending,
		CoverLetter: in.CoverLetter,
		Resume:      in.Resume,
		AppliedDate: now,
		UpdatedDate: now,
	}

	created, err := s.apps.Create(ctx, app)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateApplication) {
			metrics.ApplicationErrorsTotal.WithLabelValues("duplicate").Inc()
			return nil, err
		}
		return nil, fmt.Errorf("apply: %w", err)
	}

	metrics.ApplicationsSubmittedTotal.Inc()
	s.log.Info().
		Str("application_id", created.ID).
		Str("job_id", in.JobID).
		Str("applicant_id", in.ApplicantID).
		Msg("application submitted")

	return created, nil
}

// MyApplications returns the applicant's applications joined with job summaries.
func (s *ApplicationService) MyApplications(ctx context.Context, applicantID string) ([]*domain.Application, error) {
	return s.apps.ListByApplicant(ctx, applicantID)
}

// ApplicationsForJob returns a job's applications with applicant summaries.
// Forbidden unless employerID owns the job.
func (s *ApplicationService) ApplicationsForJob(ctx context.Context, employerID, jobID string) ([]*domain.Application, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != employerID {
		return nil, domain.ErrForbidden
	}
	return s.apps.ListByJob(ctx, jobID)
}

// UpdateStatus moves an application to any of the four review states. Only the
// employer owning the referenced job may do so; updated_date is refreshed.
// Concurrent updates are last-write-wins.
func (s *ApplicationService) UpdateStatus(ctx context.Context, employerID, applicationID string, status string) (*domain.Application, error) {
	newStatus := domain.ApplicationStatus(status)
	if !newStatus.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	if job.EmployerID != employerID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.apps.UpdateStatus(ctx, applicationID, newStatus)
	if err != nil {
		return nil, err
	}

	metrics.ApplicationStatusUpdatesTotal.WithLabelValues(status).Inc()
	s.log.Info().
		Str("application_id", applicationID).
		Str("status", status).
		Msg("application status updated")

	return updated, nil
}

// Get returns a single application, visible to the applicant or the employer
// owning the referenced job only.
func (s *ApplicationService) Get(ctx context.Context, requesterID, applicationID string) (*domain.Application, error) {
	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.ApplicantID == requesterID {
		return app, nil
	}

	job, err := s.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	if job.EmployerID != requesterID {
		return nil, domain.ErrForbidden
	}
	return app, nil
}
