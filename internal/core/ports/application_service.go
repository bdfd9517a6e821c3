package ports

import (
	"context"

	"github.com/bangalorejobs/job-board/internal/core/domain"
)

// ApplyInput carries a job seeker's application submission.
type ApplyInput struct {
	ApplicantID string
	Role        string
	JobID       string
	CoverLetter string
	Resume      string
}

// ApplicationService defines use-case operations for the application ledger.
type ApplicationService interface {
	Apply(ctx context.Context, in ApplyInput) (*domain.Application, error)
	// MyApplications returns the applicant's applications, newest first,
	// joined with a minimal job summary.
	MyApplications(ctx context.Context, applicantID string) ([]*domain.Application, error)
	// ApplicationsForJob returns applications for a job owned by employerID,
	// newest first, joined with applicant summaries.
	ApplicationsForJob(ctx context.Context, employerID, jobID string) ([]*domain.Application, error)
	// UpdateStatus sets the review status; only the employer owning the
	// referenced job may call it.
	UpdateStatus(ctx context.Context, employerID, applicationID string, status string) (*domain.Application, error)
	// Get returns a single application, visible to the applicant or the
	// owning employer only.
	Get(ctx context.Context, requesterID, applicationID string) (*domain.Application, error)
}
