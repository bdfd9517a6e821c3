package ports

import (
	"context"

	"github.com/bangalorejobs/job-board/internal/core/domain"
)

// ApplicationRepository defines persistence operations for the application ledger.
// Create must enforce (job, applicant) uniqueness atomically and return
// domain.ErrDuplicateApplication on conflict.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*domain.Application, error)
	// ListByApplicant returns the applicant's applications newest first,
	// each with the Job summary joined.
	ListByApplicant(ctx context.Context, applicantID string) ([]*domain.Application, error)
	// ListByJob returns a job's applications newest first, each with the
	// Applicant summary joined.
	ListByJob(ctx context.Context, jobID string) ([]*domain.Application, error)
	// UpdateStatus sets the status and refreshes updated_date.
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error)
}
