package ports

import (
	"context"

	"github.com/bangalorejobs/job-board/internal/core/domain"
)

// ListJobsFilter carries all query parameters for the public job listing.
// Zero values mean "no filter" for the respective field.
type ListJobsFilter struct {
	Location   string // exact match against the district set
	Category   string // exact match against the category set
	MinSalary  int    // keep jobs whose salary_max >= MinSalary
	MaxSalary  int    // keep jobs whose salary_min <= MaxSalary
	Experience int    // keep jobs whose experience_required <= Experience
	// HasExperience distinguishes "filter by 0 years" from "no filter".
	HasExperience bool
	Search        string // free-text match on title/company/description
	Status        domain.JobStatus
	Page          int // 1-based
	Limit         int // rows per page (capped at 100 by the service)
}

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	Update(ctx context.Context, job *domain.Job) (*domain.Job, error)
	// List returns a page of jobs matching filter, newest first, and the total count.
	List(ctx context.Context, filter ListJobsFilter) ([]*domain.Job, int64, error)
	// ListByEmployer returns all of an employer's jobs, any status, newest first.
	ListByEmployer(ctx context.Context, employerID string) ([]*domain.Job, error)
}
