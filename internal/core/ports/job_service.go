package ports

import (
	"context"

	"github.com/bangalorejobs/job-board/internal/core/domain"
)

// CreateJobInput carries all data needed to create a posting.
type CreateJobInput struct {
	Title              string
	Company            string
	Description        string
	Location           string
	Category           string
	JobType            string
	SalaryMin          int
	SalaryMax          int
	ExperienceRequired int
	Skills             []string
}

// UpdateJobInput carries optional posting updates; nil pointers are left untouched.
type UpdateJobInput struct {
	Title              *string
	Company            *string
	Description        *string
	Location           *string
	Category           *string
	JobType            *string
	SalaryMin          *int
	SalaryMax          *int
	ExperienceRequired *int
	Skills             []string
}

// ListJobsInput carries the public listing parameters.
type ListJobsInput struct {
	Location      string
	Category      string
	MinSalary     int
	MaxSalary     int
	Experience    int
	HasExperience bool
	Search        string
	Page          int
	Limit         int
}

// ListJobsResult is returned by List.
type ListJobsResult struct {
	Items      []*domain.Job
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// JobService defines use-case operations for the job catalog.
type JobService interface {
	// List returns active jobs only, newest first.
	List(ctx context.Context, in ListJobsInput) (*ListJobsResult, error)
	// Get returns the job regardless of status.
	Get(ctx context.Context, id string) (*domain.Job, error)
	Create(ctx context.Context, employerID string, in CreateJobInput) (*domain.Job, error)
	Update(ctx context.Context, employerID, jobID string, in UpdateJobInput) (*domain.Job, error)
	// Close transitions the job to closed. Only the owning employer may close it.
	Close(ctx context.Context, employerID, jobID string) error
	ListByEmployer(ctx context.Context, employerID string) ([]*domain.Job, error)
}
