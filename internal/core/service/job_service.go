package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bangalorejobs/job-board/internal/api/metrics"
	"github.com/bangalorejobs/job-board/internal/core/domain"
	"github.com/bangalorejobs/job-board/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// JobService implements the job catalog use cases.
type JobService struct {
	repo ports.JobRepository
	log  zerolog.Logger
}

func NewJobService(repo ports.JobRepository, log zerolog.Logger) *JobService {
	return &JobService{repo: repo, log: log}
}

// List returns one page of active jobs, newest first.
func (s *JobService) List(ctx context.Context, in ports.ListJobsInput) (*ports.ListJobsResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	items, total, err := s.repo.List(ctx, ports.ListJobsFilter{
		Location:      in.Location,
		Category:      in.Category,
		MinSalary:     in.MinSalary,
		MaxSalary:     in.MaxSalary,
		Experience:    in.Experience,
		HasExperience: in.HasExperience,
		Search:        in.Search,
		Status:        domain.JobStatusActive,
		Page:          page,
		Limit:         limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ports.ListJobsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Get returns a single job regardless of status; closed postings stay viewable.
func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates the posting fields and stores it as active.
func (s *JobService) Create(ctx context.Context, employerID string, in ports.CreateJobInput) (*domain.Job, error) {
	if in.Title == "" || in.Company == "" || in.Description == "" {
		return nil, domain.ErrValidation
	}
	if !domain.ValidLocation(in.Location) || !domain.ValidCategory(in.Category) {
		return nil, domain.ErrValidation
	}
	if in.ExperienceRequired < 0 || in.SalaryMin < 0 || in.SalaryMax < 0 {
		return nil, domain.ErrValidation
	}
	jobType := domain.JobType(in.JobType)
	if in.JobType == "" {
		jobType = domain.JobTypeFullTime
	} else if !jobType.Valid() {
		return nil, domain.ErrValidation
	}

	job := &domain.Job{
		Title:              in.Title,
		Company:            in.Company,
		Description:        in.Description,
		Location:           in.Location,
		Category:           in.Category,
		JobType:            jobType,
		SalaryMin:          in.SalaryMin,
		SalaryMax:          in.SalaryMax,
		ExperienceRequired: in.ExperienceRequired,
		Skills:             in.Skills,
		EmployerID:         employerID,
		Status:             domain.JobStatusActive,
		PostedDate:         time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, job)
	if err != nil {
		s.log.Error().Err(err).Str("employer_id", employerID).Msg("failed to create job")
		return nil, err
	}

	metrics.JobsCreatedTotal.WithLabelValues(created.Category).Inc()
	s.log.Info().Str("job_id", created.ID).Str("employer_id", employerID).Msg("job created")
	return created, nil
}

// Update applies the given fields to a job the employer owns.
func (s *JobService) Update(ctx context.Context, employerID, jobID string, in ports.UpdateJobInput) (*domain.Job, error) {
	job, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != employerID {
		return nil, domain.ErrForbidden
	}

	if in.Title != nil {
		job.Title = *in.Title
	}
	if in.Company != nil {
		job.Company = *in.Company
	}
	if in.Description != nil {
		job.Description = *in.Description
	}
	if in.Location != nil {
		if !domain.ValidLocation(*in.Location) {
			return nil, domain.ErrValidation
		}
		job.Location = *in.Location
	}
	if in.Category != nil {
		if !domain.ValidCategory(*in.Category) {
			return nil, domain.ErrValidation
		}
		job.Category = *in.Category
	}
	if in.JobType != nil {
		jt := domain.JobType(*in.JobType)
		if !jt.Valid() {
			return nil, domain.ErrValidation
		}
		job.JobType = jt
	}
	if in.SalaryMin != nil {
		job.SalaryMin = *in.SalaryMin
	}
	if in.SalaryMax != nil {
		job.SalaryMax = *in.SalaryMax
	}
	if in.ExperienceRequired != nil {
		if *in.ExperienceRequired < 0 {
			return nil, domain.ErrValidation
		}
		job.ExperienceRequired = *in.ExperienceRequired
	}
	if in.Skills != nil {
		job.Skills = in.Skills
	}

	return s.repo.Update(ctx, job)
}

// Close marks a job the employer owns as closed. The posting stays readable
// and its applications keep a valid reference.
func (s *JobService) Close(ctx context.Context, employerID, jobID string) error {
	job, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.EmployerID != employerID {
		return domain.ErrForbidden
	}

	job.Status = domain.JobStatusClosed
	if _, err := s.repo.Update(ctx, job); err != nil {
		return err
	}

	s.log.Info().Str("job_id", jobID).Str("employer_id", employerID).Msg("job closed")
	return nil
}

// ListByEmployer returns all of the employer's jobs, newest first.
func (s *JobService) ListByEmployer(ctx context.Context, employerID string) ([]*domain.Job, error) {
	return s.repo.ListByEmployer(ctx, employerID)
}
