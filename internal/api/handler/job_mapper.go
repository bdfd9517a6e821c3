package handler

import (
	"github.com/bangalorejobs/job-board/internal/core/domain"
	"github.com/bangalorejobs/job-board/internal/core/ports"
)

// --- Request → Service input ---

func toCreateJobInput(req createJobRequest) ports.CreateJobInput {
	return ports.CreateJobInput{
		Title:              req.Title,
		Company:            req.Company,
		Description:        req.Description,
		Location:           req.Location,
		Category:           req.Category,
		JobType:            req.JobType,
		SalaryMin:          req.SalaryMin,
		SalaryMax:          req.SalaryMax,
		ExperienceRequired: req.ExperienceRequired,
		Skills:             req.Skills,
	}
}

func toUpdateJobInput(req updateJobRequest) ports.UpdateJobInput {
	return ports.UpdateJobInput{
		Title:              req.Title,
		Company:            req.Company,
		Description:        req.Description,
		Location:           req.Location,
		Category:           req.Category,
		JobType:            req.JobType,
		SalaryMin:          req.SalaryMin,
		SalaryMax:          req.SalaryMax,
		ExperienceRequired: req.ExperienceRequired,
		Skills:             req.Skills,
	}
}

// --- Service result → HTTP response ---

func toJobResponse(j *domain.Job) jobResponse {
	return jobResponse{
		ID:                 j.ID,
		Title:              j.Title,
		Company:            j.Company,
		Description:        j.Description,
		Location:           j.Location,
		Category:           j.Category,
		JobType:            string(j.JobType),
		SalaryMin:          j.SalaryMin,
		SalaryMax:          j.SalaryMax,
		ExperienceRequired: j.ExperienceRequired,
		Skills:             j.Skills,
		EmployerID:         j.EmployerID,
		Status:             string(j.Status),
		PostedDate:         j.PostedDate,
	}
}

func toListJobsResponse(r *ports.ListJobsResult) listJobsResponse {
	items := make([]jobResponse, 0, len(r.Items))
	for _, j := range r.Items {
		items = append(items, toJobResponse(j))
	}
	return listJobsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
