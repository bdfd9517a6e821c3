package handler

import (
	"time"

	"github.com/bangalorejobs/job-board/internal/core/domain"
)

type applyRequest struct {
	JobID       string `json:"job_id" validate:"required"`
	CoverLetter string `json:"cover_letter,omitempty"`
	Resume      string `json:"resume,omitempty"`
}

type updateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed accepted rejected"`
}

// applicationJobResponse is the minimal job view on an application row.
type applicationJobResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	Location  string `json:"location"`
	SalaryMin int    `json:"salary_min"`
	SalaryMax int    `json:"salary_max"`
	Status    string `json:"status"`
}

// applicationApplicantResponse is the minimal applicant view on an application row.
type applicationApplicantResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Experience int      `json:"experience"`
}

type applicationResponse struct {
	ID          string                        `json:"id"`
	JobID       string                        `json:"job_id"`
	ApplicantID string                        `json:"applicant_id"`
	Status      string                        `json:"status"`
	CoverLetter string                        `json:"cover_letter,omitempty"`
	Resume      string                        `json:"resume,omitempty"`
	AppliedDate time.Time                     `json:"applied_date"`
	UpdatedDate time.Time                     `json:"updated_date"`
	Job         *applicationJobResponse       `json:"job,omitempty"`
	Applicant   *applicationApplicantResponse `json:"applicant,omitempty"`
}

func toApplicationResponse(a *domain.Application) applicationResponse {
	resp := applicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		ApplicantID: a.ApplicantID,
		Status:      string(a.Status),
		CoverLetter: a.CoverLetter,
		Resume:      a.Resume,
		AppliedDate: a.AppliedDate,
		UpdatedDate: a.UpdatedDate,
	}
	if a.Job != nil {
		resp.Job = &applicationJobResponse{
			ID:        a.Job.ID,
			Title:     a.Job.Title,
			Company:   a.Job.Company,
			Location:  a.Job.Location,
			SalaryMin: a.Job.SalaryMin,
			SalaryMax: a.Job.SalaryMax,
			Status:    string(a.Job.Status),
		}
	}
	if a.Applicant != nil {
		resp.Applicant = &applicationApplicantResponse{
			ID:         a.Applicant.ID,
			Name:       a.Applicant.Name,
			Email:      a.Applicant.Email,
			Phone:      a.Applicant.Phone,
			Skills:     a.Applicant.Skills,
			Experience: a.Applicant.ExperienceYears,
		}
	}
	return resp
}

func toApplicationListResponse(apps []*domain.Application) []applicationResponse {
	items := make([]applicationResponse, 0, len(apps))
	for _, a := range apps {
		items = append(items, toApplicationResponse(a))
	}
	return items
}
