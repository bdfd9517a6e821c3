package handler

import "time"

type createJobRequest struct {
	Title              string   `json:"title"               validate:"required"`
	Company            string   `json:"company"             validate:"required"`
	Description        string   `json:"description"         validate:"required"`
	Location           string   `json:"location"            validate:"required"`
	Category           string   `json:"category"            validate:"required"`
	JobType            string   `json:"job_type"            validate:"omitempty,oneof=Full-time Part-time Contract Internship"`
	SalaryMin          int      `json:"salary_min"          validate:"gte=0"`
	SalaryMax          int      `json:"salary_max"          validate:"gte=0"`
	ExperienceRequired int      `json:"experience_required" validate:"gte=0"`
	Skills             []string `json:"skills,omitempty"`
}

type updateJobRequest struct {
	Title              *string  `json:"title,omitempty"`
	Company            *string  `json:"company,omitempty"`
	Description        *string  `json:"description,omitempty"`
	Location           *string  `json:"location,omitempty"`
	Category           *string  `json:"category,omitempty"`
	JobType            *string  `json:"job_type,omitempty"`
	SalaryMin          *int     `json:"salary_min,omitempty"`
	SalaryMax          *int     `json:"salary_max,omitempty"`
	ExperienceRequired *int     `json:"experience_required,omitempty"`
	Skills             []string `json:"skills,omitempty"`
}

type jobResponse struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Company            string    `json:"company"`
	Description        string    `json:"description"`
	Location           string    `json:"location"`
	Category           string    `json:"category"`
	JobType            string    `json:"job_type"`
	SalaryMin          int       `json:"salary_min"`
	SalaryMax          int       `json:"salary_max"`
	ExperienceRequired int       `json:"experience_required"`
	Skills             []string  `json:"skills,omitempty"`
	EmployerID         string    `json:"employer_id"`
	Status             string    `json:"status"`
	PostedDate         time.Time `json:"posted_date"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listJobsResponse struct {
	Data       []jobResponse      `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
