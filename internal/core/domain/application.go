package domain

import (
	"errors"
	"time"
)

// ApplicationStatus is the review state of an application. New applications
// always start as pending; the owning employer may move an application to any
// of the four states afterwards — accepted/rejected are not terminal.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationReviewed ApplicationStatus = "reviewed"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Valid reports whether s is one of the four enumerated statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationReviewed, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

var ErrApplicationNotFound = errors.New("application not found")
var ErrDuplicateApplication = errors.New("already applied for this job")
var ErrInvalidStatus = errors.New("invalid application status")
var ErrWrongRole = errors.New("operation not permitted for this role")

// JobSummary is the minimal job view joined onto an application row.
type JobSummary struct {
	ID         string    `json:"id" bson:"_id"`
	Title      string    `json:"title" bson:"title"`
	Company    string    `json:"company" bson:"company"`
	Location   string    `json:"location" bson:"location"`
	SalaryMin  int       `json:"salary_min" bson:"salary_min"`
	SalaryMax  int       `json:"salary_max" bson:"salary_max"`
	EmployerID string    `json:"-" bson:"employer_id"`
	Status     JobStatus `json:"status" bson:"status"`
}

// ApplicantSummary is the minimal applicant view joined onto an application row.
type ApplicantSummary struct {
	ID              string   `json:"id" bson:"_id"`
	Name            string   `json:"name" bson:"name"`
	Email           string   `json:"email" bson:"email"`
	Phone           string   `json:"phone,omitempty" bson:"phone,omitempty"`
	Skills          []string `json:"skills,omitempty" bson:"skills,omitempty"`
	ExperienceYears int      `json:"experience" bson:"experience"`
}

// Application joins a job seeker to a job. The (JobID, ApplicantID) pair is
// unique; the store enforces it atomically via a compound unique index.
type Application struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	JobID       string            `json:"job_id" bson:"job_id"`
	ApplicantID string            `json:"applicant_id" bson:"applicant_id"`
	Status      ApplicationStatus `json:"status" bson:"status"`
	CoverLetter string            `json:"cover_letter,omitempty" bson:"cover_letter,omitempty"`
	Resume      string            `json:"resume,omitempty" bson:"resume,omitempty"`
	AppliedDate time.Time         `json:"applied_date" bson:"applied_date"`
	UpdatedDate time.Time         `json:"updated_date" bson:"updated_date"`

	// Job and Applicant are filled by joined list queries only.
	Job       *JobSummary       `json:"job,omitempty" bson:"job,omitempty"`
	Applicant *ApplicantSummary `json:"applicant,omitempty" bson:"applicant,omitempty"`
}
