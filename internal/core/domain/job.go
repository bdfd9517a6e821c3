package domain

import (
	"errors"
	"time"
)

// JobStatus represents the lifecycle state of a posting.
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
)

// JobType is the employment arrangement of a posting.
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
)

// Valid reports whether t is a known job type.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

var ErrJobNotFound = errors.New("job not found")
var ErrJobNotActive = errors.New("job is no longer active")
var ErrForbidden = errors.New("access forbidden")

// Locations is the fixed set of districts a job may be posted in.
var Locations = []string{
	"Whitefield",
	"Koramangala",
	"HSR Layout",
	"Indiranagar",
	"Electronic City",
	"Marathahalli",
	"JP Nagar",
	"BTM Layout",
	"Jayanagar",
	"MG Road",
	"Hebbal",
	"Yelahanka",
	"Bannerghatta Road",
	"Sarjapur Road",
	"Outer Ring Road",
	"Other Bangalore",
}

// Categories is the fixed set of job categories.
var Categories = []string{
	"Software Development",
	"Data Science",
	"Product Management",
	"Design",
	"Marketing",
	"Sales",
	"HR",
	"Finance",
	"Operations",
	"Customer Support",
	"Other",
}

// ValidLocation reports whether s is one of the enumerated districts.
func ValidLocation(s string) bool {
	return contains(Locations, s)
}

// ValidCategory reports whether s is one of the enumerated categories.
func ValidCategory(s string) bool {
	return contains(Categories, s)
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// Job is a posting owned exclusively by its creating employer.
type Job struct {
	ID                 string    `json:"id" bson:"_id,omitempty"`
	Title              string    `json:"title" bson:"title"`
	Company            string    `json:"company" bson:"company"`
	Description        string    `json:"description" bson:"description"`
	Location           string    `json:"location" bson:"location"`
	Category           string    `json:"category" bson:"category"`
	JobType            JobType   `json:"job_type" bson:"job_type"`
	SalaryMin          int       `json:"salary_min" bson:"salary_min"`
	SalaryMax          int       `json:"salary_max" bson:"salary_max"`
	ExperienceRequired int       `json:"experience_required" bson:"experience_required"`
	Skills             []string  `json:"skills,omitempty" bson:"skills,omitempty"`
	EmployerID         string    `json:"employer_id" bson:"employer_id"`
	Status             JobStatus `json:"status" bson:"status"`
	PostedDate         time.Time `json:"posted_date" bson:"posted_date"`
}
