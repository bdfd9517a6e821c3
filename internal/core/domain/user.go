package domain

import (
	"errors"
	"time"
)

// Role classifies a user into exactly one account type.
type Role string

const (
	RoleEmployer  Role = "employer"
	RoleJobSeeker Role = "job_seeker"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleEmployer || r == RoleJobSeeker
}

var ErrDuplicateEmail = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrWrongPassword = errors.New("current password is incorrect")
var ErrWeakPassword = errors.New("password must be at least 6 characters")
var ErrValidation = errors.New("invalid input")

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// EmployerProfile carries the fields only employer accounts have.
type EmployerProfile struct {
	Company  string `json:"company" bson:"company"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// SeekerProfile carries the fields only job-seeker accounts have.
type SeekerProfile struct {
	Location        string   `json:"location,omitempty" bson:"location,omitempty"`
	Phone           string   `json:"phone,omitempty" bson:"phone,omitempty"`
	Resume          string   `json:"resume,omitempty" bson:"resume,omitempty"`
	Skills          []string `json:"skills,omitempty" bson:"skills,omitempty"`
	ExperienceYears int      `json:"experience" bson:"experience"`
}

// User models an authenticated actor. Exactly one of Employer or Seeker is
// non-nil, matching Role; the email is stored lowercased and is globally unique.
type User struct {
	ID           string           `json:"id" bson:"_id,omitempty"`
	Name         string           `json:"name" bson:"name"`
	Email        string           `json:"email" bson:"email"`
	PasswordHash string           `json:"-" bson:"password_hash"`
	Role         Role             `json:"role" bson:"role"`
	Employer     *EmployerProfile `json:"employer,omitempty" bson:"employer,omitempty"`
	Seeker       *SeekerProfile   `json:"seeker,omitempty" bson:"seeker,omitempty"`
	CreatedAt    time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at" bson:"updated_at"`
}
