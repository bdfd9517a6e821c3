package handler

import (
	"time"

	"github.com/bangalorejobs/job-board/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=employer job_seeker"`

	// Role-specific profile fields; ignored when they do not match the role.
	Company    string   `json:"company,omitempty"`
	Location   string   `json:"location,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Resume     string   `json:"resume,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Experience int      `json:"experience,omitempty" validate:"gte=0"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Company    string    `json:"company,omitempty"`
	Location   string    `json:"location,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Resume     string    `json:"resume,omitempty"`
	Skills     []string  `json:"skills,omitempty"`
	Experience int       `json:"experience,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type authResponse struct {
	Token string        `json:"token,omitempty"`
	User  *userResponse `json:"user,omitempty"`
}

type updateProfileRequest struct {
	Name       *string  `json:"name,omitempty"`
	Company    *string  `json:"company,omitempty"`
	Location   *string  `json:"location,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	Resume     *string  `json:"resume,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Experience *int     `json:"experience,omitempty"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// toUserResponse flattens the role-specific profile into the wire shape used
// by the original API (one object, role-conditional fields).
func toUserResponse(u *domain.User) *userResponse {
	resp := &userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
	if u.Employer != nil {
		resp.Company = u.Employer.Company
		resp.Location = u.Employer.Location
		resp.Phone = u.Employer.Phone
	}
	if u.Seeker != nil {
		resp.Location = u.Seeker.Location
		resp.Phone = u.Seeker.Phone
		resp.Resume = u.Seeker.Resume
		resp.Skills = u.Seeker.Skills
		resp.Experience = u.Seeker.ExperienceYears
	}
	return resp
}
