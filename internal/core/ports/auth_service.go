package ports

import (
	"context"

	"github.com/bangalorejobs/job-board/internal/core/domain"
)

// RegisterInput carries everything needed to create an account. The profile
// fields are role-conditional: Company applies to employers; Resume, Skills and
// ExperienceYears apply to job seekers.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	Role            string
	Company         string
	Location        string
	Phone           string
	Resume          string
	Skills          []string
	ExperienceYears int
}

// UpdateProfileInput carries the mutable profile fields. Nil pointers are left
// untouched; role and email are never updatable.
type UpdateProfileInput struct {
	Name            *string
	Company         *string
	Location        *string
	Phone           *string
	Resume          *string
	Skills          []string
	ExperienceYears *int
}

// AuthService implements registration, login and account self-management.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login returns a signed token and the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
