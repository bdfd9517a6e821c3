package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bangalorejobs/job-board/internal/api/metrics"
	"github.com/bangalorejobs/job-board/internal/core/domain"
	"github.com/bangalorejobs/job-board/internal/core/ports"
)

// TokenRevoker abstracts the credential revocation store (Redis). Tokens issued
// before the recorded revocation instant are rejected by the auth middleware.
type TokenRevoker interface {
	RevokeAll(ctx context.Context, userID string, at time.Time) error
}

// AuthService implements registration, login and account self-management.
type AuthService struct {
	repo      ports.UserRepository
	revoker   TokenRevoker
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, revoker TokenRevoker, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, revoker: revoker, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Register creates a new account. The email is lowercased before the
// uniqueness check so duplicates differing only in case are rejected.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrValidation
	}
	role := domain.Role(in.Role)
	if !role.Valid() {
		return nil, domain.ErrValidation
	}
	if len(in.Password) < domain.MinPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if existing, err := s.repo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	switch role {
	case domain.RoleEmployer:
		user.Employer = &domain.EmployerProfile{
			Company:  in.Company,
			Location: in.Location,
			Phone:    in.Phone,
		}
	case domain.RoleJobSeeker:
		user.Seeker = &domain.SeekerProfile{
			Location:        in.Location,
			Phone:           in.Phone,
			Resume:          in.Resume,
			Skills:          in.Skills,
			ExperienceYears: in.ExperienceYears,
		}
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(string(created.Role)).Inc()
	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login authenticates by email and password and returns a signed token.
// Lookup and password failures both map to ErrInvalidCredentials so the
// response does not reveal whether the email exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}

// GetProfile returns the live user record.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateProfile applies the mutable profile fields. Role and email are fixed;
// role-specific fields only land on the matching profile variant.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, in ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if user.Employer != nil {
		if in.Company != nil {
			user.Employer.Company = *in.Company
		}
		if in.Location != nil {
			user.Employer.Location = *in.Location
		}
		if in.Phone != nil {
			user.Employer.Phone = *in.Phone
		}
	}
	if user.Seeker != nil {
		if in.Location != nil {
			user.Seeker.Location = *in.Location
		}
		if in.Phone != nil {
			user.Seeker.Phone = *in.Phone
		}
		if in.Resume != nil {
			user.Seeker.Resume = *in.Resume
		}
		if in.Skills != nil {
			user.Seeker.Skills = in.Skills
		}
		if in.ExperienceYears != nil {
			user.Seeker.ExperienceYears = *in.ExperienceYears
		}
	}
	user.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, user)
}

// ChangePassword verifies the current password, stores the new hash and
// revokes all outstanding tokens for the account.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if len(newPassword) < domain.MinPasswordLength {
		return domain.ErrWeakPassword
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now().UTC()

	if _, err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	if s.revoker != nil {
		if err := s.revoker.RevokeAll(ctx, userID, time.Now().UTC()); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to revoke outstanding tokens")
		}
	}

	s.log.Info().Str("user_id", userID).Msg("password changed")
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
