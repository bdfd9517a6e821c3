package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/bangalorejobs/job-board/internal/core/domain"
	"github.com/bangalorejobs/job-board/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byEmail   map[string]*domain.User
	byID      map[string]*domain.User
	nextID    int
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
	}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, exists := r.byEmail[u.Email]; exists {
		return nil, domain.ErrDuplicateEmail
	}
	r.nextID++
	clone := *u
	clone.ID = "user_" + strconv.Itoa(r.nextID)
	r.byEmail[clone.Email] = &clone
	r.byID[clone.ID] = &clone
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	stored, ok := r.byID[u.ID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	*stored = clone
	return &clone, nil
}

type stubRevoker struct {
	calls []string
	err   error
}

func (r *stubRevoker) RevokeAll(_ context.Context, userID string, _ time.Time) error {
	r.calls = append(r.calls, userID)
	return r.err
}

func employerInput() ports.RegisterInput {
	return ports.RegisterInput{
		Name:     "Acme HR",
		Email:    "hr@acme.example",
		Password: "secret123",
		Role:     "employer",
		Company:  "Acme Corp",
		Location: "Whitefield",
		Phone:    "+91 9000000001",
	}
}

func seekerInput() ports.RegisterInput {
	return ports.RegisterInput{
		Name:            "Asha",
		Email:           "asha@example.com",
		Password:        "secret123",
		Role:            "job_seeker",
		Location:        "HSR Layout",
		Skills:          []string{"Go", "MongoDB"},
		ExperienceYears: 3,
	}
}

// ---------------------------------------------------------------------------
// Register tests
// ---------------------------------------------------------------------------

func TestAuthService_Register_Employer(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour, discardLogger)

	user, err := svc.Register(context.Background(), employerInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.ID == "" {
		t.Error("expected an assigned id")
	}
	if user.Role != domain.RoleEmployer {
		t.Errorf("expected role employer, got %q", user.Role)
	}
	if user.Employer == nil || user.Employer.Company != "Acme Corp" {
		t.Errorf("employer profile not stored: %+v", user.Employer)
	}
	if user.Seeker != nil {
		t.Error("employer must not carry a seeker profile")
	}
	if user.PasswordHash == "secret123" {
		t.Error("password must be hashed, not stored verbatim")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")) != nil {
		t.Error("stored hash does not match the password")
	}
}

func TestAuthService_Register_Seeker(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour, discardLogger)

	user, err := svc.Register(context.Background(), seekerInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Seeker == nil {
		t.Fatal("expected a seeker profile")
	}
	if user.Seeker.ExperienceYears != 3 || len(user.Seeker.Skills) != 2 {
		t.Errorf("seeker profile not stored: %+v", user.Seeker)
	}
	if user.Employer != nil {
		t.Error("job seeker must not carry an employer profile")
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), nil, "secret", time.Hour, discardLogger)

	cases := []ports.RegisterInput{
		{Email: "a@b.c", Password: "secret123", Role: "employer"},            // no name
		{Name: "A", Password: "secret123", Role: "employer"},                // no email
		{Name: "A", Email: "a@b.c", Role: "employer"},                       // no password
		{Name: "A", Email: "a@b.c", Password: "secret123", Role: "manager"}, // bad role
	}
	for i, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), nil, "secret", time.Hour, discardLogger)

	in := seekerInput()
	in.Password = "short"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrWeakPassword) {
		t.Errorf("expected ErrWeakPassword, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmailCaseInsensitive(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour, discardLogger)

	if _, err := svc.Register(context.Background(), seekerInput()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	in := seekerInput()
	in.Email = "ASHA@Example.Com"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Errorf("expected 1 stored user, got %d", len(repo.byID))
	}
}

func TestAuthService_Register_StoresLowercasedEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour, discardLogger)

	in := seekerInput()
	in.Email = "  Asha@Example.COM "
	user, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "asha@example.com" {
		t.Errorf("expected lowercased trimmed email, got %q", user.Email)
	}
}

// ---------------------------------------------------------------------------
// Login tests
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, nil, "test-secret", 2*time.Hour, discardLogger)

	registered, err := svc.Register(context.Background(), seekerInput())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "asha@example.com", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("expected user %q, got %q", registered.ID, user.ID)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["sub"] != registered.ID {
		t.Errorf("sub: expected %q, got %v", registered.ID, claims["sub"])
	}
	if claims["role"] != "job_seeker" {
		t.Errorf("role: expected job_seeker, got %v", claims["role"])
	}
	iat, _ := claims["iat"].(float64)
	exp, _ := claims["exp"].(float64)
	if int64(exp)-int64(iat) != int64((2 * time.Hour).Seconds()) {
		t.Errorf("expected 2h lifetime, got %ds", int64(exp)-int64(iat))
	}
}

func TestAuthService_Login_EmailCaseInsensitive(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), nil, "secret", time.Hour, discardLogger)
	if _, err := svc.Register(context.Background(), seekerInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "ASHA@example.com", "secret123"); err != nil {
		t.Errorf("expected login with differently cased email to succeed, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), nil, "secret", time.Hour, discardLogger)
	if _, err := svc.Register(context.Background(), seekerInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "asha@example.com", "wrong-pass")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailSameError(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), nil, "secret", time.Hour, discardLogger)

	// Unknown account must be indistinguishable from a bad password.
	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Profile tests
// ---------------------------------------------------------------------------

func TestAuthService_UpdateProfile_SeekerFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour, discardLogger)
	registered, _ := svc.Register(context.Background(), seekerInput())

	name := "Asha R"
	resume := "https://example.com/cv.pdf"
	exp := 4
	updated, err := svc.UpdateProfile(context.Background(), registered.ID, ports.UpdateProfileInput{
		Name:            &name,
		Resume:          &resume,
		ExperienceYears: &exp,
		Skills:          []string{"Go", "Redis", "Kubernetes"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Asha R" {
		t.Errorf("name not updated: %q", updated.Name)
	}
	if updated.Seeker.Resume != resume || updated.Seeker.ExperienceYears != 4 {
		t.Errorf("seeker fields not updated: %+v", updated.Seeker)
	}
	if len(updated.Seeker.Skills) != 3 {
		t.Errorf("skills not replaced: %v", updated.Seeker.Skills)
	}
	// Untouched fields keep their values.
	if updated.Seeker.Location != "HSR Layout" {
		t.Errorf("location must be untouched, got %q", updated.Seeker.Location)
	}
	if updated.Email != registered.Email {
		t.Error("email must never change via profile update")
	}
}

func TestAuthService_UpdateProfile_EmployerIgnoresSeekerFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour, discardLogger)
	registered, _ := svc.Register(context.Background(), employerInput())

	resume := "should-not-land"
	company := "Acme Corp India"
	updated, err := svc.UpdateProfile(context.Background(), registered.ID, ports.UpdateProfileInput{
		Company: &company,
		Resume:  &resume,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Employer.Company != "Acme Corp India" {
		t.Errorf("company not updated: %q", updated.Employer.Company)
	}
	if updated.Seeker != nil {
		t.Error("employer must not grow a seeker profile")
	}
}

func TestAuthService_UpdateProfile_UserNotFound(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), nil, "secret", time.Hour, discardLogger)
	_, err := svc.UpdateProfile(context.Background(), "missing", ports.UpdateProfileInput{})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// ChangePassword tests
// ---------------------------------------------------------------------------

func TestAuthService_ChangePassword_Success(t *testing.T) {
	repo := newStubUserRepo()
	revoker := &stubRevoker{}
	svc := NewAuthService(repo, revoker, "secret", time.Hour, discardLogger)
	registered, _ := svc.Register(context.Background(), seekerInput())

	if err := svc.ChangePassword(context.Background(), registered.ID, "secret123", "newpass456"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Old password stops working, new one works.
	if _, _, err := svc.Login(context.Background(), "asha@example.com", "secret123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("old password must be rejected, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "asha@example.com", "newpass456"); err != nil {
		t.Errorf("new password must work, got %v", err)
	}

	// Outstanding tokens are revoked.
	if len(revoker.calls) != 1 || revoker.calls[0] != registered.ID {
		t.Errorf("expected one revocation for %q, got %v", registered.ID, revoker.calls)
	}
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour, discardLogger)
	registered, _ := svc.Register(context.Background(), seekerInput())

	err := svc.ChangePassword(context.Background(), registered.ID, "not-the-password", "newpass456")
	if !errors.Is(err, domain.ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword, got %v", err)
	}
}

func TestAuthService_ChangePassword_WeakNew(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour, discardLogger)
	registered, _ := svc.Register(context.Background(), seekerInput())

	err := svc.ChangePassword(context.Background(), registered.ID, "secret123", "tiny")
	if !errors.Is(err, domain.ErrWeakPassword) {
		t.Errorf("expected ErrWeakPassword, got %v", err)
	}
}

func TestAuthService_ChangePassword_RevokerFailureIsNotFatal(t *testing.T) {
	repo := newStubUserRepo()
	revoker := &stubRevoker{err: errors.New("redis down")}
	svc := NewAuthService(repo, revoker, "secret", time.Hour, discardLogger)
	registered, _ := svc.Register(context.Background(), seekerInput())

	if err := svc.ChangePassword(context.Background(), registered.ID, "secret123", "newpass456"); err != nil {
		t.Errorf("revocation failure must not fail the password change, got %v", err)
	}
}
