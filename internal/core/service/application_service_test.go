package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/bangalorejobs/job-board/internal/core/domain"
	"github.com/bangalorejobs/job-board/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubAppRepo struct {
	byID   map[string]*domain.Application
	nextID int
	// pairTaken simulates the unique (job, applicant) index for races where
	// the read-before-write check passed on both sides.
	forceDuplicateOnCreate bool
}

func newStubAppRepo() *stubAppRepo {
	return &stubAppRepo{byID: make(map[string]*domain.Application)}
}

func (r *stubAppRepo) Create(_ context.Context, app *domain.Application) (*domain.Application, error) {
	if r.forceDuplicateOnCreate {
		return nil, domain.ErrDuplicateApplication
	}
	for _, existing := range r.byID {
		if existing.JobID == app.JobID && existing.ApplicantID == app.ApplicantID {
			return nil, domain.ErrDuplicateApplication
		}
	}
	r.nextID++
	clone := *app
	clone.ID = fmt.Sprintf("app_%d", r.nextID)
	stored := clone
	r.byID[clone.ID] = &stored
	return &clone, nil
}

func (r *stubAppRepo) FindByID(_ context.Context, id string) (*domain.Application, error) {
	app, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	clone := *app
	return &clone, nil
}

func (r *stubAppRepo) FindByJobAndApplicant(_ context.Context, jobID, applicantID string) (*domain.Application, error) {
	for _, app := range r.byID {
		if app.JobID == jobID && app.ApplicantID == applicantID {
			clone := *app
			return &clone, nil
		}
	}
	return nil, domain.ErrApplicationNotFound
}

func (r *stubAppRepo) ListByApplicant(_ context.Context, applicantID string) ([]*domain.Application, error) {
	var out []*domain.Application
	for _, app := range r.byID {
		if app.ApplicantID == applicantID {
			clone := *app
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AppliedDate.After(out[j].AppliedDate)
	})
	return out, nil
}

func (r *stubAppRepo) ListByJob(_ context.Context, jobID string) ([]*domain.Application, error) {
	var out []*domain.Application
	for _, app := range r.byID {
		if app.JobID == jobID {
			clone := *app
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AppliedDate.After(out[j].AppliedDate)
	})
	return out, nil
}

func (r *stubAppRepo) UpdateStatus(_ context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	app, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	app.Status = status
	app.UpdatedDate = time.Now().UTC()
	clone := *app
	return &clone, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newAppFixture(t *testing.T) (*stubAppRepo, *stubJobRepo, *ApplicationService, *domain.Job) {
	t.Helper()
	apps := newStubAppRepo()
	jobs := newStubJobRepo()
	svc := NewApplicationService(apps, jobs, discardLogger)

	job, err := jobs.Create(context.Background(), &domain.Job{
		Title:      "Backend Engineer",
		Company:    "Acme Corp",
		EmployerID: "emp_1",
		Status:     domain.JobStatusActive,
		PostedDate: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return apps, jobs, svc, job
}

func applyInput(jobID string) ports.ApplyInput {
	return ports.ApplyInput{
		ApplicantID: "seeker_1",
		Role:        "job_seeker",
		JobID:       jobID,
		CoverLetter: "I would like to apply.",
		Resume:      "https://example.com/cv.pdf",
	}
}

// ---------------------------------------------------------------------------
// Apply tests
// ---------------------------------------------------------------------------

func TestApplicationService_Apply_Success(t *testing.T) {
	apps, _, svc, job := newAppFixture(t)

	app, err := svc.Apply(context.Background(), applyInput(job.ID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Status != domain.ApplicationPending {
		t.Errorf("new applications must start pending, got %q", app.Status)
	}
	if app.AppliedDate.IsZero() || !app.UpdatedDate.Equal(app.AppliedDate) {
		t.Errorf("applied/updated dates must be set and equal on creation: %v / %v", app.AppliedDate, app.UpdatedDate)
	}
	if len(apps.byID) != 1 {
		t.Errorf("expected 1 stored application, got %d", len(apps.byID))
	}
}

func TestApplicationService_Apply_JobNotFound(t *testing.T) {
	_, _, svc, _ := newAppFixture(t)

	_, err := svc.Apply(context.Background(), applyInput("missing"))
	if !errors.Is(err, domain.ErrJobNotFound) {
		t.Errorf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApplicationService_Apply_JobClosed(t *testing.T) {
	_, jobs, svc, job := newAppFixture(t)

	job.Status = domain.JobStatusClosed
	if _, err := jobs.Update(context.Background(), job); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Apply(context.Background(), applyInput(job.ID))
	if !errors.Is(err, domain.ErrJobNotActive) {
		t.Errorf("expected ErrJobNotActive, got %v", err)
	}
}

func TestApplicationService_Apply_Duplicate(t *testing.T) {
	apps, _, svc, job := newAppFixture(t)

	if _, err := svc.Apply(context.Background(), applyInput(job.ID)); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	_, err := svc.Apply(context.Background(), applyInput(job.ID))
	if !errors.Is(err, domain.ErrDuplicateApplication) {
		t.Errorf("expected ErrDuplicateApplication, got %v", err)
	}
	if len(apps.byID) != 1 {
		t.Errorf("expected a single stored application, got %d", len(apps.byID))
	}
}

func TestApplicationService_Apply_DuplicateRaceAtInsert(t *testing.T) {
	apps, _, svc, job := newAppFixture(t)

	// The pre-check saw nothing but the unique index rejects the insert, as
	// happens when two submissions race.
	apps.forceDuplicateOnCreate = true

	_, err := svc.Apply(context.Background(), applyInput(job.ID))
	if !errors.Is(err, domain.ErrDuplicateApplication) {
		t.Errorf("expected ErrDuplicateApplication from the index, got %v", err)
	}
}

func TestApplicationService_Apply_WrongRole(t *testing.T) {
	_, _, svc, job := newAppFixture(t)

	in := applyInput(job.ID)
	in.Role = "employer"
	_, err := svc.Apply(context.Background(), in)
	if !errors.Is(err, domain.ErrWrongRole) {
		t.Errorf("expected ErrWrongRole, got %v", err)
	}
}

// Closed job wins over duplicate: the checks run in a fixed order.
func TestApplicationService_Apply_CheckOrder(t *testing.T) {
	_, jobs, svc, job := newAppFixture(t)

	if _, err := svc.Apply(context.Background(), applyInput(job.ID)); err != nil {
		t.Fatalf("seed apply failed: %v", err)
	}
	job.Status = domain.JobStatusClosed
	if _, err := jobs.Update(context.Background(), job); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Apply(context.Background(), applyInput(job.ID))
	if !errors.Is(err, domain.ErrJobNotActive) {
		t.Errorf("not-active must be reported before duplicate, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// UpdateStatus tests
// ---------------------------------------------------------------------------

func TestApplicationService_UpdateStatus_Success(t *testing.T) {
	_, _, svc, job := newAppFixture(t)
	created, _ := svc.Apply(context.Background(), applyInput(job.ID))

	updated, err := svc.UpdateStatus(context.Background(), "emp_1", created.ID, "reviewed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.ApplicationReviewed {
		t.Errorf("expected reviewed, got %q", updated.Status)
	}
	if !updated.UpdatedDate.After(created.UpdatedDate) {
		t.Error("updated_date must be refreshed on status change")
	}
}

func TestApplicationService_UpdateStatus_AllTransitionsAllowed(t *testing.T) {
	_, _, svc, job := newAppFixture(t)
	created, _ := svc.Apply(context.Background(), applyInput(job.ID))

	// accepted and rejected are not terminal.
	for _, status := range []string{"accepted", "rejected", "pending", "reviewed"} {
		if _, err := svc.UpdateStatus(context.Background(), "emp_1", created.ID, status); err != nil {
			t.Errorf("transition to %q failed: %v", status, err)
		}
	}
}

func TestApplicationService_UpdateStatus_InvalidStatus(t *testing.T) {
	_, _, svc, job := newAppFixture(t)
	created, _ := svc.Apply(context.Background(), applyInput(job.ID))

	_, err := svc.UpdateStatus(context.Background(), "emp_1", created.ID, "archived")
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestApplicationService_UpdateStatus_NotOwner(t *testing.T) {
	apps, _, svc, job := newAppFixture(t)
	created, _ := svc.Apply(context.Background(), applyInput(job.ID))

	_, err := svc.UpdateStatus(context.Background(), "emp_2", created.ID, "accepted")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if apps.byID[created.ID].Status != domain.ApplicationPending {
		t.Error("status must not change on a forbidden update")
	}
}

func TestApplicationService_UpdateStatus_NotFound(t *testing.T) {
	_, _, svc, _ := newAppFixture(t)

	_, err := svc.UpdateStatus(context.Background(), "emp_1", "missing", "accepted")
	if !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Errorf("expected ErrApplicationNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Listing and visibility tests
// ---------------------------------------------------------------------------

func TestApplicationService_MyApplications(t *testing.T) {
	_, jobs, svc, job := newAppFixture(t)

	other, _ := jobs.Create(context.Background(), &domain.Job{
		Title: "Data Scientist", EmployerID: "emp_1",
		Status: domain.JobStatusActive, PostedDate: time.Now().UTC(),
	})

	if _, err := svc.Apply(context.Background(), applyInput(job.ID)); err != nil {
		t.Fatal(err)
	}
	in := applyInput(other.ID)
	if _, err := svc.Apply(context.Background(), in); err != nil {
		t.Fatal(err)
	}
	someoneElse := applyInput(job.ID)
	someoneElse.ApplicantID = "seeker_2"
	if _, err := svc.Apply(context.Background(), someoneElse); err != nil {
		t.Fatal(err)
	}

	mine, err := svc.MyApplications(context.Background(), "seeker_1")
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 2 {
		t.Errorf("expected 2 own applications, got %d", len(mine))
	}
}

func TestApplicationService_ApplicationsForJob_OwnerOnly(t *testing.T) {
	_, _, svc, job := newAppFixture(t)
	if _, err := svc.Apply(context.Background(), applyInput(job.ID)); err != nil {
		t.Fatal(err)
	}

	list, err := svc.ApplicationsForJob(context.Background(), "emp_1", job.ID)
	if err != nil {
		t.Fatalf("owner must see applications: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected 1 application, got %d", len(list))
	}

	if _, err := svc.ApplicationsForJob(context.Background(), "emp_2", job.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden for non-owner, got %v", err)
	}
}

func TestApplicationService_Get_Visibility(t *testing.T) {
	_, _, svc, job := newAppFixture(t)
	created, _ := svc.Apply(context.Background(), applyInput(job.ID))

	if _, err := svc.Get(context.Background(), "seeker_1", created.ID); err != nil {
		t.Errorf("applicant must see own application: %v", err)
	}
	if _, err := svc.Get(context.Background(), "emp_1", created.ID); err != nil {
		t.Errorf("owning employer must see the application: %v", err)
	}
	if _, err := svc.Get(context.Background(), "seeker_2", created.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("stranger must get ErrForbidden, got %v", err)
	}
}
