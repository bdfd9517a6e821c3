// Package metrics defines and registers all custom Prometheus metrics for the
// job board API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at init via
// promauto; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobboard"

// UsersRegisteredTotal counts successful registrations.
// Label:
//   - role: "employer" or "job_seeker"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// JobsCreatedTotal counts newly created postings.
// Label:
//   - category: the posting's category (e.g. "Software Development")
var JobsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of job postings created, by category.",
	},
	[]string{"category"},
)

// ApplicationsSubmittedTotal counts accepted application submissions.
var ApplicationsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_submitted_total",
		Help:      "Total number of applications submitted successfully.",
	},
)

// ApplicationErrorsTotal counts rejected application submissions.
// Label:
//   - reason: "job_not_found", "job_not_active", "duplicate" or "wrong_role"
var ApplicationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "application_errors_total",
		Help:      "Total number of application submissions rejected, by reason.",
	},
	[]string{"reason"},
)

// ApplicationStatusUpdatesTotal counts review-status transitions.
// Label:
//   - status: the new status ("pending", "reviewed", "accepted", "rejected")
var ApplicationStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "application_status_updates_total",
		Help:      "Total number of application status updates, by new status.",
	},
	[]string{"status"},
)
