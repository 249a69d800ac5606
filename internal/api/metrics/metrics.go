// Package metrics defines and registers all custom Prometheus metrics for the
// client portal. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at package
// init; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (every failure kind collapses to one
//     label value, mirroring the error surfaced to the caller)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// GateRedirectsTotal counts requests the authorization gate turned away.
// Label:
//   - target: "login" (unauthenticated) or "unauthorized" (wrong role)
var GateRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_redirects_total",
		Help:      "Total number of requests redirected by the authorization gate.",
	},
	[]string{"target"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// SyncRunsTotal counts catalog sync executions.
// Label:
//   - result: "ok", "busy" (lock held), or "error"
var SyncRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_runs_total",
		Help:      "Total number of client-assignment sync runs, by result.",
	},
	[]string{"result"},
)

// ── Document metrics ──────────────────────────────────────────────────────────

// DocumentsUploadedTotal counts successful document uploads.
var DocumentsUploadedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_uploaded_total",
		Help:      "Total number of documents uploaded.",
	},
)

// DocumentsDeletedTotal counts document deletions.
// Label:
//   - result: "ok" or "partial" (metadata removed but the blob survived;
//     operators reconcile orphaned blobs from this signal)
var DocumentsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_deleted_total",
		Help:      "Total number of document deletions, by result.",
	},
	[]string{"result"},
)

// SignedURLsIssuedTotal counts presigned download URLs handed out.
var SignedURLsIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signed_urls_issued_total",
		Help:      "Total number of presigned document download URLs issued.",
	},
)
