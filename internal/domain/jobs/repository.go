package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Stats aggregates job counts for the monitoring dashboard
type Stats struct {
	BackgroundTotal      int64 `json:"background_total"`
	BackgroundPending    int64 `json:"background_pending"`
	BackgroundProcessing int64 `json:"background_processing"`
	BackgroundCompleted  int64 `json:"background_completed"`
	BackgroundFailed     int64 `json:"background_failed"`
	WorkflowTotal        int64 `json:"workflow_total"`
	WorkflowPending      int64 `json:"workflow_pending"`
	WorkflowRunning      int64 `json:"workflow_running"`
	WorkflowCompleted    int64 `json:"workflow_completed"`
	WorkflowFailed       int64 `json:"workflow_failed"`
}

// BackgroundJobRepository defines read access to background jobs
type BackgroundJobRepository interface {
	// FindByID finds a background job by its ID
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*BackgroundJob, error)

	// FindVisible returns unfinished jobs plus jobs finished after the cutoff
	FindVisible(ctx context.Context, tenantID uuid.UUID, finishedAfter time.Time) ([]BackgroundJob, error)

	// CountByStatus returns job counts grouped by status
	CountByStatus(ctx context.Context, tenantID uuid.UUID) (map[BackgroundJobStatus]int64, error)

	// Save creates or updates a job (used by tests and the event consumer)
	Save(ctx context.Context, job *BackgroundJob) error
}

// WorkflowJobRepository defines read access to workflow jobs
type WorkflowJobRepository interface {
	// FindByID finds a workflow job by its ID
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*WorkflowJob, error)

	// FindVisible returns unfinished jobs plus jobs finished after the cutoff
	FindVisible(ctx context.Context, tenantID uuid.UUID, finishedAfter time.Time) ([]WorkflowJob, error)

	// CountByStatus returns job counts grouped by status
	CountByStatus(ctx context.Context, tenantID uuid.UUID) (map[WorkflowJobStatus]int64, error)

	// Save creates or updates a job (used by tests and the event consumer)
	Save(ctx context.Context, job *WorkflowJob) error
}
