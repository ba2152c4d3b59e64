package jobs

import (
	"time"

	"github.com/google/uuid"

	"github.com/mdm/backend/internal/domain/shared"
)

// BackgroundJobStatus represents the state of a background job
type BackgroundJobStatus string

const (
	BackgroundJobStatusPending    BackgroundJobStatus = "pending"
	BackgroundJobStatusProcessing BackgroundJobStatus = "processing"
	BackgroundJobStatusCompleted  BackgroundJobStatus = "completed"
	BackgroundJobStatusFailed     BackgroundJobStatus = "failed"
)

// WorkflowJobStatus represents the state of a workflow job
type WorkflowJobStatus string

const (
	WorkflowJobStatusPending   WorkflowJobStatus = "pending"
	WorkflowJobStatusRunning   WorkflowJobStatus = "running"
	WorkflowJobStatusCompleted WorkflowJobStatus = "completed"
	WorkflowJobStatusFailed    WorkflowJobStatus = "failed"
)

// WorkflowFinishedVisibility is how long finished workflow jobs stay in
// the monitoring feed.
const WorkflowFinishedVisibility = 2 * time.Minute

// BackgroundJob is a long-running bulk operation executed by an external
// runner. This service reads and exposes its progress.
type BackgroundJob struct {
	shared.BaseEntity
	TenantID       uuid.UUID           `gorm:"type:uuid;not null;index"`
	JobType        string              `gorm:"type:varchar(100);not null"`
	Status         BackgroundJobStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	TotalItems     int                 `gorm:"not null;default:0"`
	ProcessedItems int                 `gorm:"not null;default:0"`
	FailedItems    int                 `gorm:"not null;default:0"`
	RetryCount     int                 `gorm:"not null;default:0"`
	MaxRetries     int                 `gorm:"not null;default:3"`
	ErrorMessage   string              `gorm:"type:text"`
	StartedAt      *time.Time          `gorm:""`
	FinishedAt     *time.Time          `gorm:"index"`
}

// TableName returns the table name for GORM
func (BackgroundJob) TableName() string {
	return "background_jobs"
}

// IsFinished reports whether the job has reached a terminal status
func (j *BackgroundJob) IsFinished() bool {
	return j.Status == BackgroundJobStatusCompleted || j.Status == BackgroundJobStatusFailed
}

// ProgressPercentage returns completion as 0-100
func (j *BackgroundJob) ProgressPercentage() int {
	if j.TotalItems <= 0 {
		return 0
	}
	return j.ProcessedItems * 100 / j.TotalItems
}

// WorkflowJob is a multi-step orchestration executed by an external
// runner.
type WorkflowJob struct {
	shared.BaseEntity
	TenantID     uuid.UUID         `gorm:"type:uuid;not null;index"`
	WorkflowName string            `gorm:"type:varchar(100);not null"`
	Status       WorkflowJobStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	CurrentStep  int               `gorm:"not null;default:0"`
	TotalSteps   int               `gorm:"not null;default:0"`
	ProgressPct  int               `gorm:"not null;default:0"`
	ErrorMessage string            `gorm:"type:text"`
	StartedAt    *time.Time        `gorm:""`
	FinishedAt   *time.Time        `gorm:"index"`
}

// TableName returns the table name for GORM
func (WorkflowJob) TableName() string {
	return "workflow_jobs"
}

// IsFinished reports whether the workflow has reached a terminal status
func (j *WorkflowJob) IsFinished() bool {
	return j.Status == WorkflowJobStatusCompleted || j.Status == WorkflowJobStatusFailed
}

// VisibilityWindow is the trailing period finished background jobs remain
// visible in the monitoring feed.
type VisibilityWindow string

const (
	WindowHour  VisibilityWindow = "1h"
	WindowDay   VisibilityWindow = "24h"
	WindowWeek  VisibilityWindow = "7d"
	WindowMonth VisibilityWindow = "30d"
)

// DefaultVisibilityWindow applies when no window is requested
const DefaultVisibilityWindow = WindowDay

// Duration returns the window length. Unknown values fall back to the
// default window.
func (w VisibilityWindow) Duration() time.Duration {
	switch w {
	case WindowHour:
		return time.Hour
	case WindowDay:
		return 24 * time.Hour
	case WindowWeek:
		return 7 * 24 * time.Hour
	case WindowMonth:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// ParseVisibilityWindow maps a query value to a window, defaulting on
// empty or unknown input.
func ParseVisibilityWindow(s string) VisibilityWindow {
	switch VisibilityWindow(s) {
	case WindowHour, WindowDay, WindowWeek, WindowMonth:
		return VisibilityWindow(s)
	default:
		return DefaultVisibilityWindow
	}
}
