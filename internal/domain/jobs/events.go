package jobs

import (
	"github.com/google/uuid"

	"github.com/mdm/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeBackgroundJob = "BackgroundJob"

// Event type constants
const (
	EventTypeJobCompleted = "JobCompleted"
)

// JobCompletedEvent is written to the outbox when a background job reaches a
// terminal status. The job runner inserts it alongside the status update so
// stream consumers learn about completion without polling.
type JobCompletedEvent struct {
	shared.BaseDomainEvent
	JobID          uuid.UUID `json:"job_id"`
	JobType        string    `json:"job_type"`
	Status         string    `json:"status"`
	ProcessedItems int       `json:"processed_items"`
	FailedItems    int       `json:"failed_items"`
}

// NewJobCompletedEvent creates a new JobCompletedEvent
func NewJobCompletedEvent(job *BackgroundJob) *JobCompletedEvent {
	return &JobCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeJobCompleted, AggregateTypeBackgroundJob, job.ID, job.TenantID),
		JobID:           job.ID,
		JobType:         job.JobType,
		Status:          string(job.Status),
		ProcessedItems:  job.ProcessedItems,
		FailedItems:     job.FailedItems,
	}
}
