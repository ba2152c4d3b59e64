package jobs

import (
	"time"

	"github.com/google/uuid"

	"github.com/mdm/backend/internal/domain/jobs"
)

// BackgroundJobResponse represents a background job in API responses
type BackgroundJobResponse struct {
	ID             uuid.UUID  `json:"id"`
	JobType        string     `json:"job_type"`
	Status         string     `json:"status"`
	TotalItems     int        `json:"total_items"`
	ProcessedItems int        `json:"processed_items"`
	FailedItems    int        `json:"failed_items"`
	RetryCount     int        `json:"retry_count"`
	MaxRetries     int        `json:"max_retries"`
	Progress       int        `json:"progress"`
	ErrorMessage   string     `json:"error_message,omitempty"`
	StartedAt      *time.Time `json:"started_at"`
	FinishedAt     *time.Time `json:"finished_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

// WorkflowJobResponse represents a workflow job in API responses
type WorkflowJobResponse struct {
	ID           uuid.UUID  `json:"id"`
	WorkflowName string     `json:"workflow_name"`
	Status       string     `json:"status"`
	CurrentStep  int        `json:"current_step"`
	TotalSteps   int        `json:"total_steps"`
	Progress     int        `json:"progress"`
	ErrorMessage string     `json:"error_message,omitempty"`
	StartedAt    *time.Time `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ToBackgroundJobResponse converts a domain BackgroundJob to its response
func ToBackgroundJobResponse(j *jobs.BackgroundJob) BackgroundJobResponse {
	return BackgroundJobResponse{
		ID:             j.ID,
		JobType:        j.JobType,
		Status:         string(j.Status),
		TotalItems:     j.TotalItems,
		ProcessedItems: j.ProcessedItems,
		FailedItems:    j.FailedItems,
		RetryCount:     j.RetryCount,
		MaxRetries:     j.MaxRetries,
		Progress:       j.ProgressPercentage(),
		ErrorMessage:   j.ErrorMessage,
		StartedAt:      j.StartedAt,
		FinishedAt:     j.FinishedAt,
		CreatedAt:      j.CreatedAt,
	}
}

// ToWorkflowJobResponse converts a domain WorkflowJob to its response
func ToWorkflowJobResponse(j *jobs.WorkflowJob) WorkflowJobResponse {
	return WorkflowJobResponse{
		ID:           j.ID,
		WorkflowName: j.WorkflowName,
		Status:       string(j.Status),
		CurrentStep:  j.CurrentStep,
		TotalSteps:   j.TotalSteps,
		Progress:     j.ProgressPct,
		ErrorMessage: j.ErrorMessage,
		StartedAt:    j.StartedAt,
		FinishedAt:   j.FinishedAt,
		CreatedAt:    j.CreatedAt,
	}
}
