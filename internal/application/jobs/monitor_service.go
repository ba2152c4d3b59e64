package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mdm/backend/internal/domain/jobs"
)

// MonitorService serves the job monitoring dashboard. Jobs are executed
// by external runners; this service only reads their progress.
type MonitorService struct {
	backgroundRepo jobs.BackgroundJobRepository
	workflowRepo   jobs.WorkflowJobRepository
	now            func() time.Time
}

// NewMonitorService creates a new MonitorService
func NewMonitorService(backgroundRepo jobs.BackgroundJobRepository, workflowRepo jobs.WorkflowJobRepository) *MonitorService {
	return &MonitorService{
		backgroundRepo: backgroundRepo,
		workflowRepo:   workflowRepo,
		now:            time.Now,
	}
}

// ListBackground returns unfinished background jobs plus jobs that
// finished inside the requested visibility window.
func (s *MonitorService) ListBackground(ctx context.Context, tenantID uuid.UUID, window string) ([]BackgroundJobResponse, error) {
	cutoff := s.now().Add(-jobs.ParseVisibilityWindow(window).Duration())

	found, err := s.backgroundRepo.FindVisible(ctx, tenantID, cutoff)
	if err != nil {
		return nil, err
	}

	responses := make([]BackgroundJobResponse, len(found))
	for i := range found {
		responses[i] = ToBackgroundJobResponse(&found[i])
	}
	return responses, nil
}

// ListWorkflows returns unfinished workflow jobs plus those finished
// within the short trailing window. Workflows are interactive, so the
// window is fixed rather than caller selected.
func (s *MonitorService) ListWorkflows(ctx context.Context, tenantID uuid.UUID) ([]WorkflowJobResponse, error) {
	cutoff := s.now().Add(-jobs.WorkflowFinishedVisibility)

	found, err := s.workflowRepo.FindVisible(ctx, tenantID, cutoff)
	if err != nil {
		return nil, err
	}

	responses := make([]WorkflowJobResponse, len(found))
	for i := range found {
		responses[i] = ToWorkflowJobResponse(&found[i])
	}
	return responses, nil
}

// Stats returns merged background and workflow job counts by status
func (s *MonitorService) Stats(ctx context.Context, tenantID uuid.UUID) (*jobs.Stats, error) {
	background, err := s.backgroundRepo.CountByStatus(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	workflow, err := s.workflowRepo.CountByStatus(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	stats := &jobs.Stats{
		BackgroundPending:    background[jobs.BackgroundJobStatusPending],
		BackgroundProcessing: background[jobs.BackgroundJobStatusProcessing],
		BackgroundCompleted:  background[jobs.BackgroundJobStatusCompleted],
		BackgroundFailed:     background[jobs.BackgroundJobStatusFailed],
		WorkflowPending:      workflow[jobs.WorkflowJobStatusPending],
		WorkflowRunning:      workflow[jobs.WorkflowJobStatusRunning],
		WorkflowCompleted:    workflow[jobs.WorkflowJobStatusCompleted],
		WorkflowFailed:       workflow[jobs.WorkflowJobStatusFailed],
	}
	stats.BackgroundTotal = stats.BackgroundPending + stats.BackgroundProcessing + stats.BackgroundCompleted + stats.BackgroundFailed
	stats.WorkflowTotal = stats.WorkflowPending + stats.WorkflowRunning + stats.WorkflowCompleted + stats.WorkflowFailed
	return stats, nil
}
