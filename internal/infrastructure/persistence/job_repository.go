package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mdm/backend/internal/domain/jobs"
	"github.com/mdm/backend/internal/domain/shared"
)

// GormBackgroundJobRepository implements BackgroundJobRepository using GORM
type GormBackgroundJobRepository struct {
	db *gorm.DB
}

// NewGormBackgroundJobRepository creates a new GormBackgroundJobRepository
func NewGormBackgroundJobRepository(db *gorm.DB) *GormBackgroundJobRepository {
	return &GormBackgroundJobRepository{db: db}
}

// FindByID finds a background job by its ID
func (r *GormBackgroundJobRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*jobs.BackgroundJob, error) {
	var job jobs.BackgroundJob
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindVisible returns unfinished jobs plus jobs finished after the cutoff
func (r *GormBackgroundJobRepository) FindVisible(ctx context.Context, tenantID uuid.UUID, finishedAfter time.Time) ([]jobs.BackgroundJob, error) {
	var list []jobs.BackgroundJob
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Where("finished_at IS NULL OR finished_at > ?", finishedAfter).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// CountByStatus returns job counts grouped by status
func (r *GormBackgroundJobRepository) CountByStatus(ctx context.Context, tenantID uuid.UUID) (map[jobs.BackgroundJobStatus]int64, error) {
	var rows []struct {
		Status jobs.BackgroundJobStatus
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&jobs.BackgroundJob{}).
		Select("status, count(*) as count").
		Where("tenant_id = ?", tenantID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[jobs.BackgroundJobStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// Save creates or updates a job
func (r *GormBackgroundJobRepository) Save(ctx context.Context, job *jobs.BackgroundJob) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// GormWorkflowJobRepository implements WorkflowJobRepository using GORM
type GormWorkflowJobRepository struct {
	db *gorm.DB
}

// NewGormWorkflowJobRepository creates a new GormWorkflowJobRepository
func NewGormWorkflowJobRepository(db *gorm.DB) *GormWorkflowJobRepository {
	return &GormWorkflowJobRepository{db: db}
}

// FindByID finds a workflow job by its ID
func (r *GormWorkflowJobRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*jobs.WorkflowJob, error) {
	var job jobs.WorkflowJob
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindVisible returns unfinished jobs plus jobs finished after the cutoff
func (r *GormWorkflowJobRepository) FindVisible(ctx context.Context, tenantID uuid.UUID, finishedAfter time.Time) ([]jobs.WorkflowJob, error) {
	var list []jobs.WorkflowJob
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Where("finished_at IS NULL OR finished_at > ?", finishedAfter).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// CountByStatus returns job counts grouped by status
func (r *GormWorkflowJobRepository) CountByStatus(ctx context.Context, tenantID uuid.UUID) (map[jobs.WorkflowJobStatus]int64, error) {
	var rows []struct {
		Status jobs.WorkflowJobStatus
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&jobs.WorkflowJob{}).
		Select("status, count(*) as count").
		Where("tenant_id = ?", tenantID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[jobs.WorkflowJobStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// Save creates or updates a job
func (r *GormWorkflowJobRepository) Save(ctx context.Context, job *jobs.WorkflowJob) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// Ensure the repositories implement their interfaces
var (
	_ jobs.BackgroundJobRepository = (*GormBackgroundJobRepository)(nil)
	_ jobs.WorkflowJobRepository   = (*GormWorkflowJobRepository)(nil)
)
