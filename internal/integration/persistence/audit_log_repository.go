package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/project-ledger/backend/internal/application/adapter"
	"github.com/project-ledger/backend/internal/domain/entity"
	"github.com/project-ledger/backend/internal/integration/persistence/model"
)

// auditLogRepository implements the adapter.AuditLogRepository interface.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository instance.
func NewAuditLogRepository(db *gorm.DB) adapter.AuditLogRepository {
	return &auditLogRepository{
		db: db,
	}
}

// Create appends a new audit log entry.
func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	logModel := model.AuditLogFromEntity(log)
	result := r.db.WithContext(ctx).Create(logModel)
	if result.Error != nil {
		return result.Error
	}
	log.ID = logModel.ID
	log.Timestamp = logModel.Timestamp
	return nil
}

// FindByProject retrieves entries of a project, newest first, capped at limit.
func (r *auditLogRepository) FindByProject(ctx context.Context, projectID uint, limit int) ([]*entity.AuditLog, error) {
	var logModels []model.AuditLogModel
	result := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("timestamp DESC").
		Order("id DESC").
		Limit(limit).
		Find(&logModels)
	if result.Error != nil {
		return nil, result.Error
	}

	logs := make([]*entity.AuditLog, len(logModels))
	for i, lm := range logModels {
		logs[i] = lm.ToEntity()
	}
	return logs, nil
}
