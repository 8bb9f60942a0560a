// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/project-ledger/backend/internal/application/adapter"
	"github.com/project-ledger/backend/internal/domain/entity"
	domainerror "github.com/project-ledger/backend/internal/domain/error"
	"github.com/project-ledger/backend/internal/integration/persistence/model"
)

// projectRepository implements the adapter.ProjectRepository interface.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance.
func NewProjectRepository(db *gorm.DB) adapter.ProjectRepository {
	return &projectRepository{
		db: db,
	}
}

// Create creates a new project in the database and assigns its ID.
func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectModel := model.ProjectFromEntity(project)
	result := r.db.WithContext(ctx).Create(projectModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrProjectNameExists
		}
		return result.Error
	}
	project.ID = projectModel.ID
	return nil
}

// FindByID retrieves a project by its ID.
func (r *projectRepository) FindByID(ctx context.Context, id uint) (*entity.Project, error) {
	var projectModel model.ProjectModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&projectModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProjectNotFound
		}
		return nil, result.Error
	}
	return projectModel.ToEntity(), nil
}

// FindAll retrieves all projects ordered by name ascending.
func (r *projectRepository) FindAll(ctx context.Context) ([]*entity.Project, error) {
	var projectModels []model.ProjectModel
	result := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&projectModels)
	if result.Error != nil {
		return nil, result.Error
	}

	projects := make([]*entity.Project, len(projectModels))
	for i, pm := range projectModels {
		projects[i] = pm.ToEntity()
	}
	return projects, nil
}

// ExistsByName checks if a project with the given name exists.
func (r *projectRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Where("name = ?", name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing project in the database.
func (r *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	projectModel := model.ProjectFromEntity(project)
	result := r.db.WithContext(ctx).Save(projectModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrProjectNameExists
		}
		return result.Error
	}
	return nil
}

// Delete removes a project together with everything it owns. Children
// go first so the delete also works on stores without enforced foreign
// keys.
func (r *projectRepository) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("project_id = ?", id).Delete(&model.TransactionModel{}).Error; err != nil {
		return err
	}
	if err := db.Where("project_id = ?", id).Delete(&model.CategoryModel{}).Error; err != nil {
		return err
	}
	if err := db.Where("project_id = ?", id).Delete(&model.AuditLogModel{}).Error; err != nil {
		return err
	}
	return db.Delete(&model.ProjectModel{}, "id = ?", id).Error
}
