package model

import (
	"github.com/project-ledger/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
// Category names are unique within a project, not globally.
type CategoryModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(80);not null;uniqueIndex:idx_categories_name_project"`
	Type      string `gorm:"type:varchar(10);not null"`
	ProjectID uint   `gorm:"not null;index;uniqueIndex:idx_categories_name_project"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		Type:      entity.CategoryType(m.Type),
		ProjectID: m.ProjectID,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		Name:      category.Name,
		Type:      string(category.Type),
		ProjectID: category.ProjectID,
	}
}
