// Package model defines database models for persistence layer.
package model

import (
	"github.com/project-ledger/backend/internal/domain/entity"
)

// ProjectModel represents the projects table in the database.
type ProjectModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:varchar(255)"`

	Categories   []CategoryModel    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Transactions []TransactionModel `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	AuditLogs    []AuditLogModel    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the ProjectModel.
func (ProjectModel) TableName() string {
	return "projects"
}

// ToEntity converts a ProjectModel to a domain Project entity.
func (m *ProjectModel) ToEntity() *entity.Project {
	return &entity.Project{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
	}
}

// ProjectFromEntity creates a ProjectModel from a domain Project entity.
func ProjectFromEntity(project *entity.Project) *ProjectModel {
	return &ProjectModel{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
	}
}
