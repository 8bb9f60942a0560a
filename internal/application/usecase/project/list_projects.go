// Package project contains project-related use cases.
package project

import (
	"context"
	"fmt"

	"github.com/project-ledger/backend/internal/application/adapter"
	"github.com/project-ledger/backend/internal/domain/entity"
)

// ListProjectsOutput represents the output of project listing.
type ListProjectsOutput struct {
	Projects []*entity.Project
}

// ListProjectsUseCase handles project listing logic.
type ListProjectsUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewListProjectsUseCase creates a new ListProjectsUseCase instance.
func NewListProjectsUseCase(projectRepo adapter.ProjectRepository) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
	}
}

// Execute retrieves all projects ordered by name.
func (uc *ListProjectsUseCase) Execute(ctx context.Context) (*ListProjectsOutput, error) {
	projects, err := uc.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return &ListProjectsOutput{
		Projects: projects,
	}, nil
}
