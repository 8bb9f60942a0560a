package dto

import (
	"github.com/project-ledger/backend/internal/domain/entity"
)

// CreateProjectRequest represents the request body for project creation.
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateProjectRequest represents the request body for project update.
type UpdateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// ProjectResponse represents a single project in API responses.
type ProjectResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProjectMessageResponse wraps a project together with a confirmation
// message for mutating endpoints.
type ProjectMessageResponse struct {
	Message string          `json:"message"`
	Project ProjectResponse `json:"project"`
}

// ToProjectResponse converts a domain Project entity to a ProjectResponse DTO.
func ToProjectResponse(project *entity.Project) ProjectResponse {
	description := project.Description
	if description == "" {
		description = entity.DefaultProjectDescription
	}
	return ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: description,
	}
}

// ToProjectListResponse converts a list of projects to response DTOs.
func ToProjectListResponse(projects []*entity.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = ToProjectResponse(project)
	}
	return responses
}
