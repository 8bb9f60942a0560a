package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/project-ledger/backend/internal/application/usecase/project"
	domainerror "github.com/project-ledger/backend/internal/domain/error"
	"github.com/project-ledger/backend/internal/integration/entrypoint/dto"
)

// ProjectController handles project endpoints.
type ProjectController struct {
	listUseCase   *project.ListProjectsUseCase
	createUseCase *project.CreateProjectUseCase
	updateUseCase *project.UpdateProjectUseCase
	deleteUseCase *project.DeleteProjectUseCase
}

// NewProjectController creates a new project controller instance.
func NewProjectController(
	listUseCase *project.ListProjectsUseCase,
	createUseCase *project.CreateProjectUseCase,
	updateUseCase *project.UpdateProjectUseCase,
	deleteUseCase *project.DeleteProjectUseCase,
) *ProjectController {
	return &ProjectController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /api/projects requests.
func (c *ProjectController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToProjectListResponse(output.Projects))
}

// Create handles POST /api/projects requests.
func (c *ProjectController) Create(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Project name is required.",
			Code:    string(domainerror.ErrCodeProjectNameRequired),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), project.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ProjectMessageResponse{
		Message: "Project created successfully",
		Project: dto.ToProjectResponse(output.Project),
	})
}

// Update handles PUT /api/projects/:id requests.
func (c *ProjectController) Update(ctx *gin.Context) {
	projectID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Project name is required.",
			Code:    string(domainerror.ErrCodeProjectNameRequired),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), project.UpdateProjectInput{
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProjectMessageResponse{
		Message: "Project updated.",
		Project: dto.ToProjectResponse(output.Project),
	})
}

// Delete handles DELETE /api/projects/:id requests.
func (c *ProjectController) Delete(ctx *gin.Context) {
	projectID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), project.DeleteProjectInput{
		ProjectID: projectID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Project deleted successfully.",
	})
}
