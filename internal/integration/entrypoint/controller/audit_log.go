package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	auditlog "github.com/project-ledger/backend/internal/application/usecase/audit_log"
	"github.com/project-ledger/backend/internal/integration/entrypoint/dto"
)

// AuditLogController handles audit log endpoints.
type AuditLogController struct {
	listUseCase *auditlog.ListAuditLogsUseCase
}

// NewAuditLogController creates a new audit log controller instance.
func NewAuditLogController(listUseCase *auditlog.ListAuditLogsUseCase) *AuditLogController {
	return &AuditLogController{
		listUseCase: listUseCase,
	}
}

// List handles GET /api/projects/:id/logs requests.
func (c *AuditLogController) List(ctx *gin.Context) {
	projectID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), auditlog.ListAuditLogsInput{
		ProjectID: projectID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAuditLogListResponse(output.Logs))
}
