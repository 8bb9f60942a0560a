package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/project-ledger/backend/internal/integration/entrypoint/dto"
)

// parseIDParam parses a numeric URL parameter. On failure it writes a
// 400 response and returns false.
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Invalid " + name + " format",
		})
		return 0, false
	}
	return uint(id), true
}
