package dto

import (
	"time"

	"github.com/project-ledger/backend/internal/domain/entity"
)

// AuditLogResponse represents a single audit log entry in API responses.
type AuditLogResponse struct {
	ID        uint      `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	UserName  string    `json:"user_name"`
	Action    string    `json:"action"`
	TableName string    `json:"table_name"`
	RecordID  *uint     `json:"record_id"`
	Details   string    `json:"details"`
}

// ToAuditLogResponse converts a domain AuditLog entity to an AuditLogResponse DTO.
func ToAuditLogResponse(log *entity.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:        log.ID,
		Timestamp: log.Timestamp,
		UserName:  log.UserName,
		Action:    string(log.Action),
		TableName: log.TableName,
		RecordID:  log.RecordID,
		Details:   log.Details,
	}
}

// ToAuditLogListResponse converts a list of audit logs to response DTOs.
func ToAuditLogListResponse(logs []*entity.AuditLog) []AuditLogResponse {
	responses := make([]AuditLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = ToAuditLogResponse(log)
	}
	return responses
}
