package model

import (
	"time"

	"github.com/project-ledger/backend/internal/domain/entity"
)

// AuditLogModel represents the audit_logs table in the database.
// Rows are append-only and only ever removed by a project cascade.
type AuditLogModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Timestamp time.Time `gorm:"not null;autoCreateTime;index"`
	UserName  string    `gorm:"type:varchar(50);not null;default:Admin"`
	Action    string    `gorm:"type:varchar(10);not null"`
	Entity    string    `gorm:"column:table_name;type:varchar(50);not null"`
	RecordID  *uint
	ProjectID uint   `gorm:"not null;index"`
	Details   string `gorm:"type:text"`
}

// TableName returns the table name for the AuditLogModel.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}

// ToEntity converts an AuditLogModel to a domain AuditLog entity.
func (m *AuditLogModel) ToEntity() *entity.AuditLog {
	return &entity.AuditLog{
		ID:        m.ID,
		Timestamp: m.Timestamp,
		UserName:  m.UserName,
		Action:    entity.AuditAction(m.Action),
		TableName: m.Entity,
		RecordID:  m.RecordID,
		ProjectID: m.ProjectID,
		Details:   m.Details,
	}
}

// AuditLogFromEntity creates an AuditLogModel from a domain AuditLog entity.
func AuditLogFromEntity(log *entity.AuditLog) *AuditLogModel {
	return &AuditLogModel{
		ID:        log.ID,
		Timestamp: log.Timestamp,
		UserName:  log.UserName,
		Action:    string(log.Action),
		Entity:    log.TableName,
		RecordID:  log.RecordID,
		ProjectID: log.ProjectID,
		Details:   log.Details,
	}
}
