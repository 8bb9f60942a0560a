package entity

import "time"

// AuditAction represents the kind of mutation an audit entry records.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

// Logical table names recorded in audit entries.
const (
	AuditTableProject     = "Project"
	AuditTableCategory    = "Category"
	AuditTableTransaction = "Transaction"
)

// AuditUserName is the placeholder identity recorded on every entry.
// The system has no multi-user identity.
const AuditUserName = "Admin"

// AuditLog is an immutable record describing a mutation performed on
// another entity. Entries are never updated or deleted directly; they
// are removed only when their project is cascade-deleted.
type AuditLog struct {
	ID        uint
	Timestamp time.Time
	UserName  string
	Action    AuditAction
	TableName string
	RecordID  *uint // nil for bulk/seed operations
	ProjectID uint
	Details   string
}

// NewAuditLog creates a new AuditLog entity. The timestamp is set by
// the persistence layer on insert.
func NewAuditLog(action AuditAction, tableName string, recordID *uint, projectID uint, details string) *AuditLog {
	return &AuditLog{
		UserName:  AuditUserName,
		Action:    action,
		TableName: tableName,
		RecordID:  recordID,
		ProjectID: projectID,
		Details:   details,
	}
}
