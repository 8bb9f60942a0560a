package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/project-ledger/backend/internal/domain/entity"
)

func TestAuditLogRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuditLogRepository(db)
	ctx := context.Background()

	project := mustCreateProject(t, db, "Farm A")
	recordID := project.ID
	entry := entity.NewAuditLog(entity.AuditActionCreate, entity.AuditTableProject, &recordID, project.ID, "Project 'Farm A' created.")

	if err := repo.Create(ctx, entry); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if entry.ID == 0 {
		t.Error("expected Create to assign an ID")
	}
	if entry.Timestamp.IsZero() {
		t.Error("expected Create to assign a timestamp")
	}
	if entry.UserName != entity.AuditUserName {
		t.Errorf("expected user name %q, got %q", entity.AuditUserName, entry.UserName)
	}
}

func TestAuditLogRepository_FindByProject_NewestFirstWithLimit(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuditLogRepository(db)
	ctx := context.Background()

	project := mustCreateProject(t, db, "Farm A")
	other := mustCreateProject(t, db, "Farm B")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		entry := entity.NewAuditLog(entity.AuditActionCreate, entity.AuditTableTransaction, nil, project.ID, fmt.Sprintf("entry %d", i))
		entry.Timestamp = base.Add(time.Duration(i) * time.Minute)
		if err := repo.Create(ctx, entry); err != nil {
			t.Fatalf("failed to create audit entry: %v", err)
		}
	}
	if err := repo.Create(ctx, entity.NewAuditLog(entity.AuditActionCreate, entity.AuditTableProject, nil, other.ID, "elsewhere")); err != nil {
		t.Fatalf("failed to create audit entry: %v", err)
	}

	logs, err := repo.FindByProject(ctx, project.ID, 2)
	if err != nil {
		t.Fatalf("FindByProject returned error: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected limit of 2 entries, got %d", len(logs))
	}
	if logs[0].Details != "entry 2" || logs[1].Details != "entry 1" {
		t.Errorf("expected newest first, got %q then %q", logs[0].Details, logs[1].Details)
	}
}

func TestAuditLogRepository_FindByProject_TimestampTieBrokenByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuditLogRepository(db)
	ctx := context.Background()

	project := mustCreateProject(t, db, "Farm A")
	stamp := time.Now()
	for _, details := range []string{"first", "second"} {
		entry := entity.NewAuditLog(entity.AuditActionCreate, entity.AuditTableProject, nil, project.ID, details)
		entry.Timestamp = stamp
		if err := repo.Create(ctx, entry); err != nil {
			t.Fatalf("failed to create audit entry: %v", err)
		}
	}

	logs, err := repo.FindByProject(ctx, project.ID, 10)
	if err != nil {
		t.Fatalf("FindByProject returned error: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(logs))
	}
	if logs[0].Details != "second" || logs[1].Details != "first" {
		t.Errorf("expected later insert first on equal timestamps, got %q then %q", logs[0].Details, logs[1].Details)
	}
}
