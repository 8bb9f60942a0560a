package project

import (
	"context"
	"errors"
	"testing"

	"github.com/project-ledger/backend/internal/domain/entity"
	domainerror "github.com/project-ledger/backend/internal/domain/error"
)

func TestDeleteProjectUseCase_RemovesProjectAndAuditTrail(t *testing.T) {
	env := newTestEnv(t)
	createUC := NewCreateProjectUseCase(env.uow, env.projects, env.recorder, entity.DefaultStarterCategories)
	deleteUC := NewDeleteProjectUseCase(env.uow, env.projects, env.recorder)
	ctx := context.Background()

	created, err := createUC.Execute(ctx, CreateProjectInput{Name: "Farm A"})
	if err != nil {
		t.Fatalf("create Execute returned error: %v", err)
	}
	projectID := created.Project.ID

	categories, err := env.categories.FindByProject(ctx, projectID)
	if err != nil {
		t.Fatalf("failed to list categories: %v", err)
	}
	transaction := entity.NewTransaction(entity.TransactionTypeExpense, 150.0, "Seed order", categories[0].ID, projectID)
	if err := env.transactions.Create(ctx, transaction); err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}

	output, err := deleteUC.Execute(ctx, DeleteProjectInput{ProjectID: projectID})
	if err != nil {
		t.Fatalf("delete Execute returned error: %v", err)
	}
	if !output.Success {
		t.Error("expected Success to be true")
	}

	if _, err := env.projects.FindByID(ctx, projectID); !errors.Is(err, domainerror.ErrProjectNotFound) {
		t.Errorf("expected project to be gone, got %v", err)
	}

	remaining, err := env.categories.FindByProject(ctx, projectID)
	if err != nil {
		t.Fatalf("failed to list categories: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("expected categories to be swept away, got %d", len(remaining))
	}

	if _, err := env.transactions.FindByID(ctx, transaction.ID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("expected transaction to be swept away, got %v", err)
	}

	// The cascade removes the audit trail, the deletion entry included.
	logs, err := env.auditLogs.FindByProject(ctx, projectID, 100)
	if err != nil {
		t.Fatalf("failed to list audit logs: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("expected empty audit trail after cascade, got %d entries", len(logs))
	}
}

func TestDeleteProjectUseCase_NotFound(t *testing.T) {
	env := newTestEnv(t)
	uc := NewDeleteProjectUseCase(env.uow, env.projects, env.recorder)

	_, err := uc.Execute(context.Background(), DeleteProjectInput{ProjectID: 42})
	if !errors.Is(err, domainerror.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestListProjectsUseCase(t *testing.T) {
	env := newTestEnv(t)
	createUC := NewCreateProjectUseCase(env.uow, env.projects, env.recorder, nil)
	listUC := NewListProjectsUseCase(env.projects)
	ctx := context.Background()

	for _, name := range []string{"Orchard", "Apiary"} {
		if _, err := createUC.Execute(ctx, CreateProjectInput{Name: name}); err != nil {
			t.Fatalf("create Execute returned error: %v", err)
		}
	}

	output, err := listUC.Execute(ctx)
	if err != nil {
		t.Fatalf("list Execute returned error: %v", err)
	}
	if len(output.Projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(output.Projects))
	}
	if output.Projects[0].Name != "Apiary" || output.Projects[1].Name != "Orchard" {
		t.Errorf("expected alphabetical order, got %q then %q", output.Projects[0].Name, output.Projects[1].Name)
	}
}
