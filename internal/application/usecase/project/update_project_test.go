package project

import (
	"context"
	"errors"
	"testing"

	"github.com/project-ledger/backend/internal/domain/entity"
	domainerror "github.com/project-ledger/backend/internal/domain/error"
)

func TestUpdateProjectUseCase_RecordsBeforeAndAfter(t *testing.T) {
	env := newTestEnv(t)
	createUC := NewCreateProjectUseCase(env.uow, env.projects, env.recorder, nil)
	updateUC := NewUpdateProjectUseCase(env.uow, env.projects, env.recorder)
	ctx := context.Background()

	created, err := createUC.Execute(ctx, CreateProjectInput{Name: "Farm A"})
	if err != nil {
		t.Fatalf("create Execute returned error: %v", err)
	}

	output, err := updateUC.Execute(ctx, UpdateProjectInput{
		ProjectID:   created.Project.ID,
		Name:        "Farm B",
		Description: "Updated",
	})
	if err != nil {
		t.Fatalf("update Execute returned error: %v", err)
	}
	if output.Project.Name != "Farm B" || output.Project.Description != "Updated" {
		t.Errorf("unexpected project after update: %+v", output.Project)
	}

	stored, err := env.projects.FindByID(ctx, created.Project.ID)
	if err != nil {
		t.Fatalf("failed to reload project: %v", err)
	}
	if stored.Name != "Farm B" || stored.Description != "Updated" {
		t.Errorf("update not persisted: %+v", stored)
	}

	logs, err := env.auditLogs.FindByProject(ctx, created.Project.ID, 100)
	if err != nil {
		t.Fatalf("failed to list audit logs: %v", err)
	}
	if len(logs) == 0 {
		t.Fatal("expected an audit entry for the update")
	}
	newest := logs[0]
	if newest.Action != entity.AuditActionUpdate {
		t.Errorf("expected UPDATE action, got %s", newest.Action)
	}
	want := "Project name: 'Farm A' -> 'Farm B', Desc: '' -> 'Updated'"
	if newest.Details != want {
		t.Errorf("expected details %q, got %q", want, newest.Details)
	}
}

func TestUpdateProjectUseCase_NotFound(t *testing.T) {
	env := newTestEnv(t)
	uc := NewUpdateProjectUseCase(env.uow, env.projects, env.recorder)

	_, err := uc.Execute(context.Background(), UpdateProjectInput{ProjectID: 42, Name: "X"})
	if !errors.Is(err, domainerror.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestUpdateProjectUseCase_NameConflict(t *testing.T) {
	env := newTestEnv(t)
	createUC := NewCreateProjectUseCase(env.uow, env.projects, env.recorder, nil)
	updateUC := NewUpdateProjectUseCase(env.uow, env.projects, env.recorder)
	ctx := context.Background()

	if _, err := createUC.Execute(ctx, CreateProjectInput{Name: "Farm A"}); err != nil {
		t.Fatalf("create Execute returned error: %v", err)
	}
	other, err := createUC.Execute(ctx, CreateProjectInput{Name: "Farm B"})
	if err != nil {
		t.Fatalf("create Execute returned error: %v", err)
	}

	_, err = updateUC.Execute(ctx, UpdateProjectInput{ProjectID: other.Project.ID, Name: "Farm A"})
	if !errors.Is(err, domainerror.ErrProjectNameExists) {
		t.Errorf("expected ErrProjectNameExists, got %v", err)
	}
}

func TestUpdateProjectUseCase_SameNameKept(t *testing.T) {
	env := newTestEnv(t)
	createUC := NewCreateProjectUseCase(env.uow, env.projects, env.recorder, nil)
	updateUC := NewUpdateProjectUseCase(env.uow, env.projects, env.recorder)
	ctx := context.Background()

	created, err := createUC.Execute(ctx, CreateProjectInput{Name: "Farm A"})
	if err != nil {
		t.Fatalf("create Execute returned error: %v", err)
	}

	// Keeping the current name must not trip the uniqueness check.
	output, err := updateUC.Execute(ctx, UpdateProjectInput{
		ProjectID:   created.Project.ID,
		Name:        "Farm A",
		Description: "New description",
	})
	if err != nil {
		t.Fatalf("update Execute returned error: %v", err)
	}
	if output.Project.Description != "New description" {
		t.Errorf("expected description update, got %+v", output.Project)
	}
}
