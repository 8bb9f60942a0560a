package category

import (
	"context"
	"errors"
	"testing"

	"github.com/project-ledger/backend/internal/domain/entity"
	domainerror "github.com/project-ledger/backend/internal/domain/error"
)

func TestCreateCategoryUseCase(t *testing.T) {
	env := newTestEnv(t)
	uc := NewCreateCategoryUseCase(env.uow, env.projects, env.categories, env.recorder)
	ctx := context.Background()

	project := env.seedProject(t, "Farm A")

	t.Run("creates category and audit entry", func(t *testing.T) {
		output, err := uc.Execute(ctx, CreateCategoryInput{
			ProjectID: project.ID,
			Name:      " Fuel ",
			Type:      entity.CategoryTypeExpense,
		})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if output.Category.ID == 0 || output.Category.Name != "Fuel" {
			t.Errorf("unexpected category: %+v", output.Category)
		}

		logs, err := env.auditLogs.FindByProject(ctx, project.ID, 100)
		if err != nil {
			t.Fatalf("failed to list audit logs: %v", err)
		}
		if len(logs) != 1 {
			t.Fatalf("expected 1 audit entry, got %d", len(logs))
		}
		entry := logs[0]
		if entry.Details != "Category 'Fuel' created." {
			t.Errorf("unexpected details %q", entry.Details)
		}
		if entry.TableName != entity.AuditTableCategory || entry.Action != entity.AuditActionCreate {
			t.Errorf("unexpected entry: %+v", entry)
		}
		if entry.RecordID == nil || *entry.RecordID != output.Category.ID {
			t.Errorf("expected record id %d, got %v", output.Category.ID, entry.RecordID)
		}
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateCategoryInput{
			ProjectID: project.ID,
			Name:      "  ",
			Type:      entity.CategoryTypeExpense,
		})
		if !errors.Is(err, domainerror.ErrCategoryNameRequired) {
			t.Fatalf("expected ErrCategoryNameRequired, got %v", err)
		}
		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) || catErr.Message != "Missing fields (name, type)" {
			t.Errorf("unexpected error %v", err)
		}
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateCategoryInput{
			ProjectID: project.ID,
			Name:      "Misc",
			Type:      entity.CategoryType("Other"),
		})
		if !errors.Is(err, domainerror.ErrInvalidCategoryType) {
			t.Errorf("expected ErrInvalidCategoryType, got %v", err)
		}
	})

	t.Run("missing project is rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateCategoryInput{
			ProjectID: 999,
			Name:      "Misc",
			Type:      entity.CategoryTypeExpense,
		})
		if !errors.Is(err, domainerror.ErrProjectNotFound) {
			t.Errorf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("duplicate in same project is rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateCategoryInput{
			ProjectID: project.ID,
			Name:      "Fuel",
			Type:      entity.CategoryTypeExpense,
		})
		if !errors.Is(err, domainerror.ErrCategoryNameExists) {
			t.Fatalf("expected ErrCategoryNameExists, got %v", err)
		}
		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) || catErr.Message != "Category name already exists in this project." {
			t.Errorf("unexpected error %v", err)
		}
	})

	t.Run("same name in another project is allowed", func(t *testing.T) {
		other := env.seedProject(t, "Farm B")
		if _, err := uc.Execute(ctx, CreateCategoryInput{
			ProjectID: other.ID,
			Name:      "Fuel",
			Type:      entity.CategoryTypeExpense,
		}); err != nil {
			t.Errorf("Execute returned error: %v", err)
		}
	})
}

func TestUpdateCategoryUseCase(t *testing.T) {
	env := newTestEnv(t)
	createUC := NewCreateCategoryUseCase(env.uow, env.projects, env.categories, env.recorder)
	updateUC := NewUpdateCategoryUseCase(env.uow, env.categories, env.recorder)
	ctx := context.Background()

	project := env.seedProject(t, "Farm A")
	created, err := createUC.Execute(ctx, CreateCategoryInput{
		ProjectID: project.ID,
		Name:      "Fuel",
		Type:      entity.CategoryTypeExpense,
	})
	if err != nil {
		t.Fatalf("create Execute returned error: %v", err)
	}

	t.Run("renames and records the change", func(t *testing.T) {
		output, err := updateUC.Execute(ctx, UpdateCategoryInput{
			CategoryID: created.Category.ID,
			Name:       "Diesel",
		})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if output.Category.Name != "Diesel" {
			t.Errorf("unexpected category: %+v", output.Category)
		}

		logs, err := env.auditLogs.FindByProject(ctx, project.ID, 100)
		if err != nil {
			t.Fatalf("failed to list audit logs: %v", err)
		}
		if len(logs) == 0 || logs[0].Details != "Category name: 'Fuel' -> 'Diesel'" {
			t.Errorf("expected rename audit entry, got %+v", logs)
		}
	})

	t.Run("missing category", func(t *testing.T) {
		_, err := updateUC.Execute(ctx, UpdateCategoryInput{CategoryID: 999, Name: "X"})
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("rename onto an existing name is rejected", func(t *testing.T) {
		other, err := createUC.Execute(ctx, CreateCategoryInput{
			ProjectID: project.ID,
			Name:      "Seeds",
			Type:      entity.CategoryTypeExpense,
		})
		if err != nil {
			t.Fatalf("create Execute returned error: %v", err)
		}

		_, err = updateUC.Execute(ctx, UpdateCategoryInput{
			CategoryID: other.Category.ID,
			Name:       "Diesel",
		})
		if !errors.Is(err, domainerror.ErrCategoryNameExists) {
			t.Errorf("expected ErrCategoryNameExists, got %v", err)
		}
	})
}

func TestDeleteCategoryUseCase(t *testing.T) {
	env := newTestEnv(t)
	createUC := NewCreateCategoryUseCase(env.uow, env.projects, env.categories, env.recorder)
	deleteUC := NewDeleteCategoryUseCase(env.uow, env.categories, env.transactions, env.recorder)
	ctx := context.Background()

	project := env.seedProject(t, "Farm A")
	used, err := createUC.Execute(ctx, CreateCategoryInput{
		ProjectID: project.ID,
		Name:      "Seeds",
		Type:      entity.CategoryTypeExpense,
	})
	if err != nil {
		t.Fatalf("create Execute returned error: %v", err)
	}
	unused, err := createUC.Execute(ctx, CreateCategoryInput{
		ProjectID: project.ID,
		Name:      "Fuel",
		Type:      entity.CategoryTypeExpense,
	})
	if err != nil {
		t.Fatalf("create Execute returned error: %v", err)
	}

	transaction := entity.NewTransaction(entity.TransactionTypeExpense, 150.0, "Seed order", used.Category.ID, project.ID)
	if err := env.transactions.Create(ctx, transaction); err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}

	t.Run("category in use is guarded", func(t *testing.T) {
		_, err := deleteUC.Execute(ctx, DeleteCategoryInput{CategoryID: used.Category.ID})
		if !errors.Is(err, domainerror.ErrCategoryInUse) {
			t.Fatalf("expected ErrCategoryInUse, got %v", err)
		}
		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) || catErr.Message != "Cannot delete category: It is currently in use by transactions." {
			t.Errorf("unexpected error %v", err)
		}

		// Nothing was mutated.
		if _, err := env.categories.FindByID(ctx, used.Category.ID); err != nil {
			t.Errorf("expected guarded category to remain, got %v", err)
		}
	})

	t.Run("unused category is removed with an audit entry", func(t *testing.T) {
		output, err := deleteUC.Execute(ctx, DeleteCategoryInput{CategoryID: unused.Category.ID})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if !output.Success {
			t.Error("expected Success to be true")
		}

		if _, err := env.categories.FindByID(ctx, unused.Category.ID); !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected category to be gone, got %v", err)
		}

		logs, err := env.auditLogs.FindByProject(ctx, project.ID, 100)
		if err != nil {
			t.Fatalf("failed to list audit logs: %v", err)
		}
		if len(logs) == 0 || logs[0].Details != "Category 'Fuel' deleted." {
			t.Errorf("expected deletion audit entry, got %+v", logs)
		}
	})

	t.Run("missing category", func(t *testing.T) {
		_, err := deleteUC.Execute(ctx, DeleteCategoryInput{CategoryID: 999})
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}

func TestListCategoriesUseCase(t *testing.T) {
	env := newTestEnv(t)
	createUC := NewCreateCategoryUseCase(env.uow, env.projects, env.categories, env.recorder)
	listUC := NewListCategoriesUseCase(env.projects, env.categories)
	ctx := context.Background()

	project := env.seedProject(t, "Farm A")
	for _, name := range []string{"Seeds", "Fuel"} {
		if _, err := createUC.Execute(ctx, CreateCategoryInput{
			ProjectID: project.ID,
			Name:      name,
			Type:      entity.CategoryTypeExpense,
		}); err != nil {
			t.Fatalf("create Execute returned error: %v", err)
		}
	}

	output, err := listUC.Execute(ctx, ListCategoriesInput{ProjectID: project.ID})
	if err != nil {
		t.Fatalf("list Execute returned error: %v", err)
	}
	if len(output.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(output.Categories))
	}
	if output.Categories[0].Name != "Fuel" || output.Categories[1].Name != "Seeds" {
		t.Errorf("expected name order within type, got %q then %q", output.Categories[0].Name, output.Categories[1].Name)
	}

	_, err = listUC.Execute(ctx, ListCategoriesInput{ProjectID: 999})
	if !errors.Is(err, domainerror.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}
