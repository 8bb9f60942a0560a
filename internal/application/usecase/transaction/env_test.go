package transaction

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/project-ledger/backend/internal/application/adapter"
	auditlog "github.com/project-ledger/backend/internal/application/usecase/audit_log"
	"github.com/project-ledger/backend/internal/domain/entity"
	"github.com/project-ledger/backend/internal/integration/persistence"
	"github.com/project-ledger/backend/internal/integration/persistence/model"
)

type testEnv struct {
	db           *gorm.DB
	uow          adapter.UnitOfWork
	projects     adapter.ProjectRepository
	categories   adapter.CategoryRepository
	transactions adapter.TransactionRepository
	auditLogs    adapter.AuditLogRepository
	recorder     *auditlog.Recorder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.ProjectModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.AuditLogModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return &testEnv{
		db:           db,
		uow:          persistence.NewUnitOfWork(db),
		projects:     persistence.NewProjectRepository(db),
		categories:   persistence.NewCategoryRepository(db),
		transactions: persistence.NewTransactionRepository(db),
		auditLogs:    persistence.NewAuditLogRepository(db),
		recorder:     auditlog.NewRecorder(),
	}
}

// seedLedger creates a project with one category so transaction use
// cases have something to write against.
func (env *testEnv) seedLedger(t *testing.T) (*entity.Project, *entity.Category) {
	t.Helper()
	ctx := context.Background()

	project := entity.NewProject("Farm A", "")
	if err := env.projects.Create(ctx, project); err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	category := entity.NewCategory("Seeds", entity.CategoryTypeExpense, project.ID)
	if err := env.categories.Create(ctx, category); err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return project, category
}

func (env *testEnv) auditCount(t *testing.T, projectID uint) int {
	t.Helper()
	logs, err := env.auditLogs.FindByProject(context.Background(), projectID, 100)
	if err != nil {
		t.Fatalf("failed to list audit logs: %v", err)
	}
	return len(logs)
}
