package category

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

func (env *testEnv) seedProject(t *testing.T, name string) *entity.Project {
	t.Helper()
	project := entity.NewProject(name, "")
	if err := env.projects.Create(context.Background(), project); err != nil {
		t.Fatalf("failed to seed project %q: %v", name, err)
	}
	return project
}
