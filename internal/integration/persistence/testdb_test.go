package persistence

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/project-ledger/backend/internal/domain/entity"
	"github.com/project-ledger/backend/internal/integration/persistence/model"
)

// newTestDB opens a private in-memory database migrated with the full
// schema. TranslateError is on so unique violations surface the same
// way they do against PostgreSQL.
func newTestDB(t *testing.T) *gorm.DB {
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

	return db
}

func mustCreateProject(t *testing.T, db *gorm.DB, name string) *entity.Project {
	t.Helper()
	project := entity.NewProject(name, "")
	if err := NewProjectRepository(db).Create(context.Background(), project); err != nil {
		t.Fatalf("failed to create project %q: %v", name, err)
	}
	return project
}

func mustCreateCategory(t *testing.T, db *gorm.DB, name string, categoryType entity.CategoryType, projectID uint) *entity.Category {
	t.Helper()
	category := entity.NewCategory(name, categoryType, projectID)
	if err := NewCategoryRepository(db).Create(context.Background(), category); err != nil {
		t.Fatalf("failed to create category %q: %v", name, err)
	}
	return category
}

func mustCreateTransaction(t *testing.T, db *gorm.DB, transaction *entity.Transaction) *entity.Transaction {
	t.Helper()
	if err := NewTransactionRepository(db).Create(context.Background(), transaction); err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}
	return transaction
}

func countRows(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()
	var count int64
	if err := db.Model(m).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}
