// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/project-ledger/backend/config"
	auditlog "github.com/project-ledger/backend/internal/application/usecase/audit_log"
	"github.com/project-ledger/backend/internal/application/usecase/category"
	"github.com/project-ledger/backend/internal/application/usecase/project"
	"github.com/project-ledger/backend/internal/application/usecase/transaction"
	"github.com/project-ledger/backend/internal/domain/entity"
	"github.com/project-ledger/backend/internal/infra/server/router"
	"github.com/project-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/project-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/project-ledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, dbHealthChecker func() bool) *Injector {
	// Create repositories and the transactional unit of work
	projectRepo := persistence.NewProjectRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	auditLogRepo := persistence.NewAuditLogRepository(db)
	uow := persistence.NewUnitOfWork(db)

	// Audit recorder shared by all mutating use cases
	recorder := auditlog.NewRecorder()

	// Create project use cases
	listProjectsUseCase := project.NewListProjectsUseCase(projectRepo)
	createProjectUseCase := project.NewCreateProjectUseCase(uow, projectRepo, recorder, entity.DefaultStarterCategories)
	updateProjectUseCase := project.NewUpdateProjectUseCase(uow, projectRepo, recorder)
	deleteProjectUseCase := project.NewDeleteProjectUseCase(uow, projectRepo, recorder)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(projectRepo, categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(uow, projectRepo, categoryRepo, recorder)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(uow, categoryRepo, recorder)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(uow, categoryRepo, transactionRepo, recorder)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(projectRepo, transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(uow, projectRepo, categoryRepo, recorder)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(uow, transactionRepo, categoryRepo, recorder)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(uow, transactionRepo, recorder)

	// Create audit log use case
	listAuditLogsUseCase := auditlog.NewListAuditLogsUseCase(projectRepo, auditLogRepo, cfg.Audit.PageSize)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker)
	projectController := controller.NewProjectController(
		listProjectsUseCase,
		createProjectUseCase,
		updateProjectUseCase,
		deleteProjectUseCase,
	)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)
	auditLogController := controller.NewAuditLogController(listAuditLogsUseCase)

	// Create middleware
	writeRateLimiter := middleware.NewRateLimiter()

	// Setup router
	r := router.NewRouter(
		healthController,
		projectController,
		categoryController,
		transactionController,
		auditLogController,
		writeRateLimiter,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
