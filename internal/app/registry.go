package app

import (
	"database/sql"
	"path/filepath"

	"go-payledger/internal/attendance"
	"go-payledger/internal/audit"
	"go-payledger/internal/auth"
	"go-payledger/internal/employee"
	"go-payledger/internal/leave"
	"go-payledger/internal/liability"
	"go-payledger/internal/messaging/kafka"
	"go-payledger/internal/rbac"
	"go-payledger/internal/rbac/infra"
	"go-payledger/internal/report"
	"go-payledger/internal/salary"
	"go-payledger/internal/settings"
	"go-payledger/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	auditRepo := audit.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	liabilityRepo := liability.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	reportRepo := report.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	settingsRepo := settings.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer)
	if err != nil {
		return err
	}

	// --- Services ---
	recorder := audit.NewRecorder(auditRepo)
	authService := auth.NewService(authRepo)
	settingsService := settings.NewService(db, settingsRepo, recorder)
	attendanceService := attendance.NewService(db, attendanceRepo, settingsService, recorder)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, recorder, rdb)
	leaveService := leave.NewService(db, leaveRepo, recorder)
	liabilityService := liability.NewService(db, liabilityRepo, recorder)
	ledger := liability.NewLedger(liabilityRepo)
	salaryService := salary.NewService(db, salaryRepo, attendanceService, ledger, outboxRepo, recorder)
	reportService := report.NewService(reportRepo, rdb)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	auditHandler := audit.NewHandler(auditRepo)
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService)
	liabilityHandler := liability.NewHandler(liabilityService)
	reportHandler := report.NewHandler(reportService)
	salaryHandler := salary.NewHandler(salaryService)
	settingsHandler := settings.NewHandler(settingsService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		audit.RegisterRoutes(api, auditHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService)
		liability.RegisterRoutes(api, liabilityHandler, rbacService)
		report.RegisterRoutes(api, reportHandler, rbacService)
		salary.RegisterRoutes(api, salaryHandler, rbacService, rdb)
		settings.RegisterRoutes(api, settingsHandler, rbacService)
	}

	return nil
}
