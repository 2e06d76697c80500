package app

import (
	"path/filepath"

	"go-dispo/internal/assignment"
	"go-dispo/internal/coordinator"
	"go-dispo/internal/messaging/kafka"
	"go-dispo/internal/person"
	"go-dispo/internal/planner"
	"go-dispo/internal/rbac"
	"go-dispo/internal/rbac/infra"
	"go-dispo/internal/seeder"
	"go-dispo/internal/shift"
	"go-dispo/internal/shifttemplate"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	personRepo := person.NewRepository(gormDB)
	templateRepo := shifttemplate.NewRepository(gormDB)
	shiftRepo := shift.NewRepository(gormDB)
	assignmentRepo := assignment.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(
		filepath.Join("internal", "rbac", "infra", "model.conf"),
		filepath.Join("internal", "rbac", "infra", "policy.csv"),
	)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Services ---
	personService := person.NewService(gormDB, personRepo, rdb)
	templateService := shifttemplate.NewService(gormDB, templateRepo)
	shiftService := shift.NewService(shiftRepo)
	assignmentService := assignment.NewService(gormDB, assignmentRepo, outboxRepo)
	coordinatorService := coordinator.NewService(gormDB, assignmentRepo, shiftRepo, outboxRepo)
	plannerService := planner.NewService(shiftRepo, assignmentRepo, personRepo)
	seederService := seeder.NewService(templateRepo, shiftRepo)

	// --- Handlers ---
	personHandler := person.NewHandler(personService)
	templateHandler := shifttemplate.NewHandler(templateService)
	shiftHandler := shift.NewHandler(shiftService)
	assignmentHandler := assignment.NewHandler(assignmentService)
	coordinatorHandler := coordinator.NewHandler(coordinatorService)
	plannerHandler := planner.NewHandler(plannerService)
	seederHandler := seeder.NewHandler(seederService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		person.RegisterRoutes(api, personHandler, rbacService, logger)
		shifttemplate.RegisterRoutes(api, templateHandler, rbacService, logger)
		shift.RegisterRoutes(api, shiftHandler, rbacService, logger)
		assignment.RegisterRoutes(api, assignmentHandler, rbacService, rdb, logger)
		coordinator.RegisterRoutes(api, coordinatorHandler, rbacService, rdb, logger)
		planner.RegisterRoutes(api, plannerHandler, rbacService, logger)
		seeder.RegisterRoutes(api, seederHandler, rbacService, rdb, logger)
	}

	return nil
}
