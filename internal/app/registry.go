package app

import (
	"context"

	"employee-records/internal/employee"
	"employee-records/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func registerModules(
	ctx context.Context,
	router *gin.Engine,
	db *mongo.Database,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(db)

	// Unique index on the business key; the duplicate-key error at insert
	// time is the DuplicateKey signal for create.
	if err := employeeRepo.EnsureIndexes(ctx); err != nil {
		return err
	}

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("")
	{
		employee.RegisterRoutes(api, employeeHandler, logger)
	}

	return nil
}
