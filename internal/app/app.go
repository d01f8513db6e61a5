package app

import (
	"context"
	"os"
	"time"

	"employee-records/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultDatabase = "employee_db"

// BuildApp connects the shared Mongo client, prepares indexes and registers
// all module routes on the router.
func BuildApp(router *gin.Engine) error {
	client, err := connection.ConnectMongoWithRetry(os.Getenv("MONGO_URI"), 5)
	if err != nil {
		return err
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = defaultDatabase
	}
	db := client.Database(dbName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := registerModules(ctx, router, db, zap.L()); err != nil {
		return err
	}

	zap.L().Info("application wired",
		zap.String("database", dbName),
	)
	return nil
}
