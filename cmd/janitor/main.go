// Command janitor runs a single retention sweep and exits. Useful for cron
// driven deployments where the in-process worker is disabled.
package main

import (
	"context"
	"log"
	"time"

	"lavanderia-service/internal/app/config"
	"lavanderia-service/internal/app/drivers/database"
	zaplogger "lavanderia-service/internal/app/drivers/logger"
	"lavanderia-service/internal/app/services/core/janitor"
	"lavanderia-service/internal/app/services/core/reservations"
	"lavanderia-service/internal/app/services/shared/locker"
	redisrepo "lavanderia-service/internal/app/services/shared/redis"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := zaplogger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)

	redisRepository := redisrepo.NewRedisRepository(redisClient)
	lockerService := locker.NewLockService(redisRepository, zapLogger)
	reservationRepository := reservations.NewReservationMongoRepository(mongoClient, driverConfig.MongoDB.DbName)

	worker := janitor.NewWorker(zapLogger, internalConfig, lockerService, reservationRepository)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	worker.RunOnce(ctx, time.Now())

	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Printf("Error closing MongoDB: %v", err)
	}
	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis: %v", err)
	}
	_ = zapLogger.Sync()
}
