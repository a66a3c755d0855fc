package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lavanderia-service/internal/app/config"
	"lavanderia-service/internal/app/delivery/http/controllers"
	"lavanderia-service/internal/app/delivery/http/middlewares"
	"lavanderia-service/internal/app/delivery/http/routers"
	"lavanderia-service/internal/app/drivers/database"
	zaplogger "lavanderia-service/internal/app/drivers/logger"
	"lavanderia-service/internal/app/drivers/messaging"
	"lavanderia-service/internal/app/services/core/booking"
	"lavanderia-service/internal/app/services/core/janitor"
	"lavanderia-service/internal/app/services/core/reservations"
	"lavanderia-service/internal/app/services/core/schedule"
	"lavanderia-service/internal/app/services/shared/locker"
	"lavanderia-service/internal/app/services/shared/ratelimiter"
	redisrepo "lavanderia-service/internal/app/services/shared/redis"
	"lavanderia-service/internal/app/services/shared/whatsapp"

	"github.com/go-chi/chi/v5"
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
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		MongoDB:        mongoClient.Database(driverConfig.MongoDB.DbName),
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapTheApp(bootstrap); err != nil {
		log.Fatalf("Failed to bootstrap application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) error {
	// Redis
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, bootstrap.Logger)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Outbound WhatsApp replies
	whatsAppService, err := whatsapp.NewWhatsAppService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.RabbitMQ.WhatsAppQueue,
		bootstrap.InternalConfig.RabbitMQ.PublishRatePerSecond,
		bootstrap.InternalConfig.RabbitMQ.PublishBurst,
	)
	if err != nil {
		return err
	}

	// Reservations
	reservationRepository := reservations.NewReservationMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// Usecases
	bookingUsecase := booking.NewBookingUsecase(
		reservationRepository,
		redisRepository,
		whatsAppService,
		resourceLimiter,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	scheduleUsecase := schedule.NewScheduleUsecase(reservationRepository, bootstrap.Logger)

	// Controllers
	webhookController := controllers.NewWebhookController(bookingUsecase, bootstrap.Logger)
	scheduleController := controllers.NewScheduleController(scheduleUsecase, bootstrap.Logger)
	reservationController := controllers.NewReservationController(bookingUsecase, bootstrap.Logger)

	// Retention janitor
	janitorWorker := janitor.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, lockerService, reservationRepository)
	bootstrap.WorkerStop = janitorWorker.Start(context.Background())

	mw := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mw,
		webhookController,
		scheduleController,
		reservationController,
	)
	return nil
}
