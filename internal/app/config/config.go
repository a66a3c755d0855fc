package config

import (
	"lavanderia-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "lavanderia"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                  utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "America/Mexico_City"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			MentionToken:             utils.GetEnvString("APP_MENTION_TOKEN", "@lavanderia"),
			AllowedGroupName:         utils.GetEnvString("APP_ALLOWED_GROUP_NAME", ""),
			AdminAPIKeyHash:          utils.GetEnvString("APP_ADMIN_API_KEY_HASH", ""),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RetentionAgeInDays:       utils.GetEnvInt("APP_RETENTION_AGE_IN_DAYS", 14),
			JanitorIntervalInHours:   utils.GetEnvInt("APP_JANITOR_INTERVAL_IN_HOURS", 2),
			JanitorLockExpiryTimeInMinutes: utils.GetEnvInt("APP_JANITOR_LOCK_EXPIRY_TIME_IN_MINUTES", 5),
			WebhookDedupWindowTimeInMinutes: utils.GetEnvInt("APP_WEBHOOK_DEDUP_WINDOW_TIME_IN_MINUTES", 30),
		},
		RabbitMQ: AppRabbitMQ{
			WhatsAppQueue:           utils.GetEnvString("APP_RABBITMQ_WHATSAPP_QUEUE", "whatsapp_outbound"),
			PublishRatePerSecond:    utils.GetEnvInt("APP_RABBITMQ_PUBLISH_RATE_PER_SECOND", 1),
			PublishBurst:            utils.GetEnvInt("APP_RABBITMQ_PUBLISH_BURST", 3),
			PublishTimeoutInSeconds: utils.GetEnvInt("APP_RABBITMQ_PUBLISH_TIMEOUT_IN_SECONDS", 5),
		},
	}
}
