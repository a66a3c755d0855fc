package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	InternalConfig struct {
		App      App
		RabbitMQ AppRabbitMQ
	}

	App struct {
		Env                             string
		Port                            string
		Version                         string
		Address                         string
		Timezone                        string
		EndpointPrefix                  string
		MentionToken                    string
		AllowedGroupName                string
		AdminAPIKeyHash                 string
		MaxRequests                     int
		ShutdownTimeoutInSeconds        int
		RetentionAgeInDays              int
		JanitorIntervalInHours          int
		JanitorLockExpiryTimeInMinutes  int
		WebhookDedupWindowTimeInMinutes int
	}

	AppRabbitMQ struct {
		WhatsAppQueue           string
		PublishRatePerSecond    int
		PublishBurst            int
		PublishTimeoutInSeconds int
	}
)
