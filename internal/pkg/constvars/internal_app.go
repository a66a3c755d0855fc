package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_API_KEY_AUTH             ContextKey = "api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "LVND_SVC_"
)

const (
	MongoCollectionReservations = "reservations"
)

const (
	RedisKeyProcessedMessageFormat = "lavanderia:webhook:processed:%s"
	RedisKeyJanitorLock            = "lavanderia:janitor:lock"
	LimiterGroupWebhook            = "lavanderia-webhook"
)

const (
	DefaultCountryCode = "52"
	DefaultUserName    = "Usuario WhatsApp"
)
