package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"numeric":      "must be a number",
	"len":          "must be %s characters long",
	"oneof":        "must be one of [%s]",
	"datetime":     "must match the %s layout",
	"phone_number": "must be an international phone number in digits-only form",
	"time_of_day":  "must be a valid HH:MM time",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"len":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientReservationNotFound           = "reservation not found"
	ErrClientTooManyRequests               = "too many requests, slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevInvalidFormat            = "invalid %s format"
	ErrDevBuildRequest             = "encountering error while building request DTO"
	ErrDevServerDeadlineExceeded   = "request exceeded the server deadline"
	ErrDevMissingRequestID         = "request_id not found in request context"

	// Booking flow
	ErrDevDateTimeNotRecognized     = "no date grammar matched the incoming text"
	ErrDevOutOfOperationalHours     = "requested time of day is outside the operational window"
	ErrDevSlotOccupied              = "requested slot overlaps an existing reservation"
	ErrDevReservationNotFound       = "no reservation matches the given date, time and phone"
	ErrDevInvalidTimeOfDay          = "time of day is not a valid HH:MM value"
	ErrDevInvalidDateKey            = "date key is not a valid YYYY-MM-DD value"
	ErrDevInvalidPhoneNumber        = "phone number failed international digits validation"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevInvalidRequestPayload      = "invalid request payload"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// API key middleware
	ErrDevInvalidAPIKey  = "provided API key does not match"
	ErrDevAPIKeyRequired = "API key header is missing"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"

	// Redis messages
	ErrDevRedisGetNoData      = "failed to get data with key '%s' from redis"
	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisSetData        = "failed to set data to redis"
	ErrDevRedisDeleteData     = "failed to delete data from redis"
	ErrDevRedisIncrementValue = "failed to increment value on redis"
	ErrDevRedisSetNX          = "failed to acquire lock key on redis"
	ErrDevRedisUnlock         = "failed to release lock key on redis"

	// RabbitMQ
	ErrDevRabbitMQPublish = "failed to publish message to queue '%s'"
)
