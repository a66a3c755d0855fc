package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingResponseLengthKey = "response_length"

	LoggingMessageIDKey   = "message_id"
	LoggingSenderPhoneKey = "sender_phone"
	LoggingGroupNameKey   = "group_name"
	LoggingDateKeyKey     = "date_key"
	LoggingTimeOfDayKey   = "time_of_day"
	LoggingSourceFormat   = "source_format"
	LoggingQueueNameKey   = "queue_name"
	LoggingRedisKey       = "redis_key"
	LoggingDeletedCount   = "deleted_count"
	LoggingLockExpiryKey  = "lock_expiration"
	LoggingLockValueKey   = "lock_value"
)
