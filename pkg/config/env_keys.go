package config

// EnvPrefix is passed to envconfig; individual keys spell the full name so
// grepping the deploy manifests stays trivial.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv   = "FARMSHOP_APP_ENV"
	EnvPort     = "FARMSHOP_APP_PORT"
	EnvLogLevel = "FARMSHOP_LOG_LEVEL"

	EnvDBDSN     = "FARMSHOP_DB_DSN"
	EnvDBHost    = "FARMSHOP_DB_HOST"
	EnvDBUser    = "FARMSHOP_DB_USER"
	EnvDBName    = "FARMSHOP_DB_NAME"
	EnvRedisURL  = "FARMSHOP_REDIS_URL"
	EnvJWTSecret = "FARMSHOP_JWT_SECRET"
	EnvJWTIssuer = "FARMSHOP_JWT_ISSUER"
	EnvJWTExpMin = "FARMSHOP_JWT_EXPIRATION_MINUTES"

	EnvRefreshTokenTTLMinutes = "FARMSHOP_REFRESH_TOKEN_TTL_MINUTES"

	EnvAdminEmail        = "FARMSHOP_ADMIN_EMAIL"
	EnvAdminPasswordHash = "FARMSHOP_ADMIN_PASSWORD_HASH"

	EnvGCPProjectID    = "FARMSHOP_GCP_PROJECT_ID"
	EnvPubSubTopic     = "FARMSHOP_PUBSUB_EVENTS_TOPIC"
	EnvPubSubSub       = "FARMSHOP_PUBSUB_EVENTS_SUBSCRIPTION"
	EnvBigQueryDataset = "FARMSHOP_BIGQUERY_DATASET"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
