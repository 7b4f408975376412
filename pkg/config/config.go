package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Admin     AdminConfig
	Password  PasswordConfig
	Flags     FlagsConfig
	Checkout  CheckoutConfig
	AuthLimit AuthRateLimitConfig
	GCP       GCPConfig
	PubSub    PubSubConfig
	BigQuery  BigQueryConfig
	Analytics AnalyticsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FARMSHOP_APP_ENV" required:"true"`
	Port         string `envconfig:"FARMSHOP_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"FARMSHOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FARMSHOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"FARMSHOP_DB_DSN"`
	Driver string `envconfig:"FARMSHOP_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"FARMSHOP_DB_HOST"`
	LegacyPort     int    `envconfig:"FARMSHOP_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"FARMSHOP_DB_USER"`
	LegacyPassword string `envconfig:"FARMSHOP_DB_PASSWORD"`
	LegacyName     string `envconfig:"FARMSHOP_DB_NAME"`
	LegacySSLMode  string `envconfig:"FARMSHOP_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"FARMSHOP_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"FARMSHOP_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"FARMSHOP_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FARMSHOP_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"FARMSHOP_REDIS_URL" required:"true"`
	Address      string        `envconfig:"FARMSHOP_REDIS_ADDR"`
	Password     string        `envconfig:"FARMSHOP_REDIS_PASSWORD"`
	DB           int           `envconfig:"FARMSHOP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FARMSHOP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FARMSHOP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FARMSHOP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FARMSHOP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FARMSHOP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"FARMSHOP_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"FARMSHOP_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"FARMSHOP_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"FARMSHOP_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

// AdminConfig holds the single administrative login for the flag surface.
type AdminConfig struct {
	Email        string `envconfig:"FARMSHOP_ADMIN_EMAIL" required:"true"`
	PasswordHash string `envconfig:"FARMSHOP_ADMIN_PASSWORD_HASH" required:"true"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"FARMSHOP_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"FARMSHOP_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"FARMSHOP_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"FARMSHOP_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"FARMSHOP_ARGON_KEY_LEN" default:"32"`
}

// FlagsConfig tunes the feature flag registry plumbing, not the flags
// themselves; the flag table is compiled in.
type FlagsConfig struct {
	AutoMigrate bool `envconfig:"FARMSHOP_AUTO_MIGRATE" default:"false"`
}

// CheckoutConfig carries shipping pricing and the UPN beneficiary printed
// on bank-transfer payment orders.
type CheckoutConfig struct {
	ShippingFee           string `envconfig:"FARMSHOP_SHIPPING_FEE" default:"3.90"`
	FreeShippingThreshold string `envconfig:"FARMSHOP_FREE_SHIPPING_THRESHOLD" default:"50.00"`

	UPNIBAN    string `envconfig:"FARMSHOP_UPN_IBAN"`
	UPNName    string `envconfig:"FARMSHOP_UPN_NAME"`
	UPNAddress string `envconfig:"FARMSHOP_UPN_ADDRESS"`
	UPNCity    string `envconfig:"FARMSHOP_UPN_CITY"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"FARMSHOP_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"FARMSHOP_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"FARMSHOP_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"FARMSHOP_GCP_PROJECT_ID" required:"true"`
	CredentialsJSON        string `envconfig:"FARMSHOP_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"FARMSHOP_GOOGLE_APPLICATION_CREDENTIALS"`
}

type PubSubConfig struct {
	EventsTopic        string `envconfig:"FARMSHOP_PUBSUB_EVENTS_TOPIC" required:"true"`
	EventsSubscription string `envconfig:"FARMSHOP_PUBSUB_EVENTS_SUBSCRIPTION" required:"true"`
}

type BigQueryConfig struct {
	Dataset               string `envconfig:"FARMSHOP_BIGQUERY_DATASET" default:"farmshop"`
	StorefrontEventsTable string `envconfig:"FARMSHOP_BIGQUERY_STOREFRONT_TABLE" default:"storefront_events"`
}

type AnalyticsConfig struct {
	MaxAttempts int `envconfig:"FARMSHOP_ANALYTICS_MAX_ATTEMPTS" default:"3"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
