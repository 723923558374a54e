package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, provider credentials), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	Cookie  CookieConfig
	Session SessionConfig
	Amadeus AmadeusConfig
	Quota   QuotaConfig
	DB      DBConfig
	Mongo   MongoConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Berlin"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type SessionConfig struct {
	TTL time.Duration `envconfig:"SESSION_TTL" default:"24h"`
}

type AmadeusConfig struct {
	ClientID       string        `envconfig:"AMADEUS_API_KEY" required:"true"`
	ClientSecret   string        `envconfig:"AMADEUS_API_SECRET" required:"true"`
	BaseURL        string        `envconfig:"AMADEUS_BASE_URL" default:"https://test.api.amadeus.com"`
	TokenURL       string        `envconfig:"AMADEUS_TOKEN_URL" default:"https://test.api.amadeus.com/v1/security/oauth2/token"`
	Timeout        time.Duration `envconfig:"AMADEUS_TIMEOUT" default:"20s"`
	MaxAttempts    int           `envconfig:"AMADEUS_MAX_ATTEMPTS" default:"3"`
	InitialBackoff time.Duration `envconfig:"AMADEUS_INITIAL_BACKOFF" default:"1s"`
}

// Store selects the quota persistence backend: file, postgres, mongo or memory.
type QuotaConfig struct {
	MonthlyLimit int    `envconfig:"QUOTA_MONTHLY_LIMIT" default:"2000"`
	TimeZone     string `envconfig:"QUOTA_TIMEZONE" default:"Europe/Berlin"`
	Store        string `envconfig:"QUOTA_STORE" default:"file"`
	FilePath     string `envconfig:"QUOTA_FILE" default:"api_quota.json"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"fullplanes"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"fullplanes"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Berlin"`
}

type MongoConfig struct {
	URI        string        `envconfig:"MONGODB_URI" default:"mongodb://localhost:27017"`
	Database   string        `envconfig:"MONGO_DB" default:"fullplanes"`
	Collection string        `envconfig:"MONGO_QUOTA_COLLECTION" default:"api_quota"`
	Timeout    time.Duration `envconfig:"MONGO_TIMEOUT" default:"10s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Berlin",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Session: SessionConfig{
			TTL: time.Hour,
		},
		Amadeus: AmadeusConfig{
			ClientID:       "test-client",
			ClientSecret:   "test-secret",
			Timeout:        2 * time.Second,
			MaxAttempts:    3,
			InitialBackoff: time.Millisecond,
		},
		Quota: QuotaConfig{
			MonthlyLimit: 10,
			TimeZone:     "Europe/Berlin",
			Store:        "memory",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Berlin",
		},
		Mongo: MongoConfig{
			URI:        "mongodb://localhost:27018",
			Database:   "test_db",
			Collection: "api_quota",
			Timeout:    5 * time.Second,
		},
	}
}
