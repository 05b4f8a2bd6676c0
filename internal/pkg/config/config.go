package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeouts, windows), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	Redis       RedisConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Catalog     CatalogConfig
	Reservation ReservationConfig
	Pricing     PricingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Berlin"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	// false skips the shared cache; the in-process store still applies
	Enabled bool `envconfig:"REDIS_ENABLED" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Berlin"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CatalogConfig struct {
	DebounceQuiet time.Duration `envconfig:"CATALOG_DEBOUNCE_QUIET" default:"300ms"`
	CacheTTL      time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"5m"`
	RefreshSpec   string        `envconfig:"CATALOG_REFRESH_SPEC" default:"0 */5 * * * *"`
	Locale        string        `envconfig:"CATALOG_LOCALE" default:"de"`
	PageSize      int           `envconfig:"CATALOG_PAGE_SIZE" default:"12"`
}

type ReservationConfig struct {
	TimeZone         string        `envconfig:"RESERVATION_TIMEZONE" default:"Europe/Berlin"`
	SessionIdleTTL   time.Duration `envconfig:"SESSION_IDLE_TTL" default:"30m"`
	SubmitTimeout    time.Duration `envconfig:"BOOKING_SUBMIT_TIMEOUT" default:"10s"`
	FallbackLocation string        `envconfig:"RESERVATION_FALLBACK_LOCATION" default:"Bremen"`
	EvictionSpec     string        `envconfig:"SESSION_EVICTION_SPEC" default:"0 * * * * *"`
}

type PricingConfig struct {
	TaxPercent float64 `envconfig:"PRICING_TAX_PERCENT" default:"0"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location resolves the zone reservation dates are entered in.
func (c *ReservationConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservation timezone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
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
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Catalog: CatalogConfig{
			DebounceQuiet: 300 * time.Millisecond,
			CacheTTL:      5 * time.Minute,
			RefreshSpec:   "0 */5 * * * *",
			Locale:        "de",
			PageSize:      12,
		},
		Reservation: ReservationConfig{
			TimeZone:         "UTC",
			SessionIdleTTL:   30 * time.Minute,
			SubmitTimeout:    2 * time.Second,
			FallbackLocation: "Bremen",
			EvictionSpec:     "0 * * * * *",
		},
		Redis: RedisConfig{
			Addr:    "localhost:16379",
			Enabled: false,
		},
		Pricing: PricingConfig{
			TaxPercent: 0,
		},
	}
}
