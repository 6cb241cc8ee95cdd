package app

import "time"

// Config contains all runtime configuration loaded from environment variables.
type Config struct {
	HTTPAddr  string
	LogLevel  string
	LogPretty bool

	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int

	DatabaseURL    string
	DBMaxConns     int32
	DBMinConns     int32
	MigrateOnStart bool

	// If true:
	// - /readyz returns 503 unless DB is configured and reachable.
	ReadinessRequireDB bool

	CORSAllowedOrigins   []string
	CORSAllowCredentials bool
	CORSMaxAgeSeconds    int
}

// LoadConfig loads Config from environment variables with defaults.
func LoadConfig() Config {
	return Config{
		HTTPAddr:  EnvString("SPIRITS_HTTP_ADDR", "0.0.0.0:8080"),
		LogLevel:  EnvString("SPIRITS_LOG_LEVEL", "info"),
		LogPretty: EnvBool("SPIRITS_LOG_PRETTY", false),

		ReadHeaderTimeout: EnvDuration("SPIRITS_HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
		ReadTimeout:       EnvDuration("SPIRITS_HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:      EnvDuration("SPIRITS_HTTP_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:       EnvDuration("SPIRITS_HTTP_IDLE_TIMEOUT", 60*time.Second),

		MaxHeaderBytes: EnvInt("SPIRITS_HTTP_MAX_HEADER_BYTES", 1<<20),

		DatabaseURL:    EnvString("SPIRITS_DATABASE_URL", ""),
		DBMaxConns:     EnvInt32("SPIRITS_DB_MAX_CONNS", 10),
		DBMinConns:     EnvInt32("SPIRITS_DB_MIN_CONNS", 0),
		MigrateOnStart: EnvBool("SPIRITS_DB_MIGRATE", true),

		ReadinessRequireDB: EnvBool("SPIRITS_READINESS_REQUIRE_DB", false),

		CORSAllowedOrigins:   EnvStringSlice("SPIRITS_CORS_ALLOWED_ORIGINS", nil),
		CORSAllowCredentials: EnvBool("SPIRITS_CORS_ALLOW_CREDENTIALS", false),
		CORSMaxAgeSeconds:    EnvInt("SPIRITS_CORS_MAX_AGE_SECONDS", 600),
	}
}
