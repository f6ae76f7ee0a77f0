package models

// Config holds all application configuration loaded from the environment
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	Billing  BillingConfig
}

// AppConfig holds general application settings
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig holds NATS connection settings
type NATSConfig struct {
	URL string
}

// JWTConfig holds token signing settings
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// LoggerConfig holds logger settings
type LoggerConfig struct {
	Level    string
	FilePath string
}

// BillingConfig holds billing defaults
type BillingConfig struct {
	// FallbackRatePerKm is used when the cost_per_km setting is absent.
	FallbackRatePerKm float64
	// SettlementTypeLabel names the receipt type used for checkout settlements.
	SettlementTypeLabel string
}
