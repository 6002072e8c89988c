package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Resolution ResolutionConfig
	Telemetry  TelemetryConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       int
	User       string
	Password   string
	DBName     string
	SSLMode    string
	SQLitePath string
	// ResetOnStart reloads seed data on every start.
	ResetOnStart bool
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// IsSQLite reports whether the sqlite driver is selected
func (c DatabaseConfig) IsSQLite() bool {
	return strings.EqualFold(c.Driver, "sqlite")
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	PASSWORD string
	Enabled  bool
}

// ResolutionConfig holds the resolution engine defaults
type ResolutionConfig struct {
	Policy             string
	DefaultCustomerID  string
	DefaultMerchantID  string
	DefaultDriverID    string
	DefaultOrderAmount float64
	DeliveryCharge     float64
	CurrencySymbol     string
}

// TelemetryConfig selects the delivery telemetry provider
type TelemetryConfig struct {
	Mode string
	Seed int64
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:       getEnv("DB_DRIVER", "sqlite"),
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnvAsInt("DB_PORT", 5432),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			DBName:       getEnv("DB_NAME", "resolution_desk"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			SQLitePath:   getEnv("SQLITE_PATH", "file:resolution_desk?mode=memory&cache=shared"),
			ResetOnStart: getEnvAsBool("DB_RESET_ON_START", true),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
		},
		Resolution: ResolutionConfig{
			Policy:             getEnv("RESOLUTION_POLICY", "compensate_first"),
			DefaultCustomerID:  getEnv("DEFAULT_CUSTOMER_ID", "C001"),
			DefaultMerchantID:  getEnv("DEFAULT_MERCHANT_ID", "M001"),
			DefaultDriverID:    getEnv("DEFAULT_DRIVER_ID", "D001"),
			DefaultOrderAmount: getEnvAsFloat("DEFAULT_ORDER_AMOUNT", 200),
			DeliveryCharge:     getEnvAsFloat("DELIVERY_CHARGE", 30),
			CurrencySymbol:     getEnv("CURRENCY_SYMBOL", "₹"),
		},
		Telemetry: TelemetryConfig{
			Mode: getEnv("TELEMETRY_MODE", "simulated"),
			Seed: int64(getEnvAsInt("TELEMETRY_SEED", 42)),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
