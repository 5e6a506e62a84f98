package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Match    MatchConfig
	Services ServicesConfig
	APIKey   APIKeyConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
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

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// MatchConfig contains matching coordinator configuration
type MatchConfig struct {
	// WaitBudget is how long a submit call waits for an opponent before
	// the requester is removed from the pool.
	WaitBudget time.Duration
	// SessionTTL bounds how long an active-session marker survives in
	// Redis if the collab service never reports the session ended.
	SessionTTL time.Duration
}

// ServicesConfig contains URLs for the collaborating services
type ServicesConfig struct {
	QuestionServiceURL string
	CollabServiceURL   string
}

// APIKeyConfig contains per-service keys for internal HTTP calls
type APIKeyConfig struct {
	MatchService    string
	QuestionService string
	CollabService   string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
