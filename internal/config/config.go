package config

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
)

// Config holds all application settings
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Email    EmailConfig
}

// ServerConfig holds the HTTP server settings
type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
}

// DatabaseConfig holds the PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig holds the unified Redis connection settings.
// Supported modes: single, sentinel, cluster.
type RedisConfig struct {
	// Mode: "single", "sentinel" or "cluster". Defaults to "single".
	Mode string `mapstructure:"mode"`

	// Addrs: list of host:port addresses, used in every mode. For 'single'
	// the first entry wins when non-empty.
	Addrs []string `mapstructure:"addrs"`

	// Addr: single-mode address, used when Mode is "single" and Addrs is empty.
	Addr string `mapstructure:"addr"`

	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	// MasterName: Redis master name (sentinel mode only)
	MasterName string `mapstructure:"master_name"`
}

// AuthConfig holds the admin credential and token settings
type AuthConfig struct {
	AdminUsername     string `mapstructure:"admin_username"`
	AdminPasswordHash string `mapstructure:"admin_password_hash"`
	JWTSecret         string `mapstructure:"jwt_secret"`
	TokenExpiryHrs    int    `mapstructure:"token_expiry_hrs"`
}

// EmailConfig holds the score-notification email settings
type EmailConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	ResendAPIKey string `mapstructure:"resend_api_key"`
	From         string `mapstructure:"from"`
}

// PostgresConnectionString builds the PostgreSQL DSN
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Load reads the configuration from an optional file and environment
// variables. Environment variables are bound explicitly and override
// file values.
func Load(configPath string) (*Config, error) {
	vip := viper.New() // fresh instance, no global state

	vip.BindEnv("server.port", "SERVER_PORT")

	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")

	vip.BindEnv("redis.mode", "REDIS_MODE")
	vip.BindEnv("redis.addrs", "REDIS_ADDRS")
	vip.BindEnv("redis.addr", "REDIS_ADDR")
	vip.BindEnv("redis.password", "REDIS_PASSWORD")
	vip.BindEnv("redis.db", "REDIS_DB")
	vip.BindEnv("redis.master_name", "REDIS_MASTER_NAME")

	vip.BindEnv("auth.admin_username", "AUTH_ADMIN_USERNAME")
	vip.BindEnv("auth.admin_password_hash", "AUTH_ADMIN_PASSWORD_HASH")
	vip.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	vip.BindEnv("auth.token_expiry_hrs", "AUTH_TOKEN_EXPIRY_HRS")

	vip.BindEnv("email.enabled", "EMAIL_ENABLED")
	vip.BindEnv("email.resend_api_key", "RESEND_API_KEY")
	vip.BindEnv("email.from", "EMAIL_FROM")

	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				log.Printf("Config file '%s' not found, using environment variables/defaults.", configPath)
			} else {
				log.Printf("Warning: could not read config file '%s': %v", configPath, err)
			}
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Auth.TokenExpiryHrs <= 0 {
		cfg.Auth.TokenExpiryHrs = 24
	}

	if os.Getenv("GIN_MODE") != "release" {
		log.Printf("--- Loaded configuration values ---")
		log.Printf("Server Port: %s", cfg.Server.Port)
		log.Printf("Database Host: %s", cfg.Database.Host)
		log.Printf("Database Name: %s", cfg.Database.DBName)
		log.Printf("Redis Addr: %s", cfg.Redis.Addr)
		log.Printf("Redis Mode: %s", cfg.Redis.Mode)
		log.Printf("Email Enabled: %t", cfg.Email.Enabled)
		log.Printf("JWT Secret Set: %t", cfg.Auth.JWTSecret != "")
		log.Printf("-----------------------------------")
	}

	if cfg.Database.Host == "" || cfg.Database.DBName == "" || cfg.Database.User == "" {
		return nil, fmt.Errorf("database configuration (host, dbname, user) is incomplete in config (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT secret is required in config (check AUTH_JWT_SECRET env var)")
	}
	if cfg.Auth.AdminUsername == "" || cfg.Auth.AdminPasswordHash == "" {
		return nil, fmt.Errorf("admin credentials are required in config (check AUTH_ADMIN_USERNAME, AUTH_ADMIN_PASSWORD_HASH env vars)")
	}
	if cfg.Email.Enabled && (cfg.Email.ResendAPIKey == "" || cfg.Email.From == "") {
		return nil, fmt.Errorf("email is enabled but resend_api_key or from is missing (check RESEND_API_KEY, EMAIL_FROM env vars)")
	}

	return &cfg, nil
}
