package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Supported networks
const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
)

// Supported cache drivers
const (
	CacheDriverRedis    = "redis"
	CacheDriverPostgres = "postgres"
	CacheDriverMemory   = "memory"
)

// Config represents the API server configuration
type Config struct {
	Environment string           `yaml:"environment" default:"development" validate:"oneof=development production test"`
	Server      ServerConfig     `yaml:"server"`
	Logging     LoggingConfig    `yaml:"logging"`
	Ethereum    EthereumConfig   `yaml:"ethereum"`
	Cache       CacheConfig      `yaml:"cache"`
	Auth        AuthConfig       `yaml:"auth"`
	CORS        CORSConfig       `yaml:"cors"`
	RateLimit   RateLimitConfig  `yaml:"rate_limit"`
	Assets      AssetsConfig     `yaml:"assets"`
	Monitoring  MonitoringConfig `yaml:"monitoring"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"3001" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"120s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"45s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" default:"10485760" validate:"min=1024"`
	// TrustProxy takes the client IP from X-Forwarded-For / X-Real-IP. Enable it
	// only behind a proxy that overwrites those headers; otherwise clients can
	// pick their own rate-limit bucket.
	TrustProxy      bool          `yaml:"trust_proxy"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"console" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
	// Rotation settings apply when OutputPath is a file.
	MaxSizeMB  int  `yaml:"max_size_mb" default:"100"`
	MaxBackups int  `yaml:"max_backups" default:"5"`
	MaxAgeDays int  `yaml:"max_age_days" default:"14"`
	Compress   bool `yaml:"compress"`
}

// EthereumConfig contains the EVM gateway settings
type EthereumConfig struct {
	Network        string        `yaml:"network" default:"testnet" validate:"oneof=mainnet testnet"`
	RPCURL         string        `yaml:"rpc_url" default:"https://rpc.mantle.xyz" validate:"url"`
	TestnetRPCURL  string        `yaml:"testnet_rpc_url" default:"https://rpc.sepolia.mantle.xyz" validate:"url"`
	ChainID        int64         `yaml:"chain_id"`
	CallTimeout    time.Duration `yaml:"call_timeout" default:"10s"`
	DialTimeout    time.Duration `yaml:"dial_timeout" default:"15s"`
	MaxConcurrency int           `yaml:"max_concurrency" default:"16" validate:"min=1,max=256"`
	// RequestsPerSecond throttles outbound RPC calls; 0 disables throttling.
	RequestsPerSecond float64         `yaml:"requests_per_second" default:"50" validate:"min=0"`
	Burst             int             `yaml:"burst" default:"100" validate:"min=1"`
	Contracts         ContractsConfig `yaml:"contracts"`
}

// ContractsConfig holds the deployed contract addresses
type ContractsConfig struct {
	DEXCore            string `yaml:"dex_core" validate:"required,eth_addr"`
	RWAFactory         string `yaml:"rwa_factory" validate:"required,eth_addr"`
	ComplianceRegistry string `yaml:"compliance_registry" validate:"required,eth_addr"`
	PriceOracle        string `yaml:"price_oracle" validate:"required,eth_addr"`
	LendingProtocol    string `yaml:"lending_protocol" validate:"omitempty,eth_addr"`
	YieldDistributor   string `yaml:"yield_distributor" validate:"omitempty,eth_addr"`
}

// CacheConfig contains key-value store and TTL settings
type CacheConfig struct {
	Driver   string         `yaml:"driver" default:"redis" validate:"oneof=redis postgres memory"`
	RedisURL string         `yaml:"redis_url" default:"redis://localhost:6379"`
	Database DatabaseConfig `yaml:"database"`
	// PurgeInterval controls how often expired rows are deleted by the postgres backend.
	PurgeInterval time.Duration `yaml:"purge_interval" default:"5m"`
	TTL           TTLConfig     `yaml:"ttl"`
}

// TTLConfig holds per data class cache lifetimes
type TTLConfig struct {
	Listing   time.Duration `yaml:"listing" default:"600s"`
	Asset     time.Duration `yaml:"asset" default:"300s"`
	Featured  time.Duration `yaml:"featured" default:"1800s"`
	AllAssets time.Duration `yaml:"all_assets" default:"3600s"`
	Nonce     time.Duration `yaml:"nonce" default:"300s"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost"`
	Port     int    `yaml:"port" default:"5432"`
	User     string `yaml:"user" default:"postgres"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"rwadex"`
	SSLMode  string `yaml:"ssl_mode" default:"disable"`
	PoolSize int    `yaml:"pool_size" default:"10"`
}

// AuthConfig holds wallet session settings
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" validate:"required,min=16"`
	JWTIssuer string        `yaml:"jwt_issuer" default:"rwa-dex-api"`
	JWTExpiry time.Duration `yaml:"jwt_expiry" default:"168h"`
}

// CORSConfig holds cross-origin settings
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" default:"[\"http://localhost:3000\"]"`
	MaxAge         int      `yaml:"max_age" default:"300"`
}

// RateLimitConfig holds the per-client request budget
type RateLimitConfig struct {
	Enabled     bool          `yaml:"enabled" default:"true"`
	Window      time.Duration `yaml:"window" default:"15m"`
	MaxRequests int64         `yaml:"max_requests" default:"100" validate:"min=1"`
}

// AssetsConfig tunes the aggregation endpoints
type AssetsConfig struct {
	FeaturedCount int `yaml:"featured_count" default:"5" validate:"min=1,max=100"`
	// MaxTokens bounds how many factory entries a single fan-out will read.
	MaxTokens uint64 `yaml:"max_tokens" default:"10000" validate:"min=1"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled     bool   `yaml:"enabled" default:"true"`
	MetricsHost string `yaml:"metrics_host" default:"0.0.0.0"`
	MetricsPort int    `yaml:"metrics_port" default:"9090" validate:"min=1,max=65535"`
}

// ActiveRPCURL returns the RPC endpoint for the configured network.
func (c *EthereumConfig) ActiveRPCURL() string {
	if c.Network == NetworkMainnet {
		return c.RPCURL
	}
	return c.TestnetRPCURL
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads the configuration from path (optional), applies defaults,
// environment overrides and validation.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Default returns a configuration holding only the struct tag defaults. It is
// not valid until secrets and contract addresses are filled in.
func Default() (*Config, error) {
	cfg := new(Config)
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags plus the cross-field rules.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}

	if cfg.Cache.Driver == CacheDriverRedis && cfg.Cache.RedisURL == "" {
		return errors.New("cache.redis_url is required for the redis driver")
	}
	if cfg.Cache.Driver == CacheDriverMemory && cfg.IsProduction() {
		return errors.New("cache.driver memory is not allowed in production")
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.Window <= 0 {
		return errors.New("rate_limit.window must be positive")
	}
	if cfg.Auth.JWTExpiry <= 0 {
		return errors.New("auth.jwt_expiry must be positive")
	}
	if cfg.Ethereum.CallTimeout <= 0 {
		return errors.New("ethereum.call_timeout must be positive")
	}
	return nil
}
