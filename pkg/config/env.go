package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// lookupFunc matches os.LookupEnv.
type lookupFunc func(key string) (string, bool)

// applyEnv overrides file values with the deployment environment variables.
func applyEnv(cfg *Config, lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("NODE_ENV", &cfg.Environment)
	str("HOST", &cfg.Server.Host)
	str("LOG_LEVEL", &cfg.Logging.Level)
	str("LOG_FORMAT", &cfg.Logging.Format)
	str("MANTLE_RPC_URL", &cfg.Ethereum.RPCURL)
	str("MANTLE_TESTNET_RPC_URL", &cfg.Ethereum.TestnetRPCURL)
	str("NETWORK", &cfg.Ethereum.Network)
	str("DEX_CORE_ADDRESS", &cfg.Ethereum.Contracts.DEXCore)
	str("RWA_FACTORY_ADDRESS", &cfg.Ethereum.Contracts.RWAFactory)
	str("COMPLIANCE_REGISTRY_ADDRESS", &cfg.Ethereum.Contracts.ComplianceRegistry)
	str("PRICE_ORACLE_ADDRESS", &cfg.Ethereum.Contracts.PriceOracle)
	str("LENDING_PROTOCOL_ADDRESS", &cfg.Ethereum.Contracts.LendingProtocol)
	str("YIELD_DISTRIBUTOR_ADDRESS", &cfg.Ethereum.Contracts.YieldDistributor)
	str("CACHE_DRIVER", &cfg.Cache.Driver)
	str("REDIS_URL", &cfg.Cache.RedisURL)
	str("DATABASE_HOST", &cfg.Cache.Database.Host)
	str("DATABASE_USER", &cfg.Cache.Database.User)
	str("DATABASE_PASSWORD", &cfg.Cache.Database.Password)
	str("DATABASE_NAME", &cfg.Cache.Database.Database)
	str("JWT_SECRET", &cfg.Auth.JWTSecret)

	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if v, ok := lookup("JWT_EXPIRES_IN"); ok && v != "" {
		d, err := ParseExpiry(v)
		if err != nil {
			return fmt.Errorf("JWT_EXPIRES_IN: %w", err)
		}
		cfg.Auth.JWTExpiry = d
	}
	if v, ok := lookup("CORS_ORIGIN"); ok && v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.CORS.AllowedOrigins = origins
	}
	// RATE_LIMIT_WINDOW is expressed in milliseconds.
	if v, ok := lookup("RATE_LIMIT_WINDOW"); ok && v != "" {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT_WINDOW: %w", err)
		}
		cfg.RateLimit.Window = time.Duration(ms) * time.Millisecond
	}
	if v, ok := lookup("RATE_LIMIT_MAX_REQUESTS"); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT_MAX_REQUESTS: %w", err)
		}
		cfg.RateLimit.MaxRequests = n
	}
	if v, ok := lookup("CHAIN_ID"); ok && v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("CHAIN_ID: %w", err)
		}
		cfg.Ethereum.ChainID = id
	}
	return nil
}

// ParseExpiry accepts Go durations ("36h", "90m") and day suffixed values ("7d").
func ParseExpiry(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("invalid day duration %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive: %q", s)
	}
	return d, nil
}
