package config

import "time"

// Fallback values applied by applyDefaults for settings the operator did
// not supply through any configuration source.
const (
	defaultTokenIssuer     = "bookshelf"
	defaultTokenDuration   = 7 * 24 * time.Hour
	defaultBcryptCost      = 12
	defaultHTTPAddress     = ":8080"
	defaultRateLimit       = 100
	defaultRateLimitWindow = time.Minute
)

// applyDefaults fills zero-valued optional fields of the merged
// configuration with their documented defaults. It runs after all sources
// are merged and before validation, so explicit values from any source
// always win.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = defaultBcryptCost
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RateLimit == 0 {
		cfg.Server.RateLimit = defaultRateLimit
	}
	if cfg.Server.RateLimitWindow == 0 {
		cfg.Server.RateLimitWindow = defaultRateLimitWindow
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	return nil
}
