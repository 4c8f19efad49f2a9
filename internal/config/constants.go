package config

import "time"

// Configuration file paths
const (
	ConfigPathTiers = "configs/tiers.json"
)

// Defaults applied when the corresponding env var is unset
const (
	DefaultLogDir               = "logs"
	DefaultDBMaxConns           = 20
	DefaultDBMaxConnIdleTime    = 5 * time.Minute
	DefaultDBMaxConnLifetime    = 30 * time.Minute
	DefaultWalletChangeCooldown = 72 * time.Hour
	DefaultExploreDuration      = 30 * time.Minute
	DefaultCollectMinInterval   = time.Hour
)
