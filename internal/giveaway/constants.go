package giveaway

import "time"

// Cache tuning
const (
	DefaultCacheSize = 500
	DefaultCacheTTL  = 10 * time.Minute
)

// Log messages
const (
	LogMsgChannelSet = "Giveaway channel configured"
)
