package user

import "time"

// Cache tuning
const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 5 * time.Minute
)

// Wallet address validation
const (
	WalletMinLength = 32
	WalletMaxLength = 44
)

// Log messages
const (
	LogMsgWalletBound      = "Wallet address bound"
	LogMsgWalletRejected   = "Wallet address rejected"
	LogMsgCacheInvalidated = "User cache entry invalidated"
)
