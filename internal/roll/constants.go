package roll

// Grant limits
const (
	// MaxBonusGrant caps a single /give invocation
	MaxBonusGrant = 2

	// MaxUnspentBonus caps how many granted rolls a user may hold
	MaxUnspentBonus = 10
)

// PrizeTierThreshold is the lowest tier recorded as a durable prize row.
// Pity awards are always recorded regardless of tier.
const PrizeTierThreshold = 6

// Log messages
const (
	LogMsgRollCompleted     = "Roll completed"
	LogMsgPityAwarded       = "Pity reward awarded"
	LogMsgBonusGranted      = "Bonus rolls granted"
	LogMsgPityPersistFailed = "Failed to persist pity state, roll result stands"
	LogMsgPrizeWriteFailed  = "Failed to record prize row"
	LogMsgLockReleaseFailed = "Failed to release roll lock"
)
