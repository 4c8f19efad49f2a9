package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Constraint names referenced when mapping unique violations to domain errors
const (
	ConstraintRollLockPkey     = "roll_locks_pkey"
	ConstraintPlayersRegionKey = "players_guild_region_key"
	ConstraintPlayersUserKey   = "players_user_guild_key"
	ConstraintDailyRollKey     = "rolls_one_daily_per_day"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
)
