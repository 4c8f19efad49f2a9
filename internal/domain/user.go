package domain

import "time"

// User represents a registered giveaway participant
type User struct {
	InternalID      string     `json:"internal_id"`
	DiscordID       string     `json:"discord_id"`
	Username        string     `json:"username"`
	Wallet          string     `json:"wallet,omitempty"`
	WalletUpdatedAt *time.Time `json:"wallet_updated_at,omitempty"`
	Pity            PityState  `json:"pity"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// PityState tracks progress toward a guaranteed top-tier award.
// Qualified stays set until a pity award is handed out, even if the
// streak later breaks.
type PityState struct {
	Streak        int        `json:"streak"`
	Qualified     bool       `json:"qualified"`
	LastRollDate  *time.Time `json:"last_roll_date,omitempty"`
	LastAwardedAt *time.Time `json:"last_awarded_at,omitempty"`
}
