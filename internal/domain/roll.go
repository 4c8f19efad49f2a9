package domain

import "time"

// RollSource identifies where a roll entitlement came from.
type RollSource string

const (
	RollSourceDaily       RollSource = "daily"
	RollSourceBonus       RollSource = "bonus"
	RollSourceEvent       RollSource = "event"
	RollSourceMarketplace RollSource = "marketplace"
)

// ValidSource reports whether s is a known roll source.
func ValidSource(s RollSource) bool {
	switch s {
	case RollSourceDaily, RollSourceBonus, RollSourceEvent, RollSourceMarketplace:
		return true
	}
	return false
}

// Roll is a single recorded roll. TierWon is nil for a granted roll
// that has not been spent yet.
type Roll struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Source    RollSource `json:"source"`
	TierWon   *int       `json:"tier_won,omitempty"`
	IsPity    bool       `json:"is_pity"`
	GrantedBy string     `json:"granted_by,omitempty"`
	RollDate  time.Time  `json:"roll_date"`
	RolledAt  time.Time  `json:"rolled_at"`
}

// RollResult is what a completed roll resolves to.
type RollResult struct {
	Tier   int        `json:"tier"`
	IsPity bool       `json:"is_pity"`
	Source RollSource `json:"source"`
}

// Prize is the durable record of a win, denormalized for export.
type Prize struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Wallet    string    `json:"wallet"`
	Tier      int       `json:"tier"`
	TierLabel string    `json:"tier_label"`
	WonAt     time.Time `json:"won_at"`
}

// GiveawayChannel is the per-guild channel where roll commands are allowed.
type GiveawayChannel struct {
	GuildID   string    `json:"guild_id"`
	ChannelID string    `json:"channel_id"`
	UpdatedBy string    `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}
