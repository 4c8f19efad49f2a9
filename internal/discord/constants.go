package discord

import "time"

// Slash command names
const (
	CmdRoll        = "roll"
	CmdTiers       = "tiers"
	CmdMechanics   = "mechanics"
	CmdHistory     = "history"
	CmdWallet      = "wallet"
	CmdGive        = "give"
	CmdExport      = "export"
	CmdStart       = "start"
	CmdCollect     = "collect"
	CmdUpgrade     = "upgrade"
	CmdBuildings   = "buildings"
	CmdRecruit     = "recruit"
	CmdArmy        = "army"
	CmdExplore     = "explore"
	CmdScout       = "scout"
	CmdStamina     = "stamina"
	CmdLeaderboard = "leaderboard"
	CmdSetChannel  = "set-giveaway-channel"
	CmdUptime      = "uptime"
)

// Embed colors
const (
	ColorSuccess = 0x2ecc71
	ColorInfo    = 0x3498db
	ColorWarning = 0xf39c12
	ColorError   = 0xe74c3c
	ColorGold    = 0xf1c40f
	ColorNeutral = 0x95a5a6
)

// DefaultRollSuspense is the pause between the deferred ack and the tier
// reveal. Kept short of Discord's 15 minute edit window by a wide margin.
const DefaultRollSuspense = 2 * time.Second

// commandCooldown is the minimum gap between repeated uses of the same
// command by the same user, enforced in-process.
const commandCooldown = 3 * time.Second

// presenceUpdateInterval drives the uptime shown in the bot's presence.
const presenceUpdateInterval = 5 * time.Minute

// Footer constants for standardized embed footers.
const (
	FooterKingdomRoll      = "KingdomRoll"
	FooterKingdomRollAdmin = "KingdomRoll Admin"
)
