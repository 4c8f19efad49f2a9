package discord

import (
	"errors"

	"github.com/osse101/kingdomroll/internal/domain"
)

// Friendly message constants for Discord responses
const (
	// Rolls
	MsgRollInProgress = "🎲 **Hold on!**\nYour previous roll is still being resolved."
	MsgDailyRollUsed  = "📅 **Already Rolled Today**\nCome back tomorrow, or use a bonus roll if you have one."
	MsgNoBonusRolls   = "🎟️ **No Bonus Rolls**\nYou have no bonus rolls left."
	MsgWalletMissing  = "👛 **No Wallet Bound**\nBind a wallet with `/wallet bind` before rolling."
	MsgGrantLimit     = "🎟️ **Grant Limit**\nThat would push the user past the bonus roll cap."

	// Wallet
	MsgInvalidWallet  = "👛 **Invalid Address**\nThat doesn't look like a Solana address."
	MsgWalletCooldown = "👛 **Too Soon**\nYour wallet was changed recently. Try again in a few days."

	// Channel / role gating
	MsgWrongChannel  = "📣 **Wrong Channel**\nThis command only works in the giveaway channel."
	MsgChannelNotSet = "📣 **No Giveaway Channel**\nAsk a moderator to run `/set-giveaway-channel` first."
	MsgMissingRole   = "🔒 **Level Too Low**\nYou need the required role to use this command."
	MsgAdminOnly     = "🔒 **Moderators Only**\nYou don't have permission to use this command."

	// Kingdom
	MsgNoKingdom           = "🏰 **No Kingdom**\nFound one first with `/start`."
	MsgKingdomExists       = "🏰 **Already Founded**\nYou already rule a kingdom in this server."
	MsgRegionTaken         = "🗺️ **Region Claimed**\nSomeone got there first. Pick another region."
	MsgInsufficientFunds   = "💰 **Not Enough Resources**\nYour treasury can't cover this."
	MsgCollectTooSoon      = "⏳ **Nothing To Collect Yet**\nYour workers need more time."
	MsgBuildingMaxLevel    = "🏗️ **Max Level**\nThat building can't be upgraded further."
	MsgInsufficientStamina = "⚡ **Too Tired**\nNot enough stamina. It regenerates over time."
	MsgBaseLevelTooLow     = "🏰 **Base Level Too Low**\nUpgrade your kingdom before training these."

	// Army / exploration
	MsgScoutCooldown     = "🔭 **Scouts Resting**\nYour scouts need to recover before heading out again."
	MsgTargetNotFound    = "🔭 **Target Not Found**\nThat player has no kingdom in this server."
	MsgExploreInProgress = "🧭 **Already Exploring**\nYour expedition hasn't returned yet."
	MsgNothingPending    = "🧭 **Nothing Out There**\nNo expedition is currently underway."

	// User
	MsgUserNotFound = "👤 **User Not Found**\nHave they rolled or started a kingdom yet?"

	// Cooldowns / generic
	MsgCommandCooldown = "⏳ Easy there! Give it a few seconds."
	MsgGenericError    = "❌ Something went wrong. Try again in a moment."
)

// friendlyError maps service errors to user-facing messages. Anything
// unrecognized gets the generic line so internals never reach chat.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrRollInProgress):
		return MsgRollInProgress
	case errors.Is(err, domain.ErrDailyRollUsed):
		return MsgDailyRollUsed
	case errors.Is(err, domain.ErrNoBonusRolls):
		return MsgNoBonusRolls
	case errors.Is(err, domain.ErrWalletMissing):
		return MsgWalletMissing
	case errors.Is(err, domain.ErrTooManyBonusRolls):
		return MsgGrantLimit
	case errors.Is(err, domain.ErrInvalidWalletAddress):
		return MsgInvalidWallet
	case errors.Is(err, domain.ErrWalletChangeTooSoon):
		return MsgWalletCooldown
	case errors.Is(err, domain.ErrWrongChannel):
		return MsgWrongChannel
	case errors.Is(err, domain.ErrChannelNotSet):
		return MsgChannelNotSet
	case errors.Is(err, domain.ErrMissingRole):
		return MsgMissingRole
	case errors.Is(err, domain.ErrPlayerNotFound):
		return MsgNoKingdom
	case errors.Is(err, domain.ErrPlayerExists):
		return MsgKingdomExists
	case errors.Is(err, domain.ErrRegionTaken):
		return MsgRegionTaken
	case errors.Is(err, domain.ErrInsufficientFunds):
		return MsgInsufficientFunds
	case errors.Is(err, domain.ErrCollectTooSoon):
		return MsgCollectTooSoon
	case errors.Is(err, domain.ErrBuildingMaxLevel):
		return MsgBuildingMaxLevel
	case errors.Is(err, domain.ErrInsufficientStamina):
		return MsgInsufficientStamina
	case errors.Is(err, domain.ErrBaseLevelTooLow):
		return MsgBaseLevelTooLow
	case errors.Is(err, domain.ErrScoutOnCooldown):
		return MsgScoutCooldown
	case errors.Is(err, domain.ErrTargetNotFound):
		return MsgTargetNotFound
	case errors.Is(err, domain.ErrExploreInProgress):
		return MsgExploreInProgress
	case errors.Is(err, domain.ErrUserNotFound):
		return MsgUserNotFound
	default:
		return MsgGenericError
	}
}
