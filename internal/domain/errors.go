package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound  = "user not found"
	ErrMsgWalletMissing = "no wallet address on file"

	// Wallet errors
	ErrMsgInvalidWalletAddress = "invalid wallet address"
	ErrMsgWalletChangeTooSoon  = "wallet was changed too recently"

	// Roll errors
	ErrMsgRollInProgress   = "a roll is already in progress"
	ErrMsgDailyRollUsed    = "daily roll already used"
	ErrMsgNoBonusRolls     = "no bonus rolls available"
	ErrMsgRollNotFound     = "roll not found"
	ErrMsgUnknownSource    = "unknown roll source"
	ErrMsgChannelNotSet    = "giveaway channel not configured"
	ErrMsgWrongChannel     = "command not allowed in this channel"
	ErrMsgMissingRole      = "required role missing"
	ErrMsgTooManyBonusRolls = "bonus roll grant limit exceeded"

	// Kingdom errors
	ErrMsgPlayerNotFound     = "player not found"
	ErrMsgPlayerExists       = "kingdom already started"
	ErrMsgRegionTaken        = "region already claimed"
	ErrMsgRaceNotFound       = "race not found"
	ErrMsgRegionNotFound     = "region not found"
	ErrMsgBuildingNotFound   = "building not found"
	ErrMsgBuildingMaxLevel   = "building at max level"
	ErrMsgInsufficientFunds  = "insufficient resources"
	ErrMsgCollectTooSoon     = "collection attempted too soon"
	ErrMsgInsufficientStamina = "insufficient stamina"
	ErrMsgBaseLevelTooLow    = "base level too low"

	// Army errors
	ErrMsgTroopNotFound   = "troop not found"
	ErrMsgScoutOnCooldown = "scout on cooldown"
	ErrMsgTargetNotFound  = "scout target not found"

	// Exploration errors
	ErrMsgExploreInProgress = "exploration already in progress"
	ErrMsgTaskNotFound      = "scheduled task not found"
	ErrMsgNoEncounters      = "no encounters available"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound  = errors.New(ErrMsgUserNotFound)
	ErrWalletMissing = errors.New(ErrMsgWalletMissing)

	// Wallet errors
	ErrInvalidWalletAddress = errors.New(ErrMsgInvalidWalletAddress)
	ErrWalletChangeTooSoon  = errors.New(ErrMsgWalletChangeTooSoon)

	// Roll errors
	ErrRollInProgress    = errors.New(ErrMsgRollInProgress)
	ErrDailyRollUsed     = errors.New(ErrMsgDailyRollUsed)
	ErrNoBonusRolls      = errors.New(ErrMsgNoBonusRolls)
	ErrRollNotFound      = errors.New(ErrMsgRollNotFound)
	ErrUnknownSource     = errors.New(ErrMsgUnknownSource)
	ErrChannelNotSet     = errors.New(ErrMsgChannelNotSet)
	ErrWrongChannel      = errors.New(ErrMsgWrongChannel)
	ErrMissingRole       = errors.New(ErrMsgMissingRole)
	ErrTooManyBonusRolls = errors.New(ErrMsgTooManyBonusRolls)

	// Kingdom errors
	ErrPlayerNotFound      = errors.New(ErrMsgPlayerNotFound)
	ErrPlayerExists        = errors.New(ErrMsgPlayerExists)
	ErrRegionTaken         = errors.New(ErrMsgRegionTaken)
	ErrRaceNotFound        = errors.New(ErrMsgRaceNotFound)
	ErrRegionNotFound      = errors.New(ErrMsgRegionNotFound)
	ErrBuildingNotFound    = errors.New(ErrMsgBuildingNotFound)
	ErrBuildingMaxLevel    = errors.New(ErrMsgBuildingMaxLevel)
	ErrInsufficientFunds   = errors.New(ErrMsgInsufficientFunds)
	ErrCollectTooSoon      = errors.New(ErrMsgCollectTooSoon)
	ErrInsufficientStamina = errors.New(ErrMsgInsufficientStamina)
	ErrBaseLevelTooLow     = errors.New(ErrMsgBaseLevelTooLow)

	// Army errors
	ErrTroopNotFound   = errors.New(ErrMsgTroopNotFound)
	ErrScoutOnCooldown = errors.New(ErrMsgScoutOnCooldown)
	ErrTargetNotFound  = errors.New(ErrMsgTargetNotFound)

	// Exploration errors
	ErrExploreInProgress = errors.New(ErrMsgExploreInProgress)
	ErrTaskNotFound      = errors.New(ErrMsgTaskNotFound)
	ErrNoEncounters      = errors.New(ErrMsgNoEncounters)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
