// Package pity implements the guaranteed-reward streak tracker.
//
// Landing the lowest tier on consecutive calendar days builds a streak.
// Reaching the required streak marks the user qualified; qualification
// is sticky and survives a later streak break. A qualified user's next
// roll is forced to the top tier, at most once per calendar day.
package pity

import (
	"time"

	"github.com/osse101/kingdomroll/internal/domain"
)

const (
	// TargetTier is the tier that builds the streak.
	TargetTier = 1

	// RewardTier is the tier a pity award forces.
	RewardTier = 9

	// StreakRequired is the consecutive-day count needed to qualify.
	StreakRequired = 9
)

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// isYesterday reports whether prev is exactly one calendar day before day.
func isYesterday(prev, day time.Time) bool {
	return SameDay(prev.AddDate(0, 0, 1), day)
}

// NextState returns the streak state after a non-pity roll of rolledTier
// on the given day.
//
// Landing the target tier continues the streak when the previous roll was
// yesterday and restarts it at 1 otherwise. Any other tier resets the
// streak to zero. Qualification, once earned, is never revoked here; only
// an award clears it.
func NextState(state domain.PityState, rolledTier int, day time.Time) domain.PityState {
	next := state

	if rolledTier == TargetTier {
		if state.LastRollDate != nil && isYesterday(*state.LastRollDate, day) {
			next.Streak = state.Streak + 1
		} else {
			next.Streak = 1
		}
	} else {
		next.Streak = 0
	}

	if next.Streak >= StreakRequired {
		next.Qualified = true
	}

	d := day.UTC().Truncate(24 * time.Hour)
	next.LastRollDate = &d
	return next
}

// ShouldAward reports whether the next roll must be pity-forced: the user
// is qualified and has not already received a pity award today.
func ShouldAward(state domain.PityState, day time.Time) bool {
	if !state.Qualified {
		return false
	}
	if state.LastAwardedAt != nil && SameDay(*state.LastAwardedAt, day) {
		return false
	}
	return true
}

// Award returns the state after granting the pity reward: qualification
// and streak are cleared and the award day recorded, so a second award
// cannot happen the same day.
func Award(state domain.PityState, day time.Time) domain.PityState {
	next := state
	next.Qualified = false
	next.Streak = 0
	d := day.UTC().Truncate(24 * time.Hour)
	next.LastAwardedAt = &d
	return next
}
