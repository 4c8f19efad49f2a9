package explore

import "time"

// DefaultDuration is how long an exploration takes when not configured
const DefaultDuration = 30 * time.Minute

// Log messages
const (
	LogMsgExploreScheduled = "Exploration scheduled"
	LogMsgExploreResolved  = "Exploration resolved"
)
