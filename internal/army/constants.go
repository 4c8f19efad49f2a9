package army

import "time"

// ScoutCooldown is the minimum gap between scouting missions
const ScoutCooldown = time.Hour

// MaxRecruitCount caps a single recruit order
const MaxRecruitCount = 100

// Log messages
const (
	LogMsgTroopsRecruited = "Troops recruited"
	LogMsgScoutDispatched = "Scout dispatched"
)
