package kingdom

import (
	"time"

	"github.com/osse101/kingdomroll/internal/domain"
)

// Starting state for a new kingdom.
var StartingResources = domain.Resources{
	domain.ResourceGold:  500,
	domain.ResourceFood:  300,
	domain.ResourceWood:  300,
	domain.ResourceStone: 200,
}

// StartingBuildings are granted at level 1 on kingdom creation
var StartingBuildings = []string{"farm", "lumber_mill"}

// Collection tuning
const (
	// CollectCapHours caps how much idle production accrues
	CollectCapHours = 24

	DefaultCollectMinInterval = time.Hour
	DefaultLeaderboardLimit   = 10
)

// Log messages
const (
	LogMsgKingdomStarted    = "Kingdom started"
	LogMsgResourcesCollected = "Resources collected"
	LogMsgBuildingUpgraded  = "Building upgraded"
)
