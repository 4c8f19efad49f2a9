package domain

import "time"

// Stamina tuning.
const (
	StaminaMax           = 200
	StaminaRegenInterval = 15 * time.Minute
	StaminaCostExplore   = 20
	StaminaCostScout     = 50
)

// Resource names used in cost tables and player balances.
const (
	ResourceGold  = "gold"
	ResourceFood  = "food"
	ResourceWood  = "wood"
	ResourceStone = "stone"
)

// Resources maps resource name to amount.
type Resources map[string]int

// Clone returns a copy so callers can mutate freely.
func (r Resources) Clone() Resources {
	out := make(Resources, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// CanAfford reports whether r covers every amount in cost.
func (r Resources) CanAfford(cost Resources) bool {
	for k, v := range cost {
		if r[k] < v {
			return false
		}
	}
	return true
}

// Subtract removes cost from r in place. Callers must check CanAfford first.
func (r Resources) Subtract(cost Resources) {
	for k, v := range cost {
		r[k] -= v
	}
}

// Add merges gain into r in place.
func (r Resources) Add(gain Resources) {
	for k, v := range gain {
		r[k] += v
	}
}

// Player is a user's kingdom within one guild.
type Player struct {
	ID               string         `json:"id"`
	UserID           string         `json:"user_id"`
	GuildID          string         `json:"guild_id"`
	Race             string         `json:"race"`
	RegionID         string         `json:"region_id"`
	Resources        Resources      `json:"resources"`
	Units            map[string]int `json:"units"`
	Stamina          int            `json:"stamina"`
	StaminaUpdatedAt time.Time      `json:"stamina_updated_at"`
	BaseLevel        int            `json:"base_level"`
	Victories        int            `json:"victories"`
	LastCollectedAt  *time.Time     `json:"last_collected_at,omitempty"`
	LastScoutAt      *time.Time     `json:"last_scout_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

// Building is a static catalog entry. LevelCosts[n] is the cost of
// upgrading from level n to n+1 (index 0 = building level 1 -> 2).
type Building struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	MaxLevel    int         `json:"max_level"`
	Production  Resources   `json:"production"`
	LevelCosts  []Resources `json:"level_costs"`
}

// PlayerBuilding is an owned building at some level.
type PlayerBuilding struct {
	PlayerID     string `json:"player_id"`
	BuildingName string `json:"building_name"`
	Level        int    `json:"level"`
}

// Race is a selectable starting race.
type Race struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Region is a claimable map region, unique per guild.
type Region struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Troop is a static unit type.
type Troop struct {
	Name          string    `json:"name"`
	Attack        int       `json:"attack"`
	Defense       int       `json:"defense"`
	Cost          Resources `json:"cost"`
	BaseLevelReq  int       `json:"base_level_req"`
}

// Encounter is a weighted exploration outcome.
type Encounter struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Probability float64        `json:"probability"`
	Resources   Resources      `json:"resources"`
	Troops      map[string]int `json:"troops"`
}
