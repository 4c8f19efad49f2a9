package tier

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Detail describes one reward tier and its draw weight plus the
// presentation metadata used in announcements.
type Detail struct {
	Tier   int     `json:"tier"`
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
	Color  int     `json:"color"`
	Emoji  string  `json:"emoji"`
	Flavor string  `json:"flavor"`
	GifURL string  `json:"gif_url,omitempty"`
}

// Table is an immutable weighted tier table. Weights need not sum to 1;
// draws are normalized against the total.
type Table struct {
	details []Detail
	total   float64
}

// NewTable builds a table from details. Tiers must be unique and weights
// positive; details are sorted by tier ascending.
func NewTable(details []Detail) (*Table, error) {
	if len(details) == 0 {
		return nil, fmt.Errorf("tier table must not be empty")
	}

	sorted := make([]Detail, len(details))
	copy(sorted, details)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Tier < sorted[j].Tier })

	var total float64
	seen := make(map[int]bool, len(sorted))
	for _, d := range sorted {
		if d.Weight <= 0 {
			return nil, fmt.Errorf("tier %d has non-positive weight %g", d.Tier, d.Weight)
		}
		if seen[d.Tier] {
			return nil, fmt.Errorf("duplicate tier %d", d.Tier)
		}
		seen[d.Tier] = true
		total += d.Weight
	}

	return &Table{details: sorted, total: total}, nil
}

// LoadFile reads a tier table from a JSON config file.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tier config: %w", err)
	}

	var details []Detail
	if err := json.Unmarshal(data, &details); err != nil {
		return nil, fmt.Errorf("failed to parse tier config: %w", err)
	}
	return NewTable(details)
}

// Pick draws a tier using rng, which must return a uniform value in
// [0.0, 1.0). The draw is scaled by the total weight and walked against
// the cumulative distribution: the first tier whose cumulative weight
// meets or exceeds the draw wins. Floating-point shortfall at the top
// of the range falls through to the highest tier, so Pick always
// returns a valid entry.
func (t *Table) Pick(rng func() float64) Detail {
	roll := rng() * t.total

	var cumulative float64
	for _, d := range t.details {
		cumulative += d.Weight
		if roll <= cumulative {
			return d
		}
	}
	return t.details[len(t.details)-1]
}

// Get returns the detail for a tier number.
func (t *Table) Get(tier int) (Detail, bool) {
	for _, d := range t.details {
		if d.Tier == tier {
			return d, true
		}
	}
	return Detail{}, false
}

// Details returns the tiers in ascending order. The slice is a copy.
func (t *Table) Details() []Detail {
	out := make([]Detail, len(t.details))
	copy(out, t.details)
	return out
}

// Top returns the highest tier, which doubles as the pity reward.
func (t *Table) Top() Detail {
	return t.details[len(t.details)-1]
}

// TotalWeight returns the sum of all weights.
func (t *Table) TotalWeight() float64 {
	return t.total
}
