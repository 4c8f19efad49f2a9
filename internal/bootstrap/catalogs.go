package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/osse101/kingdomroll/internal/config"
	"github.com/osse101/kingdomroll/internal/tier"
)

// LoadTierTable loads the prize tier table from the JSON config file,
// falling back to the built-in table when the file is absent. A present
// but invalid file is a startup error rather than a silent fallback so
// a typo in the weights cannot change the odds unnoticed.
func LoadTierTable() (*tier.Table, error) {
	table, err := tier.LoadFile(config.ConfigPathTiers)
	if err == nil {
		slog.Info(LogMsgTierTableLoaded, "path", config.ConfigPathTiers, "tiers", len(table.Details()))
		return table, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		slog.Info(LogMsgTierTableDefault)
		return tier.Default(), nil
	}

	return nil, fmt.Errorf("%s: %w", ErrMsgInvalidTierConfig, err)
}
