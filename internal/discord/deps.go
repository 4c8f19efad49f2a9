package discord

import (
	"context"
	"time"

	"github.com/osse101/kingdomroll/internal/army"
	"github.com/osse101/kingdomroll/internal/explore"
	"github.com/osse101/kingdomroll/internal/export"
	"github.com/osse101/kingdomroll/internal/giveaway"
	"github.com/osse101/kingdomroll/internal/kingdom"
	"github.com/osse101/kingdomroll/internal/roll"
	"github.com/osse101/kingdomroll/internal/tier"
	"github.com/osse101/kingdomroll/internal/user"
)

// Deps carries the services and gating configuration the command handlers
// close over.
type Deps struct {
	Users     user.Service
	Rolls     roll.Service
	Giveaways giveaway.Service
	Kingdoms  kingdom.Service
	Armies    army.Service
	Explores  explore.Service
	Exports   export.Service
	Table     *tier.Table

	// RollRoleID gates /roll and /wallet; empty disables the check.
	RollRoleID string
	// ModRoleID marks moderators in addition to the manage-server permission.
	ModRoleID string
	// RollSuspense overrides the reveal delay; zero means DefaultRollSuspense.
	RollSuspense time.Duration
}

func (d Deps) suspense() time.Duration {
	if d.RollSuspense > 0 {
		return d.RollSuspense
	}
	return DefaultRollSuspense
}

// commandTimeout bounds the service calls behind a single interaction.
const commandTimeout = 10 * time.Second

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}

// RegisterAll wires every slash command into the bot's registry.
func RegisterAll(b *Bot, deps Deps) {
	b.Registry.Register(RollCommand(deps))
	b.Registry.Register(TiersCommand(deps))
	b.Registry.Register(MechanicsCommand(deps))
	b.Registry.Register(HistoryCommand(deps))
	b.Registry.Register(WalletCommand(deps))
	b.Registry.Register(GiveCommand(deps))
	b.Registry.Register(ExportCommand(deps))
	b.Registry.Register(SetChannelCommand(deps))
	b.Registry.Register(StartCommand(deps))
	b.Registry.Register(CollectCommand(deps))
	b.Registry.Register(UpgradeCommand(deps))
	b.Registry.Register(BuildingsCommand(deps))
	b.Registry.Register(RecruitCommand(deps))
	b.Registry.Register(ArmyCommand(deps))
	b.Registry.Register(ExploreCommand(deps))
	b.Registry.Register(ScoutCommand(deps))
	b.Registry.Register(StaminaCommand(deps))
	b.Registry.Register(LeaderboardCommand(deps))
	b.Registry.Register(UptimeCommand(b))
}
