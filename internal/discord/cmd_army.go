package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/kingdomroll/internal/army"
	"github.com/osse101/kingdomroll/internal/domain"
)

// RecruitCommand returns the recruit command definition and handler
func RecruitCommand(deps Deps) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdRecruit,
		Description: "Train troops for your army",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "troop",
				Description: "Troop type to train",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "count",
				Description: fmt.Sprintf("How many (1-%d)", army.MaxRecruitCount),
				Required:    false,
				MinValue:    &[]float64{1}[0],
				MaxValue:    float64(army.MaxRecruitCount),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := commandContext()
		defer cancel()

		u := getInteractionUser(i)
		opts := optionMap(getOptions(i))
		troop := opts["troop"].StringValue()
		count := 1
		if c, ok := opts["count"]; ok {
			count = int(c.IntValue())
		}

		report, err := deps.Armies.Recruit(ctx, u.ID, i.GuildID, troop, count)
		if err != nil {
			slog.Error("Recruit failed", "user_id", u.ID, "troop", troop, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		embed := createEmbed("⚔️ Troops Trained",
			fmt.Sprintf("Trained **%d %s**.\n\n%s", count, displayName(troop), formatArmy(report)),
			ColorSuccess, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// ArmyCommand returns the army command definition and handler
func ArmyCommand(deps Deps) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdArmy,
		Description: "Show your army and its power",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := commandContext()
		defer cancel()

		u := getInteractionUser(i)
		report, err := deps.Armies.Army(ctx, u.ID, i.GuildID)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}

		embed := createEmbed(fmt.Sprintf("⚔️ %s's Army", u.Username), formatArmy(report), ColorInfo, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// ScoutCommand returns the scout command definition and handler
func ScoutCommand(deps Deps) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdScout,
		Description: fmt.Sprintf("Scout a rival's army (%d stamina)", domain.StaminaCostScout),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "target",
				Description: "The ruler to spy on",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := commandContext()
		defer cancel()

		u := getInteractionUser(i)
		target := getOptions(i)[0].UserValue(s)

		report, err := deps.Armies.Scout(ctx, u.ID, i.GuildID, target.ID)
		if err != nil {
			slog.Error("Scout failed", "user_id", u.ID, "target_id", target.ID, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		description := fmt.Sprintf("**%s** rules **%s** as the %s.\n\n%s\n\n⚡ %d stamina left.",
			report.TargetUsername, report.TargetRegionID, displayName(report.TargetRace),
			formatArmy(&report.Army), report.StaminaLeft)
		embed := createEmbed("🔭 Scout Report", description, ColorWarning, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// formatArmy renders an army report for embeds.
func formatArmy(report *army.Report) string {
	if len(report.Units) == 0 {
		return "No troops yet. Train some with `/recruit`."
	}

	var out string
	for _, u := range report.Units {
		out += fmt.Sprintf("**%s** ×%d (power %d)\n", displayName(u.Troop.Name), u.Count, u.Power)
	}
	out += fmt.Sprintf("\nTotal power: **%d**", report.TotalPower)
	return out
}
