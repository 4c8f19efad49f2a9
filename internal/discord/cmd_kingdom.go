package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/kingdomroll/internal/domain"
)

// StartCommand returns the start command definition and handler
func StartCommand(deps Deps) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdStart,
		Description: "Found your kingdom",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "race",
				Description: "Your people",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "region",
				Description: "Region to claim (each region has one ruler)",
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
		opts := optionMap(getOptions(i))
		race := opts["race"].StringValue()
		region := opts["region"].StringValue()

		player, err := deps.Kingdoms.Start(ctx, u.ID, u.Username, i.GuildID, race, region)
		if err != nil {
			slog.Error("Kingdom start failed", "user_id", u.ID, "error", err)
			respondStartError(s, i, deps, err)
			return
		}

		description := fmt.Sprintf(
			"The **%s** settle region **%s**.\n\nStarting treasury:\n%s\n\nBuild with `/upgrade`, gather with `/collect`.",
			displayName(player.Race), player.RegionID, formatResources(player.Resources))
		embed := createEmbed(fmt.Sprintf("🏰 %s's Kingdom Founded!", u.Username), description, ColorSuccess, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// respondStartError enriches race/region failures with the valid choices.
func respondStartError(s *discordgo.Session, i *discordgo.InteractionCreate, deps Deps, startErr error) {
	ctx, cancel := commandContext()
	defer cancel()

	msg := friendlyError(startErr)

	if strings.Contains(startErr.Error(), "race") {
		if races, err := deps.Kingdoms.Races(ctx); err == nil {
			names := make([]string, 0, len(races))
			for _, r := range races {
				names = append(names, r.Name)
			}
			msg = fmt.Sprintf("🏰 **Unknown Race**\nPick one of: **%s**", strings.Join(names, ", "))
		}
	} else if strings.Contains(startErr.Error(), "region") {
		if regions, err := deps.Kingdoms.Regions(ctx, i.GuildID); err == nil {
			var free []string
			for _, r := range regions {
				if !r.Claimed {
					free = append(free, r.Region.ID)
				}
			}
			msg = fmt.Sprintf("🗺️ **Pick A Free Region**\nAvailable: **%s**", strings.Join(free, ", "))
		}
	}

	respondError(s, i, msg)
}

// CollectCommand returns the collect command definition and handler
func CollectCommand(deps Deps) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdCollect,
		Description: "Collect resources your buildings produced",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := commandContext()
		defer cancel()

		u := getInteractionUser(i)
		gained, err := deps.Kingdoms.Collect(ctx, u.ID, i.GuildID)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}

		embed := createEmbed("⛏️ Resources Collected",
			fmt.Sprintf("Your workers delivered:\n%s", formatResources(gained)),
			ColorSuccess, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// UpgradeCommand returns the upgrade command definition and handler
func UpgradeCommand(deps Deps) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdUpgrade,
		Description: "Upgrade a building, constructing it first if needed",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "building",
				Description: "Building name (see /buildings)",
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
		building := getOptions(i)[0].StringValue()

		status, err := deps.Kingdoms.Upgrade(ctx, u.ID, i.GuildID, building)
		if err != nil {
			slog.Error("Upgrade failed", "user_id", u.ID, "building", building, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		description := fmt.Sprintf("**%s** is now level **%d**.", displayName(status.Building.Name), status.Level)
		if status.NextCost != nil {
			description += fmt.Sprintf("\nNext level costs:\n%s", formatResources(status.NextCost))
		} else {
			description += "\nThis building is at max level."
		}
		embed := createEmbed("🏗️ Upgrade Complete", description, ColorSuccess, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// BuildingsCommand returns the buildings command definition and handler
func BuildingsCommand(deps Deps) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdBuildings,
		Description: "Show the building catalog and your levels",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := commandContext()
		defer cancel()

		u := getInteractionUser(i)
		statuses, err := deps.Kingdoms.Buildings(ctx, u.ID, i.GuildID)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}

		embed := createEmbed("🏘️ Buildings", "", ColorInfo, "")
		for _, st := range statuses {
			value := st.Building.Description
			if st.Level > 0 {
				value += fmt.Sprintf("\nLevel **%d**/%d", st.Level, st.Building.MaxLevel)
			} else {
				value += "\nNot built"
			}
			if st.NextCost != nil {
				value += fmt.Sprintf("\nNext: %s", formatResources(st.NextCost))
			}
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   displayName(st.Building.Name),
				Value:  value,
				Inline: true,
			})
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// StaminaCommand returns the stamina command definition and handler
func StaminaCommand(deps Deps) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdStamina,
		Description: "Show your current stamina",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := commandContext()
		defer cancel()

		u := getInteractionUser(i)
		overview, err := deps.Kingdoms.Overview(ctx, u.ID, i.GuildID)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}

		description := fmt.Sprintf("⚡ **%d** / %d\nRegenerates 1 every %s.",
			overview.Stamina, domain.StaminaMax, formatDuration(domain.StaminaRegenInterval))
		embed := createEmbed("Stamina", description, ColorWarning, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// LeaderboardCommand returns the leaderboard command definition and handler
func LeaderboardCommand(deps Deps) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdLeaderboard,
		Description: "Show the server's top kingdoms",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := commandContext()
		defer cancel()

		entries, err := deps.Kingdoms.Leaderboard(ctx, i.GuildID)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}

		if len(entries) == 0 {
			respondError(s, i, "No kingdoms yet. Be the first with `/start`!")
			return
		}

		medals := []string{"🥇", "🥈", "🥉"}
		var description string
		for idx, e := range entries {
			rank := fmt.Sprintf("%d.", idx+1)
			if idx < len(medals) {
				rank = medals[idx]
			}
			description += fmt.Sprintf("%s **%s** (%s, %s) — %d victories, %d troops\n",
				rank, e.Username, displayName(e.Race), e.RegionName, e.Victories, e.TroopCount)
		}

		embed := createEmbed("🏆 Kingdom Leaderboard", description, ColorGold, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
