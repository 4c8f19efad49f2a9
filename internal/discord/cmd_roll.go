package discord

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/kingdomroll/internal/domain"
)

// RollCommand returns the roll command definition and handler
func RollCommand(deps Deps) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdRoll,
		Description: "Roll for your daily giveaway tier",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		ctx, cancel := commandContext()
		defer cancel()

		// Channel gating happens before anything is spent
		if err := deps.Giveaways.CheckChannel(ctx, i.GuildID, i.ChannelID); err != nil {
			respondEphemeral(s, i, friendlyError(err))
			return
		}
		if !hasRole(i, deps.RollRoleID) {
			respondEphemeral(s, i, MsgMissingRole)
			return
		}

		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		result, err := deps.Rolls.Roll(ctx, user.ID, user.Username)
		if err != nil {
			slog.Error("Roll failed", "user_id", user.ID, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		// A short pause before the reveal
		time.Sleep(deps.suspense())

		detail := result.Detail
		description := fmt.Sprintf("%s **%s**\n%s", detail.Emoji, detail.Label, detail.Flavor)
		if result.IsPity {
			description += "\n\n✨ *Your persistence paid off. Guaranteed top tier!*"
		}
		if result.Source == domain.RollSourceBonus {
			description += fmt.Sprintf("\n\n🎟️ Bonus roll used. %d remaining.", result.BonusRemaining)
		}
		if result.PityStreak > 0 && !result.IsPity {
			description += fmt.Sprintf("\n\n🔥 Streak: **%d**", result.PityStreak)
		}

		embed := createEmbed(fmt.Sprintf("🎲 %s rolled!", user.Username), description, detail.Color, "")
		if detail.GifURL != "" {
			embed.Image = &discordgo.MessageEmbedImage{URL: detail.GifURL}
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// TiersCommand returns the tiers command definition and handler
func TiersCommand(deps Deps) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdTiers,
		Description: "Show the tier table and odds",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}

		var description string
		for _, d := range deps.Table.Details() {
			description += fmt.Sprintf("%s **%s** — %.1f%%\n", d.Emoji, d.Label, d.Weight*100)
		}

		embed := createEmbed("🎰 Tier Odds", description, ColorGold, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// MechanicsCommand returns the mechanics command definition and handler
func MechanicsCommand(deps Deps) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdMechanics,
		Description: "How rolling, bonus rolls and the pity system work",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}

		top := deps.Table.Top()
		description := fmt.Sprintf(
			"**Daily roll** — one free roll per day (UTC). Bonus rolls granted by "+
				"moderators are spent automatically once your daily roll is used.\n\n"+
				"**Pity** — landing the lowest tier on consecutive days builds a streak. "+
				"A long enough streak guarantees your next roll is %s **%s**.\n\n"+
				"**Prizes** — high tiers are recorded for the giveaway. Bind a wallet "+
				"with `/wallet bind` so wins can be paid out.",
			top.Emoji, top.Label)

		embed := createEmbed("📖 How It Works", description, ColorInfo, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// HistoryCommand returns the history command definition and handler
func HistoryCommand(deps Deps) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdHistory,
		Description: "Show your recent rolls",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := commandContext()
		defer cancel()

		user := getInteractionUser(i)
		rolls, total, err := deps.Rolls.History(ctx, user.ID, 10, 0)
		if err != nil {
			slog.Error("History lookup failed", "user_id", user.ID, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		if len(rolls) == 0 {
			respondError(s, i, "No rolls yet. Try `/roll`!")
			return
		}

		var description string
		for _, r := range rolls {
			if r.TierWon == nil {
				continue
			}
			line := fmt.Sprintf("`%s`", r.RollDate.Format("2006-01-02"))
			if d, ok := deps.Table.Get(*r.TierWon); ok {
				line += fmt.Sprintf(" %s %s", d.Emoji, d.Label)
			} else {
				line += fmt.Sprintf(" Tier %d", *r.TierWon)
			}
			if r.IsPity {
				line += " ✨"
			}
			if r.Source == domain.RollSourceBonus {
				line += " (bonus)"
			}
			description += line + "\n"
		}
		description += fmt.Sprintf("\n%d rolls total", total)

		embed := createEmbed(fmt.Sprintf("📜 %s's Rolls", user.Username), description, ColorInfo, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
