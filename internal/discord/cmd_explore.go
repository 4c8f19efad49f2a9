package discord

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/kingdomroll/internal/domain"
)

// ExploreCommand returns the explore command definition and handler.
// An expedition that is already underway reports its remaining time
// instead of failing outright.
func ExploreCommand(deps Deps) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdExplore,
		Description: fmt.Sprintf("Send an expedition into the wilds (%d stamina)", domain.StaminaCostExplore),
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := commandContext()
		defer cancel()

		u := getInteractionUser(i)
		task, err := deps.Explores.Begin(ctx, u.ID, i.GuildID)
		if err != nil {
			if errors.Is(err, domain.ErrExploreInProgress) {
				respondPendingExpedition(s, i, deps, u.ID, i.GuildID)
				return
			}
			slog.Error("Explore failed", "user_id", u.ID, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		description := fmt.Sprintf(
			"Your expedition sets out! It returns <t:%d:R> — results arrive by DM.",
			task.DueAt.Unix())
		embed := createEmbed("🧭 Expedition Underway", description, ColorInfo, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// respondPendingExpedition shows the remaining time of an in-flight mission.
func respondPendingExpedition(s *discordgo.Session, i *discordgo.InteractionCreate, deps Deps, discordID, guildID string) {
	ctx, cancel := commandContext()
	defer cancel()

	task, err := deps.Explores.Status(ctx, discordID, guildID)
	if err != nil {
		respondError(s, i, MsgExploreInProgress)
		return
	}

	var description string
	if remaining := time.Until(task.DueAt); remaining > 0 {
		description = fmt.Sprintf("Your expedition is still out. It returns <t:%d:R>.", task.DueAt.Unix())
	} else {
		description = "Your expedition is due back any moment now."
	}
	embed := createEmbed("🧭 Already Exploring", description, ColorWarning, "")
	sendEmbed(s, i, embed)
}
