package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// UptimeCommand returns the uptime command definition and handler.
// The start time is the Bot's own, not a process global, so restarting the
// session resets the reported uptime.
func UptimeCommand(b *Bot) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdUptime,
		Description: "How long the bot has been running",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}

		description := fmt.Sprintf("⏱️ Online for **%s**\n🎮 %d commands handled",
			formatDuration(b.Uptime()), CommandsReceived())
		embed := createEmbed("Uptime", description, ColorNeutral, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
