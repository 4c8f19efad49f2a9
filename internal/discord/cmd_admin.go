package discord

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/kingdomroll/internal/export"
	"github.com/osse101/kingdomroll/internal/roll"
)

// GiveCommand returns the give command definition and handler.
// Moderator only; currently the only grantable thing is bonus rolls.
func GiveCommand(deps Deps) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdGive,
		Description: "Grant bonus rolls to a user (moderators)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Who receives the bonus rolls",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "count",
				Description: fmt.Sprintf("How many (1-%d)", roll.MaxBonusGrant),
				Required:    true,
				MinValue:    &[]float64{1}[0],
				MaxValue:    float64(roll.MaxBonusGrant),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !isAdmin(i, deps.ModRoleID) {
			respondEphemeral(s, i, MsgAdminOnly)
			return
		}

		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := commandContext()
		defer cancel()

		granter := getInteractionUser(i)
		opts := optionMap(getOptions(i))
		target := opts["user"].UserValue(s)
		count := int(opts["count"].IntValue())

		unspent, err := deps.Rolls.Grant(ctx, target.ID, target.Username, granter.ID, count)
		if err != nil {
			slog.Error("Bonus grant failed", "target_id", target.ID, "granted_by", granter.ID, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		embed := createEmbed("🎟️ Bonus Rolls Granted",
			fmt.Sprintf("**%s** received **%d** bonus roll(s). They now hold %d unspent.",
				target.Username, count, unspent),
			ColorSuccess, FooterKingdomRollAdmin)
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// ExportCommand returns the export command definition and handler.
// Moderator only; attaches a CSV file to the response.
func ExportCommand(deps Deps) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdExport,
		Description: "Export roll or prize history as CSV (moderators)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "report",
				Description: "Which report to export",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "rolls (all)", Value: "rolls-all"},
					{Name: "rolls (tier 6+)", Value: "rolls-tier6plus"},
					{Name: "rolls (pity only)", Value: "rolls-pity"},
					{Name: "prizes", Value: "prizes"},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !isAdmin(i, deps.ModRoleID) {
			respondEphemeral(s, i, MsgAdminOnly)
			return
		}

		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := commandContext()
		defer cancel()

		report := getOptions(i)[0].StringValue()

		var (
			data []byte
			err  error
			name string
		)
		switch report {
		case "prizes":
			data, err = deps.Exports.PrizesCSV(ctx)
			name = "prizes"
		case "rolls-tier6plus":
			data, err = deps.Exports.RollsCSV(ctx, export.FilterTier6Up)
			name = "rolls_tier6plus"
		case "rolls-pity":
			data, err = deps.Exports.RollsCSV(ctx, export.FilterPityOnly)
			name = "rolls_pity"
		default:
			data, err = deps.Exports.RollsCSV(ctx, export.FilterAll)
			name = "rolls"
		}
		if err != nil {
			slog.Error("Export failed", "report", report, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		filename := fmt.Sprintf("%s_%s.csv", name, time.Now().UTC().Format("20060102"))
		content := fmt.Sprintf("📊 Export ready: `%s`", filename)
		if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Content: &content,
			Files: []*discordgo.File{
				{
					Name:        filename,
					ContentType: "text/csv",
					Reader:      bytes.NewReader(data),
				},
			},
		}); err != nil {
			slog.Error("Failed to send export file", "error", err)
		}
	}

	return cmd, handler
}

// SetChannelCommand returns the set-giveaway-channel command definition and handler
func SetChannelCommand(deps Deps) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdSetChannel,
		Description: "Set the channel where giveaway commands are allowed (moderators)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "channel",
				Description: "The giveaway channel",
				Required:    true,
				ChannelTypes: []discordgo.ChannelType{
					discordgo.ChannelTypeGuildText,
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !isAdmin(i, deps.ModRoleID) {
			respondEphemeral(s, i, MsgAdminOnly)
			return
		}

		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := commandContext()
		defer cancel()

		mod := getInteractionUser(i)
		channel := getOptions(i)[0].ChannelValue(s)

		if err := deps.Giveaways.SetChannel(ctx, i.GuildID, channel.ID, mod.ID); err != nil {
			slog.Error("Failed to set giveaway channel", "guild_id", i.GuildID, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		embed := createEmbed("📣 Giveaway Channel Set",
			fmt.Sprintf("Giveaway commands now work in <#%s>.", channel.ID),
			ColorSuccess, FooterKingdomRollAdmin)
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
