package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/kingdomroll/internal/user"
)

// WalletCommand returns the wallet command definition and handler
func WalletCommand(deps Deps) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdWallet,
		Description: "Manage the wallet your prizes are paid to",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "bind",
				Description: "Bind a Solana wallet address",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "address",
						Description: "Your Solana wallet address",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "view",
				Description: "Show your bound wallet",
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !hasRole(i, deps.RollRoleID) {
			respondEphemeral(s, i, MsgMissingRole)
			return
		}

		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := commandContext()
		defer cancel()

		u := getInteractionUser(i)
		sub := getOptions(i)[0]

		switch sub.Name {
		case "bind":
			address := sub.Options[0].StringValue()
			bound, err := deps.Users.BindWallet(ctx, u.ID, u.Username, address)
			if err != nil {
				slog.Error("Wallet bind failed", "user_id", u.ID, "error", err)
				respondFriendlyError(s, i, err)
				return
			}
			embed := createEmbed("👛 Wallet Bound",
				fmt.Sprintf("Prizes will be sent to `%s`.", user.MaskWallet(bound.Wallet)),
				ColorSuccess, "")
			sendEmbed(s, i, embed)

		case "view":
			profile, err := deps.Users.Profile(ctx, u.ID)
			if err != nil {
				respondFriendlyError(s, i, err)
				return
			}
			if profile.Wallet == "" {
				respondError(s, i, MsgWalletMissing)
				return
			}
			embed := createEmbed("👛 Your Wallet",
				fmt.Sprintf("`%s`", user.MaskWallet(profile.Wallet)),
				ColorInfo, "")
			sendEmbed(s, i, embed)
		}
	}

	return cmd, handler
}
