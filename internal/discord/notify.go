package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/kingdomroll/internal/event"
	"github.com/osse101/kingdomroll/internal/repository"
)

// ExploreNotifier DMs players when their expedition resolves.
type ExploreNotifier struct {
	session       *discordgo.Session
	kingdomRepo   repository.Kingdom
	userRepo      repository.User
	encounterRepo repository.Encounter
}

// NewExploreNotifier creates a notifier bound to an open session.
func NewExploreNotifier(session *discordgo.Session, kingdomRepo repository.Kingdom, userRepo repository.User, encounterRepo repository.Encounter) *ExploreNotifier {
	return &ExploreNotifier{
		session:       session,
		kingdomRepo:   kingdomRepo,
		userRepo:      userRepo,
		encounterRepo: encounterRepo,
	}
}

// Subscribe registers the notifier on the event bus.
func (n *ExploreNotifier) Subscribe(bus event.Bus) {
	bus.Subscribe(event.ExploreResolved, n.handleResolved)
}

func (n *ExploreNotifier) handleResolved(ctx context.Context, e event.Event) error {
	payload, err := event.DecodePayload[event.ExploreResolvedPayloadV1](e.Payload)
	if err != nil {
		return err
	}

	player, err := n.kingdomRepo.GetPlayerByID(ctx, payload.PlayerID)
	if err != nil {
		return fmt.Errorf("looking up player for expedition DM: %w", err)
	}
	user, err := n.userRepo.GetByID(ctx, player.UserID)
	if err != nil {
		return fmt.Errorf("looking up user for expedition DM: %w", err)
	}
	encounter, err := n.encounterRepo.GetEncounter(ctx, payload.EncounterID)
	if err != nil {
		return fmt.Errorf("looking up encounter for expedition DM: %w", err)
	}

	channel, err := n.session.UserChannelCreate(user.DiscordID)
	if err != nil {
		// The user may have DMs disabled; nothing actionable
		slog.Warn("Could not open DM channel", "discord_id", user.DiscordID, "error", err)
		return nil
	}

	description := fmt.Sprintf("**%s**\n%s", encounter.Name, encounter.Description)
	if len(encounter.Resources) > 0 {
		description += fmt.Sprintf("\n\nLoot: %s", formatResources(encounter.Resources))
	}
	for troop, count := range encounter.Troops {
		description += fmt.Sprintf("\n⚔️ %d %s joined your army", count, displayName(troop))
	}

	embed := createEmbed("🧭 Expedition Returned!", description, ColorSuccess, "")
	if _, err := n.session.ChannelMessageSendEmbed(channel.ID, embed); err != nil {
		slog.Warn("Could not deliver expedition DM", "discord_id", user.DiscordID, "error", err)
	}
	return nil
}
