package discord

import (
	"context"

	"github.com/osse101/kingdomroll/internal/domain"
	"github.com/osse101/kingdomroll/internal/roll"
)

// fakeRollService lets tests script roll outcomes
type fakeRollService struct {
	rollFn    func(ctx context.Context, discordID, username string) (*roll.Result, error)
	historyFn func(ctx context.Context, discordID string, limit, offset int) ([]domain.Roll, int, error)
	grantFn   func(ctx context.Context, targetDiscordID, targetUsername, grantedBy string, count int) (int, error)
}

func (f *fakeRollService) Roll(ctx context.Context, discordID, username string) (*roll.Result, error) {
	return f.rollFn(ctx, discordID, username)
}

func (f *fakeRollService) Grant(ctx context.Context, targetDiscordID, targetUsername, grantedBy string, count int) (int, error) {
	return f.grantFn(ctx, targetDiscordID, targetUsername, grantedBy, count)
}

func (f *fakeRollService) History(ctx context.Context, discordID string, limit, offset int) ([]domain.Roll, int, error) {
	return f.historyFn(ctx, discordID, limit, offset)
}

func (f *fakeRollService) BonusBalance(ctx context.Context, discordID string) (int, error) {
	return 0, nil
}

// fakeGiveawayService scripts channel gating
type fakeGiveawayService struct {
	checkErr error
	setFn    func(ctx context.Context, guildID, channelID, updatedBy string) error
}

func (f *fakeGiveawayService) Channel(ctx context.Context, guildID string) (*domain.GiveawayChannel, error) {
	return nil, domain.ErrChannelNotSet
}

func (f *fakeGiveawayService) SetChannel(ctx context.Context, guildID, channelID, updatedBy string) error {
	if f.setFn != nil {
		return f.setFn(ctx, guildID, channelID, updatedBy)
	}
	return nil
}

func (f *fakeGiveawayService) CheckChannel(ctx context.Context, guildID, channelID string) error {
	return f.checkErr
}
