package discord

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	AppID    string
	Registry *CommandRegistry

	startTime    time.Time
	presenceStop chan struct{}
}

// Config holds the bot configuration
type Config struct {
	Token string
	AppID string
}

// New creates a new Discord bot
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	return &Bot{
		Session:      s,
		AppID:        cfg.AppID,
		Registry:     NewCommandRegistry(),
		startTime:    time.Now(),
		presenceStop: make(chan struct{}),
	}, nil
}

// Uptime reports how long this bot instance has been running
func (b *Bot) Uptime() time.Duration {
	return time.Since(b.startTime)
}

// Start starts the bot
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	go b.presenceLoop()

	slog.Info("Discord bot is now running")
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() {
	close(b.presenceStop)
	b.Session.Close()
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	// Wait here until CTRL-C or other term signal is received.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
	b.updatePresence()
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry != nil {
		b.Registry.Handle(s, i)
	}
}

// presenceLoop keeps the bot's status line showing its uptime.
func (b *Bot) presenceLoop() {
	ticker := time.NewTicker(presenceUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			b.updatePresence()
		case <-b.presenceStop:
			return
		}
	}
}

func (b *Bot) updatePresence() {
	status := fmt.Sprintf("rolling for %s", formatDuration(b.Uptime()))
	if err := b.Session.UpdateGameStatus(0, status); err != nil {
		slog.Warn("Failed to update presence", "error", err)
	}
}
