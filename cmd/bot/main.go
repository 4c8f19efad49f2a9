package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/kingdomroll/internal/army"
	"github.com/osse101/kingdomroll/internal/bootstrap"
	"github.com/osse101/kingdomroll/internal/config"
	"github.com/osse101/kingdomroll/internal/database"
	"github.com/osse101/kingdomroll/internal/discord"
	"github.com/osse101/kingdomroll/internal/explore"
	"github.com/osse101/kingdomroll/internal/export"
	"github.com/osse101/kingdomroll/internal/giveaway"
	"github.com/osse101/kingdomroll/internal/kingdom"
	"github.com/osse101/kingdomroll/internal/roll"
	"github.com/osse101/kingdomroll/internal/server"
	"github.com/osse101/kingdomroll/internal/user"
	"github.com/osse101/kingdomroll/internal/worker"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn(w)
	}

	// Database
	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, dbPool); err != nil {
		return err
	}

	// Events
	eventBus, publisher, err := bootstrap.InitializeEventSystem()
	if err != nil {
		return err
	}

	// Catalogs
	tierTable, err := bootstrap.LoadTierTable()
	if err != nil {
		return err
	}

	// Repositories and services
	repos := bootstrap.InitializeRepositories(dbPool)

	userService := user.NewService(repos.User, publisher, cfg.WalletChangeCooldown)
	rollService := roll.NewService(repos.User, repos.Roll, tierTable, publisher)
	giveawayService := giveaway.NewService(repos.Giveaway)
	kingdomService := kingdom.NewService(repos.User, repos.Kingdom, publisher, cfg.CollectMinInterval)
	armyService := army.NewService(repos.User, repos.Kingdom, repos.Army)
	exploreService := explore.NewService(repos.User, repos.Kingdom, repos.Task, repos.Encounter, publisher, cfg.ExploreDuration)
	exportService := export.NewService(repos.User, repos.Roll)

	// Workers
	pool := worker.NewPool(0, 0)
	pool.Start()
	exploreWorker := worker.NewExploreWorker(exploreService, pool)

	// Discord bot
	bot, err := discord.New(discord.Config{
		Token: cfg.DiscordToken,
		AppID: cfg.DiscordAppID,
	})
	if err != nil {
		return err
	}

	discord.RegisterAll(bot, discord.Deps{
		Users:      userService,
		Rolls:      rollService,
		Giveaways:  giveawayService,
		Kingdoms:   kingdomService,
		Armies:     armyService,
		Explores:   exploreService,
		Exports:    exportService,
		Table:      tierTable,
		RollRoleID: cfg.Level2RoleID,
		ModRoleID:  cfg.GiveawayModRoleID,
	})

	notifier := discord.NewExploreNotifier(bot.Session, repos.Kingdom, repos.User, repos.Encounter)

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        eventBus,
		ExploreWorker:   exploreWorker,
		ExploreNotifier: notifier,
	}); err != nil {
		return err
	}

	// HTTP API
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, userService, rollService, exportService)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
		}
	}()

	if err := bot.Start(); err != nil {
		return err
	}

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// Bot can still serve interactions if commands were registered previously.
		slog.Error("Failed to register commands", "error", err)
	}

	// Recover pending missions after the bot is up so DMs can be delivered.
	exploreWorker.Start(ctx)

	slog.Info("KingdomRoll running", "port", cfg.Port)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:        srv,
		Bot:           bot,
		ExploreWorker: exploreWorker,
		Pool:          pool,
	})
	return nil
}
