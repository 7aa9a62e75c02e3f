package main

import (
	"context"
	"database/sql"
	"log/slog"

	"aoewatch/lib/bluesky"
	"aoewatch/lib/configutil"
	"aoewatch/lib/scrapers/aoecompanion"
	"aoewatch/lib/serviceutil"
	"aoewatch/lib/statestore"
	"aoewatch/lib/telemetry"
	"aoewatch/services/watcher"
	watcherdb "aoewatch/services/watcher/db"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	_ "modernc.org/sqlite"
)

func main() {
	ctx := serviceutil.SignalContext()

	config, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	if config.StateFile == "" {
		config.StateFile = "mostrecentmatch.json"
	}
	if config.CompanionBaseUrl == "" {
		config.CompanionBaseUrl = aoecompanion.DefaultBaseUrl
	}
	if config.BlueskyBaseUrl == "" {
		config.BlueskyBaseUrl = bluesky.DefaultBaseUrl
	}

	telemetry.InitSlog(config.Verbose)

	t, err := telemetry.SetupFromEnv(ctx, "aoewatch")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer t.Shutdown(context.Background())

	// .env is optional, credentials may come from the real environment
	godotenv.Load()
	creds, err := env.ParseAs[Credentials]()
	if err != nil {
		serviceutil.Fatal("failed to parse credentials from environment", err)
	}

	service := watcher.NewService(watcher.Options{
		Players:  config.Players,
		Source:   aoecompanion.NewClient(config.CompanionBaseUrl),
		Store:    statestore.NewJsonFile(config.StateFile),
		Notifier: loginNotifier(ctx, config, creds),
		Journal:  openJournal(config),
	})

	result := service.Run(ctx)
	slog.Info("run complete",
		"players", len(config.Players),
		"changes", len(result.Changes),
		"posted", result.Posted,
	)
}

// loginNotifier returns nil when credentials are absent or the login
// fails; the run then still fetches, diffs and persists, it just
// skips posting.
func loginNotifier(ctx context.Context, config Config, creds Credentials) watcher.Notifier {
	if creds.Identifier == "" || creds.AppPassword == "" {
		slog.Warn("bluesky credentials not configured, posts will be skipped")
		return nil
	}

	client := bluesky.NewClient(config.BlueskyBaseUrl)
	err := client.Login(ctx, creds.Identifier, creds.AppPassword)
	if err != nil {
		slog.Error("failed to log into bluesky, posts will be skipped", "err", err)
		return nil
	}
	slog.Info("logged into bluesky", "identifier", creds.Identifier)
	return client
}

func openJournal(config Config) *sql.DB {
	if config.JournalDb == "" {
		return nil
	}

	journal, err := sql.Open("sqlite", config.JournalDb)
	if err != nil {
		slog.Warn("failed to open post journal", "path", config.JournalDb, "err", err)
		return nil
	}
	_, err = journal.Exec(watcherdb.Schema)
	if err != nil {
		slog.Warn("failed to apply journal schema", "path", config.JournalDb, "err", err)
		journal.Close()
		return nil
	}
	return journal
}
