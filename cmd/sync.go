package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"search-sync/core/config"
	"search-sync/core/logger"
	"search-sync/core/storage"
	"search-sync/core/webflow"
	"search-sync/feature/index"
	"search-sync/feature/publish"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd rebuilds the search index once and publishes it.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Rebuild the search index and publish it",
	Long: `Fetches every configured CMS collection, flattens the records into the
search index document and publishes it to the local file, the GitHub
repository and (if configured) the S3 mirror.

The previous index document is fully replaced; a failed run leaves it
untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Validate every required key up front, before any network activity
		if err := validateSyncConfig(cfg); err != nil {
			return err
		}

		return runSync(cmd.Context(), cfg, logg)
	},
}

// validateSyncConfig collects the missing keys of every section the sync
// entry point depends on.
func validateSyncConfig(cfg *config.Config) error {
	missing := [][]string{cfg.Webflow.MissingKeys()}
	if cfg.Publish.GitHub.Enabled() {
		missing = append(missing, cfg.Publish.GitHub.MissingKeys())
	}
	return config.Require(missing...)
}

// runSync executes one full rebuild + publish. Shared by the sync command and
// the serve command's built-in schedule.
func runSync(ctx context.Context, cfg *config.Config, logg *zap.Logger) error {
	logg.Info("Sync starting", zap.String("site", cfg.Webflow.SiteID))

	client := webflow.NewClient(cfg.Webflow)
	svc := index.NewService(client, cfg.Webflow, logg)

	doc, err := svc.BuildDocument(ctx)
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize index: %w", err)
	}

	publisher, err := buildPublisher(ctx, cfg, logg)
	if err != nil {
		return err
	}
	return publisher.Publish(ctx, data)
}

// buildPublisher assembles the configured publish targets.
func buildPublisher(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*publish.Service, error) {
	local := publish.NewLocalTarget(cfg.Publish.LocalPath)

	var remotes []publish.Target

	if cfg.Publish.GitHub.Enabled() {
		gh := publish.NewGitHubClient(ctx, cfg.Publish.GitHub.Token)
		remotes = append(remotes, publish.NewGitHubTarget(gh, cfg.Publish.GitHub, logg))
	}

	if cfg.Storage.Enabled() {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("create storage client: %w", err)
		}
		mirror := publish.NewMirrorTarget(client, cfg.Storage.Bucket, cfg.Storage.Object)
		if err := mirror.Ensure(ctx); err != nil {
			// Mirror is best-effort, like any remote target
			logg.Error("Mirror bucket unavailable, skipping target", zap.Error(err))
		} else {
			remotes = append(remotes, mirror)
		}
	}

	return publish.NewService(local, remotes, logg), nil
}

func init() {
	RootCmd.AddCommand(syncCmd)
}
