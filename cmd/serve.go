package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"search-sync/core/config"
	"search-sync/core/loader"
	"search-sync/core/logger"
	"search-sync/core/middleware/rayid"
	"search-sync/feature/publish"
	"search-sync/feature/webhook"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd starts the webhook receiver.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the webhook receiver",
	Long: `Starts the HTTP server exposing the CMS webhook endpoint. A valid
delivery emits a repository_dispatch event that triggers the sync workflow.

With SCHEDULE_SPEC set, the server also runs the full sync in-process on the
given cron schedule, providing eventual consistency when webhook deliveries
are lost.`,
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

		// 3. Validate every required key up front
		missing := [][]string{cfg.Webhook.MissingKeys()}
		if cfg.Schedule.Spec != "" {
			// The built-in schedule runs the sync pipeline in-process, so it
			// needs the sync entry point's configuration too.
			missing = append(missing, cfg.Webflow.MissingKeys())
			if cfg.Publish.GitHub.Enabled() {
				missing = append(missing, cfg.Publish.GitHub.MissingKeys())
			}
		}
		if err := config.Require(missing...); err != nil {
			return err
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		// Logging Middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// 5. Initialize Dispatcher + Feature Loader
		gh := publish.NewGitHubClient(cmd.Context(), cfg.Webhook.DispatchToken)
		dispatcher := webhook.NewGitHubDispatcher(gh, cfg.Webhook)

		mgr := loader.NewManager()
		mgr.Register(webhook.NewFeature(cfg.Webhook, dispatcher, logg))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Built-in rebuild schedule (optional)
		if cfg.Schedule.Spec != "" {
			c := cron.New()
			_, err := c.AddFunc(cfg.Schedule.Spec, func() {
				logg.Info("Scheduled rebuild starting", zap.String("spec", cfg.Schedule.Spec))
				if err := runSync(context.Background(), cfg, logg); err != nil {
					logg.Error("Scheduled rebuild failed", zap.Error(err))
				}
			})
			if err != nil {
				logg.Fatal("Invalid schedule spec", zap.Error(err))
			}
			c.Start()
			defer c.Stop()
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting webhook server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
		return nil
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
