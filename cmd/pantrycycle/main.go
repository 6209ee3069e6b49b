package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/pantrycycle/internal/api"
	"github.com/terraincognita07/pantrycycle/internal/cli"
	"github.com/terraincognita07/pantrycycle/internal/config"
	"github.com/terraincognita07/pantrycycle/internal/db"
)

const issuedTokenTTL = 24 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config init failed: %v", err)
	}
	time.Local = cfg.Location

	if len(os.Args) > 1 {
		if err := runCommand(os.Stdout, cfg, os.Args[1:]); err != nil {
			log.Fatalf("%s failed: %v", os.Args[1], err)
		}
		return
	}

	database, err := db.OpenSQLite(cfg.DBPath, cfg.LogLevel)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler, err := api.NewHandler(database, api.HandlerConfig{
		SecretKey:            cfg.SecretKey,
		Location:             cfg.Location,
		PlanningHorizonWeeks: cfg.PlanningHorizonWeeks,
		RecommendationLimit:  cfg.RecommendationLimit,
	})
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := newApp(handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("PantryCycle listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Port, cfg.DBPath, cfg.Location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func newApp(handler *api.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "PantryCycle",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func runCommand(out io.Writer, cfg *config.Config, args []string) error {
	switch args[0] {
	case "migrate-legacy":
		return cli.RunMigrateLegacyCommand(out, cfg.DBPath, cfg.Location, nil)
	case "issue-token":
		if len(args) != 2 {
			return fmt.Errorf("usage: issue-token <user_id>")
		}
		return cli.RunIssueTokenCommand(out, cfg.SecretKey, args[1], issuedTokenTTL)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}
