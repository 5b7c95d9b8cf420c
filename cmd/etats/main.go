package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"etats/internal/app"
	"etats/internal/config"
	"etats/internal/database"
	"etats/internal/logger"
)

func main() {
	bootLog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		bootLog.Warn().Err(err).Msg("failed to load .env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:  "etats",
		Usage: "Employee and task management backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   config.DefaultPath,
				Sources: cli.EnvVars("CONFIG_PATH"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API",
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "Apply or roll back database migrations",
				Commands: []*cli.Command{
					{Name: "up", Usage: "Apply pending migrations", Action: migrate(true)},
					{Name: "down", Usage: "Roll back the latest migration", Action: migrate(false)},
				},
			},
		},
		DefaultCommand: "serve",
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		bootLog.Fatal().Err(err).Msg("application error")
	}
}

func setup(cmd *cli.Command) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, log, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	return app.Run(ctx, cfg, log)
}

func migrate(up bool) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		db, err := database.Open(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		if up {
			n, err := database.MigrateUp(ctx, db)
			if err != nil {
				return err
			}
			log.Info().Int("applied", n).Msg("migrations applied")
			return nil
		}
		v, err := database.MigrateDown(ctx, db)
		if err != nil {
			return err
		}
		log.Info().Int("version", v).Msg("migration rolled back")
		return nil
	}
}
