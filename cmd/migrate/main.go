package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"acorn/config"
	"acorn/internal/infra/persistence/migrate"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported subcommands:
// - up:      apply every pending migration
// - down:    roll back -steps migrations
// - version: print the applied version

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, subcommand string, args []string) error {
	cmd := flag.NewFlagSet(subcommand, flag.ExitOnError)
	downSteps := cmd.Int("steps", 1, "Number of migrations to roll back (down only)")

	switch subcommand {
	case "up", "down", "version":
	default:
		printUsage()

		return errors.Errorf("unknown subcommand: %s", subcommand)
	}

	if err := cmd.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}
	if cfg.Postgres == nil {
		return errors.New("postgres config is missing")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	switch subcommand {
	case "up":
		if err := migrate.Up(ctx, sqlDB); err != nil {
			return err
		}
		fmt.Println("migrations applied")
	case "down":
		if err := migrate.Down(ctx, sqlDB, *downSteps); err != nil {
			return err
		}
		fmt.Printf("rolled back %d migration(s)\n", *downSteps)
	case "version":
		version, dirty, err := migrate.Version(ctx, sqlDB)
		if err != nil {
			return err
		}
		fmt.Printf("version %d (dirty: %t)\n", version, dirty)
	}

	return nil
}

func printUsage() {
	fmt.Println(`Usage: migrate <command> [options]

Commands:
  up                 Apply every pending migration
  down -steps N      Roll back N migrations (default 1)
  version            Print the applied schema version

Configuration is read from config/config.yaml and POSTGRES_* environment variables.`)
}
