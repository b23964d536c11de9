package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Seed database with data (dev, staging)"
}

func (c *SeedCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: dev, staging")
	}
	subcmd := args[0]

	dbURL := databaseURL()
	PrintInfo("Connecting to database: %s", redactPassword(dbURL))

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	var files []string
	switch subcmd {
	case "dev":
		files = []string{
			"internal/database/seeds/dev_catalog.sql",
			"internal/database/seeds/dev_players.sql",
		}
	case "staging":
		// Staging gets the catalog only; players come from real traffic
		files = []string{
			"internal/database/seeds/dev_catalog.sql",
		}
	default:
		return fmt.Errorf("unknown subcommand: %s", subcmd)
	}

	PrintInfo("Running %s seeds...", subcmd)
	for _, file := range files {
		if err := c.executeFile(db, file); err != nil {
			return err
		}
	}

	PrintSuccess("Seeds completed successfully")
	return nil
}

func (c *SeedCommand) executeFile(db *sql.DB, path string) error {
	PrintInfo("Executing %s", path)

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	if _, err := db.Exec(string(content)); err != nil {
		return fmt.Errorf("failed to execute seed file %s: %w", path, err)
	}
	return nil
}
