package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tom-mcmillan/nwsl-api/internal/models"
	"github.com/tom-mcmillan/nwsl-api/internal/storage"
	"github.com/tom-mcmillan/nwsl-api/internal/util/logger"

	"gorm.io/gorm"
)

// fixtureFile mirrors the layout of a JSON seed file. Entity keys may be
// omitted; referenced IDs must already exist in the file or the database.
type fixtureFile struct {
	Venues  []*models.Venue       `json:"venues"`
	Teams   []*models.Team        `json:"teams"`
	Players []*models.Player      `json:"players"`
	Matches []*models.Match       `json:"matches"`
	Lineups []*models.MatchLineup `json:"lineups"`
	Events  []*models.MatchEvent  `json:"events"`
}

func main() {
	file := flag.String("file", "seed/fixtures.json", "Path to the JSON fixture file")
	wipe := flag.Bool("wipe", false, "Delete existing statistics rows before importing")

	flag.Parse()

	log := logger.GetLogger()

	storage.RunMigrations()

	fixture, err := readFixtureFile(*file)
	if err != nil {
		log.Error("Failed to read fixture file", "file", *file, "error", err)
		os.Exit(1)
	}

	if err := importFixture(context.Background(), fixture, *wipe); err != nil {
		log.Error("Failed to import fixture", "file", *file, "error", err)
		os.Exit(1)
	}

	reportImport(fixture, log)
}

func readFixtureFile(path string) (*fixtureFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	fixture := &fixtureFile{}
	if err := json.Unmarshal(content, fixture); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return fixture, nil
}

// importFixture loads every entity inside one transaction so a bad row
// leaves the store untouched. Insert order follows foreign keys.
func importFixture(ctx context.Context, fixture *fixtureFile, wipe bool) error {
	return storage.GetDb().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if wipe {
			if err := wipeStatisticsRows(tx); err != nil {
				return err
			}
		}

		if len(fixture.Venues) > 0 {
			if err := tx.Create(&fixture.Venues).Error; err != nil {
				return fmt.Errorf("failed to insert venues: %w", err)
			}
		}

		if len(fixture.Teams) > 0 {
			if err := tx.Create(&fixture.Teams).Error; err != nil {
				return fmt.Errorf("failed to insert teams: %w", err)
			}
		}

		if len(fixture.Players) > 0 {
			if err := tx.Create(&fixture.Players).Error; err != nil {
				return fmt.Errorf("failed to insert players: %w", err)
			}
		}

		if len(fixture.Matches) > 0 {
			if err := tx.Create(&fixture.Matches).Error; err != nil {
				return fmt.Errorf("failed to insert matches: %w", err)
			}
		}

		if len(fixture.Lineups) > 0 {
			if err := tx.Create(&fixture.Lineups).Error; err != nil {
				return fmt.Errorf("failed to insert lineups: %w", err)
			}
		}

		if len(fixture.Events) > 0 {
			if err := tx.Create(&fixture.Events).Error; err != nil {
				return fmt.Errorf("failed to insert events: %w", err)
			}
		}

		return nil
	})
}

// wipeStatisticsRows clears statistics tables children first. API keys and
// audit logs are left alone so a reseed does not revoke issued keys.
func wipeStatisticsRows(tx *gorm.DB) error {
	tables := []string{
		"match_events",
		"match_lineups",
		"matches",
		"players",
		"teams",
		"venues",
	}

	for _, table := range tables {
		if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	return nil
}

func reportImport(fixture *fixtureFile, log *slog.Logger) {
	log.Info(
		"Fixture import finished",
		"venues", len(fixture.Venues),
		"teams", len(fixture.Teams),
		"players", len(fixture.Players),
		"matches", len(fixture.Matches),
		"lineups", len(fixture.Lineups),
		"events", len(fixture.Events),
	)
}
