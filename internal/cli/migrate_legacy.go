package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/terraincognita07/pantrycycle/internal/db"
	"github.com/terraincognita07/pantrycycle/internal/services"
)

// RunMigrateLegacyCommand converts every pending legacy weekly template into
// its first week block. Profiles that already have blocks are left alone, so
// the command is safe to run repeatedly.
func RunMigrateLegacyCommand(out io.Writer, dbPath string, location *time.Location, clock services.Clock) error {
	database, err := db.OpenSQLite(dbPath, "warn")
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	defer sqlDB.Close()

	if clock == nil {
		clock = services.SystemClock{Location: location}
	}
	repositories := db.NewRepositories(database)
	periods := services.NewPeriodService(repositories.Periods, location)
	schedule := services.NewScheduleService(repositories.Profiles, periods, repositories.Recipes, clock)

	userIDs, err := repositories.Profiles.ListUserIDs()
	if err != nil {
		return fmt.Errorf("list profiles: %w", err)
	}

	migratedCount := 0
	for _, userID := range userIDs {
		_, migrated, err := schedule.EnsureLegacyMigrated(userID)
		if err != nil {
			return fmt.Errorf("migrate user %d: %w", userID, err)
		}
		if migrated {
			migratedCount++
			fmt.Fprintf(out, "migrated legacy template for user %d\n", userID)
		}
	}

	fmt.Fprintf(out, "✅ %d of %d profiles migrated\n", migratedCount, len(userIDs))
	return nil
}
