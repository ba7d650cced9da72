package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Priyank-2005/opencric/internal/config"
	"github.com/Priyank-2005/opencric/internal/store"
	"github.com/Priyank-2005/opencric/pkg/models"
)

// Insert archive files in chunks to keep memory flat
const batchSize = 100

func main() {
	dataDir := flag.String("data", "", "directory of Cricsheet JSON archive files to import")
	clear := flag.Bool("clear", false, "delete existing matches first")
	upcoming := flag.Bool("upcoming", false, "insert sample upcoming fixtures")
	rankings := flag.Bool("rankings", false, "insert the built-in ranking tables")
	flag.Parse()

	fmt.Println("=== OpenCric Seeder ===")

	cfg := config.Load()

	client, err := store.NewClient(cfg.Postgres.DSN)
	if err != nil {
		fmt.Printf("❌ Failed to connect to Postgres: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx := context.Background()
	if err := client.EnsureSchema(ctx); err != nil {
		fmt.Printf("❌ Failed to ensure schema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✓ Connected to Postgres")

	if *clear {
		if err := client.DeleteAllMatches(ctx); err != nil {
			fmt.Printf("❌ Failed to clear matches: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✓ Cleared existing matches")
	}

	if *dataDir != "" {
		if err := seedArchive(ctx, client, *dataDir); err != nil {
			fmt.Printf("❌ Archive import failed: %v\n", err)
			os.Exit(1)
		}
	}

	if *upcoming {
		if err := seedUpcoming(ctx, client); err != nil {
			fmt.Printf("❌ Upcoming fixtures failed: %v\n", err)
			os.Exit(1)
		}
	}

	if *rankings {
		if err := seedRankings(ctx, client); err != nil {
			fmt.Printf("❌ Rankings failed: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("✓ Seeding complete")
}

// seedArchive imports every .json file in dir as one match document.
func seedArchive(ctx context.Context, client *store.Client, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read data dir: %w", err)
	}

	var batch []models.Match
	imported, skipped := 0, 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := client.CreateMatches(ctx, batch); err != nil {
			return err
		}
		imported += len(batch)
		batch = batch[:0]
		fmt.Printf("\rProgress: %d matches imported...", imported)
		return nil
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		match, err := loadArchiveFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Printf("⚠️  Skipping %s: %v\n", entry.Name(), err)
			skipped++
			continue
		}

		batch = append(batch, *match)
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}

	if err := flush(); err != nil {
		return err
	}

	fmt.Printf("\n✓ Imported %d matches (%d skipped)\n", imported, skipped)
	return nil
}

// seedUpcoming inserts a few fixtures with empty innings lists.
func seedUpcoming(ctx context.Context, client *store.Client) error {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	dayAfter := time.Now().AddDate(0, 0, 2).Format("2006-01-02")

	fixtures := []models.Match{
		{
			Info: models.MatchInfo{
				Dates:     []string{tomorrow},
				Teams:     []string{"India", "Pakistan"},
				Venue:     "Eden Gardens, Kolkata",
				MatchType: "ODI",
				Event:     models.Event{Name: "Asia Cup 2026"},
			},
			Innings: []models.Innings{},
		},
		{
			Info: models.MatchInfo{
				Dates:     []string{tomorrow},
				Teams:     []string{"Australia", "England"},
				Venue:     "MCG, Melbourne",
				MatchType: "Test",
				Event:     models.Event{Name: "The Ashes"},
			},
			Innings: []models.Innings{},
		},
		{
			Info: models.MatchInfo{
				Dates:     []string{dayAfter},
				Teams:     []string{"South Africa", "New Zealand"},
				Venue:     "Wanderers, Johannesburg",
				MatchType: "T20",
				Event:     models.Event{Name: "Bilateral Series"},
			},
			Innings: []models.Innings{},
		},
	}

	if err := client.CreateMatches(ctx, fixtures); err != nil {
		return err
	}
	fmt.Printf("✓ Added %d upcoming matches\n", len(fixtures))
	return nil
}

// seedRankings inserts the bundled ranking tables.
func seedRankings(ctx context.Context, client *store.Client) error {
	for category, players := range rankingTables {
		if _, err := client.UpsertRanking(ctx, category, players); err != nil {
			return err
		}
		fmt.Printf("✓ Seeded %s (%d players)\n", category, len(players))
	}
	return nil
}
