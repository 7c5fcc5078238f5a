package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"geocache/internal/config"
	"geocache/internal/geo"
	"geocache/internal/models"
	"geocache/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Columns: lat, lon, address (JSON encoded address as returned by the provider)
const minColumns = 3

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	configPath := flag.String("config", "configs", "directory containing app.env")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	entries, err := parseCSV(*file)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d entries\n", len(entries))

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg.DBSource == "" {
		fmt.Println("Error: DB_SOURCE is not set")
		os.Exit(1)
	}

	ctx := context.Background()

	// Connect to DB
	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)

	// Ensure table exists
	if err := repo.EnsureSchema(ctx); err != nil {
		fmt.Printf("Error creating table: %v\n", err)
		os.Exit(1)
	}

	before, err := repo.Count(ctx)
	if err != nil {
		fmt.Printf("Error counting rows: %v\n", err)
		os.Exit(1)
	}

	// Insert entries
	if _, err := repo.CopyEntries(ctx, entries); err != nil {
		fmt.Printf("Error inserting entries: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	if err := verifyImport(ctx, repo, before, len(entries)); err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d entries\n", len(entries))
}

func parseCSV(filePath string) ([]models.CacheEntry, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return readEntries(file)
}

func readEntries(r io.Reader) ([]models.CacheEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var entries []models.CacheEntry
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < minColumns {
			return nil, fmt.Errorf("line %d: invalid record length: %d, expected at least %d columns", line, len(record), minColumns)
		}

		q, err := geo.NormalizeStrings(record[0], record[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		var address models.Address
		if err := json.Unmarshal([]byte(record[2]), &address); err != nil {
			return nil, fmt.Errorf("line %d: invalid address JSON: %w", line, err)
		}
		if _, err := geo.AddressPoint(address); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		entries = append(entries, models.CacheEntry{
			Lat:     q.Query.Lat,
			Lon:     q.Query.Lon,
			Address: address,
		})
	}

	return entries, nil
}

func verifyImport(ctx context.Context, repo *repository.Repository, before int64, expected int) error {
	after, err := repo.Count(ctx)
	if err != nil {
		return err
	}

	if after-before != int64(expected) {
		return fmt.Errorf("record count mismatch: expected %d new rows, got %d", expected, after-before)
	}

	fmt.Printf("Cache now holds %d rows\n", after)
	return nil
}
