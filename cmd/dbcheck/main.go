package main

import (
	"context"
	"log"
	"os"
	"time"

	"retail-analytics-api/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

var tables = []string{"visitors", "cashier", "heatmap", "predictions"}

// Standalone database smoke test: connectivity, table presence, row counts,
// and a health-check insert/readback round trip against the visitors table.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.GetDSN())
	if err != nil {
		log.Fatalf("db pool init failed: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("db ping failed: %v", err)
	}

	var version, database, user string
	err = pool.QueryRow(ctx, "SELECT version(), current_database(), current_user").
		Scan(&version, &database, &user)
	if err != nil {
		log.Fatalf("server info query failed: %v", err)
	}
	log.Printf("connected: db=%s user=%s", database, user)
	log.Printf("server: %s", version)

	failed := false
	for _, table := range tables {
		var exists bool
		err := pool.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.tables
				WHERE table_schema = 'public' AND table_name = $1
			)`, table).Scan(&exists)
		if err != nil {
			log.Printf("table check failed for %s: %v", table, err)
			failed = true
			continue
		}
		if !exists {
			log.Printf("table %s: MISSING", table)
			failed = true
			continue
		}

		var rows int64
		if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&rows); err != nil {
			log.Printf("row count failed for %s: %v", table, err)
			failed = true
			continue
		}
		log.Printf("table %s: %d rows", table, rows)
	}

	if err := roundTrip(ctx, pool); err != nil {
		log.Printf("round trip failed: %v", err)
		failed = true
	} else {
		log.Printf("health-check insert/readback ok")
	}

	if failed {
		os.Exit(1)
	}
	log.Printf("database check passed")
}

// roundTrip inserts one health-check visitor row and reads it back by id.
func roundTrip(ctx context.Context, pool *pgxpool.Pool) error {
	var id int64
	err := pool.QueryRow(ctx, `
		INSERT INTO visitors (section, count, timestamp)
		VALUES ('health-check', 0, NOW())
		RETURNING id`).Scan(&id)
	if err != nil {
		return err
	}

	var section string
	var count int
	err = pool.QueryRow(ctx,
		"SELECT section, count FROM visitors WHERE id = $1", id).
		Scan(&section, &count)
	if err != nil {
		return err
	}
	if section != "health-check" || count != 0 {
		log.Printf("readback mismatch: section=%q count=%d", section, count)
	}
	return nil
}
