// seed inserts a test user and a handful of tasks into the local dev
// database. Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/infrastructure/postgres"
)

const (
	seedUsername = "seeduser"
	seedEmail    = "seed@test.local"
	seedPassword = "SeedPassword123!"
)

type taskSpec struct {
	title     string
	dueIn     time.Duration // 0 means no due date
	completed bool
}

var tasks = []taskSpec{
	// Open tasks with near due dates — the reminder daemon should mail these
	{"Pay electricity bill", 6 * time.Hour, false},
	{"Prepare sprint demo", 20 * time.Hour, false},

	// Open tasks due later
	{"Renew passport", 30 * 24 * time.Hour, false},
	{"Book dentist appointment", 14 * 24 * time.Hour, false},

	// No due date
	{"Read the pgx docs", 0, false},
	{"Clean up old branches", 0, false},

	// Already done — must never be reminded
	{"Set up local database", 2 * time.Hour, true},
	{"Write project README", 0, true},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set — run: direnv allow")
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	hash, err := auth.NewPasswordHasher(auth.DefaultBcryptCost).Hash(seedPassword)
	if err != nil {
		log.Fatalf("hash seed password: %v", err)
	}

	// Upsert test user
	var userID string
	err = pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET updated_at = NOW()
		RETURNING id`,
		seedUsername, seedEmail, hash,
	).Scan(&userID)
	if err != nil {
		log.Fatalf("upsert user: %v", err)
	}

	// Insert tasks, skip any that already exist (idempotent re-runs)
	var inserted, skipped int
	for _, spec := range tasks {
		var dueDate *time.Time
		if spec.dueIn > 0 {
			d := time.Now().Add(spec.dueIn)
			dueDate = &d
		}

		var id string
		err := pool.QueryRow(ctx, `
			INSERT INTO tasks (user_id, title, due_date, completed)
			SELECT $1, $2, $3, $4
			WHERE NOT EXISTS (
				SELECT 1 FROM tasks WHERE user_id = $1 AND title = $2
			)
			RETURNING id`,
			userID, spec.title, dueDate, spec.completed,
		).Scan(&id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				skipped++
				continue
			}
			log.Fatalf("insert task %q: %v", spec.title, err)
		}
		inserted++
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  User:          %s / %s\n", seedUsername, seedPassword)
	fmt.Printf("  User ID:       %s\n", userID)
	fmt.Printf("  Tasks created: %d  (skipped %d already existing)\n", inserted, skipped)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 — get a token:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/api/v1/auth/login \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"username\":\"%s\",\"password\":\"%s\"}'\n", seedUsername, seedPassword)
	fmt.Println()
	fmt.Println("  Step 2 — list your tasks:")
	fmt.Println()
	fmt.Println("    export JWT=eyJ...")
	fmt.Println("    curl -s http://localhost:8080/api/v1/task -H \"Authorization: Bearer $JWT\"")
	fmt.Println()
}
