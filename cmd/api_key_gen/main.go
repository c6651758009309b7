package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"infinite-experiment/sponsorlink/internal/config"
	"infinite-experiment/sponsorlink/internal/db/repositories"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// api_key_gen issues an active API key for an existing user and prints it.
// Connection settings come from the same PG_* variables as the server.
func main() {
	userID := flag.Uint("user", 0, "id of the user the key authenticates as")
	flag.Parse()

	if *userID == 0 {
		log.Fatal("usage: api_key_gen -user <id>")
	}

	pg, err := config.LoadPostgres()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := sqlx.Connect("postgres", pg.PostgresDSN())
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	key, err := repositories.NewApiKeysRepo(db).Create(ctx, *userID)
	if err != nil {
		log.Fatalf("insert api key: %v", err)
	}

	fmt.Printf("New API Key for user %d: %s (id %d)\n", *userID, key.Key, key.ID)
}
