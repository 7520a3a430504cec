// Package db opens the PostgreSQL connection used by all repositories.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "movies_backend/internal/feature/auth/domain/entity"
	commententity "movies_backend/internal/feature/comment/domain/entity"
	movieentity "movies_backend/internal/feature/movie/domain/entity"
	watchlistentity "movies_backend/internal/feature/watchlist/domain/entity"
)

// Opener opens a gorm connection for the given DSN.
// It exists so ConnectWithRetry can be tested without a real database.
type Opener func(dsn string) (*gorm.DB, error)

// OpenPostgres is the production Opener.
// TranslateError is enabled so duplicate-key violations surface as
// gorm.ErrDuplicatedKey regardless of driver.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	return gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// ConnectWithRetry keeps trying to open the database until the timeout elapses.
// The database container may still be starting when the server boots.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB connects to PostgreSQL and, when RUN_MIGRATIONS=true, migrates the schema.
func OpenDB(dsn string) *gorm.DB {
	db, err := ConnectWithRetry(dsn, 60*time.Second, OpenPostgres)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&movieentity.Movie{},
			&watchlistentity.Entry{},
			&commententity.Comment{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
