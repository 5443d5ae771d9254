package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database. DB_TYPE selects the
// backend: "sqlite" (default) stores a file under the data directory,
// "postgres" connects to DATABASE_URL.
func Connect() error {
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "sqlite"
	}

	var db *sqlx.DB
	var err error

	switch dbType {
	case "postgres":
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return fmt.Errorf("DATABASE_URL is not set")
		}
		db, err = sqlx.Connect("postgres", dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %v", err)
		}
	case "sqlite":
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "data"
		}
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %v", err)
		}
		db, err = sqlx.Connect("sqlite3", filepath.Join(dataDir, "vocabcoach.db"))
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return fmt.Errorf("failed to enable foreign keys: %v", err)
		}
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	default:
		return fmt.Errorf("unsupported DB_TYPE: %s", dbType)
	}

	DB = db

	// Postgres schemas are managed externally; bootstrap only sqlite.
	if dbType == "sqlite" {
		return initializeSchema()
	}
	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	// Create learners table
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS learners (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			chat_id INTEGER UNIQUE NOT NULL,
			tier TEXT NOT NULL DEFAULT 'beginner',
			questions_per_session INTEGER DEFAULT 10,
			notification_enabled BOOLEAN DEFAULT true,
			notification_hour INTEGER DEFAULT 9,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create learners table: %v", err)
	}

	// Create vocabulary_items table
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS vocabulary_items (
			id TEXT PRIMARY KEY,
			learner_id INTEGER NOT NULL,
			word TEXT NOT NULL,
			meaning TEXT NOT NULL,
			source_id TEXT NOT NULL DEFAULT '',
			level_tag TEXT NOT NULL DEFAULT 'beginner',
			created_at TIMESTAMP NOT NULL,
			ease_factor REAL NOT NULL DEFAULT 2.5,
			interval_days INTEGER NOT NULL DEFAULT 1,
			repetitions INTEGER NOT NULL DEFAULT 0,
			next_review_date TIMESTAMP NOT NULL,
			FOREIGN KEY (learner_id) REFERENCES learners(id),
			UNIQUE(learner_id, word)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create vocabulary_items table: %v", err)
	}

	// Create session_results table
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS session_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			learner_id INTEGER NOT NULL,
			total_questions INTEGER NOT NULL,
			correct_answers INTEGER NOT NULL,
			mean_response_seconds REAL NOT NULL,
			completed_at TIMESTAMP NOT NULL,
			FOREIGN KEY (learner_id) REFERENCES learners(id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create session_results table: %v", err)
	}

	// Create progression table
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS progression (
			learner_id INTEGER PRIMARY KEY,
			total_points INTEGER NOT NULL DEFAULT 0,
			current_streak_days INTEGER NOT NULL DEFAULT 0,
			last_activity_date TIMESTAMP NOT NULL,
			FOREIGN KEY (learner_id) REFERENCES learners(id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create progression table: %v", err)
	}

	return nil
}
