package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store wraps the SQLite handle shared by every repository method.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the SQLite database at dbPath, applies the
// schema and runs the one-time demo seed.
func New(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		os.MkdirAll(dir, 0o755)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS teachers (
		id                INTEGER PRIMARY KEY AUTOINCREMENT,
		fullName          TEXT NOT NULL,
		email             TEXT NOT NULL UNIQUE,
		password          TEXT NOT NULL,
		department        TEXT,
		designation       TEXT,
		employeeId        TEXT NOT NULL UNIQUE,
		phone             TEXT,
		officeAddress     TEXT,
		researchInterests TEXT,
		profilePicture    TEXT
	);

	CREATE TABLE IF NOT EXISTS students (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		name       TEXT NOT NULL,
		usn        TEXT NOT NULL UNIQUE,
		branch     TEXT,
		section    TEXT,
		test1      INTEGER,
		test2      INTEGER,
		quiz       INTEGER,
		assignment INTEGER
	);

	CREATE TABLE IF NOT EXISTS tasks (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		name        TEXT NOT NULL,
		priority    TEXT,
		dueDate     TEXT,
		isCompleted INTEGER DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS assignments (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		name     TEXT NOT NULL,
		deadline TEXT NOT NULL,
		status   TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS attendance_records (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		student_usn TEXT NOT NULL,
		date        TEXT NOT NULL,
		status      TEXT NOT NULL,
		UNIQUE(student_usn, date)
	);

	CREATE TABLE IF NOT EXISTS section_notes (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		section   TEXT NOT NULL,
		note      TEXT NOT NULL,
		createdAt TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return err
	}
	return seedDemoData(db)
}

// seedDemoData inserts two demonstration tasks and assignments exactly once,
// guarded by the schema version marker rather than a row-count check. Safe
// to run on every startup.
func seedDemoData(db *sql.DB) error {
	var version int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return err
	}
	if version >= 1 {
		return nil
	}

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	nextWeek := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO tasks (name, priority, dueDate, isCompleted) VALUES (?, ?, ?, ?), (?, ?, ?, ?)`,
		"Prepare Lecture Slides for Chapter 5", "high", tomorrow, 0,
		"Respond to Pending Student Emails", "medium", nextWeek, 0,
	); err != nil {
		return err
	}
	if _, err := tx.Exec(
		`INSERT INTO assignments (name, deadline, status) VALUES (?, ?, ?), (?, ?, ?)`,
		"Algebra Problems", "2025-01-15", "Pending",
		"Physics Lab Report", "2025-01-20", "Completed",
	); err != nil {
		return err
	}
	// PRAGMA does not accept bound parameters.
	if _, err := tx.Exec(`PRAGMA user_version = 1`); err != nil {
		return err
	}
	return tx.Commit()
}

// Close closes the underlying connection.
func (s *Store) Close() error { return s.db.Close() }
