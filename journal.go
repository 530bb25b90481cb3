package main // import "github.com/tonobo/gridsnake"

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const createMovesTableSQL = `
CREATE TABLE IF NOT EXISTS Moves (
    GameID TEXT,
    Turn INTEGER,
    Mode TEXT,
    Direction INTEGER,
    RecordedAt INTEGER,
    PRIMARY KEY (GameID, Turn, Mode)
);
`

const createMovesIndexSQL = `
CREATE INDEX IF NOT EXISTS idx_moves_game ON Moves (GameID);
`

// JournalEntry is one decision served to a host.
type JournalEntry struct {
	GameID     string    `json:"game_id"`
	Turn       int       `json:"turn"`
	Mode       string    `json:"mode"`
	Direction  Direction `json:"move"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Journal records decisions in sqlite. A nil *Journal records nothing.
type Journal struct {
	db *sql.DB
}

func OpenJournal(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}
	for _, stmt := range []string{createMovesTableSQL, createMovesIndexSQL} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("init journal: %w", err)
		}
	}
	return &Journal{db: db}, nil
}

func (j *Journal) Record(e JournalEntry) error {
	if j == nil {
		return nil
	}
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now()
	}
	_, err := j.db.Exec("INSERT OR REPLACE INTO Moves (GameID, Turn, Mode, Direction, RecordedAt) VALUES (?, ?, ?, ?, ?)",
		e.GameID, e.Turn, e.Mode, int(e.Direction), e.RecordedAt.Unix())
	return err
}

func (j *Journal) Moves(gameID string) ([]JournalEntry, error) {
	if j == nil {
		return nil, nil
	}
	rows, err := j.db.Query("SELECT GameID, Turn, Mode, Direction, RecordedAt FROM Moves WHERE GameID = ? ORDER BY Turn, Mode", gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []JournalEntry{}
	for rows.Next() {
		var (
			e          JournalEntry
			direction  int
			recordedAt int64
		)
		if err := rows.Scan(&e.GameID, &e.Turn, &e.Mode, &direction, &recordedAt); err != nil {
			return nil, err
		}
		e.Direction = Direction(direction)
		e.RecordedAt = time.Unix(recordedAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (j *Journal) Forget(gameID string) error {
	if j == nil {
		return nil
	}
	_, err := j.db.Exec("DELETE FROM Moves WHERE GameID = ?", gameID)
	return err
}

func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	return j.db.Close()
}
