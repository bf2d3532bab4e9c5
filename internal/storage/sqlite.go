// Package storage provides SQLite-based persistence for solved boards.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for solve records.
type Store struct {
	db *sql.DB
}

// SolveEntry represents a single solved board.
type SolveEntry struct {
	ID        int64
	PackID    string
	Board     string
	Moves     int
	Duration  time.Duration
	CreatedAt time.Time
}

// BoardStats contains aggregated statistics for one board.
type BoardStats struct {
	PackID       string
	Board        string
	Solves       int
	BestMoves    int
	BestDuration time.Duration
	LastSolved   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pack_id TEXT NOT NULL,
			board_name TEXT NOT NULL,
			moves INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_board ON solves(pack_id, board_name);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(pack_id, board_name, moves, duration_ms);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSolve records a solved board.
// Returns the ID of the inserted record.
func (s *Store) SaveSolve(packID, board string, moves int, duration time.Duration) (int64, error) {
	if moves <= 0 {
		return 0, fmt.Errorf("storage: invalid move count %d", moves)
	}

	result, err := s.db.Exec(
		"INSERT INTO solves (pack_id, board_name, moves, duration_ms) VALUES (?, ?, ?, ?)",
		packID, board, moves, duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestSolves retrieves the best N solves of a board.
// Results are ordered by moves, then duration, then age.
func (s *Store) BestSolves(packID, board string, limit int) ([]SolveEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, pack_id, board_name, moves, duration_ms, created_at
		 FROM solves
		 WHERE pack_id = ? AND board_name = ?
		 ORDER BY moves ASC, duration_ms ASC, id ASC
		 LIMIT ?`,
		packID, board, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var entries []SolveEntry
	for rows.Next() {
		var e SolveEntry
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.PackID, &e.Board, &e.Moves, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestMoves returns the lowest move count for a board.
// Returns 0 if the board was never solved.
func (s *Store) BestMoves(packID, board string) (int, error) {
	var moves sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(moves) FROM solves WHERE pack_id = ? AND board_name = ?",
		packID, board,
	).Scan(&moves)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best moves: %w", err)
	}

	if !moves.Valid {
		return 0, nil
	}

	return int(moves.Int64), nil
}

// SolvedBoards returns the best move count of every solved board in a pack.
func (s *Store) SolvedBoards(packID string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT board_name, MIN(moves)
		 FROM solves
		 WHERE pack_id = ?
		 GROUP BY board_name`,
		packID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solved boards: %w", err)
	}
	defer rows.Close()

	solved := make(map[string]int)
	for rows.Next() {
		var board string
		var moves int
		if err := rows.Scan(&board, &moves); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		solved[board] = moves
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return solved, nil
}

// ClearSolves deletes all solves of a pack, or every solve when packID is empty.
func (s *Store) ClearSolves(packID string) error {
	var err error
	if packID == "" {
		_, err = s.db.Exec("DELETE FROM solves")
	} else {
		_, err = s.db.Exec("DELETE FROM solves WHERE pack_id = ?", packID)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// PackStats retrieves per-board statistics for a pack, ordered by board name.
func (s *Store) PackStats(packID string) ([]BoardStats, error) {
	rows, err := s.db.Query(
		`SELECT pack_id, board_name, COUNT(*), MIN(moves), MIN(duration_ms), MAX(created_at)
		 FROM solves
		 WHERE pack_id = ?
		 GROUP BY pack_id, board_name
		 ORDER BY board_name`,
		packID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get pack stats: %w", err)
	}
	defer rows.Close()

	var stats []BoardStats
	for rows.Next() {
		var st BoardStats
		var bestMS int64
		var lastSolved any
		if err := rows.Scan(&st.PackID, &st.Board, &st.Solves, &st.BestMoves, &bestMS, &lastSolved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.BestDuration = time.Duration(bestMS) * time.Millisecond
		st.LastSolved = parseTime(lastSolved)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// BoardStats retrieves aggregated statistics for one board.
// Returns zero stats if the board was never solved.
func (s *Store) BoardStats(packID, board string) (*BoardStats, error) {
	st := &BoardStats{PackID: packID, Board: board}

	var bestMS int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(moves), 0), COALESCE(MIN(duration_ms), 0)
		 FROM solves WHERE pack_id = ? AND board_name = ?`,
		packID, board,
	).Scan(&st.Solves, &st.BestMoves, &bestMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get board stats: %w", err)
	}
	st.BestDuration = time.Duration(bestMS) * time.Millisecond

	var lastSolved any
	err = s.db.QueryRow(
		`SELECT created_at FROM solves
		 WHERE pack_id = ? AND board_name = ?
		 ORDER BY created_at DESC, id DESC LIMIT 1`,
		packID, board,
	).Scan(&lastSolved)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last solve: %w", err)
	}
	if err == nil {
		st.LastSolved = parseTime(lastSolved)
	}

	return st, nil
}

// Packs returns the IDs of all packs with at least one solve.
func (s *Store) Packs() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT pack_id FROM solves ORDER BY pack_id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query packs: %w", err)
	}
	defer rows.Close()

	var packs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		packs = append(packs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return packs, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
