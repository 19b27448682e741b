// Package storage provides SQLite-based persistence for finished runs,
// unlocked achievements, and the player's cosmetic choices.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished run.
type RunRecord struct {
	ID         int64
	Score      int
	Level      int
	LevelName  string
	Coins      int
	DurationMs int64
	Perfect    bool
	CreatedAt  time.Time
}

// AchievementRecord is one achievement unlocked during a run.
type AchievementRecord struct {
	ID            int64
	RunID         int64
	AchievementID string
	Name          string
	Reward        int
	CreatedAt     time.Time
}

// Cosmetic is the player's saved appearance. Purely visual.
type Cosmetic struct {
	BodyShape string
	LegStyle  string
	Color     string
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			level_name TEXT NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			perfect INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);

		CREATE TABLE IF NOT EXISTS run_achievements (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			achievement_id TEXT NOT NULL,
			name TEXT NOT NULL,
			reward INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_run_achievements_run ON run_achievements(run_id);
		CREATE INDEX IF NOT EXISTS idx_run_achievements_id ON run_achievements(achievement_id);

		CREATE TABLE IF NOT EXISTS cosmetics (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			body_shape TEXT NOT NULL,
			leg_style TEXT NOT NULL,
			color TEXT NOT NULL
		);
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

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (score, level, level_name, coins, duration_ms, perfect)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Score, r.Level, r.LevelName, r.Coins, r.DurationMs, boolToInt(r.Perfect),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best runs ordered by score descending.
func (s *Store) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, level, level_name, coins, duration_ms, perfect, created_at
		 FROM runs
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// HighScore returns the best score across all runs, or 0 if none exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes all saved runs and their achievements.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM run_achievements"); err != nil {
		return fmt.Errorf("storage: cannot clear achievements: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// SaveAchievements records the achievements unlocked during a run.
func (s *Store) SaveAchievements(runID int64, unlocked []AchievementRecord) error {
	for _, a := range unlocked {
		_, err := s.db.Exec(
			`INSERT INTO run_achievements (run_id, achievement_id, name, reward)
			 VALUES (?, ?, ?, ?)`,
			runID, a.AchievementID, a.Name, a.Reward,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save achievement %s: %w", a.AchievementID, err)
		}
	}
	return nil
}

// RunAchievements retrieves the achievements unlocked during one run.
func (s *Store) RunAchievements(runID int64) ([]AchievementRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, achievement_id, name, reward, created_at
		 FROM run_achievements
		 WHERE run_id = ?
		 ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query achievements: %w", err)
	}
	defer rows.Close()

	var records []AchievementRecord
	for rows.Next() {
		var a AchievementRecord
		var createdAt any
		if err := rows.Scan(&a.ID, &a.RunID, &a.AchievementID, &a.Name, &a.Reward, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		a.CreatedAt = parseTimestamp(createdAt)
		records = append(records, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// UnlockCounts returns, per achievement ID, how many runs unlocked it.
func (s *Store) UnlockCounts() (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT achievement_id, COUNT(*) FROM run_achievements GROUP BY achievement_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query unlock counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts[id] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// RunStats contains aggregated statistics over all saved runs.
type RunStats struct {
	RunsCount  int
	HighScore  int
	AvgScore   float64
	TotalCoins int64
	LastPlayed time.Time
}

// GetRunStats retrieves aggregated statistics across all runs.
func (s *Store) GetRunStats() (*RunStats, error) {
	stats := &RunStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(coins), 0)
		 FROM runs`,
	).Scan(&stats.RunsCount, &stats.HighScore, &stats.AvgScore, &stats.TotalCoins)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// LoadCosmetic retrieves the saved appearance. The bool reports whether
// one was ever saved.
func (s *Store) LoadCosmetic() (Cosmetic, bool, error) {
	var c Cosmetic
	err := s.db.QueryRow(
		"SELECT body_shape, leg_style, color FROM cosmetics WHERE id = 1",
	).Scan(&c.BodyShape, &c.LegStyle, &c.Color)

	if err == sql.ErrNoRows {
		return Cosmetic{}, false, nil
	}
	if err != nil {
		return Cosmetic{}, false, fmt.Errorf("storage: cannot load cosmetic: %w", err)
	}

	return c, true, nil
}

// SaveCosmetic stores the appearance, replacing any previous one.
func (s *Store) SaveCosmetic(c Cosmetic) error {
	_, err := s.db.Exec(
		`INSERT INTO cosmetics (id, body_shape, leg_style, color) VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET body_shape = ?, leg_style = ?, color = ?`,
		c.BodyShape, c.LegStyle, c.Color,
		c.BodyShape, c.LegStyle, c.Color,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save cosmetic: %w", err)
	}
	return nil
}

func scanRun(rows *sql.Rows) (RunRecord, error) {
	var r RunRecord
	var perfect int
	var createdAt any
	if err := rows.Scan(&r.ID, &r.Score, &r.Level, &r.LevelName, &r.Coins, &r.DurationMs, &perfect, &createdAt); err != nil {
		return RunRecord{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.Perfect = perfect != 0
	r.CreatedAt = parseTimestamp(createdAt)
	return r, nil
}

// parseTimestamp handles the driver returning either time.Time or the
// raw DATETIME string.
func parseTimestamp(v any) time.Time {
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

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
