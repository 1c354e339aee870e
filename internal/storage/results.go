package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-wordplay/internal/core"
)

// Result is one finished game. Score is elapsed seconds for crosswords and
// mistakes made for Connections; lower is better.
type Result struct {
	ID        int64
	SessionID string
	GameID    string
	PuzzleID  string
	Player    string
	Outcome   core.Outcome
	Score     int
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	Played     int
	Wins       int
	BestScore  int // Lowest winning score, 0 without wins
	AvgScore   float64
	LastPlayed time.Time
}

// WinRate returns the share of games won, 0 when none were played.
func (g GameStats) WinRate() float64 {
	if g.Played == 0 {
		return 0
	}
	return float64(g.Wins) / float64(g.Played)
}

const resultColumns = `id, session_id, game_id, puzzle_id, player, outcome, score, created_at`

// winClause matches outcomes that count as a win.
var winClause = buildWinClause()

func buildWinClause() string {
	var wins []string
	for _, o := range core.Outcomes {
		if o.Success() {
			wins = append(wins, "'"+string(o)+"'")
		}
	}
	return "outcome IN (" + strings.Join(wins, ", ") + ")"
}

// SaveResult records a finished game. A missing SessionID gets a fresh one.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.SessionID == "" {
		r.SessionID = uuid.NewString()
	}

	res, err := s.db.Exec(
		`INSERT INTO results (session_id, game_id, puzzle_id, player, outcome, score)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.GameID, r.PuzzleID, r.Player, string(r.Outcome), r.Score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopResults returns the best winning results for a game, lowest score
// first.
func (s *Store) TopResults(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE game_id = ? AND `+winClause+`
		 ORDER BY score ASC, created_at ASC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// RecentResults returns the latest results, newest first. An empty player
// means everyone.
func (s *Store) RecentResults(player string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	if player == "" {
		return s.queryResults(
			`SELECT `+resultColumns+` FROM results ORDER BY created_at DESC, id DESC LIMIT ?`,
			limit,
		)
	}
	return s.queryResults(
		`SELECT `+resultColumns+` FROM results WHERE player = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		player, limit,
	)
}

func (s *Store) queryResults(query string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var outcome string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.GameID, &r.PuzzleID, &r.Player, &outcome, &r.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = core.Outcome(outcome)
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var best sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN `+winClause+` THEN 1 ELSE 0 END), 0),
		        MIN(CASE WHEN `+winClause+` THEN score END),
		        COALESCE(AVG(score), 0)
		 FROM results WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Played, &stats.Wins, &best, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	if best.Valid {
		stats.BestScore = int(best.Int64)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query("SELECT DISTINCT game_id FROM results ORDER BY game_id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	stats := make(map[string]*GameStats, len(ids))
	for _, id := range ids {
		st, err := s.GetGameStats(id)
		if err != nil {
			return nil, err
		}
		stats[id] = st
	}
	return stats, nil
}
