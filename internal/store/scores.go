package store

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/asheth/quizdeck/internal/quiz"
)

// ScoreEntry is one persisted quiz result — a frozen projection of a
// finished session.
type ScoreEntry struct {
	ID         int64
	SessionID  string
	PlayedAt   time.Time
	Score      int
	Total      int
	Percentage float64
	TotalTime  float64 // seconds
	AvgTime    float64 // seconds
	Category   string  // "" = any
	Difficulty string  // "" = any
}

// NewScoreEntry projects a session result into a ScoreEntry stamped now.
func NewScoreEntry(sessionID string, res quiz.Result, category, difficulty string) ScoreEntry {
	return ScoreEntry{
		SessionID:  sessionID,
		PlayedAt:   time.Now(),
		Score:      res.Score,
		Total:      res.TotalQuestions,
		Percentage: res.Percentage,
		TotalTime:  res.TotalTime,
		AvgTime:    res.AverageTime,
		Category:   category,
		Difficulty: difficulty,
	}
}

// Stats summarizes the score history for the home screen.
type Stats struct {
	GamesPlayed    int
	BestPercentage float64
}

// Append inserts a score entry.
func (s *Store) Append(ctx context.Context, e ScoreEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scores
			(session_id, played_at_unix, score, total, percentage,
			 total_time_secs, avg_time_secs, category, difficulty)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.SessionID, e.PlayedAt.Unix(), e.Score, e.Total, e.Percentage,
		e.TotalTime, e.AvgTime, e.Category, e.Difficulty,
	)
	return err
}

// Leaderboard returns up to limit entries ordered by percentage descending,
// ties broken by faster total time.
func (s *Store) Leaderboard(ctx context.Context, limit int) ([]ScoreEntry, error) {
	return s.query(ctx, `
		SELECT id, session_id, played_at_unix, score, total, percentage,
		       total_time_secs, avg_time_secs, category, difficulty
		FROM scores
		ORDER BY percentage DESC, total_time_secs ASC
		LIMIT ?`, limit)
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]ScoreEntry, error) {
	return s.query(ctx, `
		SELECT id, session_id, played_at_unix, score, total, percentage,
		       total_time_secs, avg_time_secs, category, difficulty
		FROM scores
		ORDER BY played_at_unix DESC, id DESC
		LIMIT ?`, limit)
}

// Stats returns the games-played count and best percentage across history.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(MAX(percentage), 0) FROM scores`,
	).Scan(&st.GamesPlayed, &st.BestPercentage)
	return st, err
}

// Clear deletes the entire score history.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM scores`)
	return err
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var playedAt int64
		if err := rows.Scan(
			&e.ID, &e.SessionID, &playedAt, &e.Score, &e.Total, &e.Percentage,
			&e.TotalTime, &e.AvgTime, &e.Category, &e.Difficulty,
		); err != nil {
			return nil, err
		}
		e.PlayedAt = time.Unix(playedAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// exportedScore is the JSON shape written by ExportJSON, kept compatible
// with the quiz_scores.json files earlier releases produced.
type exportedScore struct {
	Date           string  `json:"date"`
	Score          int     `json:"score"`
	TotalQuestions int     `json:"total_questions"`
	Percentage     float64 `json:"percentage"`
	TotalTime      float64 `json:"total_time"`
}

// ExportJSON writes the full score history to w as an indented JSON array,
// newest first.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer) error {
	entries, err := s.Recent(ctx, -1)
	if err != nil {
		return err
	}

	exported := make([]exportedScore, 0, len(entries))
	for _, e := range entries {
		exported = append(exported, exportedScore{
			Date:           e.PlayedAt.Format(time.RFC3339),
			Score:          e.Score,
			TotalQuestions: e.Total,
			Percentage:     e.Percentage,
			TotalTime:      e.TotalTime,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(exported)
}
