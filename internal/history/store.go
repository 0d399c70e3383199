package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

func (s *implStore) Create(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, video_id, title, status, started_at) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.VideoID, run.Title, run.Status, run.StartedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func (s *implStore) Finish(ctx context.Context, id string, outcome Outcome) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET status = ?, finished_at = ?, tokens_used = ?, processing_time = ?,
		 estimated_cost = ?, output_dir = ?, error = ? WHERE id = ?`,
		outcome.Status, time.Now().UTC(), outcome.TokensUsed, outcome.ProcessingTime,
		outcome.EstimatedCost, outcome.OutputDir, outcome.Error, id,
	)
	if err != nil {
		return fmt.Errorf("update run: %w", err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("run %s not found", id)
	}
	return nil
}

func (s *implStore) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, video_id, title, status, started_at, finished_at, tokens_used,
		 processing_time, estimated_cost, output_dir, error
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var finished sql.NullTime
		if err := rows.Scan(&r.ID, &r.VideoID, &r.Title, &r.Status, &r.StartedAt, &finished,
			&r.TokensUsed, &r.ProcessingTime, &r.EstimatedCost, &r.OutputDir, &r.Error); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if finished.Valid {
			r.FinishedAt = finished.Time
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

func (s *implStore) Close() error {
	return s.db.Close()
}
