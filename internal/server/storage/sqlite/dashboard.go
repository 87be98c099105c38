package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/codeclimb/internal/server/storage"
)

// LatestActivity returns the list and timestamp of the user's most recent
// attempt update
func (s *Storage) LatestActivity(ctx context.Context, userID string) (string, time.Time, error) {
	query := `
		SELECT list_id, updated_at
		FROM attempts
		WHERE user_id = ?
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var (
		listID string
		at     time.Time
	)

	err := s.db.QueryRowContext(ctx, query, userID).Scan(&listID, &at)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", time.Time{}, nil
		}
		return "", time.Time{}, fmt.Errorf("failed to get latest activity: %w", err)
	}

	return listID, at, nil
}

// SolvedDates returns distinct solved dates of a list, newest first.
// Учитывается только последняя попытка по каждой задаче: снятая отметка
// solved убирает задачу из статистики.
func (s *Storage) SolvedDates(ctx context.Context, userID, listID string) ([]string, error) {
	query := `
		SELECT DISTINCT date_solved
		FROM (
			SELECT date_solved, solved, ROW_NUMBER() OVER (
				PARTITION BY problem_id ORDER BY updated_at DESC
			) AS rn
			FROM attempts
			WHERE user_id = ? AND list_id = ?
		)
		WHERE rn = 1 AND solved = 1 AND date_solved IS NOT NULL
		ORDER BY date_solved DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to query solved dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("failed to scan date: %w", err)
		}
		dates = append(dates, date)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dates: %w", err)
	}

	return dates, nil
}

// CategoryStats aggregates solved counts and average time per category
func (s *Storage) CategoryStats(ctx context.Context, userID, listID string) ([]storage.CategoryAggregate, error) {
	query := `
		WITH latest AS (
			SELECT a.*, ROW_NUMBER() OVER (
				PARTITION BY a.problem_id ORDER BY a.updated_at DESC
			) AS rn
			FROM attempts a
			WHERE a.user_id = ? AND a.list_id = ?
		)
		SELECT p.category,
			   COUNT(*) AS solved_count,
			   AVG(latest.time_minutes) AS avg_time_minutes
		FROM latest
		JOIN lists l ON l.id = latest.list_id
		JOIN problems p ON p.template_version = l.template_version
			AND p.problem_id = latest.problem_id
		WHERE latest.rn = 1 AND latest.solved = 1
		GROUP BY p.category
		ORDER BY p.category
	`

	rows, err := s.db.QueryContext(ctx, query, userID, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category stats: %w", err)
	}
	defer rows.Close()

	var stats []storage.CategoryAggregate
	for rows.Next() {
		var (
			agg     storage.CategoryAggregate
			avgTime sql.NullFloat64
		)
		if err := rows.Scan(&agg.Category, &agg.SolvedCount, &avgTime); err != nil {
			return nil, fmt.Errorf("failed to scan category stat: %w", err)
		}
		if avgTime.Valid {
			agg.AvgTimeMinutes = &avgTime.Float64
		}
		stats = append(stats, agg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category stats: %w", err)
	}

	return stats, nil
}

// Farthest returns the farthest solved problem of a list by catalog order
func (s *Storage) Farthest(ctx context.Context, userID, listID string) (*storage.FarthestSolved, error) {
	query := `
		WITH latest AS (
			SELECT a.*, ROW_NUMBER() OVER (
				PARTITION BY a.problem_id ORDER BY a.updated_at DESC
			) AS rn
			FROM attempts a
			WHERE a.user_id = ? AND a.list_id = ?
		)
		SELECT p.category, p.order_index
		FROM latest
		JOIN lists l ON l.id = latest.list_id
		JOIN problems p ON p.template_version = l.template_version
			AND p.problem_id = latest.problem_id
		WHERE latest.rn = 1 AND latest.solved = 1
		ORDER BY p.order_index DESC
		LIMIT 1
	`

	farthest := &storage.FarthestSolved{}

	err := s.db.QueryRowContext(ctx, query, userID, listID).Scan(
		&farthest.Category,
		&farthest.OrderIndex,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get farthest solved: %w", err)
	}

	return farthest, nil
}
