package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/codeclimb/internal/models"
	"github.com/iudanet/codeclimb/internal/server/storage"
)

const attemptColumns = `id, user_id, list_id, problem_id, solved, date_solved,
	time_minutes, attempts, confidence, time_complexity, space_complexity,
	notes, problem_url, created_at, updated_at`

// CreateAttempt inserts a new attempt record
func (s *Storage) CreateAttempt(ctx context.Context, entry *models.AttemptEntry) error {
	query := `
		INSERT INTO attempts (` + attemptColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.ListID,
		entry.ProblemID,
		nullBool(entry.Solved),
		nullString(entry.DateSolved),
		nullInt(entry.TimeMinutes),
		nullInt(entry.Attempts),
		nullString(entry.Confidence),
		nullString(entry.TimeComplexity),
		nullString(entry.SpaceComplexity),
		nullString(entry.Notes),
		nullString(entry.ProblemURL),
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert attempt: %w", err)
	}

	return nil
}

// GetAttempt retrieves an attempt by ID scoped to its owner
func (s *Storage) GetAttempt(ctx context.Context, attemptID, userID string) (*models.AttemptEntry, error) {
	query := `
		SELECT ` + attemptColumns + `
		FROM attempts
		WHERE id = ? AND user_id = ?
	`

	entry, err := scanAttempt(s.db.QueryRowContext(ctx, query, attemptID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAttemptNotFound
		}
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}

	return entry, nil
}

// UpdateAttempt overwrites the mutable fields of an existing record
func (s *Storage) UpdateAttempt(ctx context.Context, entry *models.AttemptEntry) error {
	query := `
		UPDATE attempts
		SET solved = ?, date_solved = ?, time_minutes = ?, attempts = ?,
			confidence = ?, time_complexity = ?, space_complexity = ?,
			notes = ?, problem_url = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	res, err := s.db.ExecContext(ctx, query,
		nullBool(entry.Solved),
		nullString(entry.DateSolved),
		nullInt(entry.TimeMinutes),
		nullInt(entry.Attempts),
		nullString(entry.Confidence),
		nullString(entry.TimeComplexity),
		nullString(entry.SpaceComplexity),
		nullString(entry.Notes),
		nullString(entry.ProblemURL),
		entry.UpdatedAt,
		entry.ID,
		entry.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attempt: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrAttemptNotFound
	}

	return nil
}

// DeleteAttempt removes an attempt record
func (s *Storage) DeleteAttempt(ctx context.Context, attemptID, userID string) error {
	query := `DELETE FROM attempts WHERE id = ? AND user_id = ?`

	res, err := s.db.ExecContext(ctx, query, attemptID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete attempt: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrAttemptNotFound
	}

	return nil
}

// AttemptHistory returns all attempts of a problem, newest first
func (s *Storage) AttemptHistory(ctx context.Context, userID, listID string, problemID int) ([]models.AttemptEntry, error) {
	query := `
		SELECT ` + attemptColumns + `
		FROM attempts
		WHERE user_id = ? AND list_id = ? AND problem_id = ?
		ORDER BY updated_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, listID, problemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []models.AttemptEntry
	for rows.Next() {
		entry, err := scanAttempt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}

	return entries, nil
}

// LatestAttempts returns the newest attempt per problem in a list
func (s *Storage) LatestAttempts(ctx context.Context, userID, listID string) (map[int]*models.AttemptEntry, error) {
	// Оконная функция: одна строка на задачу, самая свежая по updated_at
	query := `
		SELECT ` + attemptColumns + `
		FROM (
			SELECT *, ROW_NUMBER() OVER (
				PARTITION BY problem_id ORDER BY updated_at DESC
			) AS rn
			FROM attempts
			WHERE user_id = ? AND list_id = ?
		)
		WHERE rn = 1
	`

	rows, err := s.db.QueryContext(ctx, query, userID, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest attempts: %w", err)
	}
	defer rows.Close()

	latest := make(map[int]*models.AttemptEntry)
	for rows.Next() {
		entry, err := scanAttempt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		latest[entry.ProblemID] = entry
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate latest attempts: %w", err)
	}

	return latest, nil
}

// scanner покрывает и *sql.Row, и *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanAttempt(row scanner) (*models.AttemptEntry, error) {
	entry := &models.AttemptEntry{}

	var (
		solved          sql.NullBool
		dateSolved      sql.NullString
		timeMinutes     sql.NullInt64
		attempts        sql.NullInt64
		confidence      sql.NullString
		timeComplexity  sql.NullString
		spaceComplexity sql.NullString
		notes           sql.NullString
		problemURL      sql.NullString
	)

	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.ListID,
		&entry.ProblemID,
		&solved,
		&dateSolved,
		&timeMinutes,
		&attempts,
		&confidence,
		&timeComplexity,
		&spaceComplexity,
		&notes,
		&problemURL,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Solved = fromNullBool(solved)
	entry.DateSolved = fromNullString(dateSolved)
	entry.TimeMinutes = fromNullInt(timeMinutes)
	entry.Attempts = fromNullInt(attempts)
	entry.Confidence = fromNullString(confidence)
	entry.TimeComplexity = fromNullString(timeComplexity)
	entry.SpaceComplexity = fromNullString(spaceComplexity)
	entry.Notes = fromNullString(notes)
	entry.ProblemURL = fromNullString(problemURL)

	return entry, nil
}

func nullBool(v *bool) sql.NullBool {
	if v == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *v, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func fromNullBool(v sql.NullBool) *bool {
	if !v.Valid {
		return nil
	}
	return &v.Bool
}

func fromNullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func fromNullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
