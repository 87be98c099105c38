package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/codeclimb/internal/models"
	"github.com/iudanet/codeclimb/internal/server/storage"
)

// CreateList creates a new problem list for a user
func (s *Storage) CreateList(ctx context.Context, list *models.List) error {
	// Версия каталога должна существовать, иначе список будет пустым навсегда
	exists, err := s.templateExists(ctx, list.TemplateVersion)
	if err != nil {
		return err
	}
	if !exists {
		return storage.ErrTemplateNotFound
	}

	query := `
		INSERT INTO lists (id, user_id, name, template_version, deprecated, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		list.ID,
		list.UserID,
		list.Name,
		list.TemplateVersion,
		list.Deprecated,
		list.CreatedAt,
		list.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert list: %w", err)
	}

	return nil
}

// GetList retrieves a list by ID scoped to its owner
func (s *Storage) GetList(ctx context.Context, listID, userID string) (*models.List, error) {
	query := `
		SELECT id, user_id, name, template_version, deprecated, created_at, updated_at
		FROM lists
		WHERE id = ? AND user_id = ?
	`

	list := &models.List{}

	err := s.db.QueryRowContext(ctx, query, listID, userID).Scan(
		&list.ID,
		&list.UserID,
		&list.Name,
		&list.TemplateVersion,
		&list.Deprecated,
		&list.CreatedAt,
		&list.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrListNotFound
		}
		return nil, fmt.Errorf("failed to get list: %w", err)
	}

	return list, nil
}

// ListsByUser returns all lists of a user ordered by creation time
func (s *Storage) ListsByUser(ctx context.Context, userID string) ([]models.List, error) {
	query := `
		SELECT id, user_id, name, template_version, deprecated, created_at, updated_at
		FROM lists
		WHERE user_id = ?
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists: %w", err)
	}
	defer rows.Close()

	var lists []models.List
	for rows.Next() {
		var list models.List
		if err := rows.Scan(
			&list.ID,
			&list.UserID,
			&list.Name,
			&list.TemplateVersion,
			&list.Deprecated,
			&list.CreatedAt,
			&list.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, list)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lists: %w", err)
	}

	return lists, nil
}

// TouchList bumps the list's updated_at timestamp
func (s *Storage) TouchList(ctx context.Context, listID string) error {
	query := `UPDATE lists SET updated_at = ? WHERE id = ?`

	if _, err := s.db.ExecContext(ctx, query, time.Now().UTC(), listID); err != nil {
		return fmt.Errorf("failed to touch list: %w", err)
	}

	return nil
}

// ProblemsByTemplate returns the catalog of a template version in order
func (s *Storage) ProblemsByTemplate(ctx context.Context, templateVersion string) ([]models.CatalogProblem, error) {
	exists, err := s.templateExists(ctx, templateVersion)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, storage.ErrTemplateNotFound
	}

	query := `
		SELECT template_version, problem_id, order_index, title, url, category, difficulty
		FROM problems
		WHERE template_version = ?
		ORDER BY order_index
	`

	rows, err := s.db.QueryContext(ctx, query, templateVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to query problems: %w", err)
	}
	defer rows.Close()

	var problems []models.CatalogProblem
	for rows.Next() {
		var p models.CatalogProblem
		if err := rows.Scan(
			&p.TemplateVersion,
			&p.ProblemID,
			&p.OrderIndex,
			&p.Title,
			&p.URL,
			&p.Category,
			&p.Difficulty,
		); err != nil {
			return nil, fmt.Errorf("failed to scan problem: %w", err)
		}
		problems = append(problems, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate problems: %w", err)
	}

	return problems, nil
}

// ProblemExists reports whether a problem id belongs to the template
func (s *Storage) ProblemExists(ctx context.Context, templateVersion string, problemID int) (bool, error) {
	query := `SELECT 1 FROM problems WHERE template_version = ? AND problem_id = ?`

	var one int
	err := s.db.QueryRowContext(ctx, query, templateVersion, problemID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check problem: %w", err)
	}

	return true, nil
}

// templateExists проверяет наличие версии каталога
func (s *Storage) templateExists(ctx context.Context, templateVersion string) (bool, error) {
	query := `SELECT 1 FROM problems WHERE template_version = ? LIMIT 1`

	var one int
	err := s.db.QueryRowContext(ctx, query, templateVersion).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check template: %w", err)
	}

	return true, nil
}
