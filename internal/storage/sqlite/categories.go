package sqlite

import (
	"context"
	"database/sql"

	"github.com/rohan-06-eng/cantilver-expense/internal/models"
)

// ListCategories returns all categories ordered by id, which reproduces the
// seed order of the fixed catalog.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name FROM categories ORDER BY id",
	)
	if err != nil {
		return nil, wrapUnavailable("list categories", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, wrapUnavailable("scan category", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapUnavailable("iterate categories", err)
	}

	return categories, nil
}

// GetCategoryByName retrieves a category by its exact name.
func (s *SQLiteStore) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	category := &models.Category{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name FROM categories WHERE name = ?",
		name,
	).Scan(&category.ID, &category.Name)

	if err == sql.ErrNoRows {
		return nil, nil // Category not found
	}
	if err != nil {
		return nil, wrapUnavailable("get category by name", err)
	}

	return category, nil
}
