package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gokatarajesh/trivia-api/internal/db/queries"
)

type categoryStore interface {
	ListCategories(ctx context.Context) ([]queries.Category, error)
	GetCategory(ctx context.Context, id int64) (queries.Category, error)
}

// CategoryRepository provides read-only access to categories.
type CategoryRepository struct {
	store categoryStore
}

func NewCategoryRepository(store categoryStore) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// List returns every category ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]queries.Category, error) {
	rows, err := r.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return rows, nil
}

// Get fetches one category; a missing id yields ErrNotFound.
func (r *CategoryRepository) Get(ctx context.Context, id int64) (queries.Category, error) {
	row, err := r.store.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return queries.Category{}, ErrNotFound
		}
		return queries.Category{}, fmt.Errorf("get category %d: %w", id, err)
	}
	return row, nil
}
