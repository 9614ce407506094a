package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/oseasjs/nest-crud-jwt/internal/domain"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

// ByID returns (nil, nil) when the category does not exist; callers
// check for absence explicitly.
func (r *CategoryRepo) ByID(id int64) (*domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `SELECT id, name FROM categories WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
