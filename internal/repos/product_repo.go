package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/oseasjs/nest-crud-jwt/internal/domain"
	applog "github.com/oseasjs/nest-crud-jwt/internal/log"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  p.id, p.name, p.description, p.status, p.product_category_id, p.user_id,
  c.id   AS cat_id,
  c.name AS cat_name`

const productFrom = `
  FROM products p
  LEFT JOIN categories c ON c.id = p.product_category_id`

// productRow carries the left-joined category columns alongside the
// product so category data never needs a second round trip.
type productRow struct {
	domain.Product
	CatID   *int64  `db:"cat_id"`
	CatName *string `db:"cat_name"`
}

func (row productRow) unpack() domain.Product {
	p := row.Product
	if row.CatID != nil {
		p.Category = &domain.Category{ID: *row.CatID, Name: *row.CatName}
	}
	return p
}

// Create persists a new product. Driver failures are logged with the
// attempted payload and owner, then surfaced as an opaque ErrStorage.
func (r *ProductRepo) Create(p *domain.Product, username string) error {
	res, err := r.db.Exec(`
      INSERT INTO products(name, description, status, product_category_id, user_id)
      VALUES(?,?,?,?,?)`,
		p.Name, p.Description, p.Status, p.CategoryID, p.UserID)
	if err != nil {
		applog.Error(nil, "product.create.fail", err, map[string]any{
			"user": username, "name": p.Name, "description": p.Description, "categoryId": p.CategoryID,
		})
		return fmt.Errorf("create product: %w", domain.ErrStorage)
	}
	id, err := res.LastInsertId()
	if err != nil {
		applog.Error(nil, "product.create.fail", err, map[string]any{"user": username})
		return fmt.Errorf("create product: %w", domain.ErrStorage)
	}
	p.ID = id
	return nil
}

// ByID is owner-scoped: a product belonging to another user behaves as
// absent, returning the (nil, nil) sentinel.
func (r *ProductRepo) ByID(id, ownerID int64) (*domain.Product, error) {
	var row productRow
	err := r.db.Get(&row, `SELECT`+productCols+productFrom+`
      WHERE p.id = ? AND p.user_id = ?`, id, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p := row.unpack()
	return &p, nil
}

// All lists every product with no ownership scoping.
func (r *ProductRepo) All() ([]domain.Product, error) {
	var rows []productRow
	err := r.db.Select(&rows, `SELECT`+productCols+productFrom+` ORDER BY p.id`)
	if err != nil {
		return nil, err
	}
	return unpackAll(rows), nil
}

// Filter builds the owner-scoped listing query. Status equality is
// applied first when present, then the name/description disjunction.
func (r *ProductRepo) Filter(f domain.ProductFilter, ownerID int64) ([]domain.Product, error) {
	where := `p.user_id = ?`
	args := []any{ownerID}
	if f.Status != "" {
		where += ` AND p.status = ?`
		args = append(args, f.Status)
	}
	if f.Search != "" {
		where += ` AND (p.name LIKE ? OR p.description LIKE ?)`
		like := "%" + f.Search + "%"
		args = append(args, like, like)
	}

	var rows []productRow
	err := r.db.Select(&rows, `SELECT`+productCols+productFrom+`
      WHERE `+where+` ORDER BY p.id`, args...)
	if err != nil {
		return nil, err
	}
	return unpackAll(rows), nil
}

// Delete removes at most one row matching both id and owner and reports
// how many rows were affected.
func (r *ProductRepo) Delete(id, ownerID int64) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ? AND user_id = ?`, id, ownerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// UpdateStatus persists the status of an already-fetched product.
func (r *ProductRepo) UpdateStatus(p *domain.Product) error {
	_, err := r.db.Exec(`UPDATE products SET status = ? WHERE id = ? AND user_id = ?`,
		p.Status, p.ID, p.UserID)
	return err
}

func unpackAll(rows []productRow) []domain.Product {
	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.unpack())
	}
	return out
}
