package services

import (
	"fmt"

	"github.com/oseasjs/nest-crud-jwt/internal/domain"
	applog "github.com/oseasjs/nest-crud-jwt/internal/log"
)

// ProductStore is the persistence surface the service orchestrates.
// *repos.ProductRepo satisfies it.
type ProductStore interface {
	Create(p *domain.Product, username string) error
	ByID(id, ownerID int64) (*domain.Product, error)
	All() ([]domain.Product, error)
	Filter(f domain.ProductFilter, ownerID int64) ([]domain.Product, error)
	Delete(id, ownerID int64) (int64, error)
	UpdateStatus(p *domain.Product) error
}

// CategoryStore resolves category references before product creation.
type CategoryStore interface {
	ByID(id int64) (*domain.Category, error)
}

type CreateProductInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  *int64 `json:"categoryId"`
}

type ProductService struct {
	Products   ProductStore
	Categories CategoryStore
}

func NewProductService(products ProductStore, categories CategoryStore) *ProductService {
	return &ProductService{Products: products, Categories: categories}
}

// GetByID fails with ErrNotFound for absent products and for products
// owned by someone else; the two cases are indistinguishable.
func (s *ProductService) GetByID(id int64, user *domain.User) (*domain.Product, error) {
	p, err := s.Products.ByID(id, user.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("product with id '%d' not found: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

// ListAll returns every product with no ownership scoping.
func (s *ProductService) ListAll() ([]domain.Product, error) {
	return s.Products.All()
}

func (s *ProductService) ListByFilter(f domain.ProductFilter, user *domain.User) ([]domain.Product, error) {
	return s.Products.Filter(f, user.ID)
}

// Create validates the category reference (when present), forces the
// initial status to AVAILABLE and stamps the owner. Failures are logged
// with the user and payload and re-raised unchanged.
func (s *ProductService) Create(in CreateProductInput, user *domain.User) (*domain.Product, error) {
	p, err := s.create(in, user)
	if err != nil {
		applog.Error(nil, "product.create.fail", err, map[string]any{
			"user": user.Username, "name": in.Name, "description": in.Description, "categoryId": in.CategoryID,
		})
		return nil, err
	}
	return p, nil
}

func (s *ProductService) create(in CreateProductInput, user *domain.User) (*domain.Product, error) {
	var cat *domain.Category
	if in.CategoryID != nil {
		var err error
		cat, err = s.Categories.ByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, fmt.Errorf("product category with id '%d' not found: %w", *in.CategoryID, domain.ErrNotFound)
		}
	}

	p := &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Status:      domain.StatusAvailable,
		CategoryID:  in.CategoryID,
		UserID:      user.ID,
		Category:    cat,
	}
	if err := s.Products.Create(p, user.Username); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete reports ErrNotFound when nothing matched the id/owner pair.
func (s *ProductService) Delete(id int64, user *domain.User) error {
	affected, err := s.Products.Delete(id, user.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("product with id '%d' not found: %w", id, domain.ErrNotFound)
	}
	return nil
}

// UpdateStatus is a fetch-then-save: concurrent updates to the same row
// can lose one write, matching the storage transaction model.
func (s *ProductService) UpdateStatus(id int64, status domain.ProductStatus, user *domain.User) (*domain.Product, error) {
	p, err := s.GetByID(id, user)
	if err != nil {
		return nil, err
	}
	p.Status = status
	if err := s.Products.UpdateStatus(p); err != nil {
		return nil, err
	}
	return p, nil
}
