package domain

type ProductStatus string

const (
	StatusAvailable ProductStatus = "AVAILABLE"
	StatusInTransit ProductStatus = "IN_TRANSIT"
	StatusDelivered ProductStatus = "DELIVERED"
)

type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Product struct {
	ID          int64         `db:"id" json:"id"`
	Name        string        `db:"name" json:"name"`
	Description string        `db:"description" json:"description"`
	Status      ProductStatus `db:"status" json:"status"`
	CategoryID  *int64        `db:"product_category_id" json:"categoryId,omitempty"`
	UserID      int64         `db:"user_id" json:"userId"`
	Category    *Category     `db:"-" json:"productCategory,omitempty"`
}

// ProductFilter narrows an owner-scoped listing. Zero values mean
// "predicate not applied".
type ProductFilter struct {
	Status ProductStatus
	Search string
}
