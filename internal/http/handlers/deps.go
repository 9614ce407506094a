package handlers

import (
	"github.com/jmoiron/sqlx"

	"github.com/oseasjs/nest-crud-jwt/internal/repos"
	"github.com/oseasjs/nest-crud-jwt/internal/services"
)

type Deps struct {
	AuthHandler    *AuthHandler
	ProductHandler *ProductHandler
}

func NewDeps(db *sqlx.DB, auth *services.AuthService) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)

	prodSvc := services.NewProductService(prodRepo, catRepo)

	return &Deps{
		AuthHandler:    &AuthHandler{Auth: auth},
		ProductHandler: &ProductHandler{Products: prodSvc},
	}
}
