package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/oseasjs/nest-crud-jwt/internal/domain"
	applog "github.com/oseasjs/nest-crud-jwt/internal/log"
	"github.com/oseasjs/nest-crud-jwt/internal/services"
	"github.com/oseasjs/nest-crud-jwt/internal/validate"
)

type ProductHandler struct {
	Products *services.ProductService
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return respondErr(c, fmt.Errorf("id must be a positive integer: %w", domain.ErrValidation))
	}
	user := currentUser(c)
	applog.Info(c, "product.get", map[string]any{"id": id})
	p, err := h.Products.GetByID(id, user)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(p)
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	var f domain.ProductFilter
	if raw := c.Query("status"); raw != "" {
		status, ok := validate.Status(raw)
		if !ok {
			return respondErr(c, fmt.Errorf("'%s' is not a valid status: %w", raw, domain.ErrValidation))
		}
		f.Status = status
	}
	if raw := c.Query("search"); raw != "" {
		search, ok := validate.Search(raw)
		if !ok {
			return respondErr(c, fmt.Errorf("search must not be blank: %w", domain.ErrValidation))
		}
		f.Search = search
	}

	user := currentUser(c)
	applog.Info(c, "product.list", map[string]any{"status": string(f.Status), "search": f.Search})
	products, err := h.Products.ListByFilter(f, user)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(products)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in services.CreateProductInput
	if err := c.BodyParser(&in); err != nil {
		return respondErr(c, fmt.Errorf("malformed body: %w", domain.ErrValidation))
	}
	name, ok := validate.Name(in.Name)
	if !ok {
		return respondErr(c, fmt.Errorf("name must not be empty: %w", domain.ErrValidation))
	}
	desc, ok := validate.Name(in.Description)
	if !ok {
		return respondErr(c, fmt.Errorf("description must not be empty: %w", domain.ErrValidation))
	}
	in.Name, in.Description = name, desc

	user := currentUser(c)
	p, err := h.Products.Create(in, user)
	if err != nil {
		return respondErr(c, err)
	}
	applog.Audit(c, "product.create", map[string]any{"id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return respondErr(c, fmt.Errorf("id must be a positive integer: %w", domain.ErrValidation))
	}
	user := currentUser(c)
	if err := h.Products.Delete(id, user); err != nil {
		return respondErr(c, err)
	}
	applog.Audit(c, "product.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProductHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return respondErr(c, fmt.Errorf("id must be a positive integer: %w", domain.ErrValidation))
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return respondErr(c, fmt.Errorf("malformed body: %w", domain.ErrValidation))
	}
	status, ok := validate.Status(body.Status)
	if !ok {
		return respondErr(c, fmt.Errorf("'%s' is not a valid status: %w", body.Status, domain.ErrValidation))
	}

	user := currentUser(c)
	p, err := h.Products.UpdateStatus(id, status, user)
	if err != nil {
		return respondErr(c, err)
	}
	applog.Audit(c, "product.status.update", map[string]any{"id": id, "status": string(status)})
	return c.JSON(p)
}
