package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductInput campos del formulario de creación de producto.
// image_urls y category_ids llegan como claves repetidas del formulario.
// Price llega como string y lo coacciona el schema (nunca el handler).
type CreateProductInput struct {
	Name        string   `json:"name" form:"name"`
	Description string   `json:"description" form:"description"`
	Price       string   `json:"price" form:"price"`
	ImageURLs   []string `json:"image_urls" form:"image_urls"`
	CategoryIDs []string `json:"category_ids" form:"category_ids"`
	CompanyID   string   `json:"companyId" form:"companyId"`
}

// LinkCategoriesInput categorías a vincular a un producto existente
// (vía de reparación tras un fallo parcial).
type LinkCategoriesInput struct {
	CategoryIDs []string `json:"category_ids" form:"category_ids"`
}

// CreateProductState resultado de la acción de crear producto.
type CreateProductState struct {
	ActionState
	NewProductID string `json:"new_product_id,omitempty"`
}

// ProductResponse salida de un producto con sus categorías.
type ProductResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageLinks  []string        `json:"image_links,omitempty"`
	Categories  []CategoryRef   `json:"categories"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ProductListResponse lista de productos de una empresa.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
