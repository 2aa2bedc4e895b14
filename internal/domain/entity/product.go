package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto publicado en la vitrina de una empresa.
// ImageLinks son URLs públicas ya subidas al storage; el producto pertenece a
// exactamente una empresa desde su creación y eso no se reasigna.
type Product struct {
	ID          string
	CompanyID   string
	UserID      string
	Name        string
	Description string
	Price       decimal.Decimal // siempre positivo y finito (validado por schema)
	ImageLinks  []string        // lista ordenada de URLs de imágenes (opcional)
	CreatedAt   time.Time
}

// ProductCategory representa el vínculo N:M entre producto y categoría.
// La pareja (ProductID, CategoryID) es única en la tabla product_categories.
type ProductCategory struct {
	ProductID  string
	CategoryID string
}

// CategoryRef referencia mínima de categoría para vistas denormalizadas de producto.
type CategoryRef struct {
	ID   string
	Name string
}

// ProductWithCategories vista denormalizada: producto + categorías vinculadas.
type ProductWithCategories struct {
	Product
	Categories []CategoryRef
}
