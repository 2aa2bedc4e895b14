package entity

import "time"

// Category representa una categoría de productos de una empresa.
// El nombre es único por empresa (constraint en la tabla categories).
// Las categorías se crean y se eliminan; nunca se actualizan.
type Category struct {
	ID        string
	CompanyID string
	UserID    string // usuario que creó la categoría (dueño de la empresa)
	Name      string
	CreatedAt time.Time
}
