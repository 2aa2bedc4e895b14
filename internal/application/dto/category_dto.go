package dto

import "time"

// CreateCategoryInput campos del formulario de creación de categoría.
// Llega form-encoded; los campos ausentes quedan en cero y la acción los valida.
type CreateCategoryInput struct {
	Name      string `json:"name" form:"name"`
	CompanyID string `json:"companyId" form:"companyId"`
}

// CategoryRef referencia mínima {id, name} que la acción devuelve al formulario.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateCategoryState resultado de la acción de crear categoría.
type CreateCategoryState struct {
	ActionState
	NewCategory *CategoryRef `json:"new_category,omitempty"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryListResponse lista de categorías de una empresa.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}
