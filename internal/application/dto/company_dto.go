package dto

import "time"

// CreateCompanyInput campos del formulario de onboarding (paso 1).
type CreateCompanyInput struct {
	CompanyName string `json:"companyName" form:"companyName"`
}

// ThreeWordsInput las tres palabras del negocio (paso 2 del onboarding).
type ThreeWordsInput struct {
	Word1 string `json:"word1" form:"word1"`
	Word2 string `json:"word2" form:"word2"`
	Word3 string `json:"word3" form:"word3"`
}

// CreateCompanyState resultado de la acción de crear empresa.
type CreateCompanyState struct {
	ActionState
	NewCompany *CompanyResponse `json:"new_company,omitempty"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	Name       string    `json:"name"`
	ThreeWords []string  `json:"three_words,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CompanyListResponse empresas del vendedor autenticado.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
}

// DashboardStats contadores del panel de una empresa.
type DashboardStats struct {
	ProductsCount   int `json:"products_count"`
	CategoriesCount int `json:"categories_count"`
}
