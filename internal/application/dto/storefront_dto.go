package dto

// SellerResponse vitrina pública de un vendedor: perfil + sus empresas.
type SellerResponse struct {
	Seller    PublicProfile     `json:"seller"`
	Companies []CompanyResponse `json:"companies"`
}

// PublicProfile perfil público (sin email ni credenciales).
type PublicProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// StorefrontResponse vitrina pública de una empresa: empresa + productos.
type StorefrontResponse struct {
	Company  CompanyResponse   `json:"company"`
	Products []ProductResponse `json:"products"`
}

// UploadError error de subida asociado al nombre original del archivo.
type UploadError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// UploadResponse resultado de una tanda de subidas de imágenes.
type UploadResponse struct {
	URLs      []string      `json:"urls"`  // URLs públicas de los objetos subidos
	Paths     []string      `json:"paths"` // paths internos en el bucket
	Errors    []UploadError `json:"errors,omitempty"`
	IsSuccess bool          `json:"is_success"`
}
