package entity

import "time"

// Company representa una tienda/organización del sistema (multi-tenant).
// Cada empresa pertenece a exactamente un usuario (OwnerID) y se crea durante el onboarding.
// ThreeWords se agrega en el paso 2 del onboarding; nunca se elimina una empresa desde la API.
type Company struct {
	ID         string
	OwnerID    string
	Name       string
	ThreeWords []string // tres palabras descriptivas del negocio (opcional)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
