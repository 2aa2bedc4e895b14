package entity

import "time"

// User representa un vendedor registrado en la plataforma.
// Username es el nombre público que aparece en la vitrina (/sellers/:user_id).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Username     string
	CreatedAt    time.Time
}
