package entity

import "time"

// User usuario del sistema de inventario. Email es la identidad visible
// que queda registrada en cada Entry que crea.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
