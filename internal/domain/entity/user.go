package entity

import "time"

// User representa una identidad que firma escrituras (movimientos, chat).
// Puede ser anónima (sesión efímera, sin email) o registrada (email + password).
type User struct {
	ID           string
	Email        string // vacío en usuarios anónimos
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	DisplayName  string
	Anonymous    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AnonymousDisplayName deriva el nombre visible de una identidad anónima:
// "User " + primeros 4 caracteres del identificador.
func AnonymousDisplayName(userID string) string {
	short := userID
	if len(short) > 4 {
		short = short[:4]
	}
	return "User " + short
}
