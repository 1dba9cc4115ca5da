package entity

import "time"

// Papéis de usuário.
const (
	RoleAdmin  = "admin"
	RoleCaixa  = "caixa"
	RoleGarcom = "garcom"
)

// User representa um funcionário com acesso ao sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
