package entity

import "time"

// User is an operator account (site clerk, stores manager, admin).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // "admin" | "stores" | "clerk"
	CreatedAt    time.Time
}

// Operator roles.
const (
	RoleAdmin  = "admin"
	RoleStores = "stores"
	RoleClerk  = "clerk"
)
