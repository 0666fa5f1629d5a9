package repository

import "github.com/mvr-infra/materials-api/internal/domain/entity"

// UserRepository is the persistence port for operator accounts (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
