package repository

import (
	"context"

	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// UpdatePassword reemplaza el hash de la contraseña del usuario.
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}
