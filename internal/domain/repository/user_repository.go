package repository

import (
	"context"

	"github.com/jhoicas/invitados-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las consultas devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
