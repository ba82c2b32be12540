package repository

import (
	"context"

	"github.com/jhoicas/contaflow-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}

// NotificationRepository define el puerto para las preferencias de notificación.
type NotificationRepository interface {
	// GetByUser devuelve (nil, nil) si el usuario aún no guardó preferencias.
	GetByUser(ctx context.Context, userID string) (*entity.NotificationPreferences, error)
	Upsert(ctx context.Context, prefs *entity.NotificationPreferences) error
}
