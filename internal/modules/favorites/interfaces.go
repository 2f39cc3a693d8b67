package favorites

import (
	"context"

	"placehub/internal/domain"
)

type FavoriteRepo interface {
	Add(ctx context.Context, userID, placeID string) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, placeID string) error
	Exists(ctx context.Context, userID, placeID string) (bool, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.Favorite, error)
}

type PlaceGate interface {
	GetByID(ctx context.Context, id string) (*domain.Place, error)
}
