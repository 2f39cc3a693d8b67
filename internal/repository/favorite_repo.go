package repository

import (
	"context"

	"placehub/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) DB() *gorm.DB { return r.db }

func (r *FavoriteRepository) Add(ctx context.Context, userID, placeID string) (*domain.Favorite, error) {
	fav := &domain.Favorite{
		ID:      uuid.NewString(),
		UserID:  userID,
		PlaceID: placeID,
	}
	if err := r.db.WithContext(ctx).Create(fav).Error; err != nil {
		return nil, err
	}
	return fav, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, placeID string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		Delete(&domain.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, placeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByUserID returns the user's favorites with places preloaded, newest first.
func (r *FavoriteRepository) GetByUserID(ctx context.Context, userID string) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Place").
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}
