package repository

import (
	"context"
	"strings"

	"placehub/internal/domain"

	"gorm.io/gorm"
)

type PlaceFilters struct {
	Query    string
	Category string
}

type PlaceRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

func (r *PlaceRepository) DB() *gorm.DB { return r.db }

// Search returns approved places matching the filters, in creation order.
// Blank query + "All"/empty category returns the full approved catalog.
func (r *PlaceRepository) Search(ctx context.Context, f PlaceFilters) ([]domain.Place, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Place{}).
		Where("approved = ?", true)

	if s := strings.TrimSpace(f.Query); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(address) LIKE ? OR LOWER(category) LIKE ?",
			like, like, like, like,
		)
	}

	if f.Category != "" && f.Category != "All" {
		q = q.Where("category = ?", f.Category)
	}

	var places []domain.Place
	err := q.Order("created_at ASC").Find(&places).Error
	return places, err
}

func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	var place domain.Place
	err := r.db.WithContext(ctx).
		Where("id = ? AND approved = ?", id, true).
		First(&place).Error
	if err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *PlaceRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&domain.Place{}).
		Where("approved = ?", true).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}
