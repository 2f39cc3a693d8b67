package catalog

import (
	"context"
	"errors"

	"placehub/internal/domain"
	"placehub/internal/repository"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not_found")

// Service is the read side of the approved catalog. Writes happen only
// through promotion in the moderation approve transaction.
type Service struct {
	places *repository.PlaceRepository
}

func NewService(places *repository.PlaceRepository) *Service {
	return &Service{places: places}
}

// Search matches the query case-insensitively against name, description,
// address and category. Category "All" or empty means no category filter.
func (s *Service) Search(ctx context.Context, query, category string) ([]domain.Place, error) {
	return s.places.Search(ctx, repository.PlaceFilters{
		Query:    query,
		Category: category,
	})
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	place, err := s.places.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return place, nil
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.places.Categories(ctx)
}
