package favorites

import (
	"context"
	"errors"
	"sync"

	"placehub/internal/domain"

	"gorm.io/gorm"
)

// Index is one session's view over the shared favorites store. Binding
// switches which user's set the view reads and writes; it never touches the
// other users' rows. An unbound index answers reads with empty results and
// refuses mutation.
type Index struct {
	mutex  sync.RWMutex
	userID string

	favorites FavoriteRepo
	places    PlaceGate
}

func NewIndex(favorites FavoriteRepo, places PlaceGate) *Index {
	return &Index{favorites: favorites, places: places}
}

// Bind sets the active user. An empty id unbinds (unauthenticated view).
func (i *Index) Bind(userID string) {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	i.userID = userID
}

func (i *Index) boundUser() string {
	i.mutex.RLock()
	defer i.mutex.RUnlock()
	return i.userID
}

// Toggle flips membership of the place for the bound user and returns the
// new state. Toggling twice restores the original state.
func (i *Index) Toggle(ctx context.Context, placeID string) (bool, error) {
	userID := i.boundUser()
	if userID == "" {
		return false, ErrAuthRequired
	}

	if _, err := i.places.GetByID(ctx, placeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	exists, err := i.favorites.Exists(ctx, userID, placeID)
	if err != nil {
		return false, err
	}

	if exists {
		if err := i.favorites.Remove(ctx, userID, placeID); err != nil {
			// Raced with another remove for the same pair; membership is off
			// either way.
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
		return false, nil
	}

	if _, err := i.favorites.Add(ctx, userID, placeID); err != nil {
		return false, err
	}
	return true, nil
}

func (i *Index) IsFavorite(ctx context.Context, placeID string) (bool, error) {
	userID := i.boundUser()
	if userID == "" {
		return false, nil
	}
	return i.favorites.Exists(ctx, userID, placeID)
}

// List returns the bound user's favorite places, newest first.
func (i *Index) List(ctx context.Context) ([]domain.Favorite, error) {
	userID := i.boundUser()
	if userID == "" {
		return []domain.Favorite{}, nil
	}
	return i.favorites.GetByUserID(ctx, userID)
}
