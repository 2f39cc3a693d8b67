package repository

import (
	"context"
	"errors"
	"time"

	"placehub/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrAlreadyDecided is returned when the conditional status write finds the
// submission in a terminal state (another moderator got there first).
var ErrAlreadyDecided = errors.New("submission already decided")

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) DB() *gorm.DB { return r.db }

func (r *SubmissionRepository) Create(ctx context.Context, sub *domain.Submission) error {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.Status == "" {
		sub.Status = domain.SubmissionPending
	}
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	var sub domain.Submission
	if err := r.db.WithContext(ctx).First(&sub, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubmissionRepository) ListPending(ctx context.Context) ([]domain.Submission, error) {
	var subs []domain.Submission
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.SubmissionPending).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

func (r *SubmissionRepository) ListByModerator(ctx context.Context, moderatorID string) ([]domain.Submission, error) {
	var subs []domain.Submission
	err := r.db.WithContext(ctx).
		Where("moderated_by = ? AND status <> ?", moderatorID, domain.SubmissionPending).
		Order("moderated_at DESC").
		Find(&subs).Error
	return subs, err
}

func (r *SubmissionRepository) ListByUser(ctx context.Context, userID string) ([]domain.Submission, error) {
	var subs []domain.Submission
	err := r.db.WithContext(ctx).
		Where("submitted_by = ?", userID).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

// decide is the conditional write: the status flip only lands if the row is
// still pending. RowsAffected == 0 is disambiguated into not-found vs decided.
func (r *SubmissionRepository) decide(tx *gorm.DB, id string, status domain.SubmissionStatus, modID, modName, placeID string) error {
	updates := map[string]any{
		"status":            status,
		"moderated_by":      modID,
		"moderated_by_name": modName,
		"moderated_at":      time.Now().UTC(),
	}
	if placeID != "" {
		updates["place_id"] = placeID
	}

	res := tx.Model(&domain.Submission{}).
		Where("id = ? AND status = ?", id, domain.SubmissionPending).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&domain.Submission{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrAlreadyDecided
	}
	return nil
}

// Approve flips the status and inserts the promoted place in one transaction,
// so a decided submission without its catalog row cannot exist.
func (r *SubmissionRepository) Approve(ctx context.Context, id, modID, modName string) (*domain.Place, error) {
	var place *domain.Place

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sub domain.Submission
		if err := tx.First(&sub, "id = ?", id).Error; err != nil {
			return err
		}

		placeID := uuid.NewString()
		if err := r.decide(tx, id, domain.SubmissionApproved, modID, modName, placeID); err != nil {
			return err
		}

		p := domain.PromotePlace(&sub, placeID)
		if err := tx.Create(p).Error; err != nil {
			return err
		}

		place = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return place, nil
}

func (r *SubmissionRepository) Reject(ctx context.Context, id, modID, modName string) error {
	return r.decide(r.db.WithContext(ctx), id, domain.SubmissionRejected, modID, modName, "")
}
