package items

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rewearhq/rewear-backend/pkg/db/models"
	"github.com/rewearhq/rewear-backend/pkg/enums"
	"github.com/rewearhq/rewear-backend/pkg/pagination"
)

// Repository manages persistence for listed items.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, item *models.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	ListAvailable(ctx context.Context) ([]models.Item, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Item, error)
	ListPage(ctx context.Context, params pagination.Params) ([]models.Item, string, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.ItemStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns an items repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) ListAvailable(ctx context.Context) ([]models.Item, error) {
	var list []models.Item
	if err := r.db.WithContext(ctx).
		Where("status = ?", enums.ItemStatusAvailable).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Item, error) {
	var list []models.Item
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListPage returns one cursor page of items, newest first, with owners
// preloaded for the moderation surface.
func (r *repository) ListPage(ctx context.Context, params pagination.Params) ([]models.Item, string, error) {
	limit := pagination.NormalizeLimit(params.Limit)

	query := r.db.WithContext(ctx).
		Preload("Owner").
		Order("created_at DESC, id DESC").
		Limit(pagination.LimitWithBuffer(params.Limit))

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, "", err
	}
	if cursor != nil {
		query = query.Where(
			"(created_at, id) < (?, ?)",
			cursor.CreatedAt, cursor.ID,
		)
	}

	var list []models.Item
	if err := query.Find(&list).Error; err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if len(list) > limit {
		list = list[:limit]
		last := list[len(list)-1]
		nextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}
	return list, nextCursor, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.ItemStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ?", id).
		UpdateColumn("status", status).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Item{}, "id = ?", id).Error
}
