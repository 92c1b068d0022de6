package swaps

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rewearhq/rewear-backend/pkg/db/models"
	"github.com/rewearhq/rewear-backend/pkg/enums"
)

// Repository manages persistence for swaps and the item rows they hold.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, swap *models.Swap) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Swap, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Swap, error)
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]models.Swap, error)
	ListAll(ctx context.Context) ([]models.Swap, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.SwapStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	LockItems(ctx context.Context, ids []uuid.UUID) ([]models.Item, error)
	UpdateItemStatus(ctx context.Context, itemID uuid.UUID, status enums.ItemStatus) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a swaps repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, swap *models.Swap) error {
	return r.db.WithContext(ctx).Create(swap).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Swap, error) {
	var swap models.Swap
	if err := r.db.WithContext(ctx).
		Preload("Item1").
		Preload("Item2").
		Preload("User1").
		Preload("User2").
		First(&swap, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &swap, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Swap, error) {
	query := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var swap models.Swap
	if err := query.First(&swap, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &swap, nil
}

func (r *repository) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]models.Swap, error) {
	var list []models.Swap
	if err := r.db.WithContext(ctx).
		Preload("Item1").
		Preload("Item2").
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) ListAll(ctx context.Context) ([]models.Swap, error) {
	var list []models.Swap
	if err := r.db.WithContext(ctx).
		Preload("Item1").
		Preload("Item2").
		Preload("User1").
		Preload("User2").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.SwapStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Swap{}).
		Where("id = ?", id).
		UpdateColumn("status", status).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Swap{}, "id = ?", id).Error
}

// LockItems loads the item rows under FOR UPDATE, ordered by id so concurrent
// transactions acquire locks in the same order. SQLite has no row locks, so
// the clause is Postgres-only.
func (r *repository) LockItems(ctx context.Context, ids []uuid.UUID) ([]models.Item, error) {
	query := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var items []models.Item
	if err := query.
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) UpdateItemStatus(ctx context.Context, itemID uuid.UUID, status enums.ItemStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ?", itemID).
		UpdateColumn("status", status).Error
}
