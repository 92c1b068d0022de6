package points

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rewearhq/rewear-backend/pkg/db/models"
)

// Repository manages persistence for the points ledger and the denormalized
// user balance. Balance and ledger writes are expected to share a transaction.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Insert(ctx context.Context, row *models.PointsTransaction) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PointsTransaction, error)
	LockUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	AddToBalance(ctx context.Context, userID uuid.UUID, delta int) error
	Balance(ctx context.Context, userID uuid.UUID) (int, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a points repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Insert(ctx context.Context, row *models.PointsTransaction) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PointsTransaction, error) {
	var rows []models.PointsTransaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// LockUser loads the user under FOR UPDATE so concurrent balance writers
// serialize. SQLite has no row locks, so the clause is Postgres-only.
func (r *repository) LockUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	query := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var user models.User
	if err := query.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) AddToBalance(ctx context.Context, userID uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("points", gorm.Expr("points + ?", delta)).Error
}

func (r *repository) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Select("points").
		First(&user, "id = ?", userID).Error; err != nil {
		return 0, err
	}
	return user.Points, nil
}
