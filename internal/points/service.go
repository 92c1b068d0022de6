package points

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rewearhq/rewear-backend/pkg/db"
	"github.com/rewearhq/rewear-backend/pkg/db/models"
	"github.com/rewearhq/rewear-backend/pkg/enums"
	pkgerrors "github.com/rewearhq/rewear-backend/pkg/errors"
	"github.com/rewearhq/rewear-backend/pkg/metrics"
)

// Ledger reasons for the fixed platform awards.
const (
	ReasonSignupBonus    = "Account creation bonus"
	ReasonItemUpload     = "Item upload bonus"
	ReasonSwapCompletion = "Successful swap"
)

// ErrInsufficientPoints is returned when a debit exceeds the user's balance.
var ErrInsufficientPoints = errors.New("insufficient points balance")

// Service moves points. Every balance change lands together with exactly one
// ledger row, either in a transaction the service opens or in one the caller
// already holds.
type Service interface {
	Credit(ctx context.Context, userID uuid.UUID, amount int, reason string) (*models.PointsTransaction, error)
	Debit(ctx context.Context, userID uuid.UUID, amount int, reason string) (*models.PointsTransaction, error)
	CreditInTx(ctx context.Context, tx *gorm.DB, userID uuid.UUID, amount int, reason string) (*models.PointsTransaction, error)
	DebitInTx(ctx context.Context, tx *gorm.DB, userID uuid.UUID, amount int, reason string) (*models.PointsTransaction, error)
	History(ctx context.Context, userID uuid.UUID) ([]models.PointsTransaction, error)
	Balance(ctx context.Context, userID uuid.UUID) (int, error)
}

type service struct {
	client  *db.Client
	repo    Repository
	metrics *metrics.PlatformMetrics
}

// NewService wires a points service with the provided client and repository.
func NewService(client *db.Client, repo Repository, platformMetrics *metrics.PlatformMetrics) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("db client required")
	}
	if repo == nil {
		return nil, fmt.Errorf("points repository required")
	}
	return &service{client: client, repo: repo, metrics: platformMetrics}, nil
}

func (s *service) Credit(ctx context.Context, userID uuid.UUID, amount int, reason string) (*models.PointsTransaction, error) {
	var row *models.PointsTransaction
	err := s.client.WithTx(ctx, func(tx *gorm.DB) error {
		var txErr error
		row, txErr = s.CreditInTx(ctx, tx, userID, amount, reason)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (s *service) Debit(ctx context.Context, userID uuid.UUID, amount int, reason string) (*models.PointsTransaction, error) {
	var row *models.PointsTransaction
	err := s.client.WithTx(ctx, func(tx *gorm.DB) error {
		var txErr error
		row, txErr = s.DebitInTx(ctx, tx, userID, amount, reason)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (s *service) CreditInTx(ctx context.Context, tx *gorm.DB, userID uuid.UUID, amount int, reason string) (*models.PointsTransaction, error) {
	if err := validateMovement(userID, amount, reason); err != nil {
		return nil, err
	}

	repo := s.repo.WithTx(tx)
	if _, err := repo.LockUser(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, err
	}
	if err := repo.AddToBalance(ctx, userID, amount); err != nil {
		return nil, err
	}

	row := &models.PointsTransaction{
		UserID: userID,
		Amount: amount,
		Type:   enums.TransactionTypeEarn,
		Reason: reason,
	}
	if err := repo.Insert(ctx, row); err != nil {
		return nil, err
	}

	s.metrics.AddPointsCredited(reason, amount)
	return row, nil
}

func (s *service) DebitInTx(ctx context.Context, tx *gorm.DB, userID uuid.UUID, amount int, reason string) (*models.PointsTransaction, error) {
	if err := validateMovement(userID, amount, reason); err != nil {
		return nil, err
	}

	repo := s.repo.WithTx(tx)
	user, err := repo.LockUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, err
	}
	if user.Points < amount {
		return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, ErrInsufficientPoints, "debit exceeds balance")
	}

	if err := repo.AddToBalance(ctx, userID, -amount); err != nil {
		return nil, err
	}

	row := &models.PointsTransaction{
		UserID: userID,
		Amount: amount,
		Type:   enums.TransactionTypeSpend,
		Reason: reason,
	}
	if err := repo.Insert(ctx, row); err != nil {
		return nil, err
	}

	s.metrics.AddPointsDebited(reason, amount)
	return row, nil
}

func (s *service) History(ctx context.Context, userID uuid.UUID) ([]models.PointsTransaction, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	if userID == uuid.Nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	balance, err := s.repo.Balance(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return 0, err
	}
	return balance, nil
}

func validateMovement(userID uuid.UUID, amount int, reason string) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if amount <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "amount must be positive")
	}
	if reason == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "reason is required")
	}
	return nil
}
