package swaps

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rewearhq/rewear-backend/internal/points"
	"github.com/rewearhq/rewear-backend/pkg/config"
	"github.com/rewearhq/rewear-backend/pkg/db"
	"github.com/rewearhq/rewear-backend/pkg/db/models"
	"github.com/rewearhq/rewear-backend/pkg/enums"
	pkgerrors "github.com/rewearhq/rewear-backend/pkg/errors"
	"github.com/rewearhq/rewear-backend/pkg/metrics"
)

// CreateSwapInput carries a proposal: the proposer offers OfferedItemID (their
// own) against RequestedItemID (the counterpart's).
type CreateSwapInput struct {
	ProposerID      uuid.UUID
	OfferedItemID   uuid.UUID
	RequestedItemID uuid.UUID
}

// Actor identifies who is driving a transition.
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// Service owns the swap state machine. Every transition runs in one
// transaction with the swap and both item rows locked, so two concurrent
// proposals over the same item cannot both commit.
type Service interface {
	Create(ctx context.Context, input CreateSwapInput) (*models.Swap, error)
	Get(ctx context.Context, actor Actor, id uuid.UUID) (*models.Swap, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]models.Swap, error)
	ListAll(ctx context.Context) ([]models.Swap, error)
	Transition(ctx context.Context, actor Actor, id uuid.UUID, target enums.SwapStatus) (*models.Swap, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	client  *db.Client
	repo    Repository
	points  points.Service
	awards  config.PointsConfig
	metrics *metrics.PlatformMetrics
}

// NewService wires a swaps service with its repository and the points ledger.
func NewService(client *db.Client, repo Repository, pointsSvc points.Service, awards config.PointsConfig, platformMetrics *metrics.PlatformMetrics) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("db client required")
	}
	if repo == nil {
		return nil, fmt.Errorf("swaps repository required")
	}
	if pointsSvc == nil {
		return nil, fmt.Errorf("points service required")
	}
	return &service{
		client:  client,
		repo:    repo,
		points:  pointsSvc,
		awards:  awards,
		metrics: platformMetrics,
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateSwapInput) (*models.Swap, error) {
	if input.ProposerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "proposer id is required")
	}
	if input.OfferedItemID == uuid.Nil || input.RequestedItemID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "both item ids are required")
	}
	if input.OfferedItemID == input.RequestedItemID {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cannot swap an item with itself")
	}

	var swap *models.Swap
	err := s.client.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		locked, err := repo.LockItems(ctx, []uuid.UUID{input.OfferedItemID, input.RequestedItemID})
		if err != nil {
			return err
		}
		if len(locked) != 2 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}

		byID := map[uuid.UUID]models.Item{}
		for _, item := range locked {
			byID[item.ID] = item
		}
		offered := byID[input.OfferedItemID]
		requested := byID[input.RequestedItemID]

		if offered.UserID != input.ProposerID {
			return pkgerrors.New(pkgerrors.CodeForbidden, "offered item is not yours")
		}
		if requested.UserID == input.ProposerID {
			return pkgerrors.New(pkgerrors.CodeValidation, "cannot request your own item")
		}
		if offered.Status != enums.ItemStatusAvailable {
			return pkgerrors.New(pkgerrors.CodeConflict, "offered item is not available")
		}
		if requested.Status != enums.ItemStatusAvailable {
			return pkgerrors.New(pkgerrors.CodeConflict, "requested item is not available")
		}

		swap = &models.Swap{
			Item1ID: offered.ID,
			Item2ID: requested.ID,
			User1ID: offered.UserID,
			User2ID: requested.UserID,
			Status:  enums.SwapStatusPending,
		}
		if err := repo.Create(ctx, swap); err != nil {
			return err
		}

		if err := repo.UpdateItemStatus(ctx, offered.ID, enums.ItemStatusPending); err != nil {
			return err
		}
		return repo.UpdateItemStatus(ctx, requested.ID, enums.ItemStatusPending)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncSwapTransition(string(enums.SwapStatusPending))
	return swap, nil
}

func (s *service) Get(ctx context.Context, actor Actor, id uuid.UUID) (*models.Swap, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "swap id is required")
	}
	swap, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "swap not found")
		}
		return nil, err
	}
	if !actor.IsAdmin && !swap.Participates(actor.UserID) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "not a swap participant")
	}
	return swap, nil
}

func (s *service) ListMine(ctx context.Context, userID uuid.UUID) ([]models.Swap, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	return s.repo.ListByParticipant(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]models.Swap, error) {
	return s.repo.ListAll(ctx)
}

// Transition moves the swap to the target status. Completion pays the award
// to both participants inside the same transaction, so re-running it can
// never double-award: the status check and the credit commit together.
func (s *service) Transition(ctx context.Context, actor Actor, id uuid.UUID, target enums.SwapStatus) (*models.Swap, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "swap id is required")
	}
	if !target.IsValid() || target == enums.SwapStatusPending {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid target status %q", target))
	}

	err := s.client.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		swap, err := repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "swap not found")
			}
			return err
		}
		if !actor.IsAdmin && !swap.Participates(actor.UserID) {
			return pkgerrors.New(pkgerrors.CodeForbidden, "not a swap participant")
		}
		if err := checkTransition(swap.Status, target, actor.IsAdmin); err != nil {
			return err
		}

		if _, err := repo.LockItems(ctx, []uuid.UUID{swap.Item1ID, swap.Item2ID}); err != nil {
			return err
		}

		switch target {
		case enums.SwapStatusAccepted:
			// items stay PENDING until completion

		case enums.SwapStatusRejected:
			if err := repo.UpdateItemStatus(ctx, swap.Item1ID, enums.ItemStatusAvailable); err != nil {
				return err
			}
			if err := repo.UpdateItemStatus(ctx, swap.Item2ID, enums.ItemStatusAvailable); err != nil {
				return err
			}

		case enums.SwapStatusCompleted:
			if err := repo.UpdateItemStatus(ctx, swap.Item1ID, enums.ItemStatusSwapped); err != nil {
				return err
			}
			if err := repo.UpdateItemStatus(ctx, swap.Item2ID, enums.ItemStatusSwapped); err != nil {
				return err
			}
			award := s.awards.SwapCompletionBonus
			if _, err := s.points.CreditInTx(ctx, tx, swap.User1ID, award, points.ReasonSwapCompletion); err != nil {
				return err
			}
			if _, err := s.points.CreditInTx(ctx, tx, swap.User2ID, award, points.ReasonSwapCompletion); err != nil {
				return err
			}
		}

		return repo.UpdateStatus(ctx, id, target)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncSwapTransition(string(target))
	return s.repo.FindByID(ctx, id)
}

// Delete removes the swap and releases any item it still holds.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "swap id is required")
	}

	return s.client.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		swap, err := repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "swap not found")
			}
			return err
		}

		items, err := repo.LockItems(ctx, []uuid.UUID{swap.Item1ID, swap.Item2ID})
		if err != nil {
			return err
		}
		for _, item := range items {
			if item.Status != enums.ItemStatusPending {
				continue
			}
			if err := repo.UpdateItemStatus(ctx, item.ID, enums.ItemStatusAvailable); err != nil {
				return err
			}
		}

		return repo.Delete(ctx, id)
	})
}

func checkTransition(from, to enums.SwapStatus, isAdmin bool) error {
	if from.IsTerminal() {
		return pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("swap already %s", from)).
			WithDetails(map[string]any{"from": from, "to": to})
	}

	allowed := false
	switch to {
	case enums.SwapStatusAccepted, enums.SwapStatusRejected:
		allowed = from == enums.SwapStatusPending
	case enums.SwapStatusCompleted:
		allowed = from == enums.SwapStatusAccepted || (isAdmin && from == enums.SwapStatusPending)
	}
	if !allowed {
		return pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("cannot move swap from %s to %s", from, to)).
			WithDetails(map[string]any{"from": from, "to": to})
	}
	return nil
}
