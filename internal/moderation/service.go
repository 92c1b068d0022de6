package moderation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/rewearhq/rewear-backend/internal/items"
	"github.com/rewearhq/rewear-backend/internal/swaps"
	"github.com/rewearhq/rewear-backend/internal/users"
	"github.com/rewearhq/rewear-backend/pkg/db"
	"github.com/rewearhq/rewear-backend/pkg/enums"
	pkgerrors "github.com/rewearhq/rewear-backend/pkg/errors"
	"github.com/rewearhq/rewear-backend/pkg/logger"
	"github.com/rewearhq/rewear-backend/pkg/pagination"
)

// BulkDeleteFailure reports one id that could not be deleted.
type BulkDeleteFailure struct {
	ID     uuid.UUID `json:"id"`
	Reason string    `json:"reason"`
}

// BulkDeleteResult summarizes a bulk item delete. Each id is handled
// independently; a failure never rolls back the others.
type BulkDeleteResult struct {
	Deleted int                 `json:"deleted"`
	Failed  []BulkDeleteFailure `json:"failed"`
}

// Service is the admin moderation surface over users, items and swaps.
type Service interface {
	ListUsers(ctx context.Context) ([]users.UserDTO, error)
	ModerateUser(ctx context.Context, id uuid.UUID, action enums.UserModerationAction) error
	ListItems(ctx context.Context, params pagination.Params) ([]ItemAdminDTO, string, error)
	ModerateItem(ctx context.Context, id uuid.UUID, action enums.ItemModerationAction) error
	BulkDeleteItems(ctx context.Context, ids []uuid.UUID) (*BulkDeleteResult, error)
	ListSwaps(ctx context.Context) ([]SwapAdminDTO, error)
	ModerateSwap(ctx context.Context, id uuid.UUID, action enums.SwapModerationAction) error
}

type service struct {
	users users.Repository
	items items.Service
	swaps swaps.Service
	logg  *logger.Logger
}

// NewService wires the moderation service over the domain services.
func NewService(userRepo users.Repository, itemsSvc items.Service, swapsSvc swaps.Service, logg *logger.Logger) (Service, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	if itemsSvc == nil {
		return nil, fmt.Errorf("items service required")
	}
	if swapsSvc == nil {
		return nil, fmt.Errorf("swaps service required")
	}
	return &service{users: userRepo, items: itemsSvc, swaps: swapsSvc, logg: logg}, nil
}

func (s *service) ListUsers(ctx context.Context) ([]users.UserDTO, error) {
	list, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]users.UserDTO, 0, len(list))
	for i := range list {
		out = append(out, *users.FromModel(&list[i]))
	}
	return out, nil
}

func (s *service) ModerateUser(ctx context.Context, id uuid.UUID, action enums.UserModerationAction) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if !action.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid action %q", action))
	}

	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return err
	}

	switch action {
	case enums.UserModerationApprove:
		return s.users.UpdateStatus(ctx, id, enums.UserStatusActive)
	case enums.UserModerationSuspend:
		return s.users.UpdateStatus(ctx, id, enums.UserStatusSuspended)
	case enums.UserModerationDelete:
		if err := s.users.Delete(ctx, id); err != nil {
			if db.IsForeignKeyViolation(err) {
				return pkgerrors.New(pkgerrors.CodeConflict, "user still owns items or swaps")
			}
			return err
		}
		return nil
	default:
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid action %q", action))
	}
}

func (s *service) ListItems(ctx context.Context, params pagination.Params) ([]ItemAdminDTO, string, error) {
	list, next, err := s.items.ListPage(ctx, params)
	if err != nil {
		return nil, "", err
	}
	out := make([]ItemAdminDTO, 0, len(list))
	for i := range list {
		out = append(out, itemAdminFromModel(&list[i]))
	}
	return out, next, nil
}

func (s *service) ModerateItem(ctx context.Context, id uuid.UUID, action enums.ItemModerationAction) error {
	return s.items.Moderate(ctx, id, action)
}

// BulkDeleteItems deletes each id on its own; per-id failures are collected
// into the result and the aggregate is logged once.
func (s *service) BulkDeleteItems(ctx context.Context, ids []uuid.UUID) (*BulkDeleteResult, error) {
	if len(ids) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one item id is required")
	}

	result := &BulkDeleteResult{Failed: []BulkDeleteFailure{}}
	var aggregate error
	for _, id := range ids {
		if err := s.items.Moderate(ctx, id, enums.ItemModerationDelete); err != nil {
			reason := "delete failed"
			if typed := pkgerrors.As(err); typed != nil {
				reason = typed.Message()
			}
			result.Failed = append(result.Failed, BulkDeleteFailure{ID: id, Reason: reason})
			aggregate = multierr.Append(aggregate, fmt.Errorf("item %s: %w", id, err))
			continue
		}
		result.Deleted++
	}

	if aggregate != nil && s.logg != nil {
		s.logg.Warn(ctx, fmt.Sprintf("bulk item delete finished with %d failures: %v",
			len(result.Failed), aggregate))
	}
	return result, nil
}

func (s *service) ListSwaps(ctx context.Context) ([]SwapAdminDTO, error) {
	list, err := s.swaps.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SwapAdminDTO, 0, len(list))
	for i := range list {
		out = append(out, swapAdminFromModel(&list[i]))
	}
	return out, nil
}

func (s *service) ModerateSwap(ctx context.Context, id uuid.UUID, action enums.SwapModerationAction) error {
	if !action.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid action %q", action))
	}

	admin := swaps.Actor{IsAdmin: true}
	switch action {
	case enums.SwapModerationApprove:
		_, err := s.swaps.Transition(ctx, admin, id, enums.SwapStatusAccepted)
		return err
	case enums.SwapModerationReject:
		_, err := s.swaps.Transition(ctx, admin, id, enums.SwapStatusRejected)
		return err
	case enums.SwapModerationComplete:
		_, err := s.swaps.Transition(ctx, admin, id, enums.SwapStatusCompleted)
		return err
	case enums.SwapModerationDelete:
		return s.swaps.Delete(ctx, id)
	default:
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid action %q", action))
	}
}
