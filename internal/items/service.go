package items

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
	"github.com/rewearhq/rewear-backend/pkg/pagination"
)

// DefaultImage is the catalog placeholder applied when a listing carries no
// photos of its own.
const DefaultImage = "/DesignImages/ItemListingPage5.png"

// CreateItemInput carries the validated fields for a new listing.
type CreateItemInput struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	Images      []string
	Category    string
	Size        string
	Condition   enums.ItemCondition
	Points      int
	Tags        []string
}

// Service owns the item lifecycle outside of swaps: listing, catalog reads,
// and the moderation actions.
type Service interface {
	Create(ctx context.Context, input CreateItemInput) (*models.Item, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Item, error)
	ListCatalog(ctx context.Context) ([]models.Item, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Item, error)
	ListPage(ctx context.Context, params pagination.Params) ([]models.Item, string, error)
	Moderate(ctx context.Context, id uuid.UUID, action enums.ItemModerationAction) error
}

type service struct {
	client *db.Client
	repo   Repository
	points points.Service
	awards config.PointsConfig
}

// NewService wires an items service with its repository and the points ledger.
func NewService(client *db.Client, repo Repository, pointsSvc points.Service, awards config.PointsConfig) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("db client required")
	}
	if repo == nil {
		return nil, fmt.Errorf("items repository required")
	}
	if pointsSvc == nil {
		return nil, fmt.Errorf("points service required")
	}
	return &service{client: client, repo: repo, points: pointsSvc, awards: awards}, nil
}

// Create persists the listing and credits the upload bonus in one transaction.
func (s *service) Create(ctx context.Context, input CreateItemInput) (*models.Item, error) {
	if input.OwnerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "owner id is required")
	}
	if input.Title == "" || input.Description == "" || input.Category == "" || input.Size == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title, description, category and size are required")
	}
	if !input.Condition.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid condition %q", input.Condition))
	}
	if input.Points < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "points must not be negative")
	}

	images := input.Images
	if len(images) == 0 {
		images = []string{DefaultImage}
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	item := &models.Item{
		UserID:      input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		Images:      images,
		Category:    input.Category,
		Size:        input.Size,
		Condition:   input.Condition,
		Status:      enums.ItemStatusAvailable,
		Points:      input.Points,
		Tags:        tags,
	}

	err := s.client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, item); err != nil {
			if db.IsForeignKeyViolation(err) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "owner not found")
			}
			return err
		}
		_, err := s.points.CreditInTx(ctx, tx, input.OwnerID, s.awards.ItemUploadBonus, points.ReasonItemUpload)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item id is required")
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, err
	}
	return item, nil
}

func (s *service) ListCatalog(ctx context.Context) ([]models.Item, error) {
	return s.repo.ListAvailable(ctx)
}

func (s *service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Item, error) {
	if ownerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "owner id is required")
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *service) ListPage(ctx context.Context, params pagination.Params) ([]models.Item, string, error) {
	list, next, err := s.repo.ListPage(ctx, params)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid page request")
	}
	return list, next, nil
}

// Moderate applies an admin action to the item.
func (s *service) Moderate(ctx context.Context, id uuid.UUID, action enums.ItemModerationAction) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "item id is required")
	}
	if !action.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid action %q", action))
	}

	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	switch action {
	case enums.ItemModerationApprove:
		return s.repo.UpdateStatus(ctx, id, enums.ItemStatusAvailable)
	case enums.ItemModerationReject:
		return s.repo.UpdateStatus(ctx, id, enums.ItemStatusRejected)
	case enums.ItemModerationDelete:
		if err := s.repo.Delete(ctx, id); err != nil {
			if db.IsForeignKeyViolation(err) {
				return pkgerrors.New(pkgerrors.CodeConflict, "item is referenced by a swap")
			}
			return err
		}
		return nil
	default:
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid action %q", action))
	}
}
