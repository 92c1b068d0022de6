package items

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rewearhq/rewear-backend/internal/points"
	"github.com/rewearhq/rewear-backend/pkg/config"
	"github.com/rewearhq/rewear-backend/pkg/db"
	"github.com/rewearhq/rewear-backend/pkg/db/models"
	"github.com/rewearhq/rewear-backend/pkg/enums"
	pkgerrors "github.com/rewearhq/rewear-backend/pkg/errors"
	"github.com/rewearhq/rewear-backend/pkg/pagination"
)

func newTestService(t *testing.T) (Service, *db.Client, points.Service) {
	t.Helper()

	conn := openTestDB(t)
	client := db.FromGorm(conn)

	pointsSvc, err := points.NewService(client, points.NewRepository(conn), nil)
	if err != nil {
		t.Fatalf("new points service: %v", err)
	}

	awards := config.PointsConfig{SignupBonus: 100, ItemUploadBonus: 50, SwapCompletionBonus: 5}
	svc, err := NewService(client, NewRepository(conn), pointsSvc, awards)
	if err != nil {
		t.Fatalf("new items service: %v", err)
	}
	return svc, client, pointsSvc
}

func seedUser(t *testing.T, client *db.Client) *models.User {
	t.Helper()

	user := &models.User{
		ID:     uuid.New(),
		Email:  uuid.NewString() + "@example.com",
		Name:   "Seller",
		Status: enums.UserStatusActive,
	}
	if err := client.DB().Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func validInput(ownerID uuid.UUID) CreateItemInput {
	return CreateItemInput{
		OwnerID:     ownerID,
		Title:       "Wool jumper",
		Description: "Hardly worn",
		Category:    "knitwear",
		Size:        "M",
		Condition:   enums.ItemConditionGood,
		Points:      40,
	}
}

func TestCreateAppliesDefaultsAndUploadBonus(t *testing.T) {
	svc, client, pointsSvc := newTestService(t)
	owner := seedUser(t, client)
	ctx := context.Background()

	item, err := svc.Create(ctx, validInput(owner.ID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Status != enums.ItemStatusAvailable {
		t.Fatalf("expected AVAILABLE, got %s", item.Status)
	}
	if len(item.Images) != 1 || item.Images[0] != DefaultImage {
		t.Fatalf("expected placeholder image, got %v", item.Images)
	}
	if item.Tags == nil || len(item.Tags) != 0 {
		t.Fatalf("expected empty tags, got %v", item.Tags)
	}

	balance, err := pointsSvc.Balance(ctx, owner.ID)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 50 {
		t.Fatalf("expected upload bonus of 50, got %d", balance)
	}

	history, err := pointsSvc.History(ctx, owner.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].Reason != points.ReasonItemUpload {
		t.Fatalf("expected one upload bonus row, got %+v", history)
	}
}

func TestCreateRejectsMissingFields(t *testing.T) {
	svc, client, _ := newTestService(t)
	owner := seedUser(t, client)

	input := validInput(owner.ID)
	input.Title = ""
	_, err := svc.Create(context.Background(), input)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateRejectsUnknownCondition(t *testing.T) {
	svc, client, _ := newTestService(t)
	owner := seedUser(t, client)

	input := validInput(owner.ID)
	input.Condition = enums.ItemCondition("PRISTINE")
	_, err := svc.Create(context.Background(), input)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListCatalogOnlyAvailable(t *testing.T) {
	svc, client, _ := newTestService(t)
	owner := seedUser(t, client)
	ctx := context.Background()

	first, err := svc.Create(ctx, validInput(owner.ID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.Create(ctx, validInput(owner.ID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Moderate(ctx, second.ID, enums.ItemModerationReject); err != nil {
		t.Fatalf("reject: %v", err)
	}

	catalog, err := svc.ListCatalog(ctx)
	if err != nil {
		t.Fatalf("list catalog: %v", err)
	}
	if len(catalog) != 1 || catalog[0].ID != first.ID {
		t.Fatalf("expected only the available item, got %+v", catalog)
	}

	mine, err := svc.ListByOwner(ctx, owner.ID)
	if err != nil {
		t.Fatalf("list by owner: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("owner listing should include all statuses, got %d", len(mine))
	}
}

func TestModerateRejectThenApprove(t *testing.T) {
	svc, client, _ := newTestService(t)
	owner := seedUser(t, client)
	ctx := context.Background()

	item, err := svc.Create(ctx, validInput(owner.ID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Moderate(ctx, item.ID, enums.ItemModerationReject); err != nil {
		t.Fatalf("reject: %v", err)
	}
	got, err := svc.Get(ctx, item.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != enums.ItemStatusRejected {
		t.Fatalf("expected REJECTED, got %s", got.Status)
	}

	if err := svc.Moderate(ctx, item.ID, enums.ItemModerationApprove); err != nil {
		t.Fatalf("approve: %v", err)
	}
	got, err = svc.Get(ctx, item.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != enums.ItemStatusAvailable {
		t.Fatalf("expected AVAILABLE, got %s", got.Status)
	}
}

func TestModerateDeleteRemovesItem(t *testing.T) {
	svc, client, _ := newTestService(t)
	owner := seedUser(t, client)
	ctx := context.Background()

	item, err := svc.Create(ctx, validInput(owner.ID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Moderate(ctx, item.ID, enums.ItemModerationDelete); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err = svc.Get(ctx, item.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestListPageCursorsThroughItems(t *testing.T) {
	svc, client, _ := newTestService(t)
	owner := seedUser(t, client)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		item := &models.Item{
			ID:          uuid.New(),
			UserID:      owner.ID,
			Title:       "Item",
			Description: "d",
			Images:      []string{DefaultImage},
			Category:    "c",
			Size:        "M",
			Condition:   enums.ItemConditionGood,
			Status:      enums.ItemStatusAvailable,
			Tags:        []string{},
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		if err := client.DB().Create(item).Error; err != nil {
			t.Fatalf("seed item: %v", err)
		}
	}

	page1, cursor, err := svc.ListPage(ctx, pagination.Params{Limit: 3})
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if len(page1) != 3 || cursor == "" {
		t.Fatalf("expected full first page with cursor, got %d rows", len(page1))
	}

	page2, cursor2, err := svc.ListPage(ctx, pagination.Params{Limit: 3, Cursor: cursor})
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if len(page2) != 2 || cursor2 != "" {
		t.Fatalf("expected final page of 2, got %d rows cursor %q", len(page2), cursor2)
	}

	_, _, err = svc.ListPage(ctx, pagination.Params{Cursor: "%%%not-base64%%%"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for bad cursor, got %v", err)
	}
}
