package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/rewearhq/rewear-backend/api/middleware"
	"github.com/rewearhq/rewear-backend/internal/items"
	"github.com/rewearhq/rewear-backend/pkg/db/models"
	"github.com/rewearhq/rewear-backend/pkg/enums"
	"github.com/rewearhq/rewear-backend/pkg/pagination"
)

type stubItemsService struct {
	created   *models.Item
	catalog   []models.Item
	byOwner   []models.Item
	lastInput items.CreateItemInput
	err       error
}

func (s *stubItemsService) Create(ctx context.Context, input items.CreateItemInput) (*models.Item, error) {
	s.lastInput = input
	return s.created, s.err
}

func (s *stubItemsService) Get(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	return &models.Item{ID: id}, s.err
}

func (s *stubItemsService) ListCatalog(ctx context.Context) ([]models.Item, error) {
	return s.catalog, s.err
}

func (s *stubItemsService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Item, error) {
	return s.byOwner, s.err
}

func (s *stubItemsService) ListPage(ctx context.Context, params pagination.Params) ([]models.Item, string, error) {
	return nil, "", s.err
}

func (s *stubItemsService) Moderate(ctx context.Context, id uuid.UUID, action enums.ItemModerationAction) error {
	return s.err
}

func TestItemCreateSuccess(t *testing.T) {
	ownerID := uuid.New()
	svc := &stubItemsService{created: &models.Item{ID: uuid.New(), Title: "Denim Jacket"}}
	handler := ItemCreate(svc, nil)

	body := `{"title":"  Denim Jacket  ","description":"Barely worn","category":"Outerwear","size":"M","condition":"GOOD","points":30}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/items", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(middleware.WithUserID(req.Context(), ownerID.String()))
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.lastInput.OwnerID != ownerID {
		t.Fatalf("expected owner from context got %s", svc.lastInput.OwnerID)
	}
	if svc.lastInput.Title != "Denim Jacket" {
		t.Fatalf("expected trimmed title got %q", svc.lastInput.Title)
	}
	if svc.lastInput.Condition != enums.ItemConditionGood {
		t.Fatalf("expected parsed condition got %s", svc.lastInput.Condition)
	}
}

func TestItemCreateWithoutUserIsUnauthorized(t *testing.T) {
	handler := ItemCreate(&stubItemsService{}, nil)

	body := `{"title":"Denim Jacket","description":"Barely worn","category":"Outerwear","size":"M","condition":"GOOD","points":30}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/items", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestItemCreateRejectsUnknownCondition(t *testing.T) {
	handler := ItemCreate(&stubItemsService{}, nil)

	body := `{"title":"Denim Jacket","description":"Barely worn","category":"Outerwear","size":"M","condition":"MINT","points":30}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/items", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.NewString()))
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestItemsListOwnerFilter(t *testing.T) {
	ownerID := uuid.New()
	svc := &stubItemsService{byOwner: []models.Item{{ID: uuid.New(), Title: "Scarf"}}}
	handler := ItemsList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items?userId="+ownerID.String(), nil)
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data []models.Item `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Title != "Scarf" {
		t.Fatalf("unexpected owner listing %+v", envelope.Data)
	}
}

func TestItemsListRejectsBadOwnerFilter(t *testing.T) {
	handler := ItemsList(&stubItemsService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items?userId=not-a-uuid", nil)
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
