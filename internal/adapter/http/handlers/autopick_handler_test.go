package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"retailcore/internal/adapter/http/handlers/mocks"
	"retailcore/internal/domain/autopick"
	"retailcore/internal/domain/entities"
	"retailcore/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAutoPickHandler_Generate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAutoPickUseCase(ctrl)
		h := NewAutoPickHandler(uc)

		r := gin.New()
		r.POST("/v1/autopick/generate", h.Generate)

		req := httptest.NewRequest(http.MethodPost, "/v1/autopick/generate", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing user id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAutoPickUseCase(ctrl)
		h := NewAutoPickHandler(uc)

		r := gin.New()
		r.POST("/v1/autopick/generate", h.Generate)

		req := httptest.NewRequest(http.MethodPost, "/v1/autopick/generate", bytes.NewBufferString(`{"store_id":"store-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid bounds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAutoPickUseCase(ctrl)
		h := NewAutoPickHandler(uc)

		r := gin.New()
		r.POST("/v1/autopick/generate", h.Generate)

		uc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(usecase.GenerateResult{}, usecase.ErrInvalidBudgetBounds)

		req := httptest.NewRequest(http.MethodPost, "/v1/autopick/generate", bytes.NewBufferString(`{"user_id":"user-1","store_id":"store-1","min_sum":500,"max_sum":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unsatisfiable budget returns diagnostics", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAutoPickUseCase(ctrl)
		h := NewAutoPickHandler(uc)

		r := gin.New()
		r.POST("/v1/autopick/generate", h.Generate)

		uc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(usecase.GenerateResult{
			Diagnostics: autopick.Diagnostics{
				Skipped:                  autopick.SkipCounts{MaxPrice: 4},
				CheapestPrice:            120,
				CheapestExceedsMaxBudget: true,
			},
		}, autopick.ErrBudgetUnreachable)

		req := httptest.NewRequest(http.MethodPost, "/v1/autopick/generate", bytes.NewBufferString(`{"user_id":"user-1","store_id":"store-1","max_sum":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["code"] != "BUDGET_UNREACHABLE" {
			t.Fatalf("expected BUDGET_UNREACHABLE, got %v", body["code"])
		}
		diag, ok := body["diagnostics"].(map[string]any)
		if !ok {
			t.Fatalf("expected diagnostics object, got %v", body["diagnostics"])
		}
		if diag["cheapest_price"] != 120.0 {
			t.Fatalf("expected cheapest_price 120, got %v", diag["cheapest_price"])
		}
	})

	t.Run("empty selection returns its own code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAutoPickUseCase(ctrl)
		h := NewAutoPickHandler(uc)

		r := gin.New()
		r.POST("/v1/autopick/generate", h.Generate)

		uc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(usecase.GenerateResult{
			Diagnostics: autopick.Diagnostics{
				Skipped: autopick.SkipCounts{MaxPrice: 3},
			},
		}, autopick.ErrNoSelection)

		req := httptest.NewRequest(http.MethodPost, "/v1/autopick/generate", bytes.NewBufferString(`{"user_id":"user-1","store_id":"store-1","max_price_per_item":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["code"] != "NO_SELECTION" {
			t.Fatalf("expected NO_SELECTION, got %v", body["code"])
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAutoPickUseCase(ctrl)
		h := NewAutoPickHandler(uc)

		r := gin.New()
		r.POST("/v1/autopick/generate", h.Generate)

		uc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(usecase.GenerateResult{}, errors.New("db down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/autopick/generate", bytes.NewBufferString(`{"user_id":"user-1","store_id":"store-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAutoPickUseCase(ctrl)
		h := NewAutoPickHandler(uc)

		r := gin.New()
		r.POST("/v1/autopick/generate", h.Generate)

		now := time.Now().UTC()
		uc.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, cmd usecase.GenerateCommand) (usecase.GenerateResult, error) {
			if cmd.UserID != "user-1" || cmd.StoreID != "store-1" {
				t.Fatalf("unexpected command: %+v", cmd)
			}
			if cmd.MinSum != 200 || cmd.MaxSum != 300 {
				t.Fatalf("unexpected bounds: %+v", cmd)
			}
			return usecase.GenerateResult{
				Draft: entities.AutoPickDraft{
					ID:      "draft-1",
					UserID:  cmd.UserID,
					StoreID: cmd.StoreID,
					Items: []entities.DraftItem{
						{ProductID: "p-1", Name: "Water 1.5l", Quantity: 3, Price: 100, Total: 300},
					},
					Total:     300,
					Status:    entities.DraftStatusPending,
					CreatedAt: now,
					ExpiresAt: now.Add(time.Hour),
				},
			}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/autopick/generate", bytes.NewBufferString(`{"user_id":"user-1","store_id":"store-1","min_sum":200,"max_sum":300}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		draft, ok := body["draft"].(map[string]any)
		if !ok {
			t.Fatalf("expected draft object, got %v", body["draft"])
		}
		if draft["id"] != "draft-1" || draft["status"] != "PENDING" {
			t.Fatalf("unexpected draft: %v", draft)
		}
		if draft["total"] != 300.0 {
			t.Fatalf("expected total 300, got %v", draft["total"])
		}
	})
}

func TestAutoPickHandler_Apply(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *AutoPickHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/autopick/drafts/:draft_id/apply", h.Apply)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAutoPickUseCase(ctrl)
		r := newRouter(NewAutoPickHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/autopick/drafts/draft-1/apply", bytes.NewBufferString("not-json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("draft not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAutoPickUseCase(ctrl)
		r := newRouter(NewAutoPickHandler(uc))

		uc.EXPECT().ApplyDraft(gomock.Any(), "draft-9", "user-1", "").Return(usecase.ApplyResult{}, usecase.ErrDraftNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/autopick/drafts/draft-9/apply", bytes.NewBufferString(`{"user_id":"user-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("foreign draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAutoPickUseCase(ctrl)
		r := newRouter(NewAutoPickHandler(uc))

		uc.EXPECT().ApplyDraft(gomock.Any(), "draft-1", "user-2", "").Return(usecase.ApplyResult{}, usecase.ErrDraftNotOwned)

		req := httptest.NewRequest(http.MethodPost, "/v1/autopick/drafts/draft-1/apply", bytes.NewBufferString(`{"user_id":"user-2"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("already applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAutoPickUseCase(ctrl)
		r := newRouter(NewAutoPickHandler(uc))

		uc.EXPECT().ApplyDraft(gomock.Any(), "draft-1", "user-1", "").Return(usecase.ApplyResult{}, usecase.ErrDraftWrongStatus)

		req := httptest.NewRequest(http.MethodPost, "/v1/autopick/drafts/draft-1/apply", bytes.NewBufferString(`{"user_id":"user-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("expired draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAutoPickUseCase(ctrl)
		r := newRouter(NewAutoPickHandler(uc))

		uc.EXPECT().ApplyDraft(gomock.Any(), "draft-1", "user-1", "").Return(usecase.ApplyResult{}, usecase.ErrDraftExpired)

		req := httptest.NewRequest(http.MethodPost, "/v1/autopick/drafts/draft-1/apply", bytes.NewBufferString(`{"user_id":"user-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusGone {
			t.Fatalf("expected 410, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAutoPickUseCase(ctrl)
		r := newRouter(NewAutoPickHandler(uc))

		uc.EXPECT().ApplyDraft(gomock.Any(), "draft-1", "user-1", "store-2").Return(usecase.ApplyResult{AppliedItems: 2, SkippedItems: 1}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/autopick/drafts/draft-1/apply", bytes.NewBufferString(`{"user_id":"user-1","store_id":"store-2"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["draft_id"] != "draft-1" || body["status"] != "applied" {
			t.Fatalf("unexpected body: %v", body)
		}
		if body["applied_items"] != 2.0 || body["skipped_items"] != 1.0 {
			t.Fatalf("unexpected counts: %v", body)
		}
	})
}

func TestAutoPickHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *AutoPickHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/autopick/drafts/:draft_id", h.Get)
		return r
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAutoPickUseCase(ctrl)
		r := newRouter(NewAutoPickHandler(uc))

		uc.EXPECT().GetDraft(gomock.Any(), "draft-9", "user-1").Return(entities.AutoPickDraft{}, usecase.ErrDraftNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/autopick/drafts/draft-9?user_id=user-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("missing user id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAutoPickUseCase(ctrl)
		r := newRouter(NewAutoPickHandler(uc))

		uc.EXPECT().GetDraft(gomock.Any(), "draft-1", "").Return(entities.AutoPickDraft{}, usecase.ErrInvalidUserID)

		req := httptest.NewRequest(http.MethodGet, "/v1/autopick/drafts/draft-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAutoPickUseCase(ctrl)
		r := newRouter(NewAutoPickHandler(uc))

		now := time.Now().UTC()
		uc.EXPECT().GetDraft(gomock.Any(), "draft-1", "user-1").Return(entities.AutoPickDraft{
			ID:        "draft-1",
			UserID:    "user-1",
			StoreID:   "store-1",
			Total:     250,
			Status:    entities.DraftStatusPending,
			CreatedAt: now,
			ExpiresAt: now.Add(time.Hour),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/autopick/drafts/draft-1?user_id=user-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["id"] != "draft-1" || body["user_id"] != "user-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
