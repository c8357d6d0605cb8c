package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/claims"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/repository"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/storage"
	mock_storage "github.com/donmoreno09/Online-Lost-And-Found-System/internal/storage/mocks"
)

func validInput() storage.ItemInput {
	return storage.ItemInput{
		Kind:        repository.KindFound,
		Title:       "Black wallet",
		Description: "Found near the station",
		Category:    "accessories",
		City:        "Springfield",
	}
}

func TestItemService_Report(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an available item and caches it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_storage.NewMockItemRepository(ctrl)
		mockCache := mock_storage.NewMockItemCache(ctrl)
		svc := storage.NewItemService(mockRepo, mockCache, zap.NewNop())

		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *repository.Item) error {
				assert.NotEmpty(t, item.ID)
				assert.Equal(t, repository.StatusAvailable, item.Status)
				assert.Equal(t, "owner-1", item.OwnerID)
				assert.Nil(t, item.AcceptToken)
				return nil
			})
		mockCache.EXPECT().Set(gomock.Any())

		item, err := svc.Report(ctx, "owner-1", validInput())
		require.NoError(t, err)
		assert.Equal(t, repository.StatusAvailable, item.Status)
		assert.False(t, item.EventDate.IsZero(), "missing date defaults to now")
	})

	t.Run("input validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := storage.NewItemService(
			mock_storage.NewMockItemRepository(ctrl),
			mock_storage.NewMockItemCache(ctrl),
			zap.NewNop(),
		)

		long := func(n int) string {
			b := make([]byte, n)
			for i := range b {
				b[i] = 'x'
			}
			return string(b)
		}

		for name, mutate := range map[string]func(*storage.ItemInput){
			"bad kind":             func(in *storage.ItemInput) { in.Kind = "borrowed" },
			"empty title":          func(in *storage.ItemInput) { in.Title = "  " },
			"title too long":       func(in *storage.ItemInput) { in.Title = long(101) },
			"empty description":    func(in *storage.ItemInput) { in.Description = "" },
			"description too long": func(in *storage.ItemInput) { in.Description = long(501) },
			"unknown category":     func(in *storage.ItemInput) { in.Category = "vehicles" },
		} {
			t.Run(name, func(t *testing.T) {
				input := validInput()
				mutate(&input)
				_, err := svc.Report(ctx, "owner-1", input)
				assert.ErrorIs(t, err, claims.ErrValidation)
			})
		}
	})
}

func TestItemService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_storage.NewMockItemRepository(ctrl)
		mockCache := mock_storage.NewMockItemCache(ctrl)
		svc := storage.NewItemService(mockRepo, mockCache, zap.NewNop())

		cached := &repository.Item{ID: "item-1"}
		mockCache.EXPECT().Get("item-1").Return(cached, true)

		item, err := svc.Get(ctx, "item-1")
		assert.NoError(t, err)
		assert.Equal(t, cached, item)
	})

	t.Run("cache miss loads and backfills", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_storage.NewMockItemRepository(ctrl)
		mockCache := mock_storage.NewMockItemCache(ctrl)
		svc := storage.NewItemService(mockRepo, mockCache, zap.NewNop())

		stored := &repository.Item{ID: "item-1"}
		mockCache.EXPECT().Get("item-1").Return(nil, false)
		mockRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(stored, nil)
		mockCache.EXPECT().Set(stored)

		item, err := svc.Get(ctx, "item-1")
		assert.NoError(t, err)
		assert.Equal(t, stored, item)
	})

	t.Run("unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_storage.NewMockItemRepository(ctrl)
		mockCache := mock_storage.NewMockItemCache(ctrl)
		svc := storage.NewItemService(mockRepo, mockCache, zap.NewNop())

		mockCache.EXPECT().Get("missing").Return(nil, false)
		mockRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, repository.ErrObjectNotFound)

		_, err := svc.Get(ctx, "missing")
		assert.ErrorIs(t, err, claims.ErrNotFound)
	})
}

func TestItemService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("owner edits descriptive fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_storage.NewMockItemRepository(ctrl)
		mockCache := mock_storage.NewMockItemCache(ctrl)
		svc := storage.NewItemService(mockRepo, mockCache, zap.NewNop())

		date := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		stored := &repository.Item{ID: "item-1", OwnerID: "owner-1", Status: repository.StatusPending, EventDate: date}

		mockRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(stored, nil)
		mockRepo.EXPECT().UpdateDescriptive(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *repository.Item) error {
				assert.Equal(t, "Black wallet", item.Title)
				// Status never changes from this path.
				assert.Equal(t, repository.StatusPending, item.Status)
				return nil
			})
		mockCache.EXPECT().Set(gomock.Any())

		item, err := svc.Update(ctx, "item-1", "owner-1", validInput())
		require.NoError(t, err)
		assert.Equal(t, date, item.EventDate, "zero input date keeps the stored one")
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_storage.NewMockItemRepository(ctrl)
		mockCache := mock_storage.NewMockItemCache(ctrl)
		svc := storage.NewItemService(mockRepo, mockCache, zap.NewNop())

		mockRepo.EXPECT().GetByID(gomock.Any(), "item-1").
			Return(&repository.Item{ID: "item-1", OwnerID: "owner-1"}, nil)

		_, err := svc.Update(ctx, "item-1", "intruder", validInput())
		assert.ErrorIs(t, err, claims.ErrForbidden)
	})
}

func TestItemService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes a pending item, claim disappears with the row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_storage.NewMockItemRepository(ctrl)
		mockCache := mock_storage.NewMockItemCache(ctrl)
		svc := storage.NewItemService(mockRepo, mockCache, zap.NewNop())

		mockRepo.EXPECT().GetByID(gomock.Any(), "item-1").
			Return(&repository.Item{ID: "item-1", OwnerID: "owner-1", Status: repository.StatusPending}, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), "item-1").Return(nil)
		mockCache.EXPECT().Delete("item-1")

		assert.NoError(t, svc.Delete(ctx, "item-1", "owner-1"))
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_storage.NewMockItemRepository(ctrl)
		mockCache := mock_storage.NewMockItemCache(ctrl)
		svc := storage.NewItemService(mockRepo, mockCache, zap.NewNop())

		mockRepo.EXPECT().GetByID(gomock.Any(), "item-1").
			Return(&repository.Item{ID: "item-1", OwnerID: "owner-1"}, nil)

		err := svc.Delete(ctx, "item-1", "intruder")
		assert.ErrorIs(t, err, claims.ErrForbidden)
	})
}

func TestItemService_List(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_storage.NewMockItemRepository(ctrl)
	mockCache := mock_storage.NewMockItemCache(ctrl)
	svc := storage.NewItemService(mockRepo, mockCache, zap.NewNop())

	// Out-of-range paging clamps instead of failing.
	mockRepo.EXPECT().List(gomock.Any(), repository.ItemFilter{}, 1, 20).
		Return([]*repository.Item{}, nil)

	items, err := svc.List(ctx, repository.ItemFilter{}, 0, 500)
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemService_AttachImage(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_storage.NewMockItemRepository(ctrl)
	mockCache := mock_storage.NewMockItemCache(ctrl)
	svc := storage.NewItemService(mockRepo, mockCache, zap.NewNop())

	stored := &repository.Item{ID: "item-1", OwnerID: "owner-1", Images: []string{}}
	mockRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(stored, nil)
	mockRepo.EXPECT().AppendImage(gomock.Any(), "item-1", "/uploads/a.jpg").Return(nil)
	mockCache.EXPECT().Set(gomock.Any()).Do(func(item *repository.Item) {
		assert.Contains(t, item.Images, "/uploads/a.jpg")
	})

	assert.NoError(t, svc.AttachImage(ctx, "item-1", "owner-1", "/uploads/a.jpg"))
}
