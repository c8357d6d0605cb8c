//go:generate mockgen -source ./items.go -destination=./mocks/items.go -package=mock_storage
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/claims"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/metrics"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/repository"
)

// ItemRepository is the persistence contract the service needs for the
// descriptive side of items. Claim transitions go through the lifecycle
// engine, never through here.
type ItemRepository interface {
	Create(ctx context.Context, item *repository.Item) error
	GetByID(ctx context.Context, id string) (*repository.Item, error)
	UpdateDescriptive(ctx context.Context, item *repository.Item) error
	AppendImage(ctx context.Context, id, imageRef string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter repository.ItemFilter, page, limit int) ([]*repository.Item, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]*repository.Item, error)
}

// ItemCache is the optional in-memory layer in front of GetByID.
type ItemCache interface {
	Get(itemID string) (*repository.Item, bool)
	Set(item *repository.Item)
	Delete(itemID string)
}

// ItemInput carries the owner-editable fields of a report.
type ItemInput struct {
	Kind        string
	Title       string
	Description string
	Category    string
	EventDate   time.Time
	Address     string
	City        string
	State       string
}

// ItemService owns item CRUD with ownership enforcement. Status is written
// exactly once here, to available at creation.
type ItemService struct {
	repo   ItemRepository
	cache  ItemCache
	logger *zap.Logger
}

func NewItemService(repo ItemRepository, cache ItemCache, logger *zap.Logger) *ItemService {
	return &ItemService{repo: repo, cache: cache, logger: logger}
}

func (s *ItemService) Report(ctx context.Context, ownerID string, input ItemInput) (*repository.Item, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	eventDate := input.EventDate
	if eventDate.IsZero() {
		eventDate = now
	}

	item := &repository.Item{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Kind:        input.Kind,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		EventDate:   eventDate,
		Address:     strings.TrimSpace(input.Address),
		City:        strings.TrimSpace(input.City),
		State:       strings.TrimSpace(input.State),
		Images:      []string{},
		Status:      repository.StatusAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	metrics.ItemsReportedTotal.Inc()
	s.cache.Set(item)
	s.logger.Info("item reported",
		zap.String("item_id", item.ID),
		zap.String("kind", item.Kind),
		zap.String("owner_id", ownerID))
	return item, nil
}

func (s *ItemService) Get(ctx context.Context, id string) (*repository.Item, error) {
	if item, found := s.cache.Get(id); found {
		return item, nil
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, claims.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	s.cache.Set(item)
	return item, nil
}

// Update rewrites the descriptive fields. Only the owner may call it and
// the claim columns are untouchable from this path.
func (s *ItemService) Update(ctx context.Context, id, ownerID string, input ItemInput) (*repository.Item, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, claims.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item.OwnerID != ownerID {
		return nil, claims.ErrForbidden
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Description = strings.TrimSpace(input.Description)
	item.Category = input.Category
	if !input.EventDate.IsZero() {
		item.EventDate = input.EventDate
	}
	item.Address = strings.TrimSpace(input.Address)
	item.City = strings.TrimSpace(input.City)
	item.State = strings.TrimSpace(input.State)

	if err := s.repo.UpdateDescriptive(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	s.cache.Set(item)
	return item, nil
}

// Delete removes an item outright. The owner may do this in any status; a
// pending claim disappears with the row.
func (s *ItemService) Delete(ctx context.Context, id, ownerID string) error {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return claims.ErrNotFound
		}
		return fmt.Errorf("failed to get item: %w", err)
	}
	if item.OwnerID != ownerID {
		return claims.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	s.cache.Delete(id)
	s.logger.Info("item deleted", zap.String("item_id", id))
	return nil
}

func (s *ItemService) List(ctx context.Context, filter repository.ItemFilter, page, limit int) ([]*repository.Item, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	items, err := s.repo.List(ctx, filter, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

func (s *ItemService) ListByOwner(ctx context.Context, ownerID string) ([]*repository.Item, error) {
	items, err := s.repo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items for owner: %w", err)
	}
	return items, nil
}

// AttachImage records a stored image reference on an owner's item.
func (s *ItemService) AttachImage(ctx context.Context, id, ownerID, imageRef string) error {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return claims.ErrNotFound
		}
		return fmt.Errorf("failed to get item: %w", err)
	}
	if item.OwnerID != ownerID {
		return claims.ErrForbidden
	}

	if err := s.repo.AppendImage(ctx, id, imageRef); err != nil {
		return fmt.Errorf("failed to attach image: %w", err)
	}

	item.Images = append(item.Images, imageRef)
	s.cache.Set(item)
	return nil
}

func validateInput(input ItemInput) error {
	switch {
	case input.Kind != repository.KindLost && input.Kind != repository.KindFound:
		return fmt.Errorf("%w: kind must be lost or found", claims.ErrValidation)
	case strings.TrimSpace(input.Title) == "":
		return fmt.Errorf("%w: title is required", claims.ErrValidation)
	case len(input.Title) > 100:
		return fmt.Errorf("%w: title cannot be more than 100 characters", claims.ErrValidation)
	case strings.TrimSpace(input.Description) == "":
		return fmt.Errorf("%w: description is required", claims.ErrValidation)
	case len(input.Description) > 500:
		return fmt.Errorf("%w: description cannot be more than 500 characters", claims.ErrValidation)
	case !repository.ValidCategory(input.Category):
		return fmt.Errorf("%w: unknown category %q", claims.ErrValidation, input.Category)
	}
	return nil
}
