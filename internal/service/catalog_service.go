package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cafeyak/internal/cache"
	"cafeyak/internal/model"
	"cafeyak/internal/repository"
)

const catalogCacheTTL = 5 * time.Minute

const (
	specialsCacheKey      = "catalog:specials"
	announcementsCacheKey = "catalog:announcements"
)

// CatalogService handles the browsable catalog: menu items, specials and
// announcements. Listings are cached; entries are immutable once created, so
// only creation invalidates.
type CatalogService interface {
	ListMenu(ctx context.Context, category *model.Category) ([]model.MenuItem, error)
	AddMenuItem(ctx context.Context, item *model.MenuItem) (uuid.UUID, error)
	ListSpecials(ctx context.Context) ([]model.Special, error)
	AddSpecial(ctx context.Context, special *model.Special) (uuid.UUID, error)
	ListAnnouncements(ctx context.Context) ([]model.Announcement, error)
	AddAnnouncement(ctx context.Context, announcement *model.Announcement) (uuid.UUID, error)
}

type catalogService struct {
	menuRepo         repository.MenuItemRepository
	specialRepo      repository.SpecialRepository
	announcementRepo repository.AnnouncementRepository
	cache            *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	menuRepo repository.MenuItemRepository,
	specialRepo repository.SpecialRepository,
	announcementRepo repository.AnnouncementRepository,
	cache *cache.Client,
) CatalogService {
	return &catalogService{
		menuRepo:         menuRepo,
		specialRepo:      specialRepo,
		announcementRepo: announcementRepo,
		cache:            cache,
	}
}

func menuCacheKey(category *model.Category) string {
	if category == nil {
		return "catalog:menu:all"
	}
	return fmt.Sprintf("catalog:menu:%s", *category)
}

// ListMenu returns menu items, optionally filtered by category, with caching.
func (s *catalogService) ListMenu(ctx context.Context, category *model.Category) ([]model.MenuItem, error) {
	key := menuCacheKey(category)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.MenuItem
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	items, err := s.menuRepo.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}

	if payload, err := json.Marshal(items); err == nil {
		_ = s.cache.Set(ctx, key, payload, catalogCacheTTL)
	}

	return items, nil
}

// AddMenuItem creates a menu item and invalidates the affected listings.
func (s *catalogService) AddMenuItem(ctx context.Context, item *model.MenuItem) (uuid.UUID, error) {
	if err := s.menuRepo.Create(ctx, item); err != nil {
		return uuid.Nil, fmt.Errorf("create menu item: %w", err)
	}

	_ = s.cache.Delete(ctx, menuCacheKey(nil))
	_ = s.cache.Delete(ctx, menuCacheKey(&item.Category))

	return item.ID, nil
}

// ListSpecials returns all specials with caching.
func (s *catalogService) ListSpecials(ctx context.Context) ([]model.Special, error) {
	if data, _ := s.cache.Get(ctx, specialsCacheKey); data != nil {
		var cached []model.Special
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	specials, err := s.specialRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list specials: %w", err)
	}

	if payload, err := json.Marshal(specials); err == nil {
		_ = s.cache.Set(ctx, specialsCacheKey, payload, catalogCacheTTL)
	}

	return specials, nil
}

// AddSpecial creates a special and invalidates the listing.
func (s *catalogService) AddSpecial(ctx context.Context, special *model.Special) (uuid.UUID, error) {
	if err := s.specialRepo.Create(ctx, special); err != nil {
		return uuid.Nil, fmt.Errorf("create special: %w", err)
	}

	_ = s.cache.Delete(ctx, specialsCacheKey)

	return special.ID, nil
}

// ListAnnouncements returns all announcements with caching.
func (s *catalogService) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	if data, _ := s.cache.Get(ctx, announcementsCacheKey); data != nil {
		var cached []model.Announcement
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	announcements, err := s.announcementRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}

	if payload, err := json.Marshal(announcements); err == nil {
		_ = s.cache.Set(ctx, announcementsCacheKey, payload, catalogCacheTTL)
	}

	return announcements, nil
}

// AddAnnouncement creates an announcement and invalidates the listing.
func (s *catalogService) AddAnnouncement(ctx context.Context, announcement *model.Announcement) (uuid.UUID, error) {
	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return uuid.Nil, fmt.Errorf("create announcement: %w", err)
	}

	_ = s.cache.Delete(ctx, announcementsCacheKey)

	return announcement.ID, nil
}
