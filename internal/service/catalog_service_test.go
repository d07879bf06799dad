package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cafeyak/internal/cache"
	"cafeyak/internal/model"
)

// MockMenuItemRepository is a mock implementation of MenuItemRepository.
type MockMenuItemRepository struct {
	mock.Mock
}

func (m *MockMenuItemRepository) Create(ctx context.Context, item *model.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) List(ctx context.Context, category *model.Category) ([]model.MenuItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) FindByName(ctx context.Context, name string) (*model.MenuItem, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

// MockSpecialRepository is a mock implementation of SpecialRepository.
type MockSpecialRepository struct {
	mock.Mock
}

func (m *MockSpecialRepository) Create(ctx context.Context, special *model.Special) error {
	args := m.Called(ctx, special)
	return args.Error(0)
}

func (m *MockSpecialRepository) List(ctx context.Context) ([]model.Special, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Special), args.Error(1)
}

func (m *MockSpecialRepository) FindByTitle(ctx context.Context, title string) (*model.Special, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Special), args.Error(1)
}

// MockAnnouncementRepository is a mock implementation of AnnouncementRepository.
type MockAnnouncementRepository struct {
	mock.Mock
}

func (m *MockAnnouncementRepository) Create(ctx context.Context, announcement *model.Announcement) error {
	args := m.Called(ctx, announcement)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) List(ctx context.Context) ([]model.Announcement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) FindByTitle(ctx context.Context, title string) (*model.Announcement, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Announcement), args.Error(1)
}

// newCatalogService builds the service with a zero-value cache client, which
// behaves as a permanent miss.
func newCatalogService(menu *MockMenuItemRepository, special *MockSpecialRepository, announcement *MockAnnouncementRepository) CatalogService {
	return NewCatalogService(menu, special, announcement, &cache.Client{})
}

func TestCatalogService_ListMenu(t *testing.T) {
	breakfast := model.CategoryBreakfast
	items := []model.MenuItem{
		{ID: uuid.New(), Name: "Shakshuka Skillet", Category: model.CategoryBreakfast, Price: decimal.RequireFromString("11.50")},
	}

	tests := []struct {
		name     string
		category *model.Category
	}{
		{name: "all items", category: nil},
		{name: "filtered by category", category: &breakfast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMenu := new(MockMenuItemRepository)
			mockMenu.On("List", mock.Anything, tt.category).Return(items, nil)

			service := newCatalogService(mockMenu, new(MockSpecialRepository), new(MockAnnouncementRepository))
			got, err := service.ListMenu(context.Background(), tt.category)

			assert.NoError(t, err)
			assert.Equal(t, items, got)
			mockMenu.AssertExpectations(t)
		})
	}
}

func TestCatalogService_AddMenuItem(t *testing.T) {
	mockMenu := new(MockMenuItemRepository)
	mockMenu.On("Create", mock.Anything, mock.AnythingOfType("*model.MenuItem")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.MenuItem).ID = uuid.New()
		}).
		Return(nil)

	service := newCatalogService(mockMenu, new(MockSpecialRepository), new(MockAnnouncementRepository))
	id, err := service.AddMenuItem(context.Background(), &model.MenuItem{
		Name:     "Cardamom Latte",
		Category: model.CategoryBeverages,
		Price:    decimal.RequireFromString("5.25"),
	})

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	mockMenu.AssertExpectations(t)
}

func TestCatalogService_SpecialsAndAnnouncements(t *testing.T) {
	specials := []model.Special{{ID: uuid.New(), Title: "Kofta Night", Price: decimal.RequireFromString("18.50")}}
	announcements := []model.Announcement{{ID: uuid.New(), Title: "Live Oud Fridays", Message: "Every Friday from 7pm"}}

	mockSpecial := new(MockSpecialRepository)
	mockSpecial.On("List", mock.Anything).Return(specials, nil)
	mockAnnouncement := new(MockAnnouncementRepository)
	mockAnnouncement.On("List", mock.Anything).Return(announcements, nil)

	service := newCatalogService(new(MockMenuItemRepository), mockSpecial, mockAnnouncement)

	gotSpecials, err := service.ListSpecials(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, specials, gotSpecials)

	gotAnnouncements, err := service.ListAnnouncements(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, announcements, gotAnnouncements)

	mockSpecial.AssertExpectations(t)
	mockAnnouncement.AssertExpectations(t)
}
