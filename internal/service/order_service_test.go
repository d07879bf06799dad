package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"cafeyak/internal/errors"
	"cafeyak/internal/model"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func TestOrderService_CreateOrder_LoyaltyAccrual(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.New()

	tests := []struct {
		name           string
		total          string
		setupUserMock  func(*MockUserRepository)
		expectedPoints int64 // 0 means no increment expected
	}{
		{
			name:  "total 25.00 awards 2 points",
			total: "25.00",
			setupUserMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "customer@example.com").Return(&model.User{ID: userID, Email: "customer@example.com"}, nil)
				m.On("IncrementLoyaltyPoints", mock.Anything, userID, int64(2)).Return(nil)
			},
			expectedPoints: 2,
		},
		{
			name:  "total 9.99 awards nothing",
			total: "9.99",
			setupUserMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "customer@example.com").Return(&model.User{ID: userID, Email: "customer@example.com"}, nil)
			},
		},
		{
			name:  "total 10.00 awards exactly 1 point",
			total: "10.00",
			setupUserMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "customer@example.com").Return(&model.User{ID: userID, Email: "customer@example.com"}, nil)
				m.On("IncrementLoyaltyPoints", mock.Anything, userID, int64(1)).Return(nil)
			},
			expectedPoints: 1,
		},
		{
			name:  "guest checkout skips accrual",
			total: "42.00",
			setupUserMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "customer@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderRepo := new(MockOrderRepository)
			mockUserRepo := new(MockUserRepository)
			tt.setupUserMock(mockUserRepo)

			mockOrderRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).
				Run(func(args mock.Arguments) {
					args.Get(1).(*model.Order).ID = orderID
				}).
				Return(nil)

			service := NewOrderService(mockOrderRepo, mockUserRepo)
			order := &model.Order{
				UserEmail:   "customer@example.com",
				Subtotal:    decimal.RequireFromString(tt.total),
				Tax:         decimal.Zero,
				Total:       decimal.RequireFromString(tt.total),
				Fulfillment: model.FulfillmentPickup,
			}

			id, status, err := service.CreateOrder(context.Background(), order)

			assert.NoError(t, err)
			assert.Equal(t, orderID, id)
			assert.Equal(t, model.OrderStatusReceived, status)
			if tt.expectedPoints == 0 {
				mockUserRepo.AssertNotCalled(t, "IncrementLoyaltyPoints", mock.Anything, mock.Anything, mock.Anything)
			}

			mockOrderRepo.AssertExpectations(t)
			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_CreateOrder_DefaultsStatus(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockUserRepo := new(MockUserRepository)

	mockOrderRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).
		Run(func(args mock.Arguments) {
			saved := args.Get(1).(*model.Order)
			assert.Equal(t, model.OrderStatusReceived, saved.Status)
		}).
		Return(nil)
	mockUserRepo.On("FindByEmail", mock.Anything, "guest@example.com").Return(nil, gorm.ErrRecordNotFound)

	service := NewOrderService(mockOrderRepo, mockUserRepo)
	order := &model.Order{
		UserEmail:   "guest@example.com",
		Subtotal:    decimal.Zero,
		Tax:         decimal.Zero,
		Total:       decimal.Zero,
		Fulfillment: model.FulfillmentDelivery,
	}

	_, status, err := service.CreateOrder(context.Background(), order)

	assert.NoError(t, err)
	assert.Equal(t, model.OrderStatusReceived, status)
	mockOrderRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_NegativeTotal(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockUserRepo := new(MockUserRepository)

	service := NewOrderService(mockOrderRepo, mockUserRepo)
	order := &model.Order{
		UserEmail:   "customer@example.com",
		Subtotal:    decimal.Zero,
		Tax:         decimal.Zero,
		Total:       decimal.RequireFromString("-1.00"),
		Fulfillment: model.FulfillmentPickup,
	}

	_, _, err := service.CreateOrder(context.Background(), order)

	assert.Equal(t, errors.ErrNegativeAmount, err)
	mockOrderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_OrderStatus(t *testing.T) {
	orderID := uuid.New()

	tests := []struct {
		name           string
		orderID        string
		setupMock      func(*MockOrderRepository)
		expectedStatus model.OrderStatus
		expectedError  error
	}{
		{
			name:    "malformed id rejected before lookup",
			orderID: "not-an-id",
			setupMock: func(m *MockOrderRepository) {
				// No store access expected.
			},
			expectedError: errors.ErrInvalidOrderID,
		},
		{
			name:    "well-formed but absent id",
			orderID: orderID.String(),
			setupMock: func(m *MockOrderRepository) {
				m.On("FindByID", mock.Anything, orderID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrOrderNotFound,
		},
		{
			name:    "stored status returned",
			orderID: orderID.String(),
			setupMock: func(m *MockOrderRepository) {
				m.On("FindByID", mock.Anything, orderID).Return(&model.Order{ID: orderID, Status: model.OrderStatusPreparing}, nil)
			},
			expectedStatus: model.OrderStatusPreparing,
		},
		{
			name:    "absent status defaults to received",
			orderID: orderID.String(),
			setupMock: func(m *MockOrderRepository) {
				m.On("FindByID", mock.Anything, orderID).Return(&model.Order{ID: orderID}, nil)
			},
			expectedStatus: model.OrderStatusReceived,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderRepo := new(MockOrderRepository)
			mockUserRepo := new(MockUserRepository)
			tt.setupMock(mockOrderRepo)

			service := NewOrderService(mockOrderRepo, mockUserRepo)
			status, err := service.OrderStatus(context.Background(), tt.orderID)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				if tt.expectedError == errors.ErrInvalidOrderID {
					mockOrderRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStatus, status)
			}

			mockOrderRepo.AssertExpectations(t)
		})
	}
}
