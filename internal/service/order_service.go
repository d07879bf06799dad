package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"cafeyak/internal/errors"
	"cafeyak/internal/model"
	"cafeyak/internal/repository"
)

// pointsDivisor awards one loyalty point per this many currency units spent.
var pointsDivisor = decimal.NewFromInt(10)

// OrderService handles order placement and status lookup.
type OrderService interface {
	CreateOrder(ctx context.Context, order *model.Order) (uuid.UUID, model.OrderStatus, error)
	OrderStatus(ctx context.Context, orderID string) (model.OrderStatus, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, userRepo repository.UserRepository) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

// CreateOrder persists the order and accrues loyalty points for the owning
// user. Accrual is best-effort: an order placed under an email with no user
// record (guest checkout) succeeds with no points awarded, and an accrual
// failure never fails the order.
func (s *orderService) CreateOrder(ctx context.Context, order *model.Order) (uuid.UUID, model.OrderStatus, error) {
	if order.Subtotal.IsNegative() || order.Tax.IsNegative() || order.Total.IsNegative() {
		return uuid.Nil, "", errors.ErrNegativeAmount
	}

	if order.Status == "" {
		order.Status = model.OrderStatusReceived
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return uuid.Nil, "", fmt.Errorf("create order: %w", err)
	}

	s.accruePoints(ctx, order)

	// The reported status is the creation default, whatever persistence set.
	return order.ID, model.OrderStatusReceived, nil
}

// accruePoints awards floor(total / 10) points to the matching user, if any,
// as a single atomic increment at the store.
func (s *orderService) accruePoints(ctx context.Context, order *model.Order) {
	user, err := s.userRepo.FindByEmail(ctx, order.UserEmail)
	if err != nil {
		return
	}

	points := order.Total.Div(pointsDivisor).IntPart()
	if points <= 0 {
		return
	}

	_ = s.userRepo.IncrementLoyaltyPoints(ctx, user.ID, points)
}

// OrderStatus returns the stored status for an order. A malformed identifier
// is rejected before any store lookup.
func (s *orderService) OrderStatus(ctx context.Context, orderID string) (model.OrderStatus, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return "", errors.ErrInvalidOrderID
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", errors.ErrOrderNotFound
		}
		return "", fmt.Errorf("find order: %w", err)
	}

	if order.Status == "" {
		return model.OrderStatusReceived, nil
	}
	return order.Status, nil
}
