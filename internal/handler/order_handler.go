package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cafeyak/internal/errors"
	"cafeyak/internal/model"
	"cafeyak/internal/service"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CartItemRequest represents one line of an order.
type CartItemRequest struct {
	MenuItemID string   `json:"menu_item_id" validate:"required"`
	Name       string   `json:"name" validate:"required"`
	Price      string   `json:"price" validate:"required"`
	Quantity   int      `json:"quantity" validate:"omitempty,gte=1"`
	AddOns     []string `json:"add_ons"`
	Toppings   []string `json:"toppings"`
	SpiceLevel string   `json:"spice_level" validate:"omitempty,oneof=mild medium hot"`
	Notes      string   `json:"notes"`
}

// OrderRequest represents an order placement request. The item list may be
// empty; totals are client-supplied.
type OrderRequest struct {
	UserEmail   string            `json:"user_email" validate:"required,email"`
	Items       []CartItemRequest `json:"items" validate:"dive"`
	Subtotal    string            `json:"subtotal" validate:"required"`
	Tax         string            `json:"tax" validate:"required"`
	Total       string            `json:"total" validate:"required"`
	Fulfillment string            `json:"fulfillment" validate:"required,oneof=pickup delivery"`
	Status      string            `json:"status" validate:"omitempty,oneof=received preparing ready out_for_delivery completed cancelled"`
	Address     string            `json:"address"`
}

// OrderResponse represents an order placement response.
type OrderResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// OrderStatusResponse represents an order status lookup response.
type OrderStatusResponse struct {
	Status string `json:"status"`
}

// CreateOrder godoc
// @Summary Place an order
// @Tags orders
// @Accept json
// @Produce json
// @Param request body OrderRequest true "Order data"
// @Success 201 {object} OrderResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	subtotal, err := parseAmount(req.Subtotal)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid subtotal",
			Code:  "INVALID_AMOUNT",
		})
	}
	tax, err := parseAmount(req.Tax)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid tax",
			Code:  "INVALID_AMOUNT",
		})
	}
	total, err := parseAmount(req.Total)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid total",
			Code:  "INVALID_AMOUNT",
		})
	}

	items := make([]model.CartItem, 0, len(req.Items))
	for _, line := range req.Items {
		price, err := parseAmount(line.Price)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid item price",
				Code:  "INVALID_AMOUNT",
			})
		}
		quantity := line.Quantity
		if quantity == 0 {
			quantity = 1
		}
		items = append(items, model.CartItem{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Price:      price,
			Quantity:   quantity,
			AddOns:     line.AddOns,
			Toppings:   line.Toppings,
			SpiceLevel: model.SpiceLevel(line.SpiceLevel),
			Notes:      line.Notes,
		})
	}

	order := &model.Order{
		UserEmail:   req.UserEmail,
		Items:       items,
		Subtotal:    subtotal,
		Tax:         tax,
		Total:       total,
		Fulfillment: model.Fulfillment(req.Fulfillment),
		Status:      model.OrderStatus(req.Status),
		Address:     req.Address,
	}

	id, status, err := h.orderService.CreateOrder(c.Request().Context(), order)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, OrderResponse{
		OrderID: id.String(),
		Status:  string(status),
	})
}

// GetOrderStatus godoc
// @Summary Look up the status of an order
// @Tags orders
// @Produce json
// @Param order_id query string true "Order identifier"
// @Success 200 {object} OrderStatusResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /orders/status [get]
func (h *OrderHandler) GetOrderStatus(c echo.Context) error {
	orderID := c.QueryParam("order_id")
	if orderID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "order_id is required",
			Code:  "MISSING_ORDER_ID",
		})
	}

	status, err := h.orderService.OrderStatus(c.Request().Context(), orderID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, OrderStatusResponse{Status: string(status)})
}
