package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"cafeyak/internal/errors"
	"cafeyak/internal/model"
	"cafeyak/internal/service"
)

// CatalogHandler handles menu, special and announcement endpoints.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// MenuItemRequest represents a menu item creation request.
type MenuItemRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       string   `json:"price" validate:"required"`
	Category    string   `json:"category" validate:"required,oneof=breakfast mains snacks beverages desserts"`
	ImageURL    string   `json:"image_url"`
	Spicy       string   `json:"spicy" validate:"omitempty,oneof=mild medium hot"`
	AddOns      []string `json:"add_ons"`
	Toppings    []string `json:"toppings"`
}

// SpecialRequest represents a special creation request.
type SpecialRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required"`
	ImageURL    string `json:"image_url"`
}

// AnnouncementRequest represents an announcement creation request.
type AnnouncementRequest struct {
	Title    string `json:"title" validate:"required"`
	Message  string `json:"message" validate:"required"`
	ImageURL string `json:"image_url"`
	Tag      string `json:"tag"`
}

// CreatedResponse carries the identifier of a newly created document.
type CreatedResponse struct {
	ID string `json:"id"`
}

// ListMenu godoc
// @Summary List menu items
// @Tags menu
// @Produce json
// @Param category query string false "Filter by category" Enums(breakfast, mains, snacks, beverages, desserts)
// @Success 200 {array} model.MenuItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /menu [get]
func (h *CatalogHandler) ListMenu(c echo.Context) error {
	var category *model.Category
	if raw := c.QueryParam("category"); raw != "" {
		switch cat := model.Category(raw); cat {
		case model.CategoryBreakfast, model.CategoryMains, model.CategorySnacks,
			model.CategoryBeverages, model.CategoryDesserts:
			category = &cat
		default:
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid category",
				Code:  "INVALID_CATEGORY",
			})
		}
	}

	items, err := h.catalogService.ListMenu(c.Request().Context(), category)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, items)
}

// AddMenuItem godoc
// @Summary Add a menu item
// @Tags menu
// @Accept json
// @Produce json
// @Param request body MenuItemRequest true "Menu item data"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /menu [post]
func (h *CatalogHandler) AddMenuItem(c echo.Context) error {
	var req MenuItemRequest
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

	price, err := parseAmount(req.Price)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid price",
			Code:  "INVALID_AMOUNT",
		})
	}

	item := &model.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Category:    model.Category(req.Category),
		ImageURL:    req.ImageURL,
		Spicy:       model.SpiceLevel(req.Spicy),
		AddOns:      req.AddOns,
		Toppings:    req.Toppings,
	}

	id, err := h.catalogService.AddMenuItem(c.Request().Context(), item)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// ListSpecials godoc
// @Summary List specials
// @Tags specials
// @Produce json
// @Success 200 {array} model.Special
// @Failure 500 {object} errors.ErrorResponse
// @Router /specials [get]
func (h *CatalogHandler) ListSpecials(c echo.Context) error {
	specials, err := h.catalogService.ListSpecials(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, specials)
}

// AddSpecial godoc
// @Summary Add a special
// @Tags specials
// @Accept json
// @Produce json
// @Param request body SpecialRequest true "Special data"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /specials [post]
func (h *CatalogHandler) AddSpecial(c echo.Context) error {
	var req SpecialRequest
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

	price, err := parseAmount(req.Price)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid price",
			Code:  "INVALID_AMOUNT",
		})
	}

	special := &model.Special{
		Title:       req.Title,
		Description: req.Description,
		Price:       price,
		ImageURL:    req.ImageURL,
	}

	id, err := h.catalogService.AddSpecial(c.Request().Context(), special)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// ListAnnouncements godoc
// @Summary List announcements
// @Tags announcements
// @Produce json
// @Success 200 {array} model.Announcement
// @Failure 500 {object} errors.ErrorResponse
// @Router /announcements [get]
func (h *CatalogHandler) ListAnnouncements(c echo.Context) error {
	announcements, err := h.catalogService.ListAnnouncements(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, announcements)
}

// AddAnnouncement godoc
// @Summary Add an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param request body AnnouncementRequest true "Announcement data"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /announcements [post]
func (h *CatalogHandler) AddAnnouncement(c echo.Context) error {
	var req AnnouncementRequest
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

	announcement := &model.Announcement{
		Title:    req.Title,
		Message:  req.Message,
		ImageURL: req.ImageURL,
		Tag:      req.Tag,
	}

	id, err := h.catalogService.AddAnnouncement(c.Request().Context(), announcement)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// parseAmount parses a JSON-string monetary amount, rejecting negatives.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if amount.IsNegative() {
		return decimal.Zero, errors.ErrNegativeAmount
	}
	return amount, nil
}
