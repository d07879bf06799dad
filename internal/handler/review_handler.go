package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cafeyak/internal/errors"
	"cafeyak/internal/model"
	"cafeyak/internal/service"
)

// ReviewHandler handles review endpoints.
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ReviewRequest represents a review submission. MenuItemID is empty for a
// general review of the cafe.
type ReviewRequest struct {
	UserEmail  string `json:"user_email" validate:"required,email"`
	Rating     int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment    string `json:"comment"`
	MenuItemID string `json:"menu_item_id"`
}

// List godoc
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param menu_item_id query string false "Filter by menu item"
// @Success 200 {array} model.Review
// @Failure 500 {object} errors.ErrorResponse
// @Router /reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.reviewService.List(c.Request().Context(), c.QueryParam("menu_item_id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, reviews)
}

// Create godoc
// @Summary Submit a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body ReviewRequest true "Review data"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req ReviewRequest
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

	review := &model.Review{
		UserEmail:  req.UserEmail,
		Rating:     req.Rating,
		Comment:    req.Comment,
		MenuItemID: req.MenuItemID,
	}

	id, err := h.reviewService.Add(c.Request().Context(), review)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}
