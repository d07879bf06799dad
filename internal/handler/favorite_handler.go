package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cafeyak/internal/errors"
	"cafeyak/internal/service"
)

// FavoriteHandler handles favorites endpoints.
type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// ToggleFavoriteRequest represents a favorite toggle request.
type ToggleFavoriteRequest struct {
	Email  string `json:"email" validate:"required,email"`
	ItemID string `json:"item_id" validate:"required"`
}

// FavoritesResponse represents a user's favorites set.
type FavoritesResponse struct {
	Favorites []string `json:"favorites"`
}

// Toggle godoc
// @Summary Toggle a menu item in the user's favorites
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body ToggleFavoriteRequest true "Toggle data"
// @Success 200 {object} FavoritesResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /favorites/toggle [post]
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	var req ToggleFavoriteRequest
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

	favorites, err := h.favoriteService.Toggle(c.Request().Context(), req.Email, req.ItemID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, FavoritesResponse{Favorites: favorites})
}

// List godoc
// @Summary Get the user's favorites
// @Tags favorites
// @Produce json
// @Param email query string true "User email"
// @Success 200 {object} FavoritesResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "email is required",
			Code:  "MISSING_EMAIL",
		})
	}

	favorites, err := h.favoriteService.List(c.Request().Context(), email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, FavoritesResponse{Favorites: favorites})
}
