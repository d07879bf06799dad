package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cafeyak/internal/errors"
	"cafeyak/internal/model"
	"cafeyak/internal/service"
)

// ReservationHandler handles reservation endpoints.
type ReservationHandler struct {
	reservationService service.ReservationService
}

// NewReservationHandler creates a new reservation handler.
func NewReservationHandler(reservationService service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// ReservationRequest represents a booking request.
type ReservationRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	PartySize int    `json:"party_size" validate:"required,gte=1,lte=20"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Notes     string `json:"notes"`
}

// ReservationResponse represents a booking response.
type ReservationResponse struct {
	ReservationID string `json:"reservation_id"`
}

// Create godoc
// @Summary Book a table
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body ReservationRequest true "Reservation data"
// @Success 201 {object} ReservationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /reservations [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	var req ReservationRequest
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

	reservation := &model.Reservation{
		UserEmail: req.UserEmail,
		Name:      req.Name,
		Phone:     req.Phone,
		PartySize: req.PartySize,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	}

	id, err := h.reservationService.Book(c.Request().Context(), reservation)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, ReservationResponse{ReservationID: id.String()})
}
