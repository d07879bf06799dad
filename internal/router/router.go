package router

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"cafeyak/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	catalogHandler *handler.CatalogHandler,
	favoriteHandler *handler.FavoriteHandler,
	orderHandler *handler.OrderHandler,
	reservationHandler *handler.ReservationHandler,
	reviewHandler *handler.ReviewHandler,
	infoHandler *handler.InfoHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", infoHandler.Root)
	e.GET("/test", infoHandler.Test)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)

	api.GET("/menu", catalogHandler.ListMenu)
	api.POST("/menu", catalogHandler.AddMenuItem)
	api.GET("/specials", catalogHandler.ListSpecials)
	api.POST("/specials", catalogHandler.AddSpecial)
	api.GET("/announcements", catalogHandler.ListAnnouncements)
	api.POST("/announcements", catalogHandler.AddAnnouncement)

	api.POST("/favorites/toggle", favoriteHandler.Toggle)
	api.GET("/favorites", favoriteHandler.List)

	api.POST("/orders", orderHandler.CreateOrder)
	api.GET("/orders/status", orderHandler.GetOrderStatus)

	api.POST("/reservations", reservationHandler.Create)

	api.GET("/reviews", reviewHandler.List)
	api.POST("/reviews", reviewHandler.Create)

	api.GET("/contact", infoHandler.Contact)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
