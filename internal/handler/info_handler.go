package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cafeyak/internal/config"
)

// InfoHandler handles the liveness, diagnostic and static contact endpoints.
type InfoHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewInfoHandler creates a new info handler.
func NewInfoHandler(db *gorm.DB, cfg *config.Config) *InfoHandler {
	return &InfoHandler{db: db, cfg: cfg}
}

// ContactResponse is the static contact record.
type ContactResponse struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	MapsURL string `json:"maps_url"`
}

// DiagnosticsResponse reports backend and database health.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DSNConfigured    bool     `json:"dsn_configured"`
	ConnectionStatus string   `json:"connection_status"`
	Tables           []string `json:"tables"`
}

// Root godoc
// @Summary Liveness message
// @Tags info
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *InfoHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Cafe Yakjaaah API is running",
	})
}

// Contact godoc
// @Summary Static contact information
// @Tags info
// @Produce json
// @Success 200 {object} ContactResponse
// @Router /contact [get]
func (h *InfoHandler) Contact(c echo.Context) error {
	return c.JSON(http.StatusOK, ContactResponse{
		Phone:   "+1 (555) 012-3456",
		Email:   "hello@cafeyakjaaah.com",
		Address: "123 Cozy Lane, Brewtown",
		MapsURL: "https://maps.google.com/?q=123+Cozy+Lane+Brewtown",
	})
}

// Test godoc
// @Summary Database connectivity diagnostics
// @Tags info
// @Produce json
// @Success 200 {object} DiagnosticsResponse
// @Router /test [get]
func (h *InfoHandler) Test(c echo.Context) error {
	resp := DiagnosticsResponse{
		Backend:          "running",
		Database:         "not available",
		DSNConfigured:    h.cfg.MySQLDSN != "",
		ConnectionStatus: "not connected",
		Tables:           []string{},
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		resp.Database = "error: " + err.Error()
		return c.JSON(http.StatusOK, resp)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		resp.Database = "error: " + err.Error()
		return c.JSON(http.StatusOK, resp)
	}

	resp.Database = "connected"
	resp.ConnectionStatus = "connected"

	if tables, err := h.db.Migrator().GetTables(); err == nil {
		if len(tables) > 10 {
			tables = tables[:10]
		}
		resp.Tables = tables
	}

	return c.JSON(http.StatusOK, resp)
}
