package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/umeshpagere/cepl-kumbh-mela/internal/calendar"
	"github.com/umeshpagere/cepl-kumbh-mela/internal/dto"
)

type ReminderHandler struct{}

func NewReminderHandler() *ReminderHandler {
	return &ReminderHandler{}
}

func (h *ReminderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/aarti-reminder", h.AartiReminder)
}

// AartiReminder returns a calendar link for an aarti, assuming today's date.
func (h *ReminderHandler) AartiReminder(c echo.Context) error {
	var req dto.AartiReminderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Time == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and time are required")
	}

	start, err := calendar.At(time.Now(), req.Time)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid time value")
	}

	url := calendar.EventURL(req.Name, req.Location, req.Significance, start, calendar.ReminderDuration(req.Duration))
	return c.JSON(http.StatusOK, dto.ReminderResponse{URL: url})
}
