package notify

import (
	"log/slog"
	"net/http"

	notifysvc "bookloans/service/notify"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Poller *notifysvc.Poller
	Log    *slog.Logger
}

// GET /v1/notifications
//
// summary is null when there is no active session or the last refresh
// failed; error carries the failure message in the latter case.
func (h *Controller) Current(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"summary": h.Poller.Summary(),
		"error":   h.Poller.Err(),
	})
}

// POST /v1/notifications/refresh
func (h *Controller) Refresh(c echo.Context) error {
	h.Poller.Refresh(c.Request().Context())
	return c.JSON(http.StatusOK, echo.Map{
		"summary": h.Poller.Summary(),
		"error":   h.Poller.Err(),
	})
}
