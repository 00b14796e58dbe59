package sessionctrl

import (
	"log/slog"
	"net/http"

	"bookloans/service/session"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type InstallReq struct {
	Token string `json:"token" validate:"required"`
}

type Controller struct {
	Session *session.Client
	V       *validator.Validate
	Log     *slog.Logger
}

// PUT /v1/session installs the bearer issued by the external auth provider.
func (h *Controller) Install(c echo.Context) error {
	var req InstallReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	if err := h.Session.SetToken(req.Token); err != nil {
		h.Log.Warn("session install rejected", "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "token has no readable expiry"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "session installed"})
}

// DELETE /v1/session
func (h *Controller) Clear(c echo.Context) error {
	h.Session.Clear()
	return c.JSON(http.StatusOK, echo.Map{"message": "session cleared"})
}
