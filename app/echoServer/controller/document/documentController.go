package document

import (
	"log/slog"
	"net/http"

	docsvc "bookloans/service/docs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc docsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/documents
func (h *Controller) List(c echo.Context) error {
	docs, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("document list", "err", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"documents":      docs,
		"selected":       h.Svc.Selection().IDs(),
		"fully_selected": h.Svc.IsFullySelected(),
	})
}

// POST /v1/documents/selection/toggle
func (h *Controller) Toggle(c echo.Context) error {
	var req ToggleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	sel := h.Svc.Toggle(req.ID)
	return c.JSON(http.StatusOK, echo.Map{"selected": sel.IDs()})
}

// POST /v1/documents/selection/all
func (h *Controller) SelectAll(c echo.Context) error {
	sel := h.Svc.SelectAll()
	return c.JSON(http.StatusOK, echo.Map{"selected": sel.IDs()})
}

// DELETE /v1/documents/selection
func (h *Controller) ClearSelection(c echo.Context) error {
	h.Svc.ClearSelection()
	return c.JSON(http.StatusOK, echo.Map{"selected": []string{}})
}

// DELETE /v1/documents/selected
func (h *Controller) DeleteSelected(c echo.Context) error {
	n, err := h.Svc.DeleteSelected(c.Request().Context())
	if err != nil {
		h.Log.Error("bulk delete", "deleted", n, "err", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"message": err.Error(), "deleted": n})
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": n})
}
