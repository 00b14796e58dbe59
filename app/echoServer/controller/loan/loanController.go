package loan

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	ls "bookloans/service/loans"

	"bookloans/repository/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc ls.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/loans
func (h *Controller) List(c echo.Context) error {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 20)

	out, err := h.Svc.FetchMyLoans(c.Request().Context(), page, limit)
	if err != nil {
		h.Log.Error("loan list", "err", err)
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items": out.Items,
		"total": out.TotalCount,
	})
}

// POST /v1/loans/:id/checkin
func (h *Controller) Checkin(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	out, err := h.Svc.Checkin(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("checkin", "id", id, "err", err)
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"was_overdue":  out.WasOverdue,
		"days_overdue": out.DaysOverdue,
	})
}

// POST /v1/loans/:id/renew
func (h *Controller) Renew(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req RenewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	out, err := h.Svc.Renew(c.Request().Context(), id, req.ExtendDays)
	if err != nil {
		h.Log.Error("renew", "id", id, "err", err)
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": out.Message})
}

// GET /v1/loans/feedback
func (h *Controller) Feedback(c echo.Context) error {
	notice, errMsg := h.Svc.Feedback()
	return c.JSON(http.StatusOK, echo.Map{
		"notice": notice,
		"error":  errMsg,
	})
}

func intQuery(c echo.Context, key string, def int) int {
	v, err := strconv.Atoi(c.QueryParam(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// writeErr maps service errors onto facade statuses. Remote failures keep the
// upstream status when it is a usable HTTP code.
func writeErr(c echo.Context, err error) error {
	switch ls.Code(err) {
	case ls.ErrUnauthenticated:
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": err.Error()})
	case ls.ErrInFlight:
		return c.JSON(http.StatusConflict, echo.Map{"message": err.Error()})
	case ls.ErrRemote:
		var re *catalog.RemoteError
		if errors.As(err, &re) && re.Status >= 400 {
			return c.JSON(re.Status, echo.Map{"message": re.Message})
		}
		return c.JSON(http.StatusBadGateway, echo.Map{"message": "catalog unreachable"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}
