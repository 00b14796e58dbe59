package book

import (
	"log/slog"
	"net/http"
	"strconv"

	ls "bookloans/service/loans"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc ls.Service
	V   *validator.Validate
	Log *slog.Logger
}

type bookRow struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Status          string `json:"status"`
	StatusLabel     string `json:"status_label"`
	StatusBadge     string `json:"status_badge"`
	AvailableCopies int    `json:"available_copies"`
}

// GET /v1/books
func (h *Controller) List(c echo.Context) error {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 20)

	out, err := h.Svc.BrowseBooks(c.Request().Context(), page, limit)
	if err != nil {
		h.Log.Error("book list", "err", err)
		if ls.Code(err) == ls.ErrUnauthenticated {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": err.Error()})
		}
		return c.JSON(http.StatusBadGateway, echo.Map{"message": "catalog unreachable"})
	}

	rows := make([]bookRow, len(out.Books))
	for i, b := range out.Books {
		rows[i] = bookRow{
			ID:              b.ID,
			Title:           b.Title,
			Author:          b.Author,
			Status:          string(b.Status),
			StatusLabel:     b.Status.Label(),
			StatusBadge:     b.Status.Badge(),
			AvailableCopies: b.AvailableCopies,
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rows, "total": out.Total})
}

// POST /v1/books/:id/checkout
func (h *Controller) Checkout(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req CheckoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	out, err := h.Svc.Checkout(c.Request().Context(), id, req.CheckoutDays)
	if err != nil {
		h.Log.Error("checkout", "id", id, "err", err)
		if ls.Code(err) == ls.ErrUnauthenticated {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": err.Error()})
		}
		return c.JSON(http.StatusConflict, echo.Map{"message": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"book_title": out.BookTitle})
}

func intQuery(c echo.Context, key string, def int) int {
	v, err := strconv.Atoi(c.QueryParam(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
