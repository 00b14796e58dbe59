package echoServer

import (
	"bookloans/app/echoServer/controller/book"
	"bookloans/app/echoServer/controller/document"
	"bookloans/app/echoServer/controller/loan"
	"bookloans/app/echoServer/controller/notify"
	"bookloans/app/echoServer/controller/sessionctrl"

	"github.com/labstack/echo/v4"
)

type C struct {
	Loan     *loan.Controller
	Book     *book.Controller
	Notify   *notify.Controller
	Document *document.Controller
	Session  *sessionctrl.Controller
}

func Register(e *echo.Echo, c C) {
	v1 := e.Group("/v1")

	// session (bearer issued by the external auth provider)
	v1.PUT("/session", c.Session.Install)
	v1.DELETE("/session", c.Session.Clear)

	// my loans
	v1.GET("/loans", c.Loan.List)
	v1.GET("/loans/feedback", c.Loan.Feedback)
	v1.POST("/loans/:id/checkin", c.Loan.Checkin)
	v1.POST("/loans/:id/renew", c.Loan.Renew)

	// catalog browse
	v1.GET("/books", c.Book.List)
	v1.POST("/books/:id/checkout", c.Book.Checkout)

	// notification badge
	v1.GET("/notifications", c.Notify.Current)
	v1.POST("/notifications/refresh", c.Notify.Refresh)

	// document library
	v1.GET("/documents", c.Document.List)
	v1.POST("/documents/selection/toggle", c.Document.Toggle)
	v1.POST("/documents/selection/all", c.Document.SelectAll)
	v1.DELETE("/documents/selection", c.Document.ClearSelection)
	v1.DELETE("/documents/selected", c.Document.DeleteSelected)
}
