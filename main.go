// Package main loan companion API.
//
// @title           Loan Companion API
// @version         1.0
// @description     local facade over the lending-catalog API (loans, due-date badges, documents).
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"log/slog"
	"os"

	"bookloans/app/echoServer"
	bookctrl "bookloans/app/echoServer/controller/book"
	docctrl "bookloans/app/echoServer/controller/document"
	loanctrl "bookloans/app/echoServer/controller/loan"
	notifyctrl "bookloans/app/echoServer/controller/notify"
	"bookloans/app/echoServer/controller/sessionctrl"
	"bookloans/app/echoServer/validation"
	"bookloans/config"
	"bookloans/repository/catalog"
	"bookloans/repository/docstore"
	docsvc "bookloans/service/docs"
	loansvc "bookloans/service/loans"
	notifysvc "bookloans/service/notify"
	"bookloans/service/session"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// session: bearer installed via PUT /v1/session, read-only everywhere else
	sp := session.NewClient()
	if tok := os.Getenv("SESSION_TOKEN"); tok != "" {
		if err := sp.SetToken(tok); err != nil {
			log.Warn("SESSION_TOKEN ignored", "err", err)
		}
	}

	// remote bindings
	cr := catalog.NewHTTP(cfg.APIBaseURL)
	dr := docstore.NewHTTP(cfg.APIBaseURL)

	// services
	loans := loansvc.New(sp, cr, log)
	docs := docsvc.New(sp, dr, log)
	poller := notifysvc.New(sp, cr, cfg.PollInterval, log)
	poller.Start(ctx)
	defer poller.Stop()

	// controllers
	v := validator.New()
	loanC := &loanctrl.Controller{Svc: loans, V: v, Log: log}
	bookC := &bookctrl.Controller{Svc: loans, V: v, Log: log}
	notifyC := &notifyctrl.Controller{Poller: poller, Log: log}
	docC := &docctrl.Controller{Svc: docs, V: v, Log: log}
	sessC := &sessionctrl.Controller{Session: sp, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Loan:     loanC,
		Book:     bookC,
		Notify:   notifyC,
		Document: docC,
		Session:  sessC,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port, "api_url", cfg.APIBaseURL, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
