package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/moto-pile/site/config"
	h "github.com/moto-pile/site/handlers"
)

// New builds the app with its middleware and routes. Handlers read content from the
// source set with handlers.SetContentSource.
func New() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
	})

	app.Use(h.GlobalRateLimiter)
	app.Use(logger.New())
	app.Use(h.ConsentMiddleware)

	// Static files
	app.Static("/", "./static")

	// Informational pages
	app.Get("/", h.HandleHome)
	app.Get("/about", h.HandleAbout)
	app.Get("/faq", h.HandleFAQ)
	app.Get("/faq/list", h.HandleFAQList)

	// Legal pages
	app.Get("/terms", h.HandleTermsOfService)
	app.Get("/privacy", h.HandlePrivacyPolicy)
	app.Get("/cookies", h.HandleCookiePolicy)

	// Sitemap
	app.Get("/sitemap", h.HandleSitemapPage)
	app.Get("/sitemap.xml", h.HandleSitemap)

	// Health check and metrics
	app.Get("/health", h.HandleHealth)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API group
	api := app.Group("/api")
	api.Post("/cookie-consent", h.HandleCookieConsent)
	api.Get("/content", h.HandleContentAPI)
	api.Post("/content/refresh", h.AdminRateLimiter, h.AdminRequired, h.HandleContentRefresh)

	return app
}
