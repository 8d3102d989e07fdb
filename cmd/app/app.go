package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/hothcommerce/storefront/internal/auth"
	"github.com/hothcommerce/storefront/internal/config"
	"github.com/hothcommerce/storefront/internal/envelope"
	"github.com/hothcommerce/storefront/internal/order"
	"github.com/hothcommerce/storefront/internal/product"
)

// Rate limiting is deliberately more generous than the management system:
// 200 requests per client per 15-minute window.
const (
	rateLimitMax    = 200
	rateLimitWindow = 15 * time.Minute
)

// newApp assembles the middleware chain and routes. Ordering is
// load-bearing: health checks come before the limiter and CORS so
// orchestration probes are never throttled, and the not-found handler is
// mounted last so it only sees what nothing else matched.
func newApp(cfg config.Config, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      config.ServiceName,
		BodyLimit:    5 * 1024 * 1024,
		ErrorHandler: errorHandler(log),
	})

	registerHealthRoutes(app, cfg)

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			log.Error("panic recovered",
				"error", fmt.Sprint(e),
				"method", c.Method(),
				"url", c.OriginalURL(),
				"stack", string(debug.Stack()),
			)
		},
	}))
	app.Use(helmet.New(helmet.Config{
		ContentSecurityPolicy: contentSecurityPolicy(cfg),
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        rateLimitMax,
		Expiration: rateLimitWindow,
		LimitReached: func(c *fiber.Ctx) error {
			return envelope.Fail(c, fiber.StatusTooManyRequests, "Too many requests, please try again later.")
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORS.AllowedOrigins, ","),
		AllowCredentials: true,
	}))
	app.Use(requestLogger(log))

	app.Static("/", cfg.StaticDir)

	auth.NewHandler(auth.NewService()).RegisterRoutes(app.Group("/api/auth"))

	catalog := product.NewService(product.NewInMemoryRepository(product.SampleCatalog()))
	product.NewHandler(catalog).RegisterRoutes(app.Group("/api/products"))

	order.NewHandler(order.NewService()).RegisterRoutes(app.Group("/api/orders"))

	app.Use(spaFallback(filepath.Join(cfg.StaticDir, "index.html")))
	app.Use(notFound(log))

	return app
}

func registerHealthRoutes(app *fiber.App, cfg config.Config) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"service":   config.ServiceName,
			"timestamp": envelope.Now(),
			"port":      cfg.Port,
			"host":      cfg.Host,
		})
	})
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": envelope.Now(),
			"service":   config.ServiceName,
			"version":   config.Version,
			"port":      cfg.Port,
			"host":      cfg.Host,
			"nodeEnv":   cfg.NodeEnv,
			"railway":   cfg.RailwayEnv,
		})
	})
}

func contentSecurityPolicy(cfg config.Config) string {
	return "default-src 'self'; " +
		"script-src 'self' 'unsafe-inline'; " +
		"style-src 'self' 'unsafe-inline'; " +
		"img-src 'self' data: https:; " +
		"connect-src 'self' " + cfg.Management.APIURL
}

// requestLogger records every non-static request with its client address.
func requestLogger(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !strings.HasPrefix(c.Path(), "/static") {
			log.Info(c.Method()+" "+c.Path(), "ip", c.IP())
		}
		return c.Next()
	}
}

// spaFallback serves the frontend index document for any GET outside /api
// so the client-side router owns those paths. Unmatched /api paths fall
// through to the not-found handler.
func spaFallback(indexPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet || strings.HasPrefix(c.Path(), "/api") {
			return c.Next()
		}
		return c.SendFile(indexPath)
	}
}

func notFound(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		log.Warn("route not found", "method", c.Method(), "path", c.Path(), "ip", c.IP())
		return envelope.Fail(c, fiber.StatusNotFound,
			fmt.Sprintf("Route %s %s not found", c.Method(), c.Path()))
	}
}

// errorHandler logs every surfaced error with its request context, then
// responds with the uniform failure envelope. The status code rides on
// *fiber.Error when a handler attached one; everything else is a 500.
func errorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		message := err.Error()
		if message == "" {
			message = "Internal Server Error"
		}

		log.Error("request error",
			"error", message,
			"method", c.Method(),
			"url", c.OriginalURL(),
			"ip", c.IP(),
			"statusCode", code,
		)
		return envelope.Fail(c, code, message)
	}
}
