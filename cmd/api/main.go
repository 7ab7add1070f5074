package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"github.com/wichananm65/user-account-backend/internal/apperror"
	"github.com/wichananm65/user-account-backend/internal/config"
	"github.com/wichananm65/user-account-backend/internal/store"
	"github.com/wichananm65/user-account-backend/internal/user"
)

// main wires dependencies (dependency injection) and starts the HTTP server.
func main() {
	cfg := config.Load()
	log := newLogger(cfg.LogLevel)

	st := store.New(cfg.MongoURI, cfg.MongoDB)
	if _, err := st.Connect(context.Background()); err != nil {
		log.Fatalf("mongo connect: %v", err)
	}

	userRepo := user.NewMongoRepository(st)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	app := fiber.New(fiber.Config{
		BodyLimit:    32 * 1024 * 1024,
		ErrorHandler: apperror.Handler(log),
	})
	setupCORS(app)
	app.Use(requestLogger(log))

	// squash the favicon.ico errors when querying from a browser
	app.Get("/favicon.ico", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	userHandler.RegisterRoutes(app)

	log.Infof("user app listening on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func requestLogger(log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.WithFields(logrus.Fields{
			"method":   c.Method(),
			"url":      c.OriginalURL(),
			"status":   c.Response().StatusCode(),
			"duration": time.Since(start),
		}).Info("request")
		return err
	}
}
