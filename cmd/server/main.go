package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/moodlens/emotion-api/internal/config"
	"github.com/moodlens/emotion-api/internal/handlers"
	"github.com/moodlens/emotion-api/internal/model"
	"github.com/moodlens/emotion-api/internal/storage"
)

func main() {
	cfg := config.Load()

	if _, err := os.Stat(cfg.ModelPath); err != nil {
		log.Fatalf("Model file not found at %s. Ensure the path is correct.", cfg.ModelPath)
	}

	classifier, err := model.NewONNXClassifier(cfg.ModelPath, cfg.MetadataPath)
	if err != nil {
		log.Fatalf("Failed to load model: %v", err)
	}
	defer classifier.Close()
	log.Printf("Model loaded: %s", cfg.ModelPath)

	store := storage.New(cfg.UploadDir)
	if err := store.EnsureDir(); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	labels := classifier.Labels()
	log.Printf("Classes: %v", labels)

	handler := handlers.NewHandler(classifier, store, labels, cfg.ImageSize)

	app := fiber.New(fiber.Config{
		AppName:      "Emotion Classification API",
		BodyLimit:    int(cfg.MaxFileSize),
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Get("/health", handler.Health)
	app.Post("/predict", handler.Predict)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Server starting on %s", addr)
	log.Printf("Upload test: curl -X POST -F \"image=@face.jpg\" http://localhost:%s/predict", cfg.Port)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
