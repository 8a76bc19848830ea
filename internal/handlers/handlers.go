package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/moodlens/emotion-api/internal/imaging"
	"github.com/moodlens/emotion-api/internal/model"
	"github.com/moodlens/emotion-api/internal/storage"
)

type Handler struct {
	classifier model.Classifier
	storage    *storage.Storage
	labels     model.Labels
	imageSize  int
}

func NewHandler(classifier model.Classifier, store *storage.Storage, labels model.Labels, imageSize int) *Handler {
	return &Handler{
		classifier: classifier,
		storage:    store,
		labels:     labels,
		imageSize:  imageSize,
	}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy"})
}

// Predict runs the upload pipeline: validate, persist to scratch, resize in
// place, classify, clean up, respond. The scratch file is removed on every
// exit path after the save succeeds.
func (h *Handler) Predict(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No image file provided",
		})
	}

	if !storage.AllowedExtension(file.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid file format. Allowed formats: png, jpg, jpeg",
		})
	}

	path, err := h.storage.Save(file)
	if err != nil {
		return h.predictionError(c, err)
	}
	defer func() {
		if err := h.storage.Remove(path); err != nil {
			log.Printf("Failed to remove scratch file %s: %v", path, err)
		}
	}()

	log.Printf("Image saved at: %s", path)

	if err := imaging.ResizeFile(path, h.imageSize); err != nil {
		return h.predictionError(c, err)
	}

	result, err := h.classifier.Predict(path)
	if err != nil {
		return h.predictionError(c, err)
	}

	if result == nil || len(result.Probs) == 0 {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to process the image",
		})
	}

	return c.JSON(fiber.Map{
		"predictions": h.labels.Format(result.Probs),
	})
}

func (h *Handler) predictionError(c *fiber.Ctx, err error) error {
	log.Printf("Error during prediction: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": fmt.Sprintf("Error during prediction: %v", err),
	})
}
