package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/chrono-snap/models"
	"github.com/krishkalaria12/chrono-snap/storage"
	"go.uber.org/zap"
)

const imageCacheControl = "public, max-age=31536000"

func (h *Handler) GetImage(c *fiber.Ctx) error {
	if h.store == nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Storage not configured", "")
	}

	key := c.Params("filename")
	if key == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Filename is required", "")
	}

	obj, err := h.store.Get(c.UserContext(), key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "Image not found", "")
		}
		h.log.Error("failed to fetch image", zap.String("key", key), zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch image", err.Error())
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, imageCacheControl)
	if obj.ETag != "" {
		c.Set(fiber.HeaderETag, obj.ETag)
	}

	if c.Fresh() {
		_ = obj.Body.Close()
		return c.SendStatus(fiber.StatusNotModified)
	}

	if obj.Size > 0 {
		return c.SendStream(obj.Body, int(obj.Size))
	}
	return c.SendStream(obj.Body)
}

func (h *Handler) ListImages(c *fiber.Ctx) error {
	if h.store == nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Storage not configured", "")
	}

	infos, err := h.store.List(c.UserContext())
	if err != nil {
		h.log.Error("failed to list images", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to list images", err.Error())
	}

	images := make([]models.ImageListing, 0, len(infos))
	for _, info := range infos {
		images = append(images, models.ImageListing{
			Key:      info.Key,
			URL:      imageURL(info.Key),
			Size:     info.Size,
			Uploaded: info.Uploaded,
		})
	}

	return c.JSON(fiber.Map{
		"images": images,
		"count":  len(images),
	})
}
