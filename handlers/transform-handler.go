package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/chrono-snap/imagegen"
	"github.com/krishkalaria12/chrono-snap/models"
	"go.uber.org/zap"
)

const defaultContentType = "image/png"

// imageKey names a stored result. The extension follows the content type so
// a key never disagrees with the type it is served as.
func (h *Handler) imageKey(eraID, contentType string) string {
	return fmt.Sprintf("timetravel-%s-%d%s", eraID, h.now().UnixNano(), imagegen.Extension(contentType))
}

func sniffContentType(data []byte) string {
	ct := http.DetectContentType(data)
	if strings.HasPrefix(ct, "image/") {
		return ct
	}
	return defaultContentType
}

// TimeTravel restages the posted photo in the requested era. The result is
// stored when a store is bound; otherwise, or when the write fails, it is
// returned inline as a data URI.
func (h *Handler) TimeTravel(c *fiber.Ctx) error {
	if h.editor == nil {
		h.log.Error("time travel requested without image service credential")
		return errorResponse(c, fiber.StatusInternalServerError,
			"Configuration error", "image service API key is not configured")
	}

	var req models.TransformRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}

	if req.TimePeriod == "" || req.ImageData == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Missing required fields: timeperiod and imageData", "")
	}

	era, ok := models.LookupEra(req.TimePeriod)
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid time period",
			fmt.Sprintf("unknown time period %q", req.TimePeriod))
	}

	raw, err := imagegen.DecodeImageData(req.ImageData)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid image data", err.Error())
	}

	source, mimeType, err := imagegen.PrepareSource(raw, h.maxDimension)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid image data", err.Error())
	}

	log := h.log.With(zap.String("era", era.ID), zap.String("provider", h.editor.Provider()))

	output, err := h.edit(c.UserContext(), imagegen.EditRequest{
		Image:      source,
		MimeType:   mimeType,
		Prompt:     imagegen.Instruction(era),
		Moderation: imagegen.ModerationLow,
	})
	if err != nil {
		log.Error("image service call failed", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to transform image", err.Error())
	}

	contentType := sniffContentType(output)
	resp := models.TransformResponse{
		Success:    true,
		TimePeriod: era.ID,
	}

	if h.store != nil {
		key := h.imageKey(era.ID, contentType)
		if _, err := h.store.Put(c.UserContext(), key, output, contentType); err != nil {
			log.Warn("failed to store transformed image, returning it inline",
				zap.String("key", key), zap.Error(err))
		} else {
			resp.Image = imageURL(key)
			resp.Stored = true
			resp.Filename = key
		}
	}

	if !resp.Stored {
		resp.Image = "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(output)
	}

	h.record(c.UserContext(), &models.Transformation{
		EraID:       era.ID,
		Filename:    resp.Filename,
		Stored:      resp.Stored,
		ContentType: contentType,
		Size:        int64(len(output)),
		Provider:    h.editor.Provider(),
		Model:       h.editor.Model(),
	})

	log.Info("time travel complete", zap.Bool("stored", resp.Stored), zap.Int("bytes", len(output)))
	return c.JSON(resp)
}

func (h *Handler) edit(ctx context.Context, req imagegen.EditRequest) ([]byte, error) {
	if h.upstreamTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.upstreamTimeout)
		defer cancel()
	}

	output, err := h.editor.Edit(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(output) == 0 {
		return nil, imagegen.ErrNoImage
	}
	return output, nil
}

func (h *Handler) record(ctx context.Context, t *models.Transformation) {
	if h.history == nil {
		return
	}
	if err := h.history.Create(ctx, t); err != nil {
		h.log.Warn("failed to record transformation", zap.String("era", t.EraID), zap.Error(err))
	}
}
