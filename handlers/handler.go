package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/chrono-snap/imagegen"
	"github.com/krishkalaria12/chrono-snap/models"
	"github.com/krishkalaria12/chrono-snap/storage"
	"go.uber.org/zap"
)

// TransformationRecorder persists transformation history.
type TransformationRecorder interface {
	Create(ctx context.Context, t *models.Transformation) error
	Recent(ctx context.Context, limit int) ([]models.Transformation, error)
}

// Options carries the environment bindings. Editor, Store and History may
// be nil: the affected endpoints then report a configuration error (or, for
// Store during a transform, fall back to an inline image).
type Options struct {
	Editor            imagegen.Editor
	Store             storage.ObjectStore
	History           TransformationRecorder
	Logger            *zap.Logger
	MaxImageDimension int
	UpstreamTimeout   time.Duration
	Now               func() time.Time
}

type Handler struct {
	editor          imagegen.Editor
	store           storage.ObjectStore
	history         TransformationRecorder
	log             *zap.Logger
	maxDimension    int
	upstreamTimeout time.Duration
	now             func() time.Time
}

func New(opts Options) *Handler {
	h := &Handler{
		editor:          opts.Editor,
		store:           opts.Store,
		history:         opts.History,
		log:             opts.Logger,
		maxDimension:    opts.MaxImageDimension,
		upstreamTimeout: opts.UpstreamTimeout,
		now:             opts.Now,
	}
	if h.log == nil {
		h.log = zap.NewNop()
	}
	if h.maxDimension <= 0 {
		h.maxDimension = 1536
	}
	if h.now == nil {
		h.now = time.Now
	}
	return h
}

func errorResponse(c *fiber.Ctx, status int, message, details string) error {
	body := fiber.Map{"error": message}
	if details != "" {
		body["details"] = details
	}
	return c.Status(status).JSON(body)
}

func imageURL(key string) string {
	return "/api/images/" + key
}
