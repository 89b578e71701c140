package imagegen

import (
	"context"
	"errors"
	"fmt"

	"github.com/krishkalaria12/chrono-snap/models"
)

const ModerationLow = "low"

var (
	ErrNoImage      = errors.New("no image data in response")
	ErrInvalidImage = errors.New("invalid image data")
)

// EditRequest is one image edit call against the upstream service.
type EditRequest struct {
	Image      []byte
	MimeType   string
	Prompt     string
	Moderation string
}

// Editor turns a source photo plus an instruction into a new image.
type Editor interface {
	Edit(ctx context.Context, req EditRequest) ([]byte, error)
	Provider() string
	Model() string
}

// Instruction builds the natural language edit instruction for an era.
func Instruction(era models.Era) string {
	return fmt.Sprintf(`Transform this photo so the person appears to be living in %s.

Restage them in %s.

- Keep the person's face, identity, expression and pose recognizable
- Replace clothing, hairstyle, background and lighting to match the period
- Make the result look like an authentic image from that time
- Safe, appropriate content only`, era.Name, era.Prompt)
}
