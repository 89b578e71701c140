package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIEditor calls the OpenAI images edit endpoint.
type OpenAIEditor struct {
	client openai.Client
	model  string
}

func NewOpenAIEditor(key, baseURL, model string) *OpenAIEditor {
	opts := []option.RequestOption{option.WithAPIKey(key), option.WithMaxRetries(0)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIEditor{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (e *OpenAIEditor) Provider() string { return "openai" }

func (e *OpenAIEditor) Model() string { return e.model }

// Edit sends req.Moderation as an extra form field; ImageEditParams has no
// typed field for it.
func (e *OpenAIEditor) Edit(ctx context.Context, req EditRequest) ([]byte, error) {
	params := openai.ImageEditParams{
		Image: openai.ImageEditParamsImageUnion{
			OfFile: openai.File(bytes.NewReader(req.Image), "source"+Extension(req.MimeType), req.MimeType),
		},
		Prompt: req.Prompt,
		Model:  openai.ImageModel(e.model),
	}
	if req.Moderation != "" {
		params.SetExtraFields(map[string]any{"moderation": req.Moderation})
	}

	resp, err := e.client.Images.Edit(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai image edit failed: %w", err)
	}

	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, ErrNoImage
	}

	out, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("decode openai image: %w", err)
	}
	return out, nil
}

// Extension maps an image content type to a file extension, defaulting to
// .png.
func Extension(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}
