package imagegen

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiEditor edits images through the Gemini image model by sending the
// photo and the instruction as parts of one user turn.
type GeminiEditor struct {
	client *genai.Client
	model  string
}

func NewGeminiEditor(ctx context.Context, key, baseURL, model string) (*GeminiEditor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      key,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiEditor{client: client, model: model}, nil
}

func (e *GeminiEditor) Provider() string { return "gemini" }

func (e *GeminiEditor) Model() string { return e.model }

func safetySettings(moderation string) []*genai.SafetySetting {
	threshold := genai.HarmBlockThresholdBlockMediumAndAbove
	if moderation == ModerationLow {
		threshold = genai.HarmBlockThresholdBlockOnlyHigh
	}

	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}

	settings := make([]*genai.SafetySetting, 0, len(categories))
	for _, category := range categories {
		settings = append(settings, &genai.SafetySetting{Category: category, Threshold: threshold})
	}
	return settings
}

func (e *GeminiEditor) Edit(ctx context.Context, req EditRequest) ([]byte, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(req.Prompt),
			genai.NewPartFromBytes(req.Image, req.MimeType),
		}, genai.RoleUser),
	}

	result, err := e.client.Models.GenerateContent(ctx, e.model, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
		SafetySettings:     safetySettings(req.Moderation),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini image edit failed: %w", err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return nil, ErrNoImage
	}

	for _, part := range result.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, nil
		}
	}
	return nil, ErrNoImage
}
