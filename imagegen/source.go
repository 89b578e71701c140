package imagegen

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"strings"

	"github.com/disintegration/gift"
)

const (
	MaxSourceSide   = 6000
	MaxSourcePixels = 24_000_000
)

// DecodeImageData strips an optional data URI header and decodes the
// base64 payload.
func DecodeImageData(data string) ([]byte, error) {
	payload := strings.TrimSpace(data)
	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, ",")
		if idx < 0 {
			return nil, fmt.Errorf("%w: malformed data URI", ErrInvalidImage)
		}
		payload = payload[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
		}
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}
	return raw, nil
}

// PrepareSource validates that raw is a decodable image. Images with a side
// longer than maxDimension are downscaled and re-encoded as PNG; anything
// smaller is returned untouched. The header is checked against
// MaxSourceSide and MaxSourcePixels before any pixel buffer is allocated.
func PrepareSource(raw []byte, maxDimension int) ([]byte, string, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 ||
		cfg.Width > MaxSourceSide || cfg.Height > MaxSourceSide ||
		int64(cfg.Width)*int64(cfg.Height) > MaxSourcePixels {
		return nil, "", fmt.Errorf("%w: image too large (%dx%d, max %dx%d and %d pixels)",
			ErrInvalidImage, cfg.Width, cfg.Height, MaxSourceSide, MaxSourceSide, MaxSourcePixels)
	}

	if cfg.Width <= maxDimension && cfg.Height <= maxDimension {
		return raw, "image/" + format, nil
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	g := gift.New(gift.ResizeToFit(maxDimension, maxDimension, gift.LanczosResampling))
	dst := image.NewRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, "", fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), "image/png", nil
}
