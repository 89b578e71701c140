package handler_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	handler "github.com/krishkalaria12/chrono-snap/handlers"
	"github.com/krishkalaria12/chrono-snap/imagegen"
	"github.com/krishkalaria12/chrono-snap/models"
	"github.com/krishkalaria12/chrono-snap/router"
	"github.com/krishkalaria12/chrono-snap/storage"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEditor struct {
	mu     sync.Mutex
	output []byte
	err    error
	reqs   []imagegen.EditRequest
}

func (e *fakeEditor) Edit(_ context.Context, req imagegen.EditRequest) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reqs = append(e.reqs, req)
	if e.err != nil {
		return nil, e.err
	}
	return e.output, nil
}

func (e *fakeEditor) Provider() string { return "fake" }

func (e *fakeEditor) Model() string { return "fake-image-1" }

// brokenStore fails every call.
type brokenStore struct{}

var errStoreDown = errors.New("bucket unreachable")

func (brokenStore) Put(context.Context, string, []byte, string) (storage.ObjectInfo, error) {
	return storage.ObjectInfo{}, errStoreDown
}

func (brokenStore) Get(context.Context, string) (*storage.Object, error) {
	return nil, errStoreDown
}

func (brokenStore) List(context.Context) ([]storage.ObjectInfo, error) {
	return nil, errStoreDown
}

type fakeHistory struct {
	mu   sync.Mutex
	rows []models.Transformation
	err  error
}

func (f *fakeHistory) Create(_ context.Context, t *models.Transformation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	t.ID = uint(len(f.rows) + 1)
	f.rows = append(f.rows, *t)
	return nil
}

func (f *fakeHistory) Recent(_ context.Context, limit int) ([]models.Transformation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Transformation
	for i := len(f.rows) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.rows[i])
	}
	return out, nil
}

func testPNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// steppingClock returns strictly increasing times so generated keys differ.
func steppingClock() func() time.Time {
	var mu sync.Mutex
	now := time.Unix(1700000000, 0)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Millisecond)
		return now
	}
}

func newTestApp(opts handler.Options) *fiber.App {
	if opts.Now == nil {
		opts.Now = steppingClock()
	}
	app := router.NewApp(20)
	router.SetupRoutes(app, handler.New(opts), zap.NewNop())
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, body
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) (*http.Response, []byte) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return do(t, app, req)
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, []byte) {
	t.Helper()
	return do(t, app, httptest.NewRequest(http.MethodGet, path, nil))
}

func decode(t *testing.T, body []byte, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body, v), string(body))
}

func transformBody(t *testing.T, era string) map[string]string {
	return map[string]string{
		"timeperiod": era,
		"imageData":  "data:image/png;base64," + base64.StdEncoding.EncodeToString(testPNG(t, 8, 8, color.White)),
	}
}

func decodeConfig(data []byte) (image.Config, string, error) {
	return image.DecodeConfig(bytes.NewReader(data))
}
