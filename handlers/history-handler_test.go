package handler_test

import (
	"errors"
	"fmt"
	"image/color"
	"testing"

	"github.com/gofiber/fiber/v2"
	handler "github.com/krishkalaria12/chrono-snap/handlers"
	"github.com/krishkalaria12/chrono-snap/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTransformations(t *testing.T) {
	history := &fakeHistory{}
	app := newTestApp(handler.Options{Editor: &fakeEditor{output: testPNG(t, 2, 2, color.White)}, History: history})

	for _, era := range []string{"medieval", "future", "wild-west"} {
		resp, _ := postJSON(t, app, "/api/time-travel", transformBody(t, era))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, body := get(t, app, "/api/transformations?limit=2")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Transformations []models.Transformation `json:"transformations"`
		Count           int                     `json:"count"`
	}
	decode(t, body, &out)
	assert.Equal(t, 2, out.Count)
	require.Len(t, out.Transformations, 2)
	assert.Equal(t, "wild-west", out.Transformations[0].EraID)
	assert.Equal(t, "future", out.Transformations[1].EraID)
}

func TestListTransformationsEmpty(t *testing.T) {
	app := newTestApp(handler.Options{History: &fakeHistory{}})

	resp, body := get(t, app, "/api/transformations")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"transformations": [], "count": 0}`, string(body))
}

func TestListTransformationsInvalidLimit(t *testing.T) {
	app := newTestApp(handler.Options{History: &fakeHistory{}})

	for _, limit := range []string{"abc", "0", "-3", "101"} {
		resp, _ := get(t, app, fmt.Sprintf("/api/transformations?limit=%s", limit))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, limit)
	}
}

func TestListTransformationsNotConfigured(t *testing.T) {
	app := newTestApp(handler.Options{})

	resp, _ := get(t, app, "/api/transformations")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestListTransformationsFailure(t *testing.T) {
	app := newTestApp(handler.Options{History: &fakeHistory{err: errors.New("db down")}})

	resp, _ := get(t, app, "/api/transformations")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
