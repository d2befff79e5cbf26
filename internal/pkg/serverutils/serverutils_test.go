package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name       string `json:"name" validate:"required"`
	Collection string `json:"collection" validate:"omitempty,oneof=a b"`
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     sampleRequest
		wantErr string
	}{
		{name: "valid", req: sampleRequest{Name: "x", Collection: "a"}},
		{name: "missing required", req: sampleRequest{}, wantErr: "name is required"},
		{name: "oneof", req: sampleRequest{Name: "x", Collection: "c"}, wantErr: "collection must be one of [a b]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			var fiberErr *fiber.Error
			require.ErrorAs(t, err, &fiberErr)
			assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
			assert.Equal(t, tt.wantErr, fiberErr.Message)
		})
	}
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/bad", func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad input")
	})
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return errors.New("boom")
	})
	app.Get("/ok", func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse("fine", map[string]string{"k": "v"}))
	})

	tests := []struct {
		path        string
		wantCode    int
		wantSuccess bool
		wantMessage string
	}{
		{path: "/bad", wantCode: 400, wantMessage: "bad input"},
		{path: "/boom", wantCode: 500, wantMessage: "boom"},
		{path: "/ok", wantCode: 200, wantSuccess: true, wantMessage: "fine"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)

			body, _ := io.ReadAll(resp.Body)
			var envelope BaseResponse[any]
			require.NoError(t, json.Unmarshal(body, &envelope))
			assert.Equal(t, tt.wantSuccess, envelope.Success)
			assert.Equal(t, tt.wantCode, envelope.Code)
			assert.Equal(t, tt.wantMessage, envelope.Message)
		})
	}
}
