package controller

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"smartfinance-ai-be/internal/dto"
	"smartfinance-ai-be/internal/pkg/logger"
	"smartfinance-ai-be/internal/pkg/serverutils"
	"smartfinance-ai-be/internal/service"
	"smartfinance-ai-be/pkg/ai/stream"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	Stream(ctx *fiber.Ctx) error
	ClearSessionCache(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
	logger  logger.ILogger
}

func NewChatController(service service.IChatService, log logger.ILogger) IChatController {
	return &chatController{service: service, logger: log}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
	r.Post("/chat/stream", c.Stream)
	r.Delete("/sessions/:id/cache", c.ClearSessionCache)
}

func (c *chatController) parse(ctx *fiber.Ctx) (*dto.ChatRequest, error) {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Normalize(); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	req, err := c.parse(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Chat(ctx.UserContext(), req)
	if err != nil {
		if errors.Is(err, dto.ErrEmptyMessage) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.ErrorResponse(503, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success chat", res))
}

// Stream answers as server-sent events. The answer is produced before the
// body starts so a bad request still gets a JSON 400.
func (c *chatController) Stream(ctx *fiber.Ctx) error {
	req, err := c.parse(ctx)
	if err != nil {
		return err
	}

	sessionID, events := c.service.Stream(ctx.UserContext(), req)

	ctx.Set(fiber.HeaderContentType, "text/event-stream")
	ctx.Set(fiber.HeaderCacheControl, "no-cache")
	ctx.Set(fiber.HeaderConnection, "keep-alive")
	ctx.Set("X-Session-Id", sessionID)

	ctx.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		err := c.service.Emit(context.Background(), events, func(ev stream.Event) error {
			data, err := json.Marshal(ev)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
				return err
			}
			return w.Flush()
		})
		if err != nil {
			c.logger.Warn("CHAT", "Stream interrupted", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}
	})

	return nil
}

func (c *chatController) ClearSessionCache(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("id")
	if sessionID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "session id is required"))
	}

	if err := c.service.ClearSessionCache(ctx.UserContext(), sessionID); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Session cache cleared", dto.ClearSessionCacheResponse{
		SessionID: sessionID,
		Cleared:   true,
	}))
}
