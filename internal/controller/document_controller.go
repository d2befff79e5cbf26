package controller

import (
	"smartfinance-ai-be/internal/dto"
	"smartfinance-ai-be/internal/pkg/serverutils"
	"smartfinance-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Ingest(ctx *fiber.Ctx) error
}

type documentController struct {
	service service.IIngestionService
}

func NewDocumentController(service service.IIngestionService) IDocumentController {
	return &documentController{service: service}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	r.Post("/documents", c.Ingest)
}

func (c *documentController) Ingest(ctx *fiber.Ctx) error {
	var req dto.IngestDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Enqueue(ctx.UserContext(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	resp := serverutils.SuccessResponse("Document queued for ingestion", res)
	resp.Code = fiber.StatusAccepted
	return ctx.Status(fiber.StatusAccepted).JSON(resp)
}
