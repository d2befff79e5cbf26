package controller

import (
	"time"

	"smartfinance-ai-be/internal/dto"
	"smartfinance-ai-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ServiceName    = "SmartFinance AI Support API"
	ServiceVersion = "1.0.0"
)

// HealthInfo is what the health endpoint reports about the running backend
type HealthInfo struct {
	Environment string
	MockMode    bool
	AIProvider  string
}

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	RegisterRootRoutes(r fiber.Router)
	Info(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	info     HealthInfo
	gatherer prometheus.Gatherer
}

func NewHealthController(info HealthInfo, gatherer prometheus.Gatherer) IHealthController {
	return &healthController{info: info, gatherer: gatherer}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

func (c *healthController) RegisterRootRoutes(r fiber.Router) {
	r.Get("/", c.Info)
	r.Get("/health", c.Health)
	r.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})))
}

func (c *healthController) Info(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.InfoResponse{
		Service: ServiceName,
		Version: ServiceVersion,
		Status:  "running",
	})
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	mode := dto.ModeLive
	if c.info.MockMode {
		mode = dto.ModeDemo
	}

	return ctx.JSON(serverutils.SuccessResponse("Service healthy", dto.HealthResponse{
		Status:      "healthy",
		Service:     "smartfinance-ai-be",
		Environment: c.info.Environment,
		Mode:        mode,
		AIProvider:  c.info.AIProvider,
		Timestamp:   time.Now().UTC(),
	}))
}
