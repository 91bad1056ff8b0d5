package services

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/gofiber/swagger"

	docs "github.com/emberholm-legacy/ember_api/docs"
	"github.com/emberholm-legacy/ember_api/services/handlers"
	"github.com/emberholm-legacy/ember_api/shared"
)

type HttpService struct {
	context.DefaultService

	gameSvc      *GameService
	metadataSvc  *MetadataService
	rateLimitSvc *RateLimitService
	monitorSvc   *MonitoringService

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.gameSvc = svc.Service(GAME_SVC).(*GameService)
	svc.metadataSvc = svc.Service(METADATA_SVC).(*MetadataService)
	svc.rateLimitSvc, _ = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	svc.monitorSvc, _ = svc.Service(MONITORING_SVC).(*MonitoringService)

	docs.SwaggerInfo.BasePath = ""

	app := fiber.New(fiber.Config{
		AppName:      "ember_api",
		ErrorHandler: svc.handleError,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	if svc.monitorSvc != nil {
		app.Use(MonitoringMiddleware(svc.monitorSvc))
	}

	gameHandler := handlers.NewGameHandler(svc.gameSvc)
	metadataHandler := handlers.NewMetadataHandler(svc.metadataSvc)

	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", fiberSwagger.HandlerDefault)

	v1 := app.Group("/api/v1")
	if svc.rateLimitSvc != nil {
		v1.Use(svc.rateLimitSvc.IPRateLimit())
	}

	v1.Get("/ping", svc.ping)
	v1.Get("/stats", gameHandler.GetStats)
	v1.Get("/guilds", gameHandler.GetGuilds)
	v1.Get("/missions", gameHandler.GetMissions)
	v1.Get("/player/:wallet", gameHandler.GetPlayer)
	v1.Get("/metadata/:tokenId", metadataHandler.GetTokenMetadata)

	if svc.rateLimitSvc != nil {
		v1.Post("/player/spend_xp_for_energy", svc.rateLimitSvc.RateLimit("spend_xp"), gameHandler.SpendXPForEnergy)
		v1.Post("/mission/execute", svc.rateLimitSvc.RateLimit("mission_execute"), gameHandler.ExecuteMission)
	} else {
		v1.Post("/player/spend_xp_for_energy", gameHandler.SpendXPForEnergy)
		v1.Post("/mission/execute", gameHandler.ExecuteMission)
	}

	app.Use(func(c *fiber.Ctx) error {
		return shared.ResponseJSON(c, fiber.StatusNotFound, "page not found", nil)
	})

	svc.server = app

	return svc.server.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	if fiberErr, ok := err.(*fiber.Error); ok {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	return shared.ResponseInternalError(c, err)
}
