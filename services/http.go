package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	log "github.com/sirupsen/logrus"

	_ "github.com/agri-quest/agriquest_api/docs"
	"github.com/agri-quest/agriquest_api/services/handlers"
	"github.com/agri-quest/agriquest_api/shared"
)

// HttpService is the API surface. It must be the last service in the boot
// order: Start blocks on the listener.
type HttpService struct {
	context.DefaultService

	farmerSvc     *FarmerService
	challengeSvc  *ChallengeService
	missionSvc    *MissionService
	cropScanSvc   *CropScanService
	rateLimitSvc  *RateLimitService
	monitoringSvc *MonitoringService
	sqlSvc        *SqlService
	geminiSvc     *GeminiService

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
	svc.farmerSvc = svc.Service(FARMER_SVC).(*FarmerService)
	svc.challengeSvc = svc.Service(CHALLENGE_SVC).(*ChallengeService)
	svc.missionSvc = svc.Service(MISSION_SVC).(*MissionService)
	svc.cropScanSvc = svc.Service(CROP_SCAN_SVC).(*CropScanService)
	svc.rateLimitSvc = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)
	svc.sqlSvc = svc.Service(SQL_SVC).(*SqlService)
	svc.geminiSvc = svc.Service(GEMINI_SVC).(*GeminiService)

	app := fiber.New(fiber.Config{
		BodyLimit:    15 * 1024 * 1024,
		ErrorHandler: svc.handleError,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(MonitoringMiddleware(svc.monitoringSvc))
	app.Use(svc.rateLimitSvc.Middleware(LimitGeneral))

	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", swagger.HandlerDefault)

	svc.registerRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return shared.ResponseJSON(c, http.StatusNotFound, "Page not found", nil)
	})

	svc.server = app

	log.Infof("API listening on :%v", svc.port)
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) registerRoutes(app *fiber.App) {
	farmerHandler := handlers.NewFarmerHandler(svc.farmerSvc)
	challengeHandler := handlers.NewChallengeHandler(svc.challengeSvc)
	missionHandler := handlers.NewMissionHandler(svc.missionSvc)
	scanHandler := handlers.NewScanHandler(svc.cropScanSvc)
	adminHandler := handlers.NewAdminHandler(svc.challengeSvc, svc.missionSvc)
	healthHandler := handlers.NewHealthHandler(svc.sqlSvc.Ping, svc.geminiSvc.IsAvailable)

	v1 := app.Group("/api/v1")

	v1.Get("/health", healthHandler.Health)
	v1.Get("/health/ready", healthHandler.Ready)
	v1.Get("/health/info", healthHandler.Info)

	farmers := v1.Group("/farmers")
	farmers.Get("/demo", farmerHandler.GetDemoFarmer)
	farmers.Get("/leaderboard", farmerHandler.GetLeaderboard)
	farmers.Get("/regions", farmerHandler.GetRegions)
	farmers.Get("/regions/:region/villages", farmerHandler.GetVillages)
	farmers.Get("/:id", farmerHandler.GetFarmer)
	farmers.Put("/:id", farmerHandler.UpdateFarmer)
	farmers.Get("/:id/progress", farmerHandler.GetFarmerProgress)

	challenges := v1.Group("/challenges")
	challenges.Get("/", challengeHandler.GetChallenges)
	challenges.Get("/completions/farmer/:farmerId", challengeHandler.GetFarmerCompletions)
	challenges.Get("/completions/:id", challengeHandler.GetCompletion)
	challenges.Get("/:id", challengeHandler.GetChallenge)
	challenges.Post("/:id/complete", svc.rateLimitSvc.Middleware(LimitUpload), challengeHandler.CompleteChallenge)

	missions := v1.Group("/missions")
	missions.Get("/", missionHandler.GetMissions)
	missions.Get("/stats", missionHandler.GetMissionStats)
	missions.Get("/:id", missionHandler.GetMission)
	missions.Post("/:id/complete", missionHandler.CompleteMission)

	scans := v1.Group("/scans")
	scans.Get("/", scanHandler.GetCropScans)
	scans.Post("/analyze", svc.rateLimitSvc.Middleware(LimitAIScan), scanHandler.AnalyzeCrop)
	scans.Get("/:id", scanHandler.GetCropScan)
	scans.Delete("/:id", scanHandler.DeleteCropScan)

	admin := v1.Group("/admin")
	admin.Post("/challenges", adminHandler.CreateChallenge)
	admin.Post("/missions", adminHandler.CreateMission)
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")
	return shared.ResponseJSON(c, http.StatusOK, "Success", "pong")
}

// handleError maps service errors onto the response envelope. Anything that
// is not an AppError is a 500 with the detail kept out of the body.
func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	log.WithError(err).Error("unhandled error")
	return shared.ResponseInternalError(c, err)
}
