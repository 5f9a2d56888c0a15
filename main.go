package main

import (
	"context"
	"fmt"
	"hr-onboarding-backend/config"
	apiv1 "hr-onboarding-backend/controllers/v1"
	"hr-onboarding-backend/db"
	"hr-onboarding-backend/fiberlog"
	"hr-onboarding-backend/initializers"
	"hr-onboarding-backend/lib/metrics"
	"hr-onboarding-backend/lib/ws"
	"hr-onboarding-backend/middleware"
	apimodels "hr-onboarding-backend/models/api"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: config.Conf.App.BodyLimit,
	})
	app.Use(fiberRecover.New())
	app.Use(fiberlog.New(*initializers.LoggerConfig))

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Instance.Handler()))
	app.Get("/health", func(ctx *fiber.Ctx) error {
		if err := db.PingDB(); err != nil {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
	})

	//api
	apiV1 := fiber.New()
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiV1.Use(middleware.Metrics(metrics.Instance))
	apiV1.Use(middleware.WithBodyLimit(int64(config.Conf.App.BodyLimit)))
	if config.Conf.Notify.ErrorWebhook != "" {
		apiV1.Use(middleware.ErrNotify(config.Conf.Notify.ErrorWebhook))
	}
	apiv1.InitAuthApiRouters(apiV1)

	//files
	files := fiber.New()
	apiV1.Mount("/files", files)
	apiv1.InitFilesApiRouters(files)

	//space
	space := fiber.New()
	apiV1.Mount("/space", space)
	space.Use(middleware.AuthorizationRequired())
	space.Use(middleware.StaffRequired())
	apiv1.InitSpaceUserRouters(space)
	apiv1.InitVacancyApiRouters(space)
	apiv1.InitApplicantApiRouters(space)

	//onboarding
	onboarding := fiber.New()
	apiV1.Mount("/onboarding", onboarding)
	onboarding.Use(middleware.AuthorizationRequired())
	onboarding.Use(middleware.CandidateRequired())
	apiv1.InitOnboardingApiRouters(onboarding)

	//hr live events
	wsApp := fiber.New()
	app.Mount("/ws", wsApp)
	wsApp.Use(middleware.AuthorizationRequired())
	wsApp.Use(middleware.StaffRequired())
	ws.InitWs(wsApp)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
