package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"weather-bridge/configs"
	"weather-bridge/internal/application/controller"
	"weather-bridge/internal/application/middleware"
	"weather-bridge/internal/application/schedule"
	apigw "weather-bridge/internal/domain/gateway/api"
	"weather-bridge/internal/domain/gateway/db"
	"weather-bridge/internal/domain/usecase/health"
	"weather-bridge/internal/domain/usecase/weather"
	gormdb "weather-bridge/internal/infra/database/gorm"
	"weather-bridge/internal/infra/database/sqlc"
	"weather-bridge/pkg/log"
	"weather-bridge/pkg/metrics"
	"weather-bridge/pkg/msg"
	"weather-bridge/pkg/redis"
)

func main() {
	log.Info(msg.GetMessage("app.start"))
	metrics.Init()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	api := e.Group(configs.Env.ContextPath)

	// Init store gateways, driver selected by configuration
	var locationGateway db.LocationGateway
	var measurementGateway db.MeasurementGateway
	var healthGateway db.HealthDBGateway

	switch configs.Env.DBDriver {
	case "gorm":
		gormDB, err := gormdb.Connect()
		if err != nil {
			log.Fatalf("Fail to connect store: %v", err)
		}
		locationGateway = db.NewGormLocationGateway(gormDB)
		measurementGateway = db.NewGormMeasurementGateway(gormDB)
		healthGateway = db.NewGormHealthDBGateway(gormDB)
	default:
		sqlDB, err := sqlc.Connect()
		if err != nil {
			log.Fatalf("Fail to connect store: %v", err)
		}
		locationGateway = db.NewSQLCLocationGateway(sqlDB)
		measurementGateway = db.NewSQLCMeasurementGateway(sqlDB)
		healthGateway = db.NewSQLCHealthDBGateway(sqlDB)
	}
	log.Info(msg.GetMessage("db.connected", configs.Env.DBDriver))

	// Init API gateways
	forecastGateway := apigw.NewForecastGateway(
		configs.Env.WeatherAPIBaseURL,
		configs.Env.WeatherAPIParams,
		configs.Env.WeatherAPITimeout,
	)
	bridgeClient := apigw.NewBridgeClient(configs.Env.BridgeEndpointURL, configs.Env.WeatherAPITimeout)

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(healthGateway)
	weatherUseCase := weather.NewWeatherUseCase(forecastGateway, bridgeClient, locationGateway, measurementGateway)

	// Init Controller
	healthController := controller.NewHealthController(api, healthUseCase)
	weatherController := controller.NewWeatherController(api, weatherUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	weatherController.InitWeatherRoutes()
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Init redis (optional, guards overlapping batch triggers)
	var redisClient *redis.Client
	if configs.Env.RedisEnabled {
		redisClient = redis.NewClient(redis.NewConfig().
			WithHost(configs.Env.RedisHost).
			WithPort(configs.Env.RedisPort).
			WithPassword(configs.Env.RedisPassword).
			WithDatabase(configs.Env.RedisDatabase))
		defer redisClient.Close()
	}

	// Init Schedule
	bridgeScheduler := schedule.NewBridgeScheduler(
		weatherUseCase,
		redisClient,
		configs.Env.BridgeCron,
		configs.Env.LockTTLSeconds,
		configs.Env.LockRefreshSeconds,
	)
	bridgeScheduler.InitBridgeScheduleTasks(ctx)
	log.Info(msg.GetMessage("bridge.schedule.start", configs.Env.BridgeCron))

	if configs.Env.LoopEnabled {
		syncLoop := schedule.NewSyncLoop(weatherUseCase, configs.Env.LoopInterval)
		go syncLoop.Run(ctx)
		log.Info(msg.GetMessage("bridge.loop.start", configs.Env.LoopInterval.String()))
	}

	// Start Routes
	log.Info(msg.GetMessage("app.started"))
	e.Logger.Fatal(e.Start(":" + configs.Env.ServerPort))
}
