package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-bridge/internal/domain/usecase/health"
)

type HealthController struct {
	api     *echo.Group
	useCase health.UseCase
}

func NewHealthController(api *echo.Group, useCase health.UseCase) *HealthController {
	return &HealthController{api: api, useCase: useCase}
}

// InitHealthRoutes initializes health check routes
func (controller *HealthController) InitHealthRoutes() {
	controller.api.GET("/health", controller.CheckLiveness())
	controller.api.GET("/health/details", controller.CheckHealth())
}

// CheckLiveness answers a fixed body with no dependency checks. External
// consumers poll this route, so it must stay cheap and always succeed.
func (controller *HealthController) CheckLiveness() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
}

func (controller *HealthController) CheckHealth() echo.HandlerFunc {
	return func(c echo.Context) error {
		healthResponse := controller.useCase.CheckHealth()

		return c.JSON(http.StatusOK, healthResponse)
	}
}
