package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-bridge/internal/domain/model"
	"weather-bridge/internal/domain/usecase/weather"
	"weather-bridge/pkg/util/numberutils"
)

// StatusClientClosedRequest reports a request that the caller abandoned
// before dispatch.
const StatusClientClosedRequest = 499

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather/latest", controller.GetLatest)
	controller.api.GET("/locations", controller.ListLocations)
}

// GetLatest godoc
// @Summary Get the latest normalized weather sample
// @Description Fetch the freshest normalized weather sample for the given coordinates from the upstream provider
// @Tags weather
// @Accept json
// @Produce json
// @Param lat query number true "Latitude in [-90,90]"
// @Param lon query number true "Longitude in [-180,180]"
// @Success 200 {object} model.LatestWeather "Normalized weather sample"
// @Failure 400 {object} model.ProblemDetail "Coordinate out of range or malformed"
// @Failure 502 {object} model.ProblemDetail "Upstream provider failure"
// @Router /weather/latest [get]
func (controller *WeatherController) GetLatest(c echo.Context) error {
	lat, err := numberutils.ToFloat64WithError(c.QueryParam("lat"))
	if err != nil || lat < -90 || lat > 90 {
		return c.JSON(http.StatusBadRequest, model.NewProblemDetail(
			"Invalid latitude",
			"query parameter 'lat' must be a number in [-90,90]",
			http.StatusBadRequest))
	}

	lon, err := numberutils.ToFloat64WithError(c.QueryParam("lon"))
	if err != nil || lon < -180 || lon > 180 {
		return c.JSON(http.StatusBadRequest, model.NewProblemDetail(
			"Invalid longitude",
			"query parameter 'lon' must be a number in [-180,180]",
			http.StatusBadRequest))
	}

	ctx := c.Request().Context()
	if ctx.Err() != nil {
		// The caller is gone; do not bother the provider.
		return c.NoContent(StatusClientClosedRequest)
	}

	record, _, err := controller.useCase.FetchLatest(ctx, lat, lon)
	if err != nil {
		return c.JSON(http.StatusBadGateway, model.NewProblemDetail(
			"Upstream weather provider error",
			err.Error(),
			http.StatusBadGateway))
	}

	return c.JSON(http.StatusOK, record)
}

// ListLocations godoc
// @Summary List active monitored locations
// @Description Retrieve the registry of locations flagged for synchronization
// @Tags weather
// @Accept json
// @Produce json
// @Success 200 {array} entity.Location "Active locations"
// @Failure 503 {object} model.ProblemDetail "Store unavailable"
// @Router /locations [get]
func (controller *WeatherController) ListLocations(c echo.Context) error {
	locations, err := controller.useCase.ListActiveLocations()
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, model.NewProblemDetail(
			"Location registry unavailable",
			err.Error(),
			http.StatusServiceUnavailable))
	}

	return c.JSON(http.StatusOK, locations)
}
