package handlers

import (
	"github.com/architect/eco-tracker/internal/common/errors"
	"github.com/architect/eco-tracker/internal/common/middleware"
	"github.com/architect/eco-tracker/internal/weather/services"
	"github.com/gin-gonic/gin"
)

// GetWeatherByCoordinates returns current weather for a lat/lon pair
// GET /api/v1/weather/coordinates?lat=...&lon=...
func GetWeatherByCoordinates(c *gin.Context) {
	lat := c.Query("lat")
	lon := c.Query("lon")
	if lat == "" || lon == "" {
		middleware.JSONErrorResponse(c, errors.BadRequest("lat and lon are required"))
		return
	}

	report, err := services.GetByCoordinates(lat, lon)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, report)
}

// GetWeatherByCity returns current weather for a city name
// GET /api/v1/weather/city?city=...
func GetWeatherByCity(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		middleware.JSONErrorResponse(c, errors.BadRequest("city name is required"))
		return
	}

	report, err := services.GetByCity(city)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, report)
}
