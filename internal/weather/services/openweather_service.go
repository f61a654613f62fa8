package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/architect/eco-tracker/internal/common/errors"
	"github.com/architect/eco-tracker/internal/weather/models"
	"github.com/sony/gobreaker"
)

// Client fetches current weather from OpenWeatherMap and reshapes the
// payload into the stable report schema. Upstream calls run through a
// circuit breaker so a flapping provider does not tie up request handlers.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	circuit *gobreaker.CircuitBreaker
}

var defaultClient *Client

// Init configures the package-level client used by the handlers
func Init(apiKey string, baseURL string) {
	defaultClient = NewClient(&http.Client{Timeout: 10 * time.Second}, apiKey, baseURL)
}

// NewClient creates a weather client with its own circuit breaker
func NewClient(httpClient *http.Client, apiKey string, baseURL string) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    httpClient,
		circuit: cb,
	}
}

// GetByCoordinates fetches current weather for a lat/lon pair
func GetByCoordinates(lat, lon string) (*models.Report, error) {
	return defaultClient.FetchByCoordinates(lat, lon)
}

// GetByCity fetches current weather for a city name
func GetByCity(city string) (*models.Report, error) {
	return defaultClient.FetchByCity(city)
}

// FetchByCoordinates queries the upstream API by coordinates
func (c *Client) FetchByCoordinates(lat, lon string) (*models.Report, error) {
	values := url.Values{}
	values.Set("lat", lat)
	values.Set("lon", lon)
	return c.fetch(values)
}

// FetchByCity queries the upstream API by city name
func (c *Client) FetchByCity(city string) (*models.Report, error) {
	values := url.Values{}
	values.Set("q", city)
	return c.fetch(values)
}

// openWeatherPayload covers the subset of the upstream response we reshape
type openWeatherPayload struct {
	Name  string `json:"name"`
	Dt    int64  `json:"dt"`
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

func (c *Client) fetch(values url.Values) (*models.Report, error) {
	if c.apiKey == "" {
		return nil, errors.Internal("weather provider is not configured", "missing api key")
	}

	values.Set("appid", c.apiKey)
	values.Set("units", "metric")
	requestURL := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())

	result, err := c.circuit.Execute(func() (interface{}, error) {
		resp, err := c.http.Get(requestURL)
		if err != nil {
			return nil, errors.BadGateway("weather provider is unreachable")
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return nil, errors.NotFound("city")
		case resp.StatusCode != http.StatusOK:
			return nil, errors.BadGateway(fmt.Sprintf("weather provider returned status %d", resp.StatusCode))
		}

		var payload openWeatherPayload
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, errors.BadGateway("weather provider returned an invalid payload")
		}

		return reshape(payload), nil
	})
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr
		}
		// Breaker open or half-open rejection
		return nil, errors.BadGateway("weather provider is unavailable")
	}

	return result.(*models.Report), nil
}

// reshape converts the upstream payload into the stable report schema
func reshape(payload openWeatherPayload) *models.Report {
	report := &models.Report{
		Location: models.Location{
			Name:    payload.Name,
			Country: payload.Sys.Country,
			Coordinates: models.Coordinates{
				Lat: payload.Coord.Lat,
				Lon: payload.Coord.Lon,
			},
		},
		Temperature: models.Temperature{
			Current:   payload.Main.Temp,
			FeelsLike: payload.Main.FeelsLike,
			Min:       payload.Main.TempMin,
			Max:       payload.Main.TempMax,
		},
		Humidity: payload.Main.Humidity,
		Wind: models.Wind{
			Speed:     payload.Wind.Speed,
			Direction: payload.Wind.Deg,
		},
		Timestamp: time.Unix(payload.Dt, 0).UTC(),
	}

	if len(payload.Weather) > 0 {
		report.Weather = models.Conditions{
			Main:        payload.Weather[0].Main,
			Description: payload.Weather[0].Description,
			Icon:        payload.Weather[0].Icon,
		}
	}

	return report
}
