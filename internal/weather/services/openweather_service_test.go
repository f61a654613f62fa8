package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/architect/eco-tracker/internal/common/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `{
	"name": "Oslo",
	"dt": 1756728000,
	"coord": {"lat": 59.91, "lon": 10.75},
	"sys": {"country": "NO"},
	"main": {"temp": 14.2, "feels_like": 13.1, "temp_min": 12.0, "temp_max": 16.5, "humidity": 71},
	"wind": {"speed": 3.4, "deg": 220},
	"weather": [{"main": "Clouds", "description": "scattered clouds", "icon": "03d"}]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.Client(), "test-key", server.URL), server
}

func TestFetchByCity_ReshapesPayload(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(samplePayload))
	})

	report, err := client.FetchByCity("Oslo")

	require.NoError(t, err)
	assert.Contains(t, gotQuery, "q=Oslo")
	assert.Contains(t, gotQuery, "appid=test-key")
	assert.Contains(t, gotQuery, "units=metric")

	assert.Equal(t, "Oslo", report.Location.Name)
	assert.Equal(t, "NO", report.Location.Country)
	assert.Equal(t, 59.91, report.Location.Coordinates.Lat)
	assert.Equal(t, 14.2, report.Temperature.Current)
	assert.Equal(t, 13.1, report.Temperature.FeelsLike)
	assert.Equal(t, 71, report.Humidity)
	assert.Equal(t, 3.4, report.Wind.Speed)
	assert.Equal(t, 220, report.Wind.Direction)
	assert.Equal(t, "Clouds", report.Weather.Main)
	assert.Equal(t, "scattered clouds", report.Weather.Description)
	assert.Equal(t, time.Unix(1756728000, 0).UTC(), report.Timestamp)
}

func TestFetchByCoordinates_SendsLatLon(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(samplePayload))
	})

	_, err := client.FetchByCoordinates("59.91", "10.75")

	require.NoError(t, err)
	assert.Contains(t, gotQuery, "lat=59.91")
	assert.Contains(t, gotQuery, "lon=10.75")
}

func TestFetch_CityNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	report, err := client.FetchByCity("Atlantis")

	assert.Nil(t, report)
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, err.(*errors.AppError).Code)
}

func TestFetch_UpstreamFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	report, err := client.FetchByCity("Oslo")

	assert.Nil(t, report)
	require.Error(t, err)
	assert.Equal(t, errors.CodeBadGateway, err.(*errors.AppError).Code)
}

func TestFetch_MissingAPIKey(t *testing.T) {
	client := NewClient(http.DefaultClient, "", "http://unused.invalid")

	report, err := client.FetchByCity("Oslo")

	assert.Nil(t, report)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInternalError, err.(*errors.AppError).Code)
}

func TestFetch_MalformedPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	report, err := client.FetchByCity("Oslo")

	assert.Nil(t, report)
	require.Error(t, err)
	assert.Equal(t, errors.CodeBadGateway, err.(*errors.AppError).Code)
}

func TestFetch_NoConditionEntries(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "Oslo", "dt": 1756728000, "weather": []}`))
	})

	report, err := client.FetchByCity("Oslo")

	require.NoError(t, err)
	assert.Empty(t, report.Weather.Main)
}
