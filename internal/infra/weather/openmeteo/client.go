package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/outfitter/internal/domain/weather"
)

const (
	defaultBaseURL = "https://api.open-meteo.com/v1/forecast"
	timeLayout     = "2006-01-02T15:04"
	sourceName     = "open-meteo"
)

// Client fetches current conditions from the Open-Meteo forecast API.
type Client struct {
	baseURL    string
	latitude   float64
	longitude  float64
	httpClient *http.Client
}

// NewClient builds an API client for a fixed location.
func NewClient(baseURL string, latitude, longitude float64) *Client {
	u := strings.TrimSpace(baseURL)
	if u == "" {
		u = defaultBaseURL
	}
	return &Client{
		baseURL:   strings.TrimRight(u, "/"),
		latitude:  latitude,
		longitude: longitude,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Current implements weather.Provider.
func (c *Client) Current(ctx context.Context) (weather.Reading, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(c.latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(c.longitude, 'f', -1, 64))
	q.Set("current", "temperature_2m,weather_code,is_day")
	q.Set("temperature_unit", "fahrenheit")
	endpoint := c.baseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return weather.Reading{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return weather.Reading{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return weather.Reading{}, fmt.Errorf("weather request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return weather.Reading{}, fmt.Errorf("decode weather response: %w", err)
	}
	if raw.Error {
		return weather.Reading{}, fmt.Errorf("weather api error: %s", raw.Reason)
	}
	if raw.Current.Temperature == nil || math.IsNaN(*raw.Current.Temperature) {
		return weather.Reading{}, fmt.Errorf("weather response missing temperature")
	}

	return weather.Reading{
		TemperatureF: *raw.Current.Temperature,
		Condition:    describe(raw.Current.WeatherCode, raw.Current.IsDay != 0),
		ObservedAt:   parseTime(raw.Current.Time),
		Source:       sourceName,
	}, nil
}

type apiResponse struct {
	Error   bool       `json:"error"`
	Reason  string     `json:"reason"`
	Current apiCurrent `json:"current"`
}

type apiCurrent struct {
	Time        string   `json:"time"`
	Temperature *float64 `json:"temperature_2m"`
	WeatherCode int      `json:"weather_code"`
	IsDay       int      `json:"is_day"`
}

// describe maps a WMO weather interpretation code onto the labels the outfit engine matches.
func describe(code int, isDay bool) string {
	switch {
	case code == 0 && isDay:
		return "Sunny ☀️"
	case code == 0:
		return "Clear 🌙"
	case code == 1 || code == 2:
		return "Partly Cloudy ⛅"
	case code == 3:
		return "Cloudy ☁️"
	case code == 45 || code == 48:
		return "Foggy 🌫️"
	case code >= 51 && code <= 67, code >= 80 && code <= 82:
		return "Rainy 🌧️"
	case code >= 71 && code <= 77, code == 85 || code == 86:
		return "Snowy ❄️"
	case code >= 95 && code <= 99:
		return "Rainy ⛈️"
	default:
		return "Unknown"
	}
}

func parseTime(value string) time.Time {
	if strings.TrimSpace(value) == "" {
		return time.Time{}
	}
	ts, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}
	}
	return ts
}

var _ weather.Provider = (*Client)(nil)
