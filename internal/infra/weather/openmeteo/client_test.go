package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "1.35", q.Get("latitude"))
		require.Equal(t, "103.82", q.Get("longitude"))
		require.Equal(t, "fahrenheit", q.Get("temperature_unit"))
		require.Equal(t, "temperature_2m,weather_code,is_day", q.Get("current"))
		_, _ = w.Write([]byte(`{"current":{"time":"2026-10-16T14:00","temperature_2m":84.2,"weather_code":61,"is_day":1}}`))
	}))
	defer srv.Close()

	reading, err := NewClient(srv.URL, 1.35, 103.82).Current(context.Background())
	require.NoError(t, err)
	require.Equal(t, 84.2, reading.TemperatureF)
	require.Equal(t, "Rainy 🌧️", reading.Condition)
	require.Equal(t, time.Date(2026, 10, 16, 14, 0, 0, 0, time.UTC), reading.ObservedAt)
	require.Equal(t, "open-meteo", reading.Source)
}

func TestCurrentUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":true,"reason":"Latitude must be in range"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 123, 0).Current(context.Background())
	require.ErrorContains(t, err, "status=400")
}

func TestCurrentMissingTemperature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"current":{"time":"2026-10-16T14:00","weather_code":0,"is_day":1}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 0, 0).Current(context.Background())
	require.Error(t, err)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		code  int
		isDay bool
		want  string
	}{
		{0, true, "Sunny ☀️"},
		{0, false, "Clear 🌙"},
		{2, true, "Partly Cloudy ⛅"},
		{3, false, "Cloudy ☁️"},
		{48, true, "Foggy 🌫️"},
		{55, true, "Rainy 🌧️"},
		{81, true, "Rainy 🌧️"},
		{73, true, "Snowy ❄️"},
		{86, false, "Snowy ❄️"},
		{95, true, "Rainy ⛈️"},
		{42, true, "Unknown"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, describe(tc.code, tc.isDay), "code %d", tc.code)
	}
}
