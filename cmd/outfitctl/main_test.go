package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/outfitter/internal/domain/outfit"
	"github.com/yanqian/outfitter/internal/domain/wardrobe"
)

func writeInventory(t *testing.T, items []wardrobe.Item) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clothing.json")
	data, err := json.Marshal(items)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func coldInventory() []wardrobe.Item {
	return []wardrobe.Item{
		{ID: 1, Label: "Jacket", Tags: []string{}, Src: "/images/jacket.jpg"},
		{ID: 2, Label: "T-Shirt", Tags: []string{wardrobe.TagRecentlyWorn}, Src: "/images/tshirt.jpg"},
		{ID: 3, Label: "Jeans", Tags: []string{}, Src: "/images/jeans.jpg"},
	}
}

func TestClassify(t *testing.T) {
	out, err := execute(t, "classify", "40")
	require.NoError(t, err)
	require.Equal(t, "cold\n", out)

	out, err = execute(t, "classify", "90.5")
	require.NoError(t, err)
	require.Equal(t, "hot\n", out)
}

func TestClassifyRejectsGarbage(t *testing.T) {
	_, err := execute(t, "classify", "warm")
	require.Error(t, err)

	_, err = execute(t, "classify")
	require.Error(t, err)
}

func TestSuggestWithManualWeather(t *testing.T) {
	inventory := writeInventory(t, coldInventory())
	events := filepath.Join(t.TempDir(), "events.json")

	out, err := execute(t, "suggest",
		"--inventory", inventory,
		"--events", events,
		"--temperature", "40",
		"--condition", "Cloudy",
	)
	require.NoError(t, err)

	var resp outfit.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, outfit.CategoryCold, resp.Category)
	require.Equal(t, 40, resp.Temperature)
	require.Equal(t, "Casual", resp.Occasion)
	require.False(t, resp.WeatherDefaulted)
	require.Len(t, resp.Items, 2)
	require.Equal(t, 3, resp.Items[0].ID)
	require.Equal(t, 1, resp.Items[1].ID)
}

func TestSuggestUsesLiveWeather(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "fahrenheit", r.URL.Query().Get("temperature_unit"))
		_, _ = w.Write([]byte(`{"current":{"time":"2026-10-16T09:00","temperature_2m":81.4,"weather_code":0,"is_day":1}}`))
	}))
	defer srv.Close()
	t.Setenv("WEATHER_API_BASE_URL", srv.URL)

	inventory := writeInventory(t, []wardrobe.Item{{ID: 7, Label: "Dress", Tags: []string{wardrobe.TagSaved}}})

	out, err := execute(t, "suggest", "--inventory", inventory, "--events", filepath.Join(t.TempDir(), "events.json"))
	require.NoError(t, err)

	var resp outfit.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, outfit.CategoryWarm, resp.Category)
	require.Equal(t, 81, resp.Temperature)
	require.Equal(t, "Sunny ☀️", resp.Weather)
	require.Len(t, resp.Items, 1)
	require.Equal(t, 7, resp.Items[0].ID)
}

func TestSuggestFallsBackToDefaultWeather(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	t.Setenv("WEATHER_API_BASE_URL", srv.URL)

	out, err := execute(t, "suggest",
		"--inventory", writeInventory(t, nil),
		"--events", filepath.Join(t.TempDir(), "events.json"),
	)
	require.NoError(t, err)

	var resp outfit.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.True(t, resp.WeatherDefaulted)
	require.Equal(t, 65, resp.Temperature)
	require.Empty(t, resp.Items)
}

func TestSuggestMissingInventory(t *testing.T) {
	_, err := execute(t, "suggest", "--inventory", filepath.Join(t.TempDir(), "nope.json"), "--temperature", "50")
	require.Error(t, err)
}

func TestWearMarksItems(t *testing.T) {
	inventory := writeInventory(t, coldInventory())

	out, err := execute(t, "wear", "--inventory", inventory, "1", "3")
	require.NoError(t, err)

	var body struct {
		Items []wardrobe.Item `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	require.Len(t, body.Items, 2)
	for _, it := range body.Items {
		require.True(t, it.HasTag(wardrobe.TagRecentlyWorn))
	}

	data, err := os.ReadFile(inventory)
	require.NoError(t, err)
	var stored []wardrobe.Item
	require.NoError(t, json.Unmarshal(data, &stored))
	require.True(t, stored[0].HasTag(wardrobe.TagRecentlyWorn))
	require.True(t, stored[2].HasTag(wardrobe.TagRecentlyWorn))
}

func TestWearRejectsBadIDs(t *testing.T) {
	inventory := writeInventory(t, coldInventory())

	_, err := execute(t, "wear", "--inventory", inventory, "abc")
	require.Error(t, err)

	_, err = execute(t, "wear", "--inventory", inventory, "99")
	require.Error(t, err)
}
