package main

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/yanqian/outfitter/internal/domain/calendar"
	"github.com/yanqian/outfitter/internal/domain/outfit"
	"github.com/yanqian/outfitter/internal/domain/weather"
	"github.com/yanqian/outfitter/internal/infra/calendarrepo"
	"github.com/yanqian/outfitter/internal/infra/config"
	"github.com/yanqian/outfitter/internal/infra/wardroberepo"
	"github.com/yanqian/outfitter/internal/infra/weather/openmeteo"
	"github.com/yanqian/outfitter/pkg/logger"
)

type suggestOptions struct {
	inventory   string
	events      string
	temperature float64
	condition   string
	seed        uint64
}

func newSuggestCmd() *cobra.Command {
	opts := &suggestOptions{}
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest an outfit from the inventory",
		Long: `Suggest an outfit from the inventory file.

Without --temperature the current reading is fetched from the configured weather
provider, falling back to the configured defaults when it is unreachable.`,
		Example: `  outfitctl suggest --temperature 40 --condition Rainy
  outfitctl suggest --inventory data/clothing.json --seed 7`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSuggest(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.inventory, "inventory", "", "Path to the inventory JSON file (default from config)")
	cmd.Flags().StringVar(&opts.events, "events", "", "Path to the events JSON file (default from config)")
	cmd.Flags().Float64Var(&opts.temperature, "temperature", 0, "Fahrenheit temperature; skips the live weather lookup")
	cmd.Flags().StringVar(&opts.condition, "condition", "Unknown", "Weather condition used with --temperature")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for the fallback picker, for reproducible output")
	return cmd
}

func runSuggest(cmd *cobra.Command, opts *suggestOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.NewWithWriter(cmd.ErrOrStderr())

	inventoryPath := firstNonEmpty(opts.inventory, cfg.Wardrobe.InventoryPath)
	eventsPath := firstNonEmpty(opts.events, cfg.Calendar.EventsPath)
	if _, err := os.Stat(inventoryPath); err != nil {
		return fmt.Errorf("inventory %s: %w", inventoryPath, err)
	}

	var rnd outfit.RandSource
	if cmd.Flags().Changed("seed") {
		rnd = rand.New(rand.NewPCG(opts.seed, opts.seed))
	}

	weatherSvc := weather.NewService(
		weather.Config{CacheKey: "cli"},
		openmeteo.NewClient(cfg.Weather.APIBaseURL, cfg.Weather.Latitude, cfg.Weather.Longitude),
		nil,
		log,
	)
	svc := outfit.NewService(
		outfit.Config{
			DefaultTemperature: cfg.Outfit.DefaultTemperature,
			DefaultCondition:   cfg.Outfit.DefaultCondition,
			DefaultOccasion:    cfg.Outfit.DefaultOccasion,
		},
		outfit.NewEngine(rnd),
		wardroberepo.NewJSONRepository(inventoryPath),
		weatherSvc,
		calendar.NewService(calendarrepo.NewJSONRepository(eventsPath), log),
		log,
	)

	var req outfit.Request
	if cmd.Flags().Changed("temperature") {
		req.Temperature = &opts.temperature
		req.Condition = &opts.condition
	}

	resp, err := svc.Recommend(cmd.Context(), req)
	if err != nil {
		return err
	}
	return printJSON(cmd, resp)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
