package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yanqian/outfitter/internal/domain/wardrobe"
	"github.com/yanqian/outfitter/internal/infra/config"
	"github.com/yanqian/outfitter/internal/infra/storage"
	"github.com/yanqian/outfitter/internal/infra/wardroberepo"
	"github.com/yanqian/outfitter/pkg/logger"
)

func newWearCmd() *cobra.Command {
	var inventory string
	cmd := &cobra.Command{
		Use:   "wear <id>...",
		Short: "Mark items as worn so the engine skips them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int, 0, len(args))
			for _, arg := range args {
				id, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid item id %q", arg)
				}
				ids = append(ids, id)
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log := logger.NewWithWriter(cmd.ErrOrStderr())
			// wear never touches images, so an in-memory store is enough here.
			svc := wardrobe.NewService(
				wardrobe.Config{PublicBaseURL: cfg.Wardrobe.PublicBaseURL},
				wardroberepo.NewJSONRepository(firstNonEmpty(inventory, cfg.Wardrobe.InventoryPath)),
				storage.NewMemoryStorage(),
				log,
			)
			items, err := svc.WearOutfit(cmd.Context(), ids)
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]any{"items": items})
		},
	}
	cmd.Flags().StringVar(&inventory, "inventory", "", "Path to the inventory JSON file (default from config)")
	return cmd
}
