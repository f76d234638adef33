package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "outfitctl",
		Short: "Wardrobe and outfit tooling",
		Long: `outfitctl runs the outfit engine against a local inventory file.

It shares the configuration of the HTTP service (CONFIG_PATH or configs/config.yaml
plus environment overrides), so suggestions match what the API would return.`,
		SilenceUsage: true,
	}
	root.AddCommand(newSuggestCmd(), newClassifyCmd(), newWearCmd())
	return root
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
