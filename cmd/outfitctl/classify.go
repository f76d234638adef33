package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yanqian/outfitter/internal/domain/outfit"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <temperature>",
		Short: "Print the temperature category for a Fahrenheit reading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			temp, err := strconv.ParseFloat(args[0], 64)
			if err != nil || math.IsNaN(temp) || math.IsInf(temp, 0) {
				return fmt.Errorf("invalid temperature %q", args[0])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), outfit.Classify(temp))
			return err
		},
	}
}
