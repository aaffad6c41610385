package main

import (
	"fmt"
	"slices"

	"yisangsay/internal/art"
	"yisangsay/internal/config"

	"github.com/spf13/cobra"
)

func newAnimateCmd(a *app) *cobra.Command {
	var variant int
	var cycles int
	var plain bool
	cmd := &cobra.Command{
		Use:   "animate [text]",
		Short: "Display an animated Yi Sang (variant 1 or 2)",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(art.Variants, variant) {
				return fmt.Errorf("invalid variant number %d: must be 1 or 2", variant)
			}
			if cycles < 0 {
				return fmt.Errorf("invalid cycles %d: must not be negative", cycles)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), invocation{
				kind:    kindAnimate,
				text:    joinText(args),
				hasText: len(args) > 0,
				layout:  config.Default(),
				variant: variant,
				cycles:  cycles,
				plain:   plain,
			})
		},
	}
	cmd.Flags().IntVarP(&variant, "variant-number", "n", 1, "Animation variant number (1 or 2)")
	cmd.Flags().IntVar(&cycles, "cycles", 0, "Stop after this many passes through the frames (0 runs until interrupted)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print frames in a simple loop instead of the full-screen player")
	return cmd
}
