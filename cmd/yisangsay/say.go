package main

import (
	"yisangsay/internal/config"

	"github.com/spf13/cobra"
)

func newSayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "say <text>",
		Short: "Display Yi Sang saying the provided text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), invocation{
				kind:    kindSay,
				text:    joinText(args),
				hasText: true,
				layout:  config.Default(),
			})
		},
	}
}
