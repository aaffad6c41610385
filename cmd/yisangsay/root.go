package main

import (
	"errors"
	"strings"

	"yisangsay/internal/logger"

	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "yisangsay",
		Short:         "Yisangsay is a CLI program like cowsay, but instead of a talking cow, it's Yi Sang from Limbus Company!",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Configure(a.errOut, a.verbose)
			a.log = logger.NewRun(cmd.Name())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("a subcommand is required")
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "Log debug details to stderr")

	root.AddCommand(
		newSayCmd(a),
		newAnimateCmd(a),
		newFreestyleCmd(a),
	)
	return root
}

// joinText turns the positional words into the utterance.
func joinText(args []string) string {
	return strings.Join(args, " ")
}
