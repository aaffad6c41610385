package main

import (
	"fmt"
	"strings"

	"yisangsay/internal/config"

	"github.com/spf13/cobra"
)

type freestyleArgs struct {
	preset      string
	width       int
	overrides   []string
	bubbleColor string
	artColor    string
	copy        bool
}

// layout resolves the preset and applies flag and -c overrides in that
// order.
func (f freestyleArgs) layout() (config.Layout, error) {
	layout, err := config.Preset(f.preset)
	if err != nil {
		return layout, err
	}
	overrides := []string{}
	if f.width != 0 {
		overrides = append(overrides, fmt.Sprintf("width=%d", f.width))
	}
	if strings.TrimSpace(f.bubbleColor) != "" {
		overrides = append(overrides, "bubble_color="+f.bubbleColor)
	}
	if strings.TrimSpace(f.artColor) != "" {
		overrides = append(overrides, "art_color="+f.artColor)
	}
	overrides = append(overrides, f.overrides...)
	return config.ApplyKVOverrides(layout, overrides)
}

func newFreestyleCmd(a *app) *cobra.Command {
	var f freestyleArgs
	var layout config.Layout
	cmd := &cobra.Command{
		Use:   "freestyle [text]",
		Short: "Display Yi Sang in freestyle mode. Pretty cool for ricing btw.",
		Long: "Display Yi Sang in freestyle mode. Pretty cool for ricing btw.\n\n" +
			"Without text only the figure is printed. Layout presets: " + strings.Join(config.PresetNames(), ", ") + ".\n" +
			"Override keys for -c: " + strings.Join(config.OverrideKeys(), ", ") + ".",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			layout, err = f.layout()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), invocation{
				kind:    kindFreestyle,
				text:    joinText(args),
				hasText: len(args) > 0,
				layout:  layout,
				copy:    f.copy,
			})
		},
	}
	cmd.Flags().StringVar(&f.preset, "preset", config.DefaultPreset, "Layout preset ("+strings.Join(config.PresetNames(), "|")+")")
	cmd.Flags().IntVarP(&f.width, "width", "w", 0, "Wrap width in columns (default from the preset)")
	cmd.Flags().StringArrayVarP(&f.overrides, "config", "c", nil, "Override a layout value key=value (repeatable)")
	cmd.Flags().StringVar(&f.bubbleColor, "bubble-color", "", "Bubble colour (ANSI index or #rrggbb)")
	cmd.Flags().StringVar(&f.artColor, "art-color", "", "Figure colour (ANSI index or #rrggbb)")
	cmd.Flags().BoolVar(&f.copy, "copy", false, "Also copy the uncoloured output to the clipboard")
	return cmd
}
