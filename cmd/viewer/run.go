package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gripper-viewer/internal/graphics"
	"gripper-viewer/internal/logger"
)

func newRunCmd(opts *options) *cobra.Command {
	var (
		size     string
		openness int
		watch    bool
		font     string
		css      string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the viewer window",
		Example: `  viewer run --size 1.7
  viewer run --assets ./GripGen/output --watch
  viewer run --asset-url https://example.com/gripgen --format stl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("openness") {
				opts.prefs.Openness = min(max(openness, 0), 100)
			}
			if flags.Changed("watch") {
				opts.prefs.Watch = watch
			}
			if flags.Changed("font") {
				opts.prefs.Font = font
			}
			start, err := opts.startSize(size)
			if err != nil {
				return err
			}

			log := logger.New()
			a, err := newApp(opts, log, start)
			if err != nil {
				return err
			}
			if css != "" {
				if err := a.ui.LoadCSS(css); err != nil {
					a.Close()
					return fmt.Errorf("overlay stylesheet: %w", err)
				}
			}
			log.Infof("viewer %s: size %s, %d part(s) per size", version, start, len(opts.cat.Parts))
			graphics.Run(graphics.DefaultWindow(), a)
			return nil
		},
	}
	cmd.Flags().StringVar(&size, "size", "", "size variant to open (default: last used)")
	cmd.Flags().IntVar(&openness, "openness", 0, "initial finger openness, 0-100")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the active size when its asset files change")
	cmd.Flags().StringVar(&font, "font", "", "system font to use for overlays (name or substring)")
	cmd.Flags().StringVar(&css, "css", "", "stylesheet replacing the built-in overlay styles")
	return cmd
}
