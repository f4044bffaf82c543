package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"gripper-viewer/internal/logger"
	"gripper-viewer/internal/viewer"
)

func newInspectCmd(opts *options) *cobra.Command {
	var (
		size     string
		openness int
		timeout  time.Duration
		quiet    bool
	)
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Load a size variant without a window and print what the viewer would show",
		Example: `  viewer inspect --size 1.7 --openness 50
  viewer inspect --assets ./GripGen/output --format stl --quiet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := opts.startSize(size)
			if err != nil {
				return err
			}
			src, err := opts.source()
			if err != nil {
				return err
			}
			log := logger.NewMemory()
			if !quiet {
				log.SetConsole(cmd.ErrOrStderr())
			}
			v, err := viewer.New(viewer.Options{
				Catalog:        opts.cat,
				Source:         src,
				Format:         opts.prefs.MeshFormat,
				Log:            log,
				MaxConcurrency: opts.prefs.MaxConcurrency,
				MinDistance:    opts.prefs.MinDistance,
				MaxDistance:    opts.prefs.MaxDistance,
			})
			if err != nil {
				closeSource(src)
				return err
			}
			defer closeSource(src)
			defer v.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			if err := inspect(ctx, v, start, openness); err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), v)
		},
	}
	cmd.Flags().StringVar(&size, "size", "", "size variant to load (default: last used)")
	cmd.Flags().IntVar(&openness, "openness", 0, "finger openness to apply, 0-100")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "give up if loading takes longer")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "do not print diagnostics to stderr")
	return cmd
}

// inspect requests size, waits for it to settle and applies openness.
func inspect(ctx context.Context, v *viewer.Viewer, size string, openness int) error {
	v.RequestVariant(size)
	if err := v.Settle(ctx); err != nil {
		return fmt.Errorf("inspect %s: %w", size, err)
	}
	v.SetOpenness(openness)
	return nil
}

func writeReport(w io.Writer, v *viewer.Viewer) error {
	st := v.Status()
	r := v.Readout()
	size := v.ModelSize()
	cat := v.Catalog()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "size\t%s\n", r.SizeLabel)
	fmt.Fprintf(tw, "parts\t%d/%d loaded, %d failed\n", st.Loaded, st.Total, st.Failed)
	fmt.Fprintf(tw, "model\t%.2f x %.2f x %.2f\n", size.X, size.Y, size.Z)
	fmt.Fprintf(tw, "open distance\t%.3f\n", v.OpenDistance())
	fmt.Fprintf(tw, "openness\t%d%% (%s)\n", v.OpennessPercent(), r.Openness)
	fmt.Fprintf(tw, "pad area\t%s\n", r.Size)
	fmt.Fprintf(tw, "pad\t%s\n", r.Pad)
	if r.Warning != "" {
		fmt.Fprintf(tw, "warning\t%s\n", r.Warning)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "PART\tSIDE\tNODES\tTRIANGLES\tPOSITION")
	for _, p := range v.Assembly().Parts() {
		tris := 0
		for _, n := range p.Nodes {
			tris += len(n.Triangles) / 3
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.3f, %.3f, %.3f\n",
			p.Label, cat.SideOf(p.Spec.File), len(p.Nodes), tris, p.Position.X, p.Position.Y, p.Position.Z)
	}
	return tw.Flush()
}
