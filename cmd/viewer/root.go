package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"gripper-viewer/internal/assets"
	"gripper-viewer/internal/catalog"
	"gripper-viewer/internal/viewerconfig"
)

// options are resolved once per invocation: preferences file, then .env and environment, then flags.
type options struct {
	configPath  string
	catalogPath string
	assetRoot   string
	assetURL    string
	format      string

	prefs viewerconfig.Prefs
	cat   catalog.Catalog
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&options{})
}

func newRootCmdWith(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viewer",
		Short: "Interactive 3D viewer for parametric gripper assemblies",
		Long: `viewer loads one size variant of a parametric gripper (one mesh per part),
frames it, and lets you orbit, open and close the fingers, pick parts, and read
the pad dimensions of the selected size.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			return opts.resolve(cmd, os.Getenv)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", viewerconfig.ConfigPath, "preferences file")
	pf.StringVar(&opts.catalogPath, "catalog", "", "catalog YAML replacing the built-in part list")
	pf.StringVar(&opts.assetRoot, "assets", "", "asset root: a directory or zip archive with one directory per size")
	pf.StringVar(&opts.assetURL, "asset-url", "", "asset base URL; takes precedence over --assets")
	pf.StringVar(&opts.format, "format", "", "mesh format: obj or stl")

	cmd.AddCommand(newRunCmd(opts))
	cmd.AddCommand(newInspectCmd(opts))
	return cmd
}

func (o *options) resolve(cmd *cobra.Command, getenv func(string) string) error {
	prefs, err := viewerconfig.LoadFrom(o.configPath)
	if err != nil {
		return err
	}
	prefs = prefs.WithEnv(getenv)

	flags := cmd.Flags()
	if flags.Changed("assets") {
		prefs.AssetRoot = o.assetRoot
		prefs.AssetURL = ""
	}
	if flags.Changed("asset-url") {
		prefs.AssetURL = o.assetURL
	}
	if flags.Changed("format") {
		if o.format != "obj" && o.format != "stl" {
			return fmt.Errorf("unknown mesh format %q (want obj or stl)", o.format)
		}
		prefs.MeshFormat = o.format
	}
	o.prefs = prefs

	o.cat = catalog.Default()
	if o.catalogPath != "" {
		if o.cat, err = catalog.Load(o.catalogPath); err != nil {
			return err
		}
	}
	return nil
}

// saveChoices persists what the user changed during the session. prefs may carry overrides from
// the environment or flags; only c reaches the file.
func (o *options) saveChoices(c viewerconfig.Choices) error {
	_, err := viewerconfig.SaveChoices(o.configPath, c)
	return err
}

// source returns the asset source the preferences point at. Zip sources must be closed by the
// caller.
func (o *options) source() (assets.Source, error) {
	if o.prefs.AssetURL != "" {
		return assets.NewHTTPSource(o.prefs.AssetURL)
	}
	if assets.IsZip(o.prefs.AssetRoot) {
		return assets.OpenZip(o.prefs.AssetRoot)
	}
	if fi, err := os.Stat(o.prefs.AssetRoot); err != nil || !fi.IsDir() {
		return nil, fmt.Errorf("asset root %q is not a directory", o.prefs.AssetRoot)
	}
	return assets.NewDirSource(os.DirFS(o.prefs.AssetRoot)), nil
}

// startSize picks the size to open with: size if given, else the preferred one, else the catalog
// default.
func (o *options) startSize(size string) (string, error) {
	if size != "" {
		if o.cat.IndexOf(size) < 0 {
			return "", fmt.Errorf("unknown size %q (sizes: %v)", size, o.cat.Sizes)
		}
		return size, nil
	}
	if o.cat.IndexOf(o.prefs.DefaultSize) >= 0 {
		return o.prefs.DefaultSize, nil
	}
	return o.cat.Sizes[o.cat.StartIndex()], nil
}
