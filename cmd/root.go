// Package cmd holds the command line plumbing shared by the fnplot binaries.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/philipparndt/gofnplot/internal/config"
	"github.com/philipparndt/gofnplot/pkg/curve"
	"github.com/philipparndt/gofnplot/pkg/preset"
	"github.com/philipparndt/gofnplot/pkg/scene"
	"github.com/philipparndt/gofnplot/pkg/viewport"
	"github.com/philipparndt/gofnplot/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Options are the merged settings of environment and flags
type Options struct {
	Width    int
	Height   int
	Scale    float64
	Preset   string
	Watch    bool
	Show     []string
	Set      []string
	LogLevel string

	config *config.Config
}

// NewRootCommand creates a root command with the shared flags. The returned
// options are filled in before any Run function of the command tree runs.
func NewRootCommand(use, short, long string) (*cobra.Command, *Options) {
	opts := &Options{}

	root := &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          long,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd.Flags(), cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.IntVar(&opts.Width, "width", viewport.DefaultWidth, "panel width in pixels")
	flags.IntVar(&opts.Height, "height", viewport.DefaultHeight, "panel height in pixels")
	flags.Float64Var(&opts.Scale, "scale", viewport.DefaultScale, "pixels per world unit")
	flags.StringVar(&opts.Preset, "preset", "", "TOML scene preset")
	flags.BoolVar(&opts.Watch, "watch", false, "reload the preset when it changes")
	flags.StringSliceVar(&opts.Show, "show", nil, "families to show, e.g. sin,parabola")
	flags.StringArrayVar(&opts.Set, "set", nil, "parameter assignment family.slot=value (repeatable)")
	flags.StringVar(&opts.LogLevel, "log-level", "info", "log level: debug, info, warn, error")

	return root, opts
}

// load fills unset flags from the environment and installs the logger
func (o *Options) load(flags *pflag.FlagSet, logOut io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load environment: %w", err)
	}
	o.config = cfg
	o.merge(flags, cfg)

	logger, err := config.NewLogger(logOut, o.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

// merge copies environment values for every flag not given explicitly
func (o *Options) merge(flags *pflag.FlagSet, cfg *config.Config) {
	if !flags.Changed("width") {
		o.Width = cfg.Width
	}
	if !flags.Changed("height") {
		o.Height = cfg.Height
	}
	if !flags.Changed("scale") {
		o.Scale = cfg.Scale
	}
	if !flags.Changed("preset") {
		o.Preset = cfg.Preset
	}
	if !flags.Changed("watch") {
		o.Watch = cfg.Watch
	}
	if !flags.Changed("log-level") {
		o.LogLevel = cfg.LogLevel
	}
}

// BuildScene creates the scene: viewport from the options, then the preset,
// then --show and --set
func (o *Options) BuildScene() (*scene.Scene, error) {
	vp, err := viewport.New(o.Width, o.Height, o.Scale)
	if err != nil {
		return nil, err
	}
	s, err := scene.New(vp)
	if err != nil {
		return nil, err
	}

	if o.Preset != "" {
		p, err := preset.Parse(o.Preset)
		if err != nil {
			return nil, err
		}
		if err := p.Apply(s); err != nil {
			return nil, fmt.Errorf("%s: %w", o.Preset, err)
		}
		slog.Debug("preset applied", "path", o.Preset)
	}

	err = s.Batch(func(s *scene.Scene) error {
		for _, name := range o.Show {
			f, err := curve.ParseFamily(name)
			if err != nil {
				return err
			}
			if err := s.SetVisible(f, true); err != nil {
				return err
			}
		}
		for _, text := range o.Set {
			a, err := scene.ParseAssignment(text)
			if err != nil {
				return err
			}
			if err := a.Apply(s); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// FollowPreset starts watching the preset when --watch is set. The channel is
// nil otherwise.
func (o *Options) FollowPreset() (<-chan *preset.Preset, io.Closer, error) {
	if !o.Watch || o.Preset == "" {
		return nil, nopCloser{}, nil
	}

	debounce := config.DefaultWatchDebounce
	if o.config != nil {
		debounce = o.config.WatchDebounce
	}
	updates, closer, err := preset.Follow(o.Preset, debounce)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to watch preset: %w", err)
	}
	slog.Info("watching preset", "path", o.Preset)
	return updates, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Execute runs the command and exits with status 1 on error
func Execute(root *cobra.Command) {
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
