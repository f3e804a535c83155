// Command learngl runs the OpenGL tutorial lessons.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"learn-opengl/core"
	"learn-opengl/internal/lesson"
)

type options struct {
	configPath string
	assets     string
	width      int
	height     int
	logLevel   string
	vsync      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "learngl",
		Short:        "Run the LearnOpenGL tutorial lessons",
		SilenceUsage: true,
	}

	opts.register(root.PersistentFlags())

	root.AddCommand(newListCmd())
	for _, info := range lesson.All() {
		root.AddCommand(newLessonCmd(opts, info))
	}
	return root
}

func (o *options) register(flags *pflag.FlagSet) {
	flags.StringVar(&o.configPath, "config", "", "TOML config file (default ./"+core.DefaultConfigFile+" if present)")
	flags.StringVar(&o.assets, "assets", "", "assets directory holding textures/ and models/")
	flags.IntVar(&o.width, "width", 0, "window width in pixels")
	flags.IntVar(&o.height, "height", 0, "window height in pixels")
	flags.StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error")
	flags.BoolVar(&o.vsync, "vsync", true, "wait for vertical sync on buffer swap")
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available lessons",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, info := range lesson.All() {
				fmt.Fprintf(out, "%-14s %s\n", info.Name, info.Summary)
			}
		},
	}
}

func newLessonCmd(opts *options, info lesson.Info) *cobra.Command {
	return &cobra.Command{
		Use:   info.Name,
		Short: info.Title + ": " + info.Summary,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd.Flags())
			if err != nil {
				return err
			}
			level, _ := core.ParseLevel(cfg.LogLevel)
			log := core.NewLogger(cmd.ErrOrStderr(), level)

			if err := lesson.Run(cmd.Context(), cfg, log, info); err != nil {
				log.Error("lesson failed", "lesson", info.Name, "err", err)
				return err
			}
			return nil
		},
	}
}

// load reads the config file and lets explicitly set flags override it.
func (o *options) load(flags *pflag.FlagSet) (core.Config, error) {
	cfg, err := core.LoadConfig(o.configPath)
	if err != nil {
		return cfg, err
	}
	if flags.Changed("assets") {
		cfg.Assets.Dir = o.assets
	}
	if flags.Changed("width") {
		cfg.Window.Width = o.width
	}
	if flags.Changed("height") {
		cfg.Window.Height = o.height
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("vsync") {
		cfg.Window.VSync = o.vsync
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}
