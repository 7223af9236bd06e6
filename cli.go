package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/shapeshift/assets"
	"github.com/automoto/shapeshift/config"
	"github.com/automoto/shapeshift/fonts"
	"github.com/automoto/shapeshift/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

const appName = "shapeshift"

type options struct {
	configPath string
	level      int
	skipMenu   bool
	debug      bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:          appName,
		Short:        "Shapeshift is a puzzle platformer about growing into the right shape",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(opts.verbose)
			if opts.configPath == "" {
				return nil
			}
			return config.LoadOverrides(opts.configPath)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML file overriding tuning values")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().IntVarP(&opts.level, "level", "l", 0, "level index to start at (with --skip-menu)")
	root.Flags().BoolVar(&opts.skipMenu, "skip-menu", false, "skip the level select and start playing")
	root.Flags().BoolVar(&opts.debug, "debug", false, "draw zone radii, distances and animator state")

	root.AddCommand(newLevelsCmd())
	return root
}

func setupLogger(verbose bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          appName,
	}))
}

func runGame(cmd *cobra.Command, opts options) error {
	config.Debug.SkipMenu = opts.skipMenu
	config.Debug.Overlay = opts.debug
	config.Debug.StartLevel = opts.level

	if err := fonts.LoadDefaults(); err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}
	if _, err := assets.LoadLevels(); err != nil {
		return err
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(appName); err != nil {
		log.Warn("progress will not be saved", "err", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	log.Info("starting", "skipMenu", opts.skipMenu, "level", opts.level)
	if err := ebiten.RunGame(NewGame()); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the embedded levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			levels, err := assets.LoadLevels()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, l := range levels {
				fmt.Fprintf(out, "%d\t%s\tzones=%d\tcaves=%d", i, l.Name, len(l.Transformers), len(l.Caves))
				for _, c := range l.Caves {
					w, h := c.Target.Dimensions()
					fmt.Fprintf(out, "\ttarget=%dx%d", w, h)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
