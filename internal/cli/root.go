// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/config"
	"github.com/jeranaias/termfolio/internal/content"
	"github.com/jeranaias/termfolio/internal/logging"
	"github.com/jeranaias/termfolio/internal/ui/styles"
	"github.com/jeranaias/termfolio/internal/ui/terminal"
	"github.com/jeranaias/termfolio/internal/util"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	// Global flags
	cfgFile   string
	plainMode bool
	noRain    bool
	themeName string
	logFile   string
	verbose   bool

	// Logger
	logger = zap.NewNop()
)

// app is everything a command needs after startup.
type app struct {
	cfg     *config.Config
	cfgPath string
	profile *content.Profile
	theme   *styles.Theme
	router  *commands.Router
	logger  *zap.Logger
}

// current is set by PersistentPreRunE.
var current *app

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "termfolio",
	Short: "A terminal portfolio with matrix rain",
	Long: `termfolio is an interactive, shell-styled portfolio.

Type commands at the prompt to browse the profile, projects and skills.
Run without arguments to start the full-screen terminal; use --plain or pipe
input for the line-mode version.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		current = a
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if plainMode || !CanRunTUI() {
			return runPlain(cmd.Context(), current)
		}
		return runTUI(cmd.Context(), current)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.termfolio/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&plainMode, "plain", false, "Use the line-mode terminal")
	rootCmd.PersistentFlags().BoolVar(&noRain, "no-rain", false, "Disable the background rain")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Theme: auto, dark or light")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write diagnostic logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// everything after the first word of run is input, flags included
	runCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	// Interrupts are handled per command (see interruptible); SIGTERM ends
	// the process.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		DisplayError(os.Stderr, err)
		return ExitCode(err)
	}
	return ExitSuccess
}

// =============================================================================
// STARTUP
// =============================================================================

// applyFlags lets command-line flags win over the file and environment.
func applyFlags(cfg *config.Config) error {
	if themeName != "" {
		theme, err := config.ParseTheme(themeName)
		if err != nil {
			return err
		}
		cfg.UI.Theme = theme
	}
	if noRain {
		cfg.Effects.BackgroundRain = false
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	return nil
}

// loadApp reads the config and profile and builds the logger.
func loadApp() (*app, error) {
	path, err := config.ResolvePath(cfgFile)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cfg); err != nil {
		return nil, err
	}
	config.SetGlobal(cfg)

	logger, err = logging.New(logging.Options{
		File:    cfg.Log.File,
		Level:   cfg.Log.Level,
		Verbose: verbose,
	})
	if err != nil {
		return nil, err
	}

	profile := content.Default()
	if cfg.Content.ProfilePath != "" {
		profile, err = content.Load(cfg.Content.ProfilePath)
		if err != nil {
			return nil, err
		}
	}

	logger.Info("starting",
		zap.String("version", Version),
		zap.String("config", path),
		zap.String("theme", cfg.UI.Theme),
		zap.Bool("typewriter", cfg.Effects.Typewriter),
		zap.Bool("background_rain", cfg.Effects.BackgroundRain),
		zap.String("profile", profile.Name),
	)

	return &app{
		cfg:     cfg,
		cfgPath: path,
		profile: profile,
		theme:   styles.NewTheme(cfg.UI.Theme),
		router: commands.NewRouter(
			commands.WithProfile(profile),
			commands.WithPingInterval(cfg.Effects.PingInterval()),
			commands.WithLogger(logger),
		),
		logger: logger,
	}, nil
}

func bannerFor(a *app) string {
	art := a.profile.Banner
	if art == "" {
		art = content.DefaultBanner
	}
	if util.MaxLineWidth(art) > GetTerminalWidth() {
		return strings.ToUpper(a.profile.Name)
	}
	return art
}

// =============================================================================
// TUI
// =============================================================================

// runTUI runs the full-screen terminal alongside the config watcher. The
// watcher stops when the program exits.
func runTUI(ctx context.Context, a *app) error {
	model := terminal.New(a.cfg, a.profile,
		terminal.WithLogger(a.logger),
		terminal.WithTheme(a.theme),
		terminal.WithRouter(a.router),
	)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	g, gctx := errgroup.WithContext(ctx)
	watchCtx, stopWatch := context.WithCancel(gctx)
	defer stopWatch()

	if a.cfgPath != "" {
		g.Go(func() error {
			err := config.Watch(watchCtx, a.cfgPath, func(cfg *config.Config, err error) {
				if err == nil {
					err = applyFlags(cfg)
				}
				if err != nil {
					a.logger.Warn("config reload", zap.Error(err))
				}
				p.Send(terminal.ConfigReloadedMsg{Config: cfg, Err: err})
			})
			// live reload is optional; the terminal keeps running without it
			if err != nil {
				a.logger.Warn("config watcher stopped", zap.Error(err))
			}
			return nil
		})
	}

	g.Go(func() error {
		defer stopWatch()
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("run terminal: %w", err)
		}
		return nil
	})

	return g.Wait()
}
