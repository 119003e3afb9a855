package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/formationpro/landing/internal/config"
	"github.com/formationpro/landing/internal/ui"
	"github.com/formationpro/landing/internal/ui/common"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	configPath  string
	theme       string
	logFile     string
	typingSpeed int
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "landing",
		Short: "FormationPro landing page in the terminal",
		Long: `Shows the FormationPro landing page: a typed headline, a live dashboard
preview, features, testimonials and pricing.

Keys: tab/shift+tab move between sections, / jumps to a section, q quits.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to config.toml (default: user config dir)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "theme name for both light and dark terminals")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write debug logs to this file")
	cmd.Flags().IntVar(&opts.typingSpeed, "typing-speed", 0, "headline typing delay in milliseconds")
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "landing %s\n", version)
		},
	}
}

// loadConfig layers the user file and the command line flags over the
// embedded defaults.
func loadConfig(opts options) (*config.Config, error) {
	cfg := config.Default()
	if err := cfg.LoadFile(opts.configPath); err != nil {
		return nil, err
	}
	if opts.theme != "" {
		cfg.UI.Theme = config.ThemeConfig{Dark: opts.theme, Light: opts.theme}
	}
	if opts.typingSpeed != 0 {
		cfg.UI.TypingSpeedMs = opts.typingSpeed
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("--typing-speed: %w", err)
		}
	}
	return cfg, nil
}

// unknownConfigKeys lists keys of the user file that no setting reads.
func unknownConfigKeys(p string) []string {
	if p == "" {
		dir := config.GetConfigDir()
		if dir == "" {
			return nil
		}
		p = filepath.Join(dir, "config.toml")
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil
	}
	return config.UnknownKeys(string(data))
}

// newLogger returns a no-op logger unless a file is given: the terminal
// belongs to the page.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func run(cmd *cobra.Command, opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := newLogger(opts.logFile)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	for _, k := range unknownConfigKeys(opts.configPath) {
		logger.Warn("unknown config key", zap.String("key", k))
	}

	dark := termenv.HasDarkBackground()
	colors, err := cfg.ResolveColors(dark)
	if err != nil {
		return err
	}
	common.DefaultPalette.Update(colors)
	logger.Debug("theme resolved", zap.Bool("dark", dark), zap.Int("styles", len(colors)))

	keyMap, err := common.NewKeyMap(cfg.Keys)
	if err != nil {
		return fmt.Errorf("[keys]: %w", err)
	}

	model, err := ui.New(cfg, keyMap, logger)
	if err != nil {
		return err
	}
	defer model.Stop()

	p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

