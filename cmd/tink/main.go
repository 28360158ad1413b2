package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tinkerbox/cmd/tink/ui"
	"tinkerbox/internal/config"
	"tinkerbox/internal/logging"
	"tinkerbox/internal/store"
)

var (
	// Global flags
	verbose bool
	homeDir string
	player  string
	noColor bool

	// Shared state, built in PersistentPreRunE
	logger *zap.Logger
	cfg    *config.Config
	styles ui.Styles
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "tink",
	Short: "tinkerbox - a toolbox of small terminal apps",
	Long: `tinkerbox bundles the small programs everyone writes once: tasks,
notes, contacts, expenses, a blog backend, a password vault, word and
number games, converters, and a handful of other desk tools — all in one
binary over one SQLite database at ~/.tinkerbox.

Run without arguments to browse the toolbox interactively.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if homeDir == "" {
			homeDir = config.DefaultHome()
		}
		cfg, err = config.Load(homeDir)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if player != "" {
			cfg.Games.DefaultPlayer = player
		}
		player = cfg.Games.DefaultPlayer
		if err := logging.Initialize(homeDir); err != nil {
			logger.Warn("category logging unavailable", zap.Error(err))
		}
		if noColor || os.Getenv("NO_COLOR") != "" {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
		styles = ui.DefaultStyles()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHomeMenu(cmd)
	},
}

// openStore opens the SQLite database under the tinkerbox home.
func openStore() (*store.LocalStore, error) {
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create home directory: %w", err)
	}
	st, err := store.Open(cfg.DatabasePath(homeDir))
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return st, nil
}

// runHomeMenu shows the toolbox list and dispatches the chosen command.
func runHomeMenu(root *cobra.Command) error {
	model := ui.NewMenuModel(ui.HomeItems(), styles)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("menu failed: %w", err)
	}
	menu, ok := finalModel.(ui.MenuModel)
	if !ok || menu.Chosen() == nil {
		return nil
	}
	fields := strings.Fields(menu.Chosen().Command)
	cmd, rest, err := root.Root().Find(fields)
	if err != nil || cmd == root.Root() {
		return fmt.Errorf("no command for %q", menu.Chosen().Command)
	}
	// Group commands and commands that need arguments get their help
	// instead of a hard failure.
	if cmd.RunE == nil && cmd.Run == nil {
		return cmd.Help()
	}
	if err := cmd.ValidateArgs(rest); err != nil {
		return cmd.Help()
	}
	if cmd.RunE != nil {
		return cmd.RunE(cmd, rest)
	}
	cmd.Run(cmd, rest)
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "tinkerbox home directory (default: ~/.tinkerbox)")
	rootCmd.PersistentFlags().StringVarP(&player, "player", "p", "", "Player name for game scores")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable color output")

	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(expenseCmd)
	rootCmd.AddCommand(blogCmd)
	rootCmd.AddCommand(vaultCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(passgenCmd)
	rootCmd.AddCommand(cipherCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(artCmd)
	rootCmd.AddCommand(organizeCmd)
	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(weatherCmd)
	rootCmd.AddCommand(gradesCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(storyCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
