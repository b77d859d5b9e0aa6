// Package cmd provides the CLI commands for the Haven application.
package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"haven/internal/adapters/notification"
	"haven/internal/adapters/storage"
	"haven/internal/adapters/tui"
	"haven/internal/config"
	"haven/internal/domain"
	"haven/internal/services"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	dataDir string

	// Global dependencies
	appConfig *config.Config
	flagStore *storage.FlagStore
	chime     *notification.Chime
	logger    *log.Logger
)

func timeNow() time.Time {
	return time.Now()
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "haven",
	Short: "Haven - a countdown-gated personal dashboard for the terminal",
	Long: `Haven keeps a small personal dashboard behind a countdown. Until the
target date arrives the gate shows the time remaining; afterwards you get
your moods, tasks, reminders, letters and a garden of planted notes.

Run "haven" with no arguments to open the dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	RunE: runDashboard,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Path to the state directory (default: ~/.haven)")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Haven\nVersion: {{.Version}}\n")
}

// initializeServices loads configuration and opens the state store.
func initializeServices() error {
	logger = log.New(os.Stderr, "haven: ", log.LstdFlags)

	var err error
	appConfig, err = config.Load()
	if err != nil {
		logger.Printf("failed to load config, using defaults: %v", err)
		appConfig = config.DefaultConfig()
	}
	if appConfig.Countdown.UsesFallback() {
		logger.Printf("countdown target %q is not RFC 3339, using the fallback date fields",
			appConfig.Countdown.Target)
	}

	if dataDir != "" {
		appConfig.Storage.DataDir = dataDir
	}

	chime = notification.New(&appConfig.Notifications)

	flagStore, err = storage.NewFlagStore(config.GetStatePath(appConfig))
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}
	return nil
}

// runDashboard wires the services together and runs the TUI.
func runDashboard(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("haven needs an interactive terminal")
	}

	scr := tui.NewScreen()

	var began time.Time
	if !flagStore.Get(storage.KeyCountdownBegan, &began) {
		began = timeNow()
		if err := flagStore.Set(storage.KeyCountdownBegan, began); err != nil {
			logger.Printf("failed to stamp first launch: %v", err)
		}
	}

	svc := tui.Services{
		Engine:    services.NewCountdownEngine(appConfig.Countdown.TargetTime(), began, timeNow, chime.CountdownComplete),
		Coord:     services.NewCoordinator(scr, scr, flagStore, appConfig.Views, logger, timeNow),
		Zen:       services.NewZenController(appConfig.Zen, chime, timeNow),
		Book:      services.NewBookController(flagStore, scr, appConfig.Book, logger, timeNow),
		Bypass:    services.NewBypassGate(appConfig.Bypass, timeNow),
		Moods:     services.NewMoodService(flagStore, logger, timeNow),
		Tasks:     services.NewTaskService(flagStore, logger, timeNow),
		Reminders: services.NewReminderService(flagStore, logger, timeNow),
		Garden:    services.NewGardenService(flagStore, logger, timeNow),
		Boards:    services.NewBoardService(flagStore, logger),
	}
	svc.Selection = services.NewSelectionController(svc.Garden.Delete)
	svc.MoodSel = services.NewSelectionController(svc.Moods.Delete)
	svc.TaskSel = services.NewSelectionController(svc.Tasks.Delete)

	svc.Coord.Load()
	svc.Book.Load()
	svc.Moods.Load()
	svc.Tasks.Load()
	svc.Reminders.Load()
	svc.Garden.Load()
	svc.Boards.Load()

	initial := domain.ViewCountdown
	if svc.Engine.Done() {
		initial = domain.ViewHome
	}
	svc.Coord.Start(initial)

	model := tui.NewModel(svc, scr, appConfig, timeNow)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}
