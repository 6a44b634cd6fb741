package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vanzue/bbmark/internal/chromium"
	"github.com/vanzue/bbmark/internal/config"
	"github.com/vanzue/bbmark/internal/logger"
	"github.com/vanzue/bbmark/internal/model"
	"github.com/vanzue/bbmark/internal/session"
	"github.com/vanzue/bbmark/internal/tui"
	"github.com/vanzue/bbmark/internal/version"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:     "bbmark",
	Short:   "Search your browser bookmarks from the terminal",
	Long: `bbmark finds the bookmark files of Chromium-derived browsers (Microsoft
Edge, Google Chrome, Brave) across all their profiles, and serves ranked
search over them as you type. Enter opens the selected bookmark in your
default browser.

Bookmarks are re-read on every run; nothing is indexed, watched or written.`,
	Version: version.Version,
	RunE:    runRoot,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default ~/.config/bbmark/config.yaml)")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
}

// setup loads config, the logger and the bookmark set shared by every
// command. Loading never fails; a total miss just yields an empty set.
func setup() (config.Config, *zap.Logger, []model.Entry) {
	path := configPath
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFile)

	browsers := chromium.KnownBrowsers()
	for _, b := range cfg.Browsers {
		browsers = append(browsers, chromium.Browser{Name: b.Name, Dir: b.Path})
	}

	return cfg, log, chromium.Load(browsers, log)
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, log, entries := setup()
	defer func() { _ = log.Sync() }()

	sess := session.New(entries, cfg.SearchMode())
	app := tui.NewApp(tui.AppParams{Session: sess})

	p := tea.NewProgram(app, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run search surface: %w", err)
	}

	// Opening happens after the surface is dismissed.
	final := finalModel.(tui.App)
	if entry := final.Opened(); entry != nil {
		log.Info("opening bookmark", zap.String("url", entry.URL))
		openURL(entry.URL)
	}
	return nil
}
