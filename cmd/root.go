package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Jinsoo1210/carrot/internal/api"
	"github.com/Jinsoo1210/carrot/internal/calendar"
	"github.com/Jinsoo1210/carrot/internal/checklist"
	"github.com/Jinsoo1210/carrot/internal/config"
	"github.com/Jinsoo1210/carrot/internal/logs"
	"github.com/Jinsoo1210/carrot/internal/session"
	"github.com/Jinsoo1210/carrot/internal/todo"
	"github.com/Jinsoo1210/carrot/internal/tokenstore"
	"github.com/Jinsoo1210/carrot/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgFile    string
	jsonOutput bool
	seedFile   string
	startDate  string
	appConfig  *config.Config
	tokens     tokenstore.Store
)

var rootCmd = &cobra.Command{
	Use:   "carrot",
	Short: "A calendar strip with a todo list per day",
	Long: `carrot shows an endless strip of days with a todo list for the selected
day. Run it without arguments in a terminal to open the interactive view;
when stdout is not a terminal it prints the agenda of the selected day.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		if err := logs.Initialize(appConfig.LogPath()); err != nil {
			return fmt.Errorf("initializing log: %w", err)
		}

		var err error
		tokens, err = tokenstore.Open(appConfig.TokenStore, appConfig.DataDir)
		if err != nil {
			return fmt.Errorf("initializing token store: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := resolveStart(startDate, time.Now())
		if err != nil {
			return err
		}
		seed, err := loadSeed(seedFile, start)
		if err != nil {
			return err
		}

		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return agendaRun(os.Stdout, start, seed, jsonOutput)
		}
		return ui.RunTUI(ui.Options{
			Theme:        ui.ResolveTheme(appConfig.Theme),
			Locale:       calendar.ResolveLocale(appConfig.Locale),
			Window:       appConfig.Calendar.WindowOptions(),
			FollowScroll: appConfig.Calendar.FollowScroll,
			MaxTitle:     appConfig.Todo.MaxTitle,
			Start:        start,
			Seed:         seed,
		})
	},
}

// Execute runs the root command. The token store and log file opened by the
// pre-run hook are closed whether or not the command succeeds.
func Execute() (err error) {
	defer func() {
		if cerr := closeResources(); err == nil {
			err = cerr
		}
	}()
	return rootCmd.Execute()
}

func loadConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	appConfig = cfg
	return nil
}

func closeResources() error {
	var err error
	if tokens != nil {
		err = tokens.Close()
		tokens = nil
	}
	if lerr := logs.Close(); err == nil {
		err = lerr
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.Flags().StringVar(&seedFile, "seed", "", "markdown checklist to pre-load")
	rootCmd.Flags().StringVar(&startDate, "date", "", "initially selected day (YYYY-MM-DD)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func resolveStart(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return calendar.Normalize(now), nil
	}
	t, err := calendar.ParseDay(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: %w", s, err)
	}
	return t, nil
}

// loadSeed reads a checklist file. Sections without a date land on fallback.
func loadSeed(path string, fallback time.Time) ([]checklist.Day, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed: %w", err)
	}
	defer f.Close()

	days, err := checklist.Parse(f, fallback.Format(calendar.KeyLayout))
	if err != nil {
		return nil, fmt.Errorf("parsing seed %s: %w", path, err)
	}
	return days, nil
}

// agendaRun prints the todos of day, seeded from a checklist.
func agendaRun(w io.Writer, day time.Time, seed []checklist.Day, asJSON bool) error {
	store := todo.NewStore(nil, todo.WithMaxTitle(appConfig.Todo.MaxTitle))
	checklist.Apply(store, seed)

	key := day.Format(calendar.KeyLayout)
	agenda := ui.BuildAgenda(key, store.ListOn(key))
	if asJSON {
		return ui.FormatJSON(w, agenda)
	}
	ui.FormatAgenda(w, agenda, calendar.ResolveLocale(appConfig.Locale))
	return nil
}

// newSession builds a session against the configured backend.
func newSession() (*session.Session, error) {
	id, err := api.DeviceID(filepath.Join(appConfig.DataDir, "device_id"))
	if err != nil {
		return nil, err
	}
	return session.New(api.New(appConfig.APIURL, id), tokens), nil
}
