// Command nlens is an interactive terminal viewer for a fixed set of
// named 3D anatomical landmarks. It filters the set by name prefix and
// hemisphere and shows a primary X-Y projection plus two auxiliary
// orthogonal projections linked to the cursor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/neurolens/neurolens/internal/datasource"
	"github.com/neurolens/neurolens/pkg/config"
	"github.com/neurolens/neurolens/pkg/filter"
	"github.com/neurolens/neurolens/pkg/model"
	"github.com/neurolens/neurolens/pkg/render"
	"github.com/neurolens/neurolens/pkg/store"
	"github.com/neurolens/neurolens/pkg/ui"
	"github.com/neurolens/neurolens/pkg/version"
	"github.com/neurolens/neurolens/pkg/watcher"
)

func main() {
	versionFlag := flag.Bool("version", false, "Show version")
	help := flag.Bool("help", false, "Show help")
	dataset := flag.String("dataset", "", "Dataset file (.csv or .db/.sqlite); default is the embedded set")
	snapshot := flag.String("snapshot", "", "Render a snapshot to the given file (.svg or .png) instead of the TUI")
	format := flag.String("format", "", "Snapshot format override (svg or png)")
	wizardFlag := flag.Bool("wizard", false, "Interactive snapshot export wizard")
	query := flag.String("query", "", "Initial search query (overrides saved state)")
	side := flag.String("side", "", "Initial hemisphere: Left, Right or Both (overrides saved state)")
	noWatch := flag.Bool("no-watch", false, "Disable dataset live reload")
	flag.Parse()

	if *versionFlag {
		fmt.Println("nlens " + version.Version)
		return
	}
	if *help {
		fmt.Println("nlens - interactive 3D landmark viewer")
		fmt.Println("")
		flag.PrintDefaults()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		cfg = config.DefaultConfig()
	}

	datasetPath := *dataset
	if datasetPath == "" {
		datasetPath = cfg.Dataset.Path
	}

	st, err := datasource.Load(datasetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		os.Exit(1)
	}
	if st.Len() == 0 {
		fmt.Fprintln(os.Stderr, "Error: dataset contains no landmarks")
		os.Exit(1)
	}

	state := config.LoadState()
	if *query != "" {
		state.Query = *query
	}
	if *side != "" {
		state.Side = *side
	}

	if *wizardFlag {
		if err := runWizard(st, state, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *snapshot != "" {
		if err := saveSnapshot(st, state, cfg, *snapshot, *format); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Snapshot saved to " + *snapshot)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal (use --snapshot for non-interactive output)")
		os.Exit(1)
	}

	var fileWatcher *watcher.Watcher
	if datasetPath != "" && cfg.WatchEnabled() && !*noWatch {
		w, werr := watcher.New(datasetPath,
			watcher.WithDebounceDuration(200*time.Millisecond),
		)
		if werr == nil && w.Start() == nil {
			fileWatcher = w
		}
	}

	m := ui.NewModel(ui.Options{
		Store:       st,
		Config:      cfg,
		State:       state,
		DatasetPath: datasetPath,
		Watcher:     fileWatcher,
		Reload: func() (*store.Store, error) {
			return datasource.Load(datasetPath)
		},
		Version: version.Version,
	})

	if err := runTUIProgram(m); err != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		os.Exit(1)
	}
}

func visiblePoints(st *store.Store, state config.State) []model.Point {
	return filter.Visible(st, state.Query, model.ParseSide(state.Side))
}

func snapshotOptions(st *store.Store, state config.State, cfg config.Config, path string) render.SnapshotOptions {
	return render.SnapshotOptions{
		Path:   path,
		Title:  "Landmark Snapshot",
		Points: visiblePoints(st, state),
		Query:  state.Query,
		Side:   model.ParseSide(state.Side),
		Dark:   cfg.UI.Theme == "dark",
	}
}

func saveSnapshot(st *store.Store, state config.State, cfg config.Config, path, format string) error {
	opts := snapshotOptions(st, state, cfg, path)
	opts.Format = format
	return render.SaveSnapshot(opts)
}

func runWizard(st *store.Store, state config.State, cfg config.Config) error {
	wiz := render.NewWizard()
	wcfg, err := wiz.Run()
	if err != nil {
		return err
	}
	opts := snapshotOptions(st, state, cfg, wcfg.Path)
	opts.Format = wcfg.Format
	opts.Title = wcfg.Title
	opts.Dark = wcfg.Dark
	if err := render.SaveSnapshot(opts); err != nil {
		return err
	}
	fmt.Println("Snapshot saved to " + wcfg.Path)
	return nil
}

func runTUIProgram(m ui.Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithoutSignalHandler(),
	)

	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	_, err := p.Run()
	if err != nil && (errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted)) {
		return nil
	}
	return err
}
