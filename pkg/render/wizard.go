// This file implements the interactive snapshot wizard for the --wizard
// flag. It guides users through exporting the current landmark view to
// an SVG or PNG image.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	json "github.com/goccy/go-json"
	"golang.org/x/term"

	"github.com/neurolens/neurolens/pkg/config"
)

// WizardConfig holds the snapshot options collected by the wizard.
type WizardConfig struct {
	Path   string `json:"path"`
	Format string `json:"format"` // "svg" or "png"
	Title  string `json:"title"`
	Dark   bool   `json:"dark"`
}

// Wizard walks the user through configuring a snapshot export.
type Wizard struct {
	config *WizardConfig
}

// NewWizard creates a snapshot wizard with sensible defaults.
func NewWizard() *Wizard {
	return &Wizard{
		config: &WizardConfig{
			Path:   "landmarks.svg",
			Format: "svg",
			Title:  "Landmark Snapshot",
		},
	}
}

// isTerminal checks if stdin is connected to a terminal
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// newForm creates a form with appropriate settings based on TTY detection
func newForm(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
	if !isTerminal() {
		form = form.WithAccessible(true)
	}
	return form
}

// Run executes the interactive wizard flow and returns the collected
// snapshot configuration.
func (w *Wizard) Run() (*WizardConfig, error) {
	saved, err := LoadWizardConfig()
	if err == nil && saved != nil && saved.Path != "" {
		useSaved, err := w.offerSavedConfig(saved)
		if err != nil {
			return nil, err
		}
		if useSaved {
			w.config = saved
			return w.config, nil
		}
	}

	if err := w.collectFormat(); err != nil {
		return nil, err
	}
	if err := w.collectOutput(); err != nil {
		return nil, err
	}

	if err := SaveWizardConfig(w.config); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not save wizard settings: %v\n", err)
	}
	return w.config, nil
}

func (w *Wizard) offerSavedConfig(saved *WizardConfig) (bool, error) {
	fmt.Println("Found previous snapshot configuration:")
	fmt.Printf("  Format: %s\n", saved.Format)
	fmt.Printf("  Path:   %s\n", saved.Path)
	if saved.Title != "" {
		fmt.Printf("  Title:  %s\n", saved.Title)
	}
	fmt.Println("")

	var useSaved bool = true
	form := newForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Export with these settings?").
				Description("Select No to reconfigure").
				Value(&useSaved).
				Affirmative("Yes, export").
				Negative("No, reconfigure"),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}

	fmt.Println("")
	return useSaved, nil
}

func (w *Wizard) collectFormat() error {
	form := newForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Snapshot format").
				Options(
					huh.NewOption("SVG (scalable, small files)", "svg"),
					huh.NewOption("PNG (raster image)", "png"),
				).
				Value(&w.config.Format),
			huh.NewConfirm().
				Title("Dark background?").
				Value(&w.config.Dark),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	fmt.Println("")
	return nil
}

func (w *Wizard) collectOutput() error {
	defaultPath := "landmarks." + w.config.Format
	path := defaultPath
	title := w.config.Title

	form := newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output path").
				Value(&path).
				Placeholder(defaultPath),
			huh.NewInput().
				Title("Snapshot title").
				Value(&title).
				Placeholder("Landmark Snapshot"),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if path != "" {
		w.config.Path = path
	} else {
		w.config.Path = defaultPath
	}
	if title != "" {
		w.config.Title = title
	}

	fmt.Println("")
	return nil
}

// WizardConfigPath returns the path to the saved wizard settings.
func WizardConfigPath() string {
	dir := config.ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "snapshot-wizard.json")
}

// LoadWizardConfig loads previously saved wizard settings.
func LoadWizardConfig() (*WizardConfig, error) {
	path := WizardConfigPath()
	if path == "" {
		return nil, fmt.Errorf("could not determine config path")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var cfg WizardConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveWizardConfig saves wizard settings for future runs.
func SaveWizardConfig(cfg *WizardConfig) error {
	path := WizardConfigPath()
	if path == "" {
		return fmt.Errorf("could not determine config path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
