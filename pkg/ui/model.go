package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/neurolens/neurolens/pkg/config"
	"github.com/neurolens/neurolens/pkg/filter"
	"github.com/neurolens/neurolens/pkg/model"
	"github.com/neurolens/neurolens/pkg/plot"
	"github.com/neurolens/neurolens/pkg/render"
	"github.com/neurolens/neurolens/pkg/store"
	"github.com/neurolens/neurolens/pkg/watcher"
)

// Pane sizing (cells)
const (
	listPaneWidth   = 30
	minPlotWidth    = 20
	minPlotHeight   = 6
	headerRows      = 2 // title line + search line
	footerRows      = 1
	statusDuration  = 4 * time.Second
	defaultSnapshot = "landmarks.svg"
)

// focus represents which UI element has keyboard focus
type focus int

const (
	focusPlot focus = iota
	focusSearch
	focusHelp
)

// FileChangedMsg is sent when the dataset file changes on disk
type FileChangedMsg struct{}

// statusExpiredMsg clears a transient status message
type statusExpiredMsg struct{ id int }

// WatchFileCmd returns a command that waits for the next file change and
// sends FileChangedMsg
func WatchFileCmd(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Changed(); !ok {
			return nil
		}
		return FileChangedMsg{}
	}
}

func expireStatusCmd(id int) tea.Cmd {
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return statusExpiredMsg{id: id}
	})
}

// paneRect is a pane's content area in terminal cells, border excluded.
type paneRect struct {
	X, Y, W, H int
}

func (r paneRect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type paneLayout struct {
	list     paneRect
	primary  paneRect
	anterior paneRect
	dorsal   paneRect
}

// Options configures a new Model.
type Options struct {
	Store       *store.Store
	Config      config.Config
	State       config.State
	DatasetPath string
	Watcher     *watcher.Watcher
	Reload      func() (*store.Store, error)
	Version     string
}

// Model is the top-level bubbletea model for the viewer.
type Model struct {
	store       *store.Store
	datasetPath string
	watcher     *watcher.Watcher
	reload      func() (*store.Store, error)
	version     string

	theme    Theme
	renderer *lipgloss.Renderer
	dark     bool

	search        textinput.Model
	side          model.Side
	showSidePanel bool

	primary  plot.View
	anterior plot.View
	dorsal   plot.View
	hover    plot.Hover

	focus focus
	help  helpOverlay
	list  listPane

	width, height int
	lay           paneLayout

	dragging  bool
	dragPos   r2.Vec // data-space anchor of a left drag
	boxActive bool
	boxStart  r2.Vec // data-space corner of a right drag

	status    string
	statusErr bool
	statusID  int

	quitting bool
}

// NewModel builds the initial model from loaded data and persisted state.
func NewModel(opts Options) Model {
	renderer := lipgloss.DefaultRenderer()

	dark := renderer.HasDarkBackground()
	switch opts.Config.UI.Theme {
	case "dark":
		dark = true
	case "light":
		dark = false
	}

	search := textinput.New()
	search.Prompt = ""
	search.Placeholder = filter.Wildcard
	search.CharLimit = 64
	search.Width = 24
	search.SetValue(opts.State.Query)

	showPanel := opts.State.ShowSidePanel
	if opts.Config.UI.ShowSidePanel != nil {
		showPanel = *opts.Config.UI.ShowSidePanel
	}

	primary := plot.NewView(plot.FitBounds(opts.Store.Points()))
	m := Model{
		store:         opts.Store,
		datasetPath:   opts.DatasetPath,
		watcher:       opts.Watcher,
		reload:        opts.Reload,
		version:       opts.Version,
		theme:         DefaultTheme(renderer),
		renderer:      renderer,
		dark:          dark,
		search:        search,
		side:          model.ParseSide(opts.State.Side),
		showSidePanel: showPanel,
		primary:       primary,
		anterior:      plot.NewView(plot.DefaultAnteriorBounds()),
		dorsal:        plot.NewView(plot.DefaultDorsalBounds(primary.Bounds())),
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.watcher != nil {
		cmds = append(cmds, WatchFileCmd(m.watcher))
	}
	return tea.Batch(cmds...)
}

// visible returns the filtered, name-sorted point set for this redraw.
func (m Model) visible() []model.Point {
	return filter.Visible(m.store, m.query(), m.side)
}

func (m Model) query() string {
	q := m.search.Value()
	if q == "" {
		q = filter.Wildcard
	}
	return q
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layoutPanes()
		m.help.setSize(min(m.width-4, 72), m.height-4)
		return m, nil

	case FileChangedMsg:
		return m.handleFileChanged()

	case statusExpiredMsg:
		if msg.id == m.statusID {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleFileChanged() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.watcher != nil {
		cmds = append(cmds, WatchFileCmd(m.watcher))
	}
	if m.reload == nil {
		return m, tea.Batch(cmds...)
	}
	st, err := m.reload()
	if err != nil {
		m, cmd := m.setStatus(fmt.Sprintf("reload failed: %v", err), true)
		return m, tea.Batch(append(cmds, cmd)...)
	}
	m.store = st
	m, cmd := m.setStatus(fmt.Sprintf("dataset reloaded (%d landmarks)", st.Len()), false)
	return m, tea.Batch(append(cmds, cmd)...)
}

func (m Model) setStatus(s string, isErr bool) (Model, tea.Cmd) {
	m.statusID++
	m.status = s
	m.statusErr = isErr
	return m, expireStatusCmd(m.statusID)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	switch m.focus {
	case focusHelp:
		return m.handleHelpKeys(msg)
	case focusSearch:
		return m.handleSearchKeys(msg)
	}
	return m.handlePlotKeys(msg)
}

func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q":
		m.focus = focusPlot
		return m, nil
	}
	var cmd tea.Cmd
	m.help.vp, cmd = m.help.vp.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.focus = focusPlot
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) handlePlotKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.quit()

	case "/":
		m.focus = focusSearch
		return m, m.search.Focus()

	case "s":
		m.side = m.side.Next()
		return m, nil

	case "tab", "f":
		m.showSidePanel = !m.showSidePanel
		m.layoutPanes()
		return m, nil

	case "r":
		m.primary.Reset()
		m.anterior.Reset()
		m.dorsal.Reset()
		return m, nil

	case "+", "=":
		m.zoomPrimary(0.8, m.primaryCenter())
		return m, nil

	case "-", "_":
		m.zoomPrimary(1.25, m.primaryCenter())
		return m, nil

	case "left", "h":
		m.primary.Pan(-m.panStep(), 0)
		return m, nil
	case "right", "l":
		m.primary.Pan(m.panStep(), 0)
		return m, nil
	case "up", "k":
		m.primary.Pan(0, m.panStepY())
		return m, nil
	case "down", "j":
		m.primary.Pan(0, -m.panStepY())
		return m, nil

	case "pgup":
		m.list.scrollBy(-m.lay.list.H, m.lay.list.H, len(m.visible()))
		return m, nil
	case "pgdown":
		m.list.scrollBy(m.lay.list.H, m.lay.list.H, len(m.visible()))
		return m, nil

	case "y":
		return m.copyHighlighted()

	case "ctrl+s":
		return m.saveSnapshot()

	case "?":
		m.focus = focusHelp
		m.help.setSize(min(m.width-4, 72), m.height-4)
		return m, nil
	}
	return m, nil
}

func (m *Model) zoomPrimary(factor float64, at r2.Vec) {
	m.primary.ZoomAt(factor, at)
}

func (m Model) primaryCenter() r2.Vec {
	b := m.primary.Bounds()
	return r2.Vec{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

func (m Model) panStep() float64  { return m.primary.Bounds().Width() * 0.05 }
func (m Model) panStepY() float64 { return m.primary.Bounds().Height() * 0.05 }

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.watcher != nil {
		m.watcher.Stop()
	}
	// best effort, the session should not fail on a read-only home
	_ = config.SaveState(config.State{
		Query:         m.search.Value(),
		Side:          m.side.String(),
		ShowSidePanel: m.showSidePanel,
	})
	return m, tea.Quit
}

func (m Model) copyHighlighted() (tea.Model, tea.Cmd) {
	if !m.hover.OK {
		m, cmd := m.setStatus("nothing highlighted", false)
		return m, cmd
	}
	var names []string
	for _, p := range m.visible() {
		if plot.Highlighted(p, m.hover) {
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 {
		m, cmd := m.setStatus("nothing highlighted", false)
		return m, cmd
	}
	if err := clipboard.WriteAll(strings.Join(names, " ")); err != nil {
		m, cmd := m.setStatus(fmt.Sprintf("clipboard: %v", err), true)
		return m, cmd
	}
	m, cmd := m.setStatus(fmt.Sprintf("copied %s", strings.Join(names, " ")), false)
	return m, cmd
}

func (m Model) saveSnapshot() (tea.Model, tea.Cmd) {
	err := render.SaveSnapshot(render.SnapshotOptions{
		Path:   defaultSnapshot,
		Title:  "Landmark Snapshot",
		Points: m.visible(),
		Query:  m.query(),
		Side:   m.side,
		Hover:  m.hover,
		Dark:   m.dark,
	})
	if err != nil {
		m, cmd := m.setStatus(fmt.Sprintf("snapshot: %v", err), true)
		return m, cmd
	}
	m, cmd := m.setStatus("snapshot saved to "+defaultSnapshot, false)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.focus == focusHelp {
		return m, nil
	}

	inPrimary := m.lay.primary.contains(msg.X, msg.Y)
	if inPrimary {
		m.hover = plot.Hover{Pos: m.primaryDataAt(msg.X, msg.Y), OK: true}
	} else if !m.dragging && !m.boxActive {
		m.hover = plot.Hover{}
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if inPrimary {
			m.zoomPrimary(0.9, m.hover.Pos)
		} else if m.lay.list.contains(msg.X, msg.Y) {
			m.list.scrollBy(-3, m.lay.list.H, len(m.visible()))
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if inPrimary {
			m.zoomPrimary(1.1, m.hover.Pos)
		} else if m.lay.list.contains(msg.X, msg.Y) {
			m.list.scrollBy(3, m.lay.list.H, len(m.visible()))
		}
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if !inPrimary {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.dragging = true
			m.dragPos = m.primaryDataAt(msg.X, msg.Y)
		case tea.MouseButtonRight:
			m.boxActive = true
			m.boxStart = m.primaryDataAt(msg.X, msg.Y)
		}

	case tea.MouseActionMotion:
		if m.dragging {
			cur := m.primaryDataAt(msg.X, msg.Y)
			m.primary.Pan(m.dragPos.X-cur.X, m.dragPos.Y-cur.Y)
		}

	case tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
		}
		if m.boxActive {
			m.boxActive = false
			end := m.primaryDataAt(msg.X, msg.Y)
			m.primary.BoxZoom(plot.Bounds{
				MinX: m.boxStart.X, MaxX: end.X,
				MinY: m.boxStart.Y, MaxY: end.Y,
			})
		}
	}
	return m, nil
}

// primaryDataAt maps a terminal position to data space of the primary view.
func (m Model) primaryDataAt(x, y int) r2.Vec {
	r := m.lay.primary
	f := plot.Frame{Bounds: m.primary.Bounds()}
	return DataAt(f, r.W, r.H, x-r.X, y-r.Y)
}

// layoutPanes splits the window into content rectangles. Each pane is
// drawn with a one-cell border, so content rects start one cell inside.
func (m *Model) layoutPanes() {
	availH := m.height - headerRows - footerRows
	availW := m.width
	if availH < minPlotHeight || availW < minPlotWidth {
		m.lay = paneLayout{}
		return
	}

	x := 0
	if m.showSidePanel {
		lw := listPaneWidth
		if lw > availW/3 {
			lw = availW / 3
		}
		m.lay.list = paneRect{X: 1, Y: headerRows + 1, W: lw - 2, H: availH - 2}
		x = lw
	} else {
		m.lay.list = paneRect{}
	}

	plotW := availW - x
	primaryH := availH * 3 / 5
	auxH := availH - primaryH
	auxW := plotW / 2

	m.lay.primary = paneRect{X: x + 1, Y: headerRows + 1, W: plotW - 2, H: primaryH - 2}
	m.lay.anterior = paneRect{X: x + 1, Y: headerRows + primaryH + 1, W: auxW - 2, H: auxH - 2}
	m.lay.dorsal = paneRect{X: x + auxW + 1, Y: headerRows + primaryH + 1, W: plotW - auxW - 2, H: auxH - 2}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}
	if m.focus == focusHelp {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.help.view(m.renderer))
	}
	if m.lay.primary.W < 1 {
		return "window too small"
	}

	pts := m.visible()

	// dorsal horizontal extent mirrors the primary every frame
	pb := m.primary.Bounds()
	dorsal := m.dorsal
	dorsal.SetHorizontal(pb.MinX, pb.MaxX)

	primaryFrame := plot.PrimaryFrame(pts, m.primary, m.dark)
	anteriorFrame := plot.AnteriorFrame(pts, m.anterior, m.hover, m.dark)
	dorsalFrame := plot.DorsalFrame(pts, dorsal, m.hover, pb.MinX, pb.MaxX, m.dark)

	var cols []string
	if m.showSidePanel && m.lay.list.W > 0 {
		cols = append(cols, m.renderPane(
			m.list.render(m.renderer, pts, m.lay.list.W, m.lay.list.H), false))
	}

	primary := m.renderPane(m.framePane(primaryFrame, m.lay.primary), m.focus == focusPlot)
	anterior := m.renderPane(m.framePane(anteriorFrame, m.lay.anterior), false)
	dorsalPane := m.renderPane(m.framePane(dorsalFrame, m.lay.dorsal), false)
	aux := lipgloss.JoinHorizontal(lipgloss.Top, anterior, dorsalPane)
	cols = append(cols, lipgloss.JoinVertical(lipgloss.Left, primary, aux))

	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	return strings.Join([]string{
		m.headerView(),
		m.searchView(pts),
		body,
		m.footerView(),
	}, "\n")
}

// framePane renders the frame grid with its title on the first row.
func (m Model) framePane(f plot.Frame, r paneRect) string {
	if r.W < 1 || r.H < 2 {
		return ""
	}
	title := PaneTitleStyle.Render(truncateTo(f.Title, r.W))
	gridH := r.H - 1
	caption := ""
	if f.XLabel != "" && r.H >= 8 {
		gridH--
		caption = "\n" + AxisLabelStyle.Width(r.W).Align(lipgloss.Center).
			Render(truncateTo(f.XLabel, r.W))
	}
	grid := RenderFrame(m.renderer, f, r.W, gridH)
	return title + "\n" + grid + caption
}

func (m Model) renderPane(content string, focused bool) string {
	style := PanelStyle
	if focused {
		style = FocusedPanelStyle
	}
	return style.Render(content)
}

func (m Model) headerView() string {
	title := m.theme.Header.Render("nlens " + m.version)
	source := "embedded dataset"
	if m.datasetPath != "" {
		source = m.datasetPath
	}
	return title + " " + StatusBarStyle.Render(source)
}

func (m Model) searchView(pts []model.Point) string {
	parts := []string{
		SearchLabelStyle.Render("Search:"),
		m.search.View(),
		RenderSideBadge(m.theme, m.side.String()),
		StatusBarStyle.Render(fmt.Sprintf("%d/%d landmarks", len(pts), m.store.Len())),
	}
	return " " + strings.Join(parts, "  ")
}

func (m Model) footerView() string {
	if m.status != "" {
		style := StatusBarStyle
		if m.statusErr {
			style = StatusErrorStyle
		}
		return " " + style.Render(m.status)
	}
	hint := "/ search  s side  tab panel  r reset  y copy  ctrl+s snapshot  ? help  q quit"
	if m.hover.OK {
		hint = fmt.Sprintf("cursor (%.1f, %.1f)  %s", m.hover.Pos.X, m.hover.Pos.Y, hint)
	}
	return " " + StatusBarStyle.Render(hint)
}

func truncateTo(s string, w int) string {
	if len(s) <= w {
		return s
	}
	if w < 1 {
		return ""
	}
	return s[:w]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
