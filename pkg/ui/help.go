package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const helpMarkdown = `# nlens

Interactive viewer for named 3D landmarks.

## Search

| Key | Action |
|-----|--------|
| ` + "`/`" + ` | focus the search box |
| ` + "`esc` / `enter`" + ` | leave the search box |
| ` + "`s`" + ` | cycle hemisphere Left → Right → Both |
| ` + "`tab` / `f`" + ` | toggle the filter panel |

Queries split on space, semicolon, comma and tab; each token is a
case-sensitive name prefix and ` + "`*`" + ` matches everything.

## Plot

| Key | Action |
|-----|--------|
| ` + "`h j k l` / arrows" + ` | pan the primary view |
| ` + "`+` / `-`" + ` | zoom in / out |
| ` + "`r`" + ` | reset the view |
| mouse wheel | zoom at the cursor |
| left drag | pan |
| right drag | box zoom |
| mouse move | cursor linking into the side views |

Hovering the primary view slices the two side views to a slab around
the cursor and highlights any landmark within 0.35 of it.

## Misc

| Key | Action |
|-----|--------|
| ` + "`y`" + ` | copy highlighted landmark names |
| ` + "`ctrl+s`" + ` | export a snapshot (landmarks.svg) |
| ` + "`?`" + ` | toggle this help |
| ` + "`q` / `ctrl+c`" + ` | quit |
`

// helpOverlay renders the key reference with glamour inside a scrolling
// viewport.
type helpOverlay struct {
	vp      viewport.Model
	ready   bool
	content string
}

func (h *helpOverlay) setSize(w, height int) {
	if w < 20 {
		w = 20
	}
	if h.content == "" {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(w-4),
		)
		if err == nil {
			if out, rerr := renderer.Render(helpMarkdown); rerr == nil {
				h.content = strings.TrimRight(out, "\n")
			}
		}
		if h.content == "" {
			h.content = helpMarkdown
		}
	}
	if !h.ready {
		h.vp = viewport.New(w, height)
		h.vp.SetContent(h.content)
		h.ready = true
		return
	}
	h.vp.Width = w
	h.vp.Height = height
}

func (h *helpOverlay) view(r *lipgloss.Renderer) string {
	if !h.ready {
		return ""
	}
	return r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 1).
		Render(h.vp.View())
}
