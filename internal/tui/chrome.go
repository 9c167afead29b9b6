// Package tui binds the dashboard controllers to bubbletea models: keys become
// controller operations and every frame is drawn by the render package.
package tui

import (
	"fmt"
	"strings"

	"github.com/admin-dashboard/internal/render"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chrome is what both dashboards share: search input, spinner, help and the
// dispatcher loop.
type chrome struct {
	keys       keyMap
	help       help.Model
	spinner    spinner.Model
	search     textinput.Model
	searching  bool
	spinning   bool
	cursor     int
	pageSize   int
	dispatcher *Dispatcher
	width      int
	height     int
}

func newChrome(keys keyMap, d *Dispatcher, pageSize int) chrome {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))

	search := textinput.New()
	search.Prompt = ""
	search.Placeholder = "name, email or phone"
	search.CharLimit = 64

	if d == nil {
		d = NewDispatcher()
	}
	return chrome{
		keys:       keys,
		help:       help.New(),
		spinner:    s,
		search:     search,
		pageSize:   pageSize,
		dispatcher: d,
	}
}

// page returns the bounds of the page of n rows that holds the cursor
func (c *chrome) page(n int) (start, end int) {
	if c.pageSize <= 0 || n <= c.pageSize {
		return 0, n
	}
	start = c.cursor / c.pageSize * c.pageSize
	return start, min(start+c.pageSize, n)
}

// pageInfo renders "11-20 of 23" when the rows do not fit one page
func (c *chrome) pageInfo(start, end, n int) string {
	if start == 0 && end == n {
		return ""
	}
	return render.Muted(fmt.Sprintf("%d-%d of %d", start+1, end, n))
}

// startSpinner ticks the spinner while loading reports true
func (c *chrome) startSpinner(loading bool) tea.Cmd {
	if !loading || c.spinning {
		return nil
	}
	c.spinning = true
	return c.spinner.Tick
}

func (c *chrome) tickSpinner(msg spinner.TickMsg, loading bool) tea.Cmd {
	if !loading {
		c.spinning = false
		return nil
	}
	var cmd tea.Cmd
	c.spinner, cmd = c.spinner.Update(msg)
	return cmd
}

func (c *chrome) resize(msg tea.WindowSizeMsg) {
	c.width = msg.Width
	c.height = msg.Height
	c.help.Width = msg.Width
}

// moveCursor handles up/down over n rows and reports whether msg was one of them
func (c *chrome) moveCursor(msg tea.KeyMsg, n int) bool {
	switch {
	case key.Matches(msg, c.keys.Up):
		if c.cursor > 0 {
			c.cursor--
		}
	case key.Matches(msg, c.keys.Down):
		if c.cursor < n-1 {
			c.cursor++
		}
	default:
		return false
	}
	return true
}

func (c *chrome) clampCursor(n int) {
	if c.cursor >= n {
		c.cursor = n - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
}

func (c *chrome) openSearch() tea.Cmd {
	c.searching = true
	return c.search.Focus()
}

func (c *chrome) closeSearch() {
	c.searching = false
	c.search.Blur()
}

// frame lays out one screen: header, search bar, body, status and help
func (c *chrome) frame(header, body, pager, status string, clearVisible, loading bool, modal string) string {
	var b strings.Builder
	b.WriteString(render.Header(header))
	if loading {
		b.WriteString("  " + c.spinner.View())
	}
	b.WriteString("\n\n")
	b.WriteString(render.SearchBar(c.search.View(), clearVisible))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	if pager != "" {
		b.WriteString(pager + "\n")
	}
	if status != "" {
		b.WriteString("\n" + status + "\n")
	}
	if modal != "" {
		b.WriteString("\n" + modal + "\n")
	}
	b.WriteString("\n" + c.help.View(c.keys))
	return b.String()
}
