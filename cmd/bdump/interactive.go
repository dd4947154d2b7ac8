package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wirebit/bencode"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// node is one row of the browser: a value plus its expansion state.
type node struct {
	label    string
	val      *bencode.Value
	depth    int
	children []*node
	expanded bool
}

func buildNode(label string, val *bencode.Value, depth int) *node {
	n := &node{label: label, val: val, depth: depth}
	switch val.Kind() {
	case bencode.KindDict:
		for _, key := range val.Keys() {
			child, _ := val.Get(key)
			n.children = append(n.children, buildNode(key, child, depth+1))
		}
	case bencode.KindList:
		for i, child := range val.List() {
			n.children = append(n.children, buildNode(fmt.Sprintf("[%d]", i), child, depth+1))
		}
	}
	// Top levels start open so the file shape is visible immediately.
	n.expanded = depth < 2
	return n
}

// visible appends the rows currently shown, honoring expansion state.
func (n *node) visible(out []*node) []*node {
	out = append(out, n)
	if n.expanded {
		for _, c := range n.children {
			out = c.visible(out)
		}
	}
	return out
}

type browserModel struct {
	err      error
	filename string
	maxDepth int
	root     *node
	rows     []*node
	cursor   int
	vp       viewport.Model
	ready    bool
	styles   treeStyles
}

type parsedMsg struct {
	err  error
	root *node
}

func newBrowserModel(filename string, maxDepth int) *browserModel {
	return &browserModel{
		filename: filename,
		maxDepth: maxDepth,
		styles:   newTreeStyles(true),
	}
}

func (m *browserModel) Init() tea.Cmd {
	return m.parseFile
}

func (m *browserModel) parseFile() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return parsedMsg{err: err}
	}
	val, err := bencode.ParseWithOptions(data, bencode.ParseOptions{MaxDepth: m.maxDepth})
	if err != nil {
		return parsedMsg{err: describeParseError(err, data)}
	}
	return parsedMsg{root: buildNode("", val, 0)}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}

		case "enter", " ":
			if m.cursor < len(m.rows) {
				n := m.rows[m.cursor]
				if len(n.children) > 0 {
					n.expanded = !n.expanded
				}
			}

		case "right", "l":
			if m.cursor < len(m.rows) && len(m.rows[m.cursor].children) > 0 {
				m.rows[m.cursor].expanded = true
			}

		case "left", "h":
			if m.cursor < len(m.rows) {
				n := m.rows[m.cursor]
				if n.expanded {
					n.expanded = false
				} else {
					m.cursor = m.parentIndex(m.cursor)
				}
			}
		}
		m.refresh()

	case tea.WindowSizeMsg:
		// Title and help each take one line plus a blank separator.
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-4)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - 4
		}
		m.refresh()

	case parsedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.root = msg.root
		m.refresh()
	}

	return m, nil
}

// parentIndex returns the index of the nearest preceding row with a
// smaller depth, or the index itself at the root.
func (m *browserModel) parentIndex(i int) int {
	depth := m.rows[i].depth
	for j := i - 1; j >= 0; j-- {
		if m.rows[j].depth < depth {
			return j
		}
	}
	return i
}

// refresh rebuilds the visible rows and keeps the cursor in view.
func (m *browserModel) refresh() {
	if m.root == nil || !m.ready {
		return
	}
	m.rows = m.root.visible(nil)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}

	var b strings.Builder
	for i, n := range m.rows {
		line := m.renderRow(n)
		if i == m.cursor {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	m.vp.SetContent(b.String())

	if m.cursor < m.vp.YOffset {
		m.vp.SetYOffset(m.cursor)
	} else if m.cursor >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(m.cursor - m.vp.Height + 1)
	}
}

func (m *browserModel) renderRow(n *node) string {
	indent := strings.Repeat("  ", n.depth)
	label := ""
	if n.label != "" {
		label = m.styles.key.Render(n.label) + ": "
	}

	switch n.val.Kind() {
	case bencode.KindDict, bencode.KindList:
		marker := "▸"
		if n.expanded {
			marker = "▾"
		}
		kind := "dictionary"
		count := countSuffix(n.val.Len(), "entry", "entries")
		if n.val.Kind() == bencode.KindList {
			kind = "list"
			count = countSuffix(n.val.Len(), "element", "elements")
		}
		return indent + marker + " " + label + m.styles.kind.Render(kind) + " " + m.styles.dim.Render(count)
	case bencode.KindInteger:
		return indent + "  " + label + m.styles.num.Render(n.val.Integer().String())
	default:
		return indent + "  " + label + summarizeBytes(m.styles, n.val.Bytes())
	}
}

func (m *browserModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if !m.ready || m.root == nil {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("bdump"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move • enter expand/collapse • ←/→ fold • q quit"))
	return b.String()
}

func runInteractive(filename string, maxDepth int) error {
	p := tea.NewProgram(newBrowserModel(filename, maxDepth), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
