package ui

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/roveo/dirnav/internal/compose"
	"github.com/sahilm/fuzzy"
	"golang.org/x/term"
)

// renderer uses stderr to avoid polluting stdout, which the shell host owns.
// We use ANSI profile to avoid terminal queries for color support detection
var renderer *lipgloss.Renderer

// Styles using terminal theme colors (ANSI)
var (
	selectedStyle lipgloss.Style
	normalStyle   lipgloss.Style
	helpStyle     lipgloss.Style
	matchStyle    lipgloss.Style
	promptStyle   lipgloss.Style
)

func init() {
	// Set the default termenv output to stderr BEFORE any terminal queries happen
	output := termenv.NewOutput(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	termenv.SetDefaultOutput(output)

	renderer = lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	lipgloss.SetDefaultRenderer(renderer)

	selectedStyle = renderer.NewStyle().Foreground(lipgloss.ANSIColor(6)).Bold(true)   // cyan
	normalStyle = renderer.NewStyle()                                                  // default
	helpStyle = renderer.NewStyle().Faint(true)                                        // dimmed
	matchStyle = renderer.NewStyle().Foreground(lipgloss.ANSIColor(6)).Underline(true) // cyan
	promptStyle = renderer.NewStyle().Foreground(lipgloss.ANSIColor(6))                // cyan
}

// Interactive reports whether stdin is a terminal the picker can read keys from
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// pickerModel is a minimal fzf-like picker over dirmap keys
type pickerModel struct {
	keys     []string
	filtered []int // indices into keys
	matches  []fuzzy.Match
	cursor   int
	input    textinput.Model
	selected bool
	quitting bool
	height   int
}

// pickerKeys returns keys with the reserved list key appended when missing
func pickerKeys(keys []string) []string {
	out := slices.Clone(keys)
	if !slices.Contains(out, compose.ListKey) {
		out = append(out, compose.ListKey)
	}
	return out
}

func newPickerModel(keys []string) pickerModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle
	ti.Focus()

	m := pickerModel{
		keys:   keys,
		input:  ti,
		height: 10,
	}
	m.updateFilter()
	return m
}

func (m *pickerModel) updateFilter() {
	query := m.input.Value()
	if query == "" {
		m.filtered = make([]int, len(m.keys))
		for i := range m.keys {
			m.filtered[i] = i
		}
		m.matches = nil
	} else {
		m.matches = fuzzy.Find(query, m.keys)
		m.filtered = make([]int, len(m.matches))
		for i, match := range m.matches {
			m.filtered[i] = match.Index
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

// choice returns the highlighted key, or "" when nothing matches
func (m pickerModel) choice() string {
	if len(m.filtered) == 0 {
		return ""
	}
	return m.keys[m.filtered[m.cursor]]
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = min(msg.Height-3, 20) // Leave room for input and help
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			if len(m.filtered) > 0 {
				m.selected = true
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil

		case tea.KeyUp, tea.KeyCtrlP:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case tea.KeyDown, tea.KeyCtrlN:
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.updateFilter()

	return m, cmd
}

func (m pickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	visible := min(len(m.filtered), m.height)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}

	for i := start; i < start+visible && i < len(m.filtered); i++ {
		key := m.keys[m.filtered[i]]

		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + key))
		} else if m.matches != nil && i < len(m.matches) {
			b.WriteString("  " + highlightMatches(key, m.matches[i].MatchedIndexes))
		} else {
			b.WriteString(normalStyle.Render("  " + key))
		}
		b.WriteString("\n")
	}

	countInfo := fmt.Sprintf("%d/%d", len(m.filtered), len(m.keys))
	b.WriteString(helpStyle.Render(countInfo + "  enter:select  esc:quit"))

	return b.String()
}

func highlightMatches(s string, indices []int) string {
	if len(indices) == 0 {
		return normalStyle.Render(s)
	}

	var b strings.Builder
	matchSet := make(map[int]bool)
	for _, idx := range indices {
		matchSet[idx] = true
	}

	for i, r := range s {
		if matchSet[i] {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteString(normalStyle.Render(string(r)))
		}
	}
	return b.String()
}

// PickKey shows an interactive picker over keys (plus "list").
// Returns "" when the user cancels.
func PickKey(keys []string) (string, error) {
	m := newPickerModel(pickerKeys(keys))

	// Redirect stdout to stderr during TUI to keep escape sequences off stdout
	stdout := os.Stdout
	os.Stdout = os.Stderr
	defer func() { os.Stdout = stdout }()

	p := tea.NewProgram(m, tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	result := finalModel.(pickerModel)
	if !result.selected {
		return "", nil
	}
	return result.choice(), nil
}
