package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scytale/scytale/internal/cipher"
	"github.com/scytale/scytale/internal/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Bold(true)

	resultPaneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	gridPaneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))
)

// Input focus slots.
const (
	focusMessage = iota
	focusRod
)

// clearStatusMsg clears the transient status line.
type clearStatusMsg struct{}

// Model is the interactive cipher session: a message input, a rod input, and
// a live result recomputed on every keystroke.
type Model struct {
	message textinput.Model
	rod     textinput.Model

	op       types.Operation
	focus    int
	showGrid bool

	result  string // last successful cipher output
	errText string // InvalidInput shown live instead of a result

	statusMessage string
	width         int
	height        int
	quitting      bool
}

// NewModel initializes the session with the given starting rod length.
func NewModel(rod int) Model {
	msg := textinput.New()
	msg.Placeholder = "type a message"
	msg.Prompt = "> "
	msg.Focus()

	r := textinput.New()
	r.Prompt = "> "
	r.SetValue(strconv.Itoa(rod))
	r.CharLimit = 4
	r.Width = 6

	m := Model{message: msg, rod: r, op: types.OpEncrypt}
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "tab":
			m.focus = (m.focus + 1) % 2
			if m.focus == focusMessage {
				m.message.Focus()
				m.rod.Blur()
			} else {
				m.rod.Focus()
				m.message.Blur()
			}
			return m, nil

		case "ctrl+o":
			if m.op == types.OpEncrypt {
				m.op = types.OpDecrypt
			} else {
				m.op = types.OpEncrypt
			}
			m.recompute()
			return m, nil

		case "ctrl+g":
			m.showGrid = !m.showGrid
			return m, nil

		case "ctrl+y":
			return m.copyResult()
		}
	}

	var cmd tea.Cmd
	if m.focus == focusMessage {
		m.message, cmd = m.message.Update(msg)
	} else {
		m.rod, cmd = m.rod.Update(msg)
	}
	m.recompute()
	return m, cmd
}

// recompute runs the cipher over the current inputs. An invalid rod or a
// ciphertext that does not fit the rod shows as live error text, never as a
// stale result.
func (m *Model) recompute() {
	m.errText = ""
	m.result = ""
	rod, err := strconv.Atoi(strings.TrimSpace(m.rod.Value()))
	if err != nil {
		m.errText = "rod must be an integer"
		return
	}
	var out string
	if m.op == types.OpEncrypt {
		out, err = cipher.Encrypt(m.message.Value(), rod)
	} else {
		out, err = cipher.Decrypt(m.message.Value(), rod)
	}
	if err != nil {
		m.errText = err.Error()
		return
	}
	m.result = out
}

func (m Model) copyResult() (tea.Model, tea.Cmd) {
	if m.result == "" {
		m.statusMessage = "nothing to copy"
	} else if err := clipboard.WriteAll(m.result); err != nil {
		m.statusMessage = "clipboard unavailable"
	} else {
		m.statusMessage = "result copied to clipboard"
	}
	return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// gridView renders the wrap grid for the plaintext side of the current
// operation: the typed message when encrypting, the decoded result when
// decrypting.
func (m Model) gridView() string {
	rod, err := strconv.Atoi(strings.TrimSpace(m.rod.Value()))
	if err != nil {
		return ""
	}
	src := m.message.Value()
	if m.op == types.OpDecrypt {
		src = m.result
	}
	rows, err := cipher.Rows(src, rod)
	if err != nil || len(rows) == 0 {
		return ""
	}
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		cells := make([]string, 0, rod)
		for _, r := range row {
			cells = append(cells, string(r))
		}
		b.WriteString(strings.Join(cells, " "))
	}
	return b.String()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("scytale"))
	b.WriteString("  mode: ")
	b.WriteString(modeStyle.Render(string(m.op)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("message"))
	b.WriteString("\n")
	b.WriteString(m.message.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("rod"))
	b.WriteString("\n")
	b.WriteString(m.rod.View())
	b.WriteString("\n\n")

	switch {
	case m.errText != "":
		b.WriteString(errorStyle.Render(m.errText))
	default:
		b.WriteString(resultPaneStyle.Render(m.result))
	}
	b.WriteString("\n")

	if m.showGrid {
		if g := m.gridView(); g != "" {
			b.WriteString(gridPaneStyle.Render(g))
			b.WriteString("\n")
		}
	}

	if m.statusMessage != "" {
		b.WriteString(statusStyle.Render(" " + m.statusMessage + " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("tab: switch field · ctrl+o: mode · ctrl+g: grid · ctrl+y: copy · esc: quit")
	return b.String()
}
