package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/zeid/internal/nationalid"
)

// inspectModel decodes a national ID live as it is typed.
type inspectModel struct {
	input textinput.Model
	now   func() time.Time
}

func newInspectModel() inspectModel {
	ti := textinput.New()
	ti.Placeholder = "29501023201952"
	ti.Focus()
	ti.CharLimit = nationalid.Length
	ti.Width = 20
	ti.Validate = digitsOnly

	return inspectModel{
		input: ti,
		now:   time.Now,
	}
}

// digitsOnly rejects any keystroke that would leave a non-digit in the
// input.
func digitsOnly(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("digits only")
		}
	}
	return nil
}

func (m inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inspectModel) Update(msg tea.Msg) (inspectModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inspectModel) View() string {
	title := zstyle.Title.Render("inspect national id")
	s := fmt.Sprintf("\n  %s\n\n  %s\n\n", title, m.input.View())

	val := m.input.Value()
	switch {
	case val == "":
		s += "  " + zstyle.MutedText.Render("type a 14-digit national id") + "\n"
	case len(val) < nationalid.Length:
		s += "  " + zstyle.MutedText.Render(fmt.Sprintf("%d of %d digits", len(val), nationalid.Length)) + "\n"
	default:
		s += m.renderResult(val)
	}

	s += "\n  " + zstyle.MutedText.Render("esc back  ctrl+c quit") + "\n"
	return s
}

func (m inspectModel) renderResult(id string) string {
	rec, err := nationalid.Parse(id, m.now())
	if err != nil {
		var verr *nationalid.ValidationError
		if errors.As(err, &verr) {
			return "  " + zstyle.StatusErr.Render(fmt.Sprintf("invalid %s: %s", verr.Field, verr.Reason)) + "\n"
		}
		return "  " + zstyle.StatusErr.Render(err.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString("  " + zstyle.StatusOK.Render("valid") + "\n\n")
	for _, f := range recordFields(id, rec) {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-12s", f.label))
		fmt.Fprintf(&b, "    %s %s\n", label, f.value)
	}
	return b.String()
}
