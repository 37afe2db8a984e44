package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/zeid/internal/nationalid"
)

// govModel lists the governorate code table.
type govModel struct {
	entries []nationalid.GovernorateEntry
	cursor  int
	flash   string
}

func newGovModel() govModel {
	return govModel{entries: nationalid.Governorates()}
}

func (m govModel) Init() tea.Cmd {
	return nil
}

func (m govModel) Update(msg tea.Msg) (govModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, zstyle.KeyQuit) {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyBack) {
			return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
		}

		if key.Matches(msg, zstyle.KeyUp) {
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyDown) {
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			code := m.entries[m.cursor].Code
			if err := copyToClipboard(code); err != nil {
				m.flash = "copy: " + err.Error()
			} else {
				m.flash = "copied " + code
			}
			return m, clearFlashAfter()
		}

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m govModel) View() string {
	title := zstyle.Title.Render("governorate codes")

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n", title)

	for i, e := range m.entries {
		line := fmt.Sprintf("%s  %s", e.Code, e.Name)
		if i == m.cursor {
			b.WriteString(zstyle.Highlight.Render("  > "+line) + "\n")
		} else {
			b.WriteString("    " + line + "\n")
		}
	}

	b.WriteString("\n")
	if m.flash != "" {
		b.WriteString("  " + zstyle.StatusOK.Render(m.flash) + "\n")
	} else {
		b.WriteString("\n")
	}

	b.WriteString("  " + zstyle.MutedText.Render("j/k navigate  enter copy code  esc back  q quit") + "\n")
	return b.String()
}
