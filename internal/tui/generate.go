package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/zeid/internal/nationalid"
)

// recordField is a labeled field for display and selection.
type recordField struct {
	label string
	value string
}

func recordFields(id string, rec nationalid.Record) []recordField {
	return []recordField{
		{"id", id},
		{"century", fmt.Sprintf("%d", rec.BirthCentury)},
		{"born", rec.DateOfBirth.Format("2006-01-02")},
		{"governorate", fmt.Sprintf("%s (%s)", rec.Governorate, rec.GovernorateCode)},
		{"sequence", rec.Sequence},
		{"gender", string(rec.Gender)},
		{"check digit", rec.CheckDigit},
	}
}

// generateModel displays a generated ID with its decoded fields.
type generateModel struct {
	id      string
	record  nationalid.Record
	fields  []recordField
	cursor  int
	flash   string
	flashAt time.Time
}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

func newGenerateModel(id string, rec nationalid.Record) generateModel {
	return generateModel{
		id:     id,
		record: rec,
		fields: recordFields(id, rec),
	}
}

func (m generateModel) Init() tea.Cmd {
	return nil
}

func (m generateModel) Update(msg tea.Msg) (generateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m generateModel) handleKey(msg tea.KeyMsg) (generateModel, tea.Cmd) {
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
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		val := m.fields[m.cursor].value
		if err := copyToClipboard(val); err != nil {
			return m.setFlash("copy: " + err.Error()), clearFlashAfter()
		}
		return m.setFlash("copied!"), clearFlashAfter()
	}

	switch msg.String() {
	case "c":
		if err := copyToClipboard(m.id); err != nil {
			return m.setFlash("copy: " + err.Error()), clearFlashAfter()
		}
		return m.setFlash("copied id!"), clearFlashAfter()

	case "n":
		return m, func() tea.Msg { return regenerateMsg{} }
	}

	return m, nil
}

func (m generateModel) setFlash(msg string) generateModel {
	m.flash = msg
	m.flashAt = time.Now()
	return m
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

func (m generateModel) View() string {
	title := zstyle.Title.Render("generated national id")
	accent := lipgloss.NewStyle().Foreground(zstyle.ZburnAccent).Bold(true)

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n", title)
	fmt.Fprintf(&b, "  %s\n\n", accent.Render(m.id))

	for i, f := range m.fields {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-12s", f.label))
		if i == m.cursor {
			b.WriteString(zstyle.ActiveBorder.Render(fmt.Sprintf("  > %s %s", label, f.value)) + "\n")
		} else {
			fmt.Fprintf(&b, "    %s %s\n", label, f.value)
		}
	}

	b.WriteString("\n")

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		b.WriteString("  " + zstyle.StatusOK.Render(m.flash) + "\n")
	} else {
		b.WriteString("\n")
	}

	help := "enter copy field  c copy id  n new  esc back  q quit"
	b.WriteString("  " + zstyle.MutedText.Render(help) + "\n")
	return b.String()
}
