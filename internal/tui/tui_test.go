package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zarlcorp/zeid/internal/nationalid"
)

// helpers

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func escKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

func testNow() time.Time {
	return time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func testRecord(t *testing.T, id string) nationalid.Record {
	t.Helper()
	rec, err := nationalid.Parse(id, testNow())
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", id, err)
	}
	return rec
}

// menu view tests

func TestMenuShowsItems(t *testing.T) {
	m := newMenuModel("dev")
	view := m.View()

	for _, item := range menuItems {
		if !strings.Contains(view, item) {
			t.Errorf("menu view missing %q", item)
		}
	}
	if !strings.Contains(view, "zeid") {
		t.Error("menu view should show title")
	}
	if !strings.Contains(view, "dev") {
		t.Error("menu view should show version")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := newMenuModel("dev")

	m, _ = m.Update(keyMsg('j'))
	if m.cursor != 1 {
		t.Errorf("cursor = %d after j, want 1", m.cursor)
	}

	m, _ = m.Update(keyMsg('k'))
	if m.cursor != 0 {
		t.Errorf("cursor = %d after k, want 0", m.cursor)
	}

	// cursor does not wrap past the ends
	m, _ = m.Update(keyMsg('k'))
	if m.cursor != 0 {
		t.Errorf("cursor = %d at top after k, want 0", m.cursor)
	}
}

func TestMenuSelectNavigates(t *testing.T) {
	m := newMenuModel("dev")

	cmd := m.selectItem()
	if cmd == nil {
		t.Fatal("selecting inspect should produce a command")
	}
	msg, ok := cmd().(navigateMsg)
	if !ok {
		t.Fatalf("selecting inspect produced %T, want navigateMsg", cmd())
	}
	if msg.view != viewInspect {
		t.Errorf("navigate view = %d, want viewInspect", msg.view)
	}
}

// inspect view tests

func TestInspectEmptyShowsHint(t *testing.T) {
	m := newInspectModel()
	view := m.View()

	if !strings.Contains(view, "inspect national id") {
		t.Error("view should show title")
	}
	if !strings.Contains(view, "type a 14-digit national id") {
		t.Error("empty input should show hint")
	}
}

func TestInspectPartialShowsProgress(t *testing.T) {
	m := newInspectModel()
	m.input.SetValue("295")

	if !strings.Contains(m.View(), "3 of 14 digits") {
		t.Errorf("partial input should show progress:\n%s", m.View())
	}
}

func TestInspectValidID(t *testing.T) {
	m := newInspectModel()
	m.now = testNow
	m.input.SetValue("29501023201952")
	view := m.View()

	for _, want := range []string{"valid", "1995-01-02", "New Valley", "Male", "0195"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestInspectInvalidID(t *testing.T) {
	m := newInspectModel()
	m.now = testNow
	m.input.SetValue("29501029901952")
	view := m.View()

	if !strings.Contains(view, "invalid governorate") {
		t.Errorf("view should name the failing field:\n%s", view)
	}
}

func TestInspectRejectsNonDigits(t *testing.T) {
	if err := digitsOnly("295x"); err == nil {
		t.Error("digitsOnly should reject letters")
	}
	if err := digitsOnly("29501023201952"); err != nil {
		t.Errorf("digitsOnly rejected digits: %v", err)
	}
}

func TestInspectEscNavigatesBack(t *testing.T) {
	m := newInspectModel()
	_, cmd := m.Update(escKey())
	if cmd == nil {
		t.Fatal("esc should produce a command")
	}
	msg, ok := cmd().(navigateMsg)
	if !ok || msg.view != viewMenu {
		t.Errorf("esc produced %v, want navigate to menu", cmd())
	}
}

// generate view tests

func TestGenerateViewShowsFields(t *testing.T) {
	id := "29501023201952"
	m := newGenerateModel(id, testRecord(t, id))
	view := m.View()

	for _, want := range []string{id, "1995-01-02", "New Valley", "Male", "check digit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestGenerateCursorMoves(t *testing.T) {
	id := "29501023201952"
	m := newGenerateModel(id, testRecord(t, id))

	m, _ = m.Update(keyMsg('j'))
	if m.cursor != 1 {
		t.Errorf("cursor = %d after j, want 1", m.cursor)
	}

	for range 20 {
		m, _ = m.Update(keyMsg('j'))
	}
	if m.cursor != len(m.fields)-1 {
		t.Errorf("cursor = %d, should stop at last field %d", m.cursor, len(m.fields)-1)
	}
}

func TestGenerateNewRequestsRegenerate(t *testing.T) {
	id := "29501023201952"
	m := newGenerateModel(id, testRecord(t, id))

	_, cmd := m.Update(keyMsg('n'))
	if cmd == nil {
		t.Fatal("n should produce a command")
	}
	if _, ok := cmd().(regenerateMsg); !ok {
		t.Errorf("n produced %T, want regenerateMsg", cmd())
	}
}

// governorate view tests

func TestGovViewListsTable(t *testing.T) {
	m := newGovModel()
	view := m.View()

	for _, want := range []string{"01  Cairo", "32  New Valley", "88  Foreign"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestGovCursorBounds(t *testing.T) {
	m := newGovModel()

	m, _ = m.Update(keyMsg('k'))
	if m.cursor != 0 {
		t.Errorf("cursor = %d at top after k, want 0", m.cursor)
	}

	for range 40 {
		m, _ = m.Update(keyMsg('j'))
	}
	if m.cursor != len(m.entries)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(m.entries)-1)
	}
}

// root model tests

func TestRootNavigatesBetweenViews(t *testing.T) {
	root := New("dev", nationalid.NewGenerator())

	model, _ := root.Update(navigateMsg{view: viewGovernorates})
	m := model.(Model)
	if m.active != viewGovernorates {
		t.Errorf("active = %d, want viewGovernorates", m.active)
	}
	if !strings.Contains(m.View(), "governorate codes") {
		t.Error("root view should render the governorates view")
	}

	model, _ = m.Update(navigateMsg{view: viewMenu})
	m = model.(Model)
	if m.active != viewMenu {
		t.Errorf("active = %d, want viewMenu", m.active)
	}
}

func TestRootGenerateViewParsesOwnID(t *testing.T) {
	root := New("dev", nationalid.NewGenerator())

	model, _ := root.Update(navigateMsg{view: viewGenerate})
	m := model.(Model)

	if len(m.generate.id) != nationalid.Length {
		t.Fatalf("generated id %q, want %d digits", m.generate.id, nationalid.Length)
	}
	if !strings.Contains(m.View(), m.generate.id) {
		t.Error("generate view should show the generated id")
	}
}
