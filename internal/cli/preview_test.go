package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/keyscope/pkg/render/keyboard"
	"github.com/matzehuels/keyscope/pkg/render/spectrogram"
)

func typeRunes(m keyboardModel, s string) keyboardModel {
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(keyboardModel)
	}
	return m
}

func keyIntensity(m keyboardModel, key string) string {
	keys := m.kb.ByData("key", key)
	if len(keys) == 0 {
		return ""
	}
	return keys[0].Data["intensity"]
}

func TestKeyboardModelTyping(t *testing.T) {
	m := typeRunes(newKeyboardModel(""), "aab")

	if m.Text() != "aab" {
		t.Fatalf("Text() = %q, want %q", m.Text(), "aab")
	}
	if got := keyIntensity(m, "a"); got != "1" {
		t.Errorf("a intensity = %q, want 1", got)
	}
	if got := keyIntensity(m, "b"); got != "0.5" {
		t.Errorf("b intensity = %q, want 0.5", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(keyboardModel)
	if m.Text() != "aa" {
		t.Errorf("after backspace Text() = %q, want %q", m.Text(), "aa")
	}
	if got := keyIntensity(m, "b"); got != "" {
		t.Errorf("b intensity after backspace = %q, want none", got)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(keyboardModel)
	if m.Text() != "aa " {
		t.Errorf("after space Text() = %q, want %q", m.Text(), "aa ")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	m = next.(keyboardModel)
	if m.Text() != "" || keyIntensity(m, "a") != "" {
		t.Errorf("ctrl+u should reset to a neutral keyboard, text %q", m.Text())
	}
}

func TestKeyboardModelQuit(t *testing.T) {
	m := newKeyboardModel("hi")
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := m.Update(tea.KeyMsg{Type: k})
		if cmd == nil {
			t.Errorf("%v: Update returned no command, want tea.Quit", k)
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v: command is not tea.Quit", k)
		}
	}
}

func TestKeyboardModelView(t *testing.T) {
	view := newKeyboardModel("hey").View()
	for _, want := range []string{"Keyboard Heat Map", "Backspace", "Space", keyboard.CaptionLabel, "hey"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestTerminalKeyboard(t *testing.T) {
	out := terminalKeyboard(renderPreviewKeyboard(""))
	if got := strings.Count(out, "\n") + 1; got != len(keyboard.Layout()) {
		t.Errorf("terminal keyboard has %d lines, want %d", got, len(keyboard.Layout()))
	}
	if !strings.Contains(out, "Enter") {
		t.Error("terminal keyboard is missing the Enter key")
	}
	if terminalKeyboard(nil) != "" {
		t.Error("terminalKeyboard(nil) should be empty")
	}
}

func TestTerminalSpectrogram(t *testing.T) {
	p := &spectrogram.Payload{
		Data: [][]float64{{0, 0.25, 0.5}, {0.75, 1, 0.5}},
		Time: []float64{0, 0.5, 1},
		Freq: []float64{0, 4000},
	}

	out := terminalSpectrogram(p, "Capture", 12, 3)
	lines := strings.Split(out, "\n")
	// title, 3 grid rows, extents
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Capture") {
		t.Errorf("first line = %q, want title", lines[0])
	}
	if got := strings.Count(lines[1], "▀"); got != 12 {
		t.Errorf("grid row has %d cells, want 12", got)
	}
	if want := "2 bins × 3 frames · 0 kHz – 4 kHz · 0s – 1s"; !strings.Contains(lines[4], want) {
		t.Errorf("extents = %q, want %q", lines[4], want)
	}
}
