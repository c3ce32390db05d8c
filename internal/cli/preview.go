package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/keyscope/pkg/colormap"
	"github.com/matzehuels/keyscope/pkg/dom"
	"github.com/matzehuels/keyscope/pkg/render/keyboard"
	"github.com/matzehuels/keyscope/pkg/render/spectrogram"
)

const (
	// cellsPerUnit is the number of terminal columns of a 1-unit key.
	cellsPerUnit = 5

	previewContainer = "keyboardPreview"

	defaultPreviewCols = 80
	defaultPreviewRows = 16
)

// previewCommand creates the preview command group.
func (c *CLI) previewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show a visualization in the terminal",
	}

	cmd.AddCommand(c.previewSpectrogramCommand())
	cmd.AddCommand(c.previewKeyboardCommand())

	return cmd
}

// previewSpectrogramCommand creates the "preview spectrogram" subcommand.
func (c *CLI) previewSpectrogramCommand() *cobra.Command {
	var cols, rows int

	cmd := &cobra.Command{
		Use:   "spectrogram [payload.json|-]",
		Short: "Draw a spectrogram payload with terminal colors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, closeFn, err := openInput(args[0])
			if err != nil {
				return err
			}
			defer closeFn()

			p, err := spectrogram.Decode(r)
			if err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}
			if err := p.Validate(); err != nil {
				return err
			}
			fmt.Println(terminalSpectrogram(p, c.Config.Spectrogram.Title, cols, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&cols, "cols", defaultPreviewCols, "width in terminal columns")
	cmd.Flags().IntVar(&rows, "rows", defaultPreviewRows, "height in terminal rows")

	return cmd
}

// previewKeyboardCommand creates the "preview keyboard" subcommand.
func (c *CLI) previewKeyboardCommand() *cobra.Command {
	var static bool

	cmd := &cobra.Command{
		Use:   "keyboard [text]",
		Short: "Type and watch the keyboard heat map update",
		Long: `Show the keyboard heat map in the terminal.

The map is re-rendered on every keystroke. Backspace deletes, ctrl+u
clears, esc or ctrl+c quits. With --static the map of the given text is
printed once.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if static {
				kb := renderPreviewKeyboard(text)
				fmt.Println(terminalKeyboard(kb))
				if text != "" {
					fmt.Println(terminalCaption(text))
				}
				return nil
			}
			return runKeyboardPreview(cmd.Context(), text)
		},
	}

	cmd.Flags().BoolVar(&static, "static", false, "print once instead of running interactively")

	return cmd
}

// =============================================================================
// Keyboard Preview Model
// =============================================================================

// keyboardModel is the bubbletea model of the interactive keyboard preview.
type keyboardModel struct {
	text  []rune
	kb    *dom.Element
	width int
}

func newKeyboardModel(text string) keyboardModel {
	m := keyboardModel{text: []rune(text)}
	m.kb = renderPreviewKeyboard(text)
	return m
}

func (m keyboardModel) Init() tea.Cmd {
	return nil
}

func (m keyboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyBackspace:
			if len(m.text) > 0 {
				m.text = m.text[:len(m.text)-1]
			}
		case tea.KeyCtrlU:
			m.text = nil
		case tea.KeySpace:
			m.text = append(m.text, ' ')
		case tea.KeyRunes:
			m.text = append(m.text, msg.Runes...)
		default:
			return m, nil
		}
		m.kb = renderPreviewKeyboard(string(m.text))
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m keyboardModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Keyboard Heat Map"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("type to update  ⌫ delete  ctrl+u clear  esc quit"))
	b.WriteString("\n\n")
	b.WriteString(terminalKeyboard(m.kb))
	b.WriteString("\n\n")
	b.WriteString(terminalCaption(string(m.text)))
	b.WriteString("\n")

	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
	}
	return b.String()
}

// Text returns the text typed so far.
func (m keyboardModel) Text() string {
	return string(m.text)
}

// runKeyboardPreview runs the interactive preview until the user quits.
func runKeyboardPreview(ctx context.Context, text string) error {
	p := tea.NewProgram(newKeyboardModel(text), tea.WithContext(ctx), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("keyboard preview: %w", err)
	}
	if m, ok := final.(keyboardModel); ok && m.Text() != "" {
		printKeyValue("Text", m.Text())
	}
	return nil
}

// =============================================================================
// Terminal Rendering
// =============================================================================

// renderPreviewKeyboard renders text into a detached document.
func renderPreviewKeyboard(text string) *dom.Element {
	doc := dom.NewDocument()
	doc.CreateContainer(previewContainer)
	return keyboard.New(keyboard.WithLogger(discardLogger())).Render(doc, previewContainer, text)
}

// terminalKeyboard draws a rendered keyboard with background colors taken
// from the key styles. Key widths keep their unit multipliers.
func terminalKeyboard(kb *dom.Element) string {
	if kb == nil {
		return ""
	}
	var rows []string
	for _, row := range kb.ByClass(keyboard.ClassRow) {
		var cells []string
		for i, key := range row.ByClass(keyboard.ClassKey) {
			w, _ := strconv.ParseFloat(key.Data["width"], 64)
			cols := max(1, int(math.Round(w*cellsPerUnit)))
			label := key.Text
			if len([]rune(label)) > cols {
				label = string([]rune(label)[:cols])
			}
			style := lipgloss.NewStyle().
				Width(cols).
				Align(lipgloss.Center).
				Background(lipgloss.Color(key.Style["background-color"])).
				Foreground(lipgloss.Color(key.Style["color"]))
			if key.Data["intensity"] != "" {
				style = style.Bold(true)
			}
			if i > 0 {
				cells = append(cells, " ")
			}
			cells = append(cells, style.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

// terminalCaption renders the detected-text line under the keyboard.
func terminalCaption(text string) string {
	return StyleDim.Render(keyboard.CaptionLabel) + " " + StyleHighlight.Render(text)
}

// terminalSpectrogram draws p with half-block characters, two matrix
// samples per terminal cell, highest frequency at the top.
func terminalSpectrogram(p *spectrogram.Payload, title string, cols, rows int) string {
	cols = max(1, cols)
	rows = max(1, rows)
	nRows, nCols := p.Rows(), p.Cols()

	sample := func(y, x int) lipgloss.Color {
		r := nRows - 1 - y*nRows/(2*rows)
		c := x * nCols / cols
		return lipgloss.Color(colormap.Hex(colormap.ColorFor(p.Data[r][c])))
	}

	var b strings.Builder
	if title != "" {
		b.WriteString(StyleTitle.Render(title))
		b.WriteString("\n")
	}
	for y := range rows {
		for x := range cols {
			b.WriteString(lipgloss.NewStyle().
				Foreground(sample(2*y, x)).
				Background(sample(2*y+1, x)).
				Render("▀"))
		}
		b.WriteString("\n")
	}
	b.WriteString(StyleDim.Render(spectrogramExtents(p)))
	return b.String()
}

// spectrogramExtents summarizes the axes of p.
func spectrogramExtents(p *spectrogram.Payload) string {
	parts := []string{fmt.Sprintf("%d bins × %d frames", p.Rows(), p.Cols())}
	if n := len(p.Freq); n > 0 {
		parts = append(parts, spectrogram.FormatFreq(p.Freq[0])+" – "+spectrogram.FormatFreq(p.Freq[n-1]))
	}
	if n := len(p.Time); n > 0 {
		parts = append(parts, spectrogram.FormatTime(p.Time[0])+" – "+spectrogram.FormatTime(p.Time[n-1]))
	}
	return strings.Join(parts, " · ")
}
