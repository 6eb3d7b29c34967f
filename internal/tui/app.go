package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/luojia/cidian/internal/cedict"
	"github.com/luojia/cidian/internal/clipboard"
	"github.com/luojia/cidian/internal/pinyin"
	"github.com/luojia/cidian/internal/segment"
	"github.com/luojia/cidian/internal/tui/hanzi"
	"github.com/mattn/go-runewidth"
)

// Model is the reader TUI: paste text, see it segmented into dictionary
// terms, and step through the recognized terms for their entries.
type Model struct {
	dict *cedict.Dictionary

	input  textinput.Model
	typing bool

	segs     []segment.Segment // coalesced for display
	selected int

	width      int
	height     int
	toneColors bool
	status     string
}

// New creates the reader model around a built dictionary.
func New(dict *cedict.Dictionary, toneColors bool) Model {
	ti := textinput.New()
	ti.Placeholder = "Paste or type Chinese text, then press enter"
	ti.Prompt = "讀 > "
	ti.Focus()

	return Model{
		dict:       dict,
		input:      ti,
		typing:     true,
		toneColors: toneColors,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key and resize events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 8
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.typing {
			return m.updateTyping(msg)
		}
		return m.updateReading(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if len(m.segs) > 0 {
			m.typing = false
			m.input.Blur()
			return m, nil
		}
		return m, tea.Quit

	case "enter":
		text := m.input.Value()
		if strings.TrimSpace(text) == "" {
			return m, nil
		}
		m.segs = segment.Coalesce(segment.Split(text, m.dict))
		m.selected = firstMatched(m.segs)
		m.typing = false
		m.input.Blur()
		m.status = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateReading(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "i", "/":
		m.typing = true
		m.input.Focus()
		return m, textinput.Blink

	case "left", "h":
		if m.selected > 0 {
			m.selected--
			m.status = ""
		}

	case "right", "l":
		if m.selected < len(m.segs)-1 {
			m.selected++
			m.status = ""
		}

	case "home", "g":
		m.selected = 0

	case "end", "G":
		m.selected = len(m.segs) - 1

	case "y":
		if err := clipboard.Write(m.selectionText()); err != nil {
			m.status = "copy failed: " + err.Error()
		} else {
			m.status = "copied to clipboard"
		}
	}

	return m, nil
}

// firstMatched returns the index of the first recognized segment, or 0.
func firstMatched(segs []segment.Segment) int {
	for i, s := range segs {
		if s.Matched {
			return i
		}
	}
	return 0
}

// selectionText is the plain-text rendering of the selected entry, used for
// clipboard copy.
func (m Model) selectionText() string {
	if m.selected < 0 || m.selected >= len(m.segs) {
		return ""
	}
	s := m.segs[m.selected]
	if !s.Matched {
		return s.Text
	}
	e := s.Entry
	return fmt.Sprintf("%s (%s) [%s] %s",
		e.Simplified, e.Traditional, pinyin.Mark(e.Pinyin), strings.Join(e.Definitions, "; "))
}

// View renders the reader.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("cidian 詞典 — reader"))
	b.WriteString("\n\n")
	b.WriteString(" " + m.input.View())
	b.WriteString("\n\n")

	if len(m.segs) > 0 {
		b.WriteString(m.renderText())
		b.WriteString("\n")
		b.WriteString(m.renderDetail())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(" " + StatusStyle.Render(m.status) + "\n")
	}

	help := "enter: segment · ←/→: select term · y: copy · i: edit text · q: quit"
	b.WriteString(" " + HelpStyle.Render(help))
	return b.String()
}

// renderText flows the segmented text across lines, highlighting recognized
// terms and inverting the selection.
func (m Model) renderText() string {
	maxWidth := m.width - 4
	if maxWidth < 10 {
		maxWidth = 72
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0

	for i, s := range m.segs {
		style := UnmatchedStyle
		if s.Matched {
			style = MatchedStyle
		}
		if i == m.selected {
			style = SelectedStyle
		}

		w := runewidth.StringWidth(s.Text)
		if lineWidth+w > maxWidth && lineWidth > 0 {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		line.WriteString(style.Render(s.Text))
		lineWidth += w
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}

	for i := range lines {
		lines[i] = "  " + lines[i]
	}
	return strings.Join(lines, "\n") + "\n"
}

// renderDetail shows the entry for the selected segment, or fallback
// readings when the selection is not in the dictionary.
func (m Model) renderDetail() string {
	if m.selected < 0 || m.selected >= len(m.segs) {
		return ""
	}
	s := m.segs[m.selected]

	var body string
	if s.Matched {
		body = m.renderEntry(s.Entry)
	} else {
		body = m.renderFallback(s.Text)
	}
	return DetailBoxStyle.Render(body)
}

func (m Model) renderEntry(e *cedict.Entry) string {
	var b strings.Builder

	if art := hanzi.Render(e.Simplified, 10*len([]rune(e.Simplified)), 5); art != "" {
		b.WriteString(HeadwordStyle.Render(art))
		b.WriteString("\n")
	}

	head := e.Simplified
	if e.Traditional != e.Simplified {
		head += " · " + e.Traditional
	}
	b.WriteString(HeadwordStyle.Render(head))
	b.WriteString("  ")
	b.WriteString(m.renderPinyin(e.Pinyin))
	b.WriteString("\n")

	for i, def := range e.Definitions {
		b.WriteString(DefinitionStyle.Render(fmt.Sprintf("%d. %s", i+1, def)))
		if i < len(e.Definitions)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderFallback shows per-character readings for text outside the lexicon.
func (m Model) renderFallback(text string) string {
	var parts []string
	for _, r := range text {
		char := string(r)
		readings := pinyin.Readings(char)
		if len(readings) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s", char, strings.Join(readings, "/")))
	}
	if len(parts) == 0 {
		return UnmatchedStyle.Render("not in dictionary")
	}
	return LabelStyle.Render("readings: ") + strings.Join(parts, "  ")
}

// renderPinyin renders a numbered reading with tone marks, coloring each
// syllable by tone when enabled.
func (m Model) renderPinyin(reading string) string {
	if !m.toneColors {
		return LabelStyle.Render(pinyin.Mark(reading))
	}

	syllables := strings.Fields(reading)
	rendered := make([]string, len(syllables))
	for i, syl := range syllables {
		rendered[i] = ToneStyle(pinyin.Tone(syl)).Render(pinyin.MarkSyllable(syl))
	}
	return strings.Join(rendered, " ")
}
