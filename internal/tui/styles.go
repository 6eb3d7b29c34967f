// Package tui provides the interactive reader for cidian.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary  = lipgloss.Color("#FF6B6B") // titles
	ColorAccent   = lipgloss.Color("#ffe66d") // headwords
	ColorMuted    = lipgloss.Color("#666666") // help text, unmatched runs
	ColorText     = lipgloss.Color("#f1faee")
	ColorLabel    = lipgloss.Color("#a8dadc")
	ColorBgAlt    = lipgloss.Color("#2d3436")
	ColorBorder   = lipgloss.Color("#3d5a80")
	ColorMatched  = lipgloss.Color("#4ecdc4") // recognized terms
	ColorSelected = lipgloss.Color("#ffe66d")
)

// Tone colors follow the common dictionary convention:
// 1 red, 2 green, 3 blue, 4 purple, 5 gray.
var toneColors = [6]lipgloss.Color{
	ColorText, // tone 0: unknown
	lipgloss.Color("#e06c75"),
	lipgloss.Color("#98c379"),
	lipgloss.Color("#61afef"),
	lipgloss.Color("#c678dd"),
	lipgloss.Color("#888888"),
}

// ToneStyle returns the style for a syllable of the given tone.
func ToneStyle(tone int) lipgloss.Style {
	if tone < 0 || tone > 5 {
		tone = 0
	}
	return lipgloss.NewStyle().Foreground(toneColors[tone])
}

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Italic(true)

	MatchedStyle = lipgloss.NewStyle().
			Foreground(ColorMatched)

	UnmatchedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBgAlt).
			Background(ColorSelected)

	DetailBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	HeadwordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel)

	DefinitionStyle = lipgloss.NewStyle().
			Foreground(ColorText)
)
