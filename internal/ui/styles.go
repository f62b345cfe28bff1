// Package ui renders solver sessions to a terminal and collects turn input.
package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette follows the game's tile colors.
var (
	ColorGreen  = lipgloss.Color("#6AAA64")
	ColorYellow = lipgloss.Color("#C9B458")
	ColorGray   = lipgloss.Color("#787C7E")
	ColorBlue   = lipgloss.Color("#5B8DEF")
	ColorRed    = lipgloss.Color("#E74C3C")
	ColorWhite  = lipgloss.Color("#FFFFFF")
)

// styles is the set of styles bound to one output's color profile.
type styles struct {
	Label  lipgloss.Style
	Symbol lipgloss.Style
	Value  lipgloss.Style
	Title  lipgloss.Style
	Error  lipgloss.Style
	Muted  lipgloss.Style

	TileGreen  lipgloss.Style
	TileYellow lipgloss.Style
	TileGray   lipgloss.Style
}

// newStyles detects the color profile of w; plain writers get no escapes.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	tile := r.NewStyle().Bold(true).Foreground(ColorWhite).Padding(0, 1)
	return styles{
		Label:  r.NewStyle().Foreground(ColorGreen),
		Symbol: r.NewStyle().Foreground(ColorBlue),
		Value:  r.NewStyle().Foreground(ColorYellow),
		Title:  r.NewStyle().Bold(true).Foreground(ColorGreen),
		Error:  r.NewStyle().Foreground(ColorRed),
		Muted:  r.NewStyle().Foreground(ColorGray),

		TileGreen:  tile.Background(ColorGreen),
		TileYellow: tile.Background(ColorYellow),
		TileGray:   tile.Background(ColorGray),
	}
}
