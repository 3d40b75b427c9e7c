package tui

import "github.com/charmbracelet/lipgloss"

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	warning   = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF5F87"}
	dim       = lipgloss.AdaptiveColor{Light: "#969B86", Dark: "#696969"}
)

// cellKind picks the style a canvas cell is drawn with.
type cellKind int

const (
	cellBlank cellKind = iota
	cellZoneBorder
	cellZoneBorderFull
	cellZoneTitle
	cellTile
	cellTileLifted
	cellTilePlaced
	cellTileLocked
)

var cellStyles = map[cellKind]lipgloss.Style{
	cellBlank:          lipgloss.NewStyle(),
	cellZoneBorder:     lipgloss.NewStyle().Foreground(highlight),
	cellZoneBorderFull: lipgloss.NewStyle().Foreground(special),
	cellZoneTitle:      lipgloss.NewStyle().Foreground(highlight).Bold(true),
	cellTile: lipgloss.NewStyle().
		Background(subtle).
		Foreground(lipgloss.AdaptiveColor{Light: "#333", Dark: "#FFF"}),
	cellTileLifted: lipgloss.NewStyle().
		Background(highlight).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}).
		Bold(true),
	cellTilePlaced: lipgloss.NewStyle().
		Background(special).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#000"}),
	cellTileLocked: lipgloss.NewStyle().
		Foreground(special).
		Bold(true),
}

var (
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle)

	bannerStyle = lipgloss.NewStyle().
			Background(special).
			Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#000"}).
			Bold(true).
			Padding(0, 1)

	statusErrorStyle = lipgloss.NewStyle().Foreground(warning)
)
