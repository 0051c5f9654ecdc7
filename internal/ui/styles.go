package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Box drawing characters
const (
	TopLeft     = "╭"
	TopRight    = "╮"
	BottomLeft  = "╰"
	BottomRight = "╯"
	Horizontal  = "─"
	Vertical    = "│"
	LeftT       = "├"
	RightT      = "┤"
	TopT        = "┬"
	BottomT     = "┴"
	Cross       = "┼"
)

// Color palette
const (
	ColorBorder     = "240"
	ColorHeader     = "252"
	ColorKey        = "81"
	ColorSize       = "252"
	ColorTier       = "214"
	ColorCompleted  = "82"
	ColorInProgress = "214"
	ColorPending    = "245"
	ColorFailed     = "196"
	ColorMuted      = "240"
	ColorHint       = "245"
)

// Shared styles
var (
	BorderStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder))
	HeaderStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHeader))
	KeyStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorKey))
	SizeStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSize))
	TierStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTier))
	CompletedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorCompleted))
	InProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorInProgress))
	PendingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPending))
	FailedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFailed))
	MutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	HintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHint))
)

// padRight pads a string to the specified display width using runewidth
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return runewidth.Truncate(s, width, "...")
	}
	return s + strings.Repeat(" ", width-sw)
}

// padLeft right-aligns a string within the specified display width
func padLeft(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return runewidth.Truncate(s, width, "...")
	}
	return strings.Repeat(" ", width-sw) + s
}
