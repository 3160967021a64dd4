package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ForgeYourDay theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconForge   = "🔥"
	IconTask    = "📝"
	IconDone    = "✅"
	IconPost    = "📸"
	IconHeart   = "❤️"
	IconComment = "💬"
	IconFriend  = "👥"
	IconUser    = "👤"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
)

var (
	cPrimary = lipgloss.Color("208") // ember orange
	cAccent  = lipgloss.Color("203") // coral
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)

	Card        = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// PostTime renders a post timestamp the way the feed shows it: clock time
// for today, date otherwise.
func PostTime(t time.Time, now time.Time) string {
	t, now = t.Local(), now.Local()
	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return Muted.Render(t.Format("15:04"))
	}
	return Muted.Render(t.Format("Jan 2"))
}

// ShortID renders the first 8 characters of a post id.
func ShortID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return Muted.Render(id)
}
