package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ------- minimal styling helpers (Lip Gloss) -------

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	PendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	AccentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	MutedStyle   = lipgloss.NewStyle().Faint(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	SelectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	DoneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	HelpStyle     = lipgloss.NewStyle().Faint(true)

	BoxChecked   = "☑"
	BoxUnchecked = "☐"
)

// SetTheme adjusts symbols and color handling. "mono" strips color and
// falls back to ASCII boxes; anything else keeps the classic look.
func SetTheme(name string) {
	if strings.ToLower(name) != "mono" {
		return
	}
	plain := lipgloss.NewStyle()
	TitleStyle = plain
	SuccessStyle = plain
	PendingStyle = plain
	AccentStyle = plain
	MutedStyle = plain
	ErrorStyle = plain
	SelectedStyle = plain
	DoneStyle = plain
	HelpStyle = plain
	BoxChecked = "[x]"
	BoxUnchecked = "[ ]"
}

func OK(msg string) {
	fmt.Println(SuccessStyle.Render("✔ " + msg))
}

func Fail(msg string) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("✖ "+msg))
}

// Panel draws a framed box around the given lines.
func Panel(lines []string) {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	fmt.Println(border.Render(strings.Join(lines, "\n")))
}

// ProgressBar renders a Unicode bar like [████░░░░] 2/5.
func ProgressBar(done, total, width int) string {
	if total == 0 {
		total = 1
	}
	if width <= 0 {
		width = 28
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf("] %d/%d", done, total)
}
