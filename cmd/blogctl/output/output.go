// Package output печатает цветные строки для blogctl.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	titleStyle   = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	badgeStyle   = lipgloss.NewStyle().Foreground(colorWarning)
)

// Out - куда пишут все функции пакета; ошибки идут туда же, чтобы порядок сообщений сохранялся.
var Out io.Writer = os.Stdout

func Success(format string, args ...any) {
	fmt.Fprint(Out, successStyle.Render("✓ "))
	fmt.Fprintf(Out, format+"\n", args...)
}

func Warning(format string, args ...any) {
	fmt.Fprint(Out, warningStyle.Render("⚠ "))
	fmt.Fprintf(Out, format+"\n", args...)
}

func Error(format string, args ...any) {
	fmt.Fprint(Out, errorStyle.Render("✗ "))
	fmt.Fprintf(Out, format+"\n", args...)
}

func Muted(format string, args ...any) {
	fmt.Fprintln(Out, mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// Post печатает заголовок поста со строкой метаданных.
func Post(id int64, title, meta string, updated bool) {
	line := titleStyle.Render(fmt.Sprintf("#%d %s", id, title))
	if updated {
		line += " " + badgeStyle.Render("(updated)")
	}
	fmt.Fprintln(Out, line)
	fmt.Fprintln(Out, mutedStyle.Render("   "+meta))
}

// Text печатает текст без оформления.
func Text(s string) {
	fmt.Fprintln(Out, s)
}
