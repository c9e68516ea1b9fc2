package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	SuccessColor = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}

	StatusSuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	StatusErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	StatusWarningStyle = lipgloss.NewStyle().Foreground(WarningColor)
)

func Successf(format string, args ...any) string {
	return StatusSuccessStyle.Render(fmt.Sprintf(format, args...))
}

func Errorf(format string, args ...any) string {
	return StatusErrorStyle.Render(fmt.Sprintf(format, args...))
}

func Warnf(format string, args ...any) string {
	return StatusWarningStyle.Render(fmt.Sprintf(format, args...))
}
