// Package ui holds the shared lipgloss styles for CLI output.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorGreen = lipgloss.Color("#22c55e")
	colorRed   = lipgloss.Color("#ef4444")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	successStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	failureStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Title renders a bold heading.
func Title(s string) string { return titleStyle.Render(s) }

// Success renders a success notice.
func Success(s string) string { return successStyle.Render(s) }

// Failure renders a failure notice.
func Failure(s string) string { return failureStyle.Render(s) }

// Info renders an informational notice.
func Info(s string) string { return infoStyle.Render(s) }

// Dim renders secondary output.
func Dim(s string) string { return dimStyle.Render(s) }
