package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	appbuilder "github.com/wagiedev/app-builder-bin-go"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")).
			Italic(true)
)

// renderError formats a command failure for the terminal. It returns an
// empty string when the child already reported the failure itself.
func renderError(err error) string {
	var sb strings.Builder

	var (
		exitErr  *appbuilder.ExitError
		spawnErr *appbuilder.SpawnError
		platErr  *appbuilder.UnsupportedPlatformError
	)

	switch {
	case errors.As(err, &exitErr):
		if exitErr.AlreadyLogged {
			return ""
		}

		sb.WriteString(headerStyle.Render("✗ " + firstLine(exitErr.Error())))
		sb.WriteString("\n")

		if exitErr.Stderr != "" {
			sb.WriteString(labelStyle.Render("Error output:"))
			sb.WriteString("\n")
			sb.WriteString(valueStyle.Render(strings.TrimRight(exitErr.Stderr, "\n")))
			sb.WriteString("\n")
		}

	case errors.As(err, &spawnErr):
		sb.WriteString(headerStyle.Render("✗ Cannot start " + spawnErr.Command))
		sb.WriteString("\n")
		sb.WriteString(labelStyle.Render("Cause: "))
		sb.WriteString(valueStyle.Render(spawnErr.Err.Error()))
		sb.WriteString("\n")
		sb.WriteString(hintStyle.Render(fmt.Sprintf(
			"Set %s=true to use app-builder from PATH, or %s to point at a binary.",
			appbuilder.EnvUseSystem, appbuilder.EnvCustomPath)))
		sb.WriteString("\n")

	case errors.As(err, &platErr):
		sb.WriteString(headerStyle.Render("✗ " + platErr.Error()))
		sb.WriteString("\n")
		sb.WriteString(hintStyle.Render("Run without --strict to fall back to the linux layout."))
		sb.WriteString("\n")

	default:
		sb.WriteString(headerStyle.Render("✗ " + err.Error()))
		sb.WriteString("\n")
	}

	return sb.String()
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")

	return line
}
