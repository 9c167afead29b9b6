package render

import (
	"strings"

	"github.com/admin-dashboard/internal/validation"
	"github.com/charmbracelet/lipgloss"
)

// FormField is one labelled input of a modal form
type FormField struct {
	Key     string // validation field key, also the error lookup key
	Label   string
	Value   string // already rendered input
	Focused bool
}

// Modal renders a form modal with inline field errors and an optional submit error
func Modal(title string, fields []FormField, errs validation.FieldErrors, submitErr string) string {
	lines := []string{titleStyle.Render(title), ""}

	for _, f := range fields {
		label := labelStyle.Render(f.Label)
		if f.Focused {
			label = focusedLabel.Render(f.Label)
		}
		lines = append(lines, label+f.Value)
		if msg, ok := errs[f.Key]; ok {
			lines = append(lines, labelStyle.Render("")+errorStyle.Render(msg))
		}
	}

	if submitErr != "" {
		lines = append(lines, "", errorStyle.Render(submitErr))
	}
	lines = append(lines, "", mutedStyle.Render("enter submit • tab next field • esc cancel"))

	return modalStyle.Render(strings.Join(lines, "\n"))
}

// DeleteConfirm renders the delete confirmation for the record named name
func DeleteConfirm(name string) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Foreground(danger).Render("Delete"),
		"",
		"Are you sure you want to delete "+name+"?",
		"",
		mutedStyle.Render("y / enter yes • n / esc no"),
	)
	return dangerModal.Render(body)
}

// ErrorLine renders a standalone error message
func ErrorLine(msg string) string {
	if msg == "" {
		return ""
	}
	return errorStyle.Render(msg)
}
