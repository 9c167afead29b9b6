// Package render turns dashboard data into terminal markup. Every function is
// pure: same input, same string.
package render

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("69")
	danger = lipgloss.Color("203")
	muted  = lipgloss.Color("241")
	okay   = lipgloss.Color("42")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	selectedStyle = cellStyle.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	errorStyle    = lipgloss.NewStyle().Foreground(danger)
	mutedStyle    = lipgloss.NewStyle().Foreground(muted)
	toastStyle    = lipgloss.NewStyle().Foreground(okay).Bold(true)
	labelStyle    = lipgloss.NewStyle().Width(14)
	focusedLabel  = labelStyle.Foreground(accent).Bold(true)
	modalStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2)
	dangerModal   = modalStyle.BorderForeground(danger)
	dropdownStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(muted).Padding(0, 1)
)

// Modal titles
const (
	TitleAddUser  = "Add User"
	TitleEditUser = "Edit User"
	TitleAddAds   = "Add Ads"
	TitleEditAds  = "Edit Ads"
	TitleSignIn   = "Sign In"
)

// Screen headers
const (
	HeaderUsers = "User Management"
	HeaderAds   = "Ads Management"
)

// MsgNoResult replaces the table when a search matches nothing
const MsgNoResult = "No result found"

// Header renders a screen title
func Header(title string) string {
	return titleStyle.Render(title)
}

// Muted renders secondary text such as status lines
func Muted(s string) string {
	return mutedStyle.Render(s)
}
