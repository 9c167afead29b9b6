package render

import (
	"fmt"
	"strings"

	"github.com/admin-dashboard/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

func grid(headers []string, rows [][]string, selected int) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == selected:
				return selectedStyle
			default:
				return cellStyle
			}
		}).
		Headers(headers...).
		Rows(rows...)
	return t.String()
}

// UsersTable renders the user list with row selected highlighted
func UsersTable(users []models.User, selected int) string {
	if len(users) == 0 {
		return NoResult()
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			u.FullName(),
			u.Role,
			u.Email,
			u.Phone,
			u.Date,
		})
	}
	return grid([]string{"Name", "Role", "Email", "Phone", "Date"}, rows, selected)
}

// AdsTable renders the ads list. The action menu of openDropdown (an ad id,
// 0 for none) is drawn under the table.
func AdsTable(ads []models.Ad, selected int, openDropdown int) string {
	if len(ads) == 0 {
		return NoResult()
	}

	rows := make([][]string, 0, len(ads))
	var menuFor *models.Ad
	for i, ad := range ads {
		marker := "⋮"
		if ad.ID == openDropdown {
			marker = "▾"
			menuFor = &ads[i]
		}
		rows = append(rows, []string{ad.Network, ad.Status, ad.Email, ad.Phone, marker})
	}

	out := grid([]string{"Network", "Status", "Email", "Phone", ""}, rows, selected)
	if menuFor != nil {
		out = lipgloss.JoinVertical(lipgloss.Left, out, Dropdown(*menuFor))
	}
	return out
}

// Dropdown renders the action menu of one ad
func Dropdown(ad models.Ad) string {
	return dropdownStyle.Render(fmt.Sprintf("%s  [e] Edit  [d] Delete", ad.Network))
}

// NoResult renders the empty search result message
func NoResult() string {
	return mutedStyle.Render(MsgNoResult)
}

// SearchBar renders the search input. The clear hint shows only when clearVisible.
func SearchBar(input string, clearVisible bool) string {
	var b strings.Builder
	b.WriteString("Search: ")
	b.WriteString(input)
	if clearVisible {
		b.WriteString(mutedStyle.Render("  [x] clear"))
	}
	return b.String()
}

// Toast renders a transient success message
func Toast(msg string) string {
	if msg == "" {
		return ""
	}
	return toastStyle.Render(msg)
}
