package models

// Ad statuses
const (
	AdStatusActive   = "Active"
	AdStatusPaused   = "Paused"
	AdStatusInactive = "Inactive"
)

// AdStatuses lists the selectable statuses in display order
var AdStatuses = []string{AdStatusActive, AdStatusPaused, AdStatusInactive}

// ValidAdStatuses defines allowed ad statuses
var ValidAdStatuses = map[string]bool{
	AdStatusActive:   true,
	AdStatusPaused:   true,
	AdStatusInactive: true,
}

// Ad represents a row of the ads-management dashboard
type Ad struct {
	ID      int    `json:"id"`
	Network string `json:"network"`
	Link    string `json:"link"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Status  string `json:"status"`
}

// Identifier returns the record id
func (a Ad) Identifier() int { return a.ID }

// Apply overwrites the editable fields of a with those of other, keeping the id
func (a *Ad) Apply(other Ad) {
	a.Network = other.Network
	a.Link = other.Link
	a.Email = other.Email
	a.Phone = other.Phone
	a.Status = other.Status
}
