// Package view holds the dashboard's modal state machine as plain data plus a
// pure reducer, so every transition can be exercised without a terminal.
package view

import (
	"errors"
	"strings"

	"github.com/admin-dashboard/internal/validation"
)

// ErrModalOpen is returned when a modal is requested while another one is open
var ErrModalOpen = errors.New("another modal is already open")

// Mode is the modal currently shown
type Mode int

const (
	Closed Mode = iota
	AddOpen
	EditOpen
	DeleteConfirmOpen
)

func (m Mode) String() string {
	switch m {
	case AddOpen:
		return "add"
	case EditOpen:
		return "edit"
	case DeleteConfirmOpen:
		return "delete-confirm"
	default:
		return "closed"
	}
}

// State is the whole view state of one dashboard
type State struct {
	Mode     Mode
	TargetID int // record of EditOpen / DeleteConfirmOpen

	// FieldErrors are the messages of the last invalid submit
	FieldErrors validation.FieldErrors
	// SubmitError is the last submit failure that was not a validation error
	SubmitError string

	// OpenDropdown is the id of the row whose action menu is open, 0 for none
	OpenDropdown int

	Query string
}

// ModalOpen reports whether any modal is shown
func (s State) ModalOpen() bool {
	return s.Mode != Closed
}

// ClearSearchVisible reports whether the clear-search button is shown
func (s State) ClearSearchVisible() bool {
	return strings.TrimSpace(s.Query) != ""
}
