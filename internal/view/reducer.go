package view

import (
	"github.com/admin-dashboard/internal/validation"
)

// Event is something the user did
type Event interface {
	isEvent()
}

// ClickAdd opens the add modal
type ClickAdd struct{}

// ClickEdit asks for the edit modal of ID. Found tells whether ID resolves to a record.
type ClickEdit struct {
	ID    int
	Found bool
}

// ClickDelete asks for the delete confirmation of ID
type ClickDelete struct {
	ID int
}

// Dismiss is cancel, the close button, or a click on the backdrop
type Dismiss struct{}

// Submit submits the add/edit form with the errors its validation produced
type Submit struct {
	Errors validation.FieldErrors
}

// SubmitFailed reports that a valid submit could not be applied. It is reduced
// against the state the submit started from, so the modal stays open.
type SubmitFailed struct {
	Err error
}

// Confirm answers yes to the delete confirmation
type Confirm struct{}

// ToggleDropdown opens or closes the action menu of row ID
type ToggleDropdown struct {
	ID int
}

// ClickOutside is a click anywhere; Inside tells whether it landed in an open dropdown
type ClickOutside struct {
	Inside bool
}

// QueryInput changes the search text
type QueryInput struct {
	Query string
}

// ClearSearch empties the search text
type ClearSearch struct{}

func (ClickAdd) isEvent()       {}
func (ClickEdit) isEvent()      {}
func (ClickDelete) isEvent()    {}
func (Dismiss) isEvent()        {}
func (Submit) isEvent()         {}
func (SubmitFailed) isEvent()   {}
func (Confirm) isEvent()        {}
func (ToggleDropdown) isEvent() {}
func (ClickOutside) isEvent()   {}
func (QueryInput) isEvent()     {}
func (ClearSearch) isEvent()    {}

// EffectKind is the side effect a transition asks the controller to perform
type EffectKind int

const (
	NoEffect EffectKind = iota
	// AppendRecord adds the submitted record, persists and re-renders
	AppendRecord
	// UpdateRecord overwrites Effect.ID, persists and re-renders
	UpdateRecord
	// DeleteRecord removes Effect.ID, persists and re-renders
	DeleteRecord
	// ShowErrors displays the field errors of an invalid submit
	ShowErrors
	// Search re-runs the search for the current query
	Search
)

// Effect pairs an EffectKind with the record it applies to
type Effect struct {
	Kind EffectKind
	ID   int
}

// Reduce applies e to s. It never mutates s and only fails with ErrModalOpen.
func Reduce(s State, e Event) (State, Effect, error) {
	switch e := e.(type) {
	case ClickAdd:
		if s.ModalOpen() {
			return s, Effect{}, ErrModalOpen
		}
		return open(s, AddOpen, 0), Effect{}, nil

	case ClickEdit:
		if s.ModalOpen() {
			return s, Effect{}, ErrModalOpen
		}
		if !e.Found {
			return s, Effect{}, nil
		}
		return open(s, EditOpen, e.ID), Effect{}, nil

	case ClickDelete:
		if s.ModalOpen() {
			return s, Effect{}, ErrModalOpen
		}
		return open(s, DeleteConfirmOpen, e.ID), Effect{}, nil

	case Dismiss:
		return closeModal(s), Effect{}, nil

	case Submit:
		switch s.Mode {
		case AddOpen, EditOpen:
		default:
			return s, Effect{}, nil
		}
		if !e.Errors.Valid() {
			s.FieldErrors = e.Errors
			s.SubmitError = ""
			return s, Effect{Kind: ShowErrors}, nil
		}
		effect := Effect{Kind: AppendRecord}
		if s.Mode == EditOpen {
			effect = Effect{Kind: UpdateRecord, ID: s.TargetID}
		}
		return closeModal(s), effect, nil

	case SubmitFailed:
		s.FieldErrors = nil
		s.SubmitError = e.Err.Error()
		return s, Effect{}, nil

	case Confirm:
		if s.Mode != DeleteConfirmOpen {
			return s, Effect{}, nil
		}
		id := s.TargetID
		return closeModal(s), Effect{Kind: DeleteRecord, ID: id}, nil

	case ToggleDropdown:
		if s.OpenDropdown == e.ID {
			s.OpenDropdown = 0
		} else {
			s.OpenDropdown = e.ID
		}
		return s, Effect{}, nil

	case ClickOutside:
		if !e.Inside {
			s.OpenDropdown = 0
		}
		return s, Effect{}, nil

	case QueryInput:
		s.Query = e.Query
		return s, Effect{Kind: Search}, nil

	case ClearSearch:
		s.Query = ""
		return s, Effect{Kind: Search}, nil
	}

	return s, Effect{}, nil
}

func open(s State, mode Mode, id int) State {
	s.Mode = mode
	s.TargetID = id
	s.FieldErrors = nil
	s.SubmitError = ""
	s.OpenDropdown = 0
	return s
}

func closeModal(s State) State {
	s.Mode = Closed
	s.TargetID = 0
	s.FieldErrors = nil
	s.SubmitError = ""
	return s
}
