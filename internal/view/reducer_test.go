package view

import (
	"errors"
	"testing"

	"github.com/admin-dashboard/internal/validation"
)

func TestReduce_Transitions(t *testing.T) {
	invalid := validation.FieldErrors{validation.FieldFirstName: "First Name is required"}

	tests := []struct {
		name       string
		from       State
		event      Event
		wantMode   Mode
		wantTarget int
		wantEffect Effect
		wantErr    error
	}{
		{name: "closed + add", from: State{}, event: ClickAdd{}, wantMode: AddOpen},
		{name: "closed + edit existing", from: State{}, event: ClickEdit{ID: 3, Found: true}, wantMode: EditOpen, wantTarget: 3},
		{name: "closed + edit missing is a no-op", from: State{}, event: ClickEdit{ID: 99}, wantMode: Closed},
		{name: "add + dismiss", from: State{Mode: AddOpen}, event: Dismiss{}, wantMode: Closed},
		{name: "edit + dismiss", from: State{Mode: EditOpen, TargetID: 2}, event: Dismiss{}, wantMode: Closed},
		{
			name: "add + valid submit", from: State{Mode: AddOpen}, event: Submit{Errors: validation.FieldErrors{}},
			wantMode: Closed, wantEffect: Effect{Kind: AppendRecord},
		},
		{
			name: "edit + valid submit", from: State{Mode: EditOpen, TargetID: 4}, event: Submit{},
			wantMode: Closed, wantEffect: Effect{Kind: UpdateRecord, ID: 4},
		},
		{
			name: "add + invalid submit", from: State{Mode: AddOpen}, event: Submit{Errors: invalid},
			wantMode: AddOpen, wantEffect: Effect{Kind: ShowErrors},
		},
		{
			name: "edit + invalid submit", from: State{Mode: EditOpen, TargetID: 4}, event: Submit{Errors: invalid},
			wantMode: EditOpen, wantTarget: 4, wantEffect: Effect{Kind: ShowErrors},
		},
		{name: "closed + delete", from: State{}, event: ClickDelete{ID: 5}, wantMode: DeleteConfirmOpen, wantTarget: 5},
		{
			name: "delete confirm + confirm", from: State{Mode: DeleteConfirmOpen, TargetID: 5}, event: Confirm{},
			wantMode: Closed, wantEffect: Effect{Kind: DeleteRecord, ID: 5},
		},
		{name: "delete confirm + dismiss", from: State{Mode: DeleteConfirmOpen, TargetID: 5}, event: Dismiss{}, wantMode: Closed},
		{name: "confirm while closed", from: State{}, event: Confirm{}, wantMode: Closed},
		{name: "submit while closed", from: State{}, event: Submit{}, wantMode: Closed},
		{name: "submit during delete confirm", from: State{Mode: DeleteConfirmOpen, TargetID: 1}, event: Submit{}, wantMode: DeleteConfirmOpen, wantTarget: 1},
		{name: "add while add open", from: State{Mode: AddOpen}, event: ClickAdd{}, wantMode: AddOpen, wantErr: ErrModalOpen},
		{name: "edit while delete open", from: State{Mode: DeleteConfirmOpen, TargetID: 1}, event: ClickEdit{ID: 2, Found: true}, wantMode: DeleteConfirmOpen, wantTarget: 1, wantErr: ErrModalOpen},
		{name: "delete while edit open", from: State{Mode: EditOpen, TargetID: 1}, event: ClickDelete{ID: 2}, wantMode: EditOpen, wantTarget: 1, wantErr: ErrModalOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, effect, err := Reduce(tt.from, tt.event)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if got.Mode != tt.wantMode {
				t.Errorf("mode = %v, want %v", got.Mode, tt.wantMode)
			}
			if got.TargetID != tt.wantTarget {
				t.Errorf("target = %d, want %d", got.TargetID, tt.wantTarget)
			}
			if effect != tt.wantEffect {
				t.Errorf("effect = %+v, want %+v", effect, tt.wantEffect)
			}
		})
	}
}

func TestReduce_InvalidSubmitKeepsErrors(t *testing.T) {
	errs := validation.FieldErrors{validation.FieldEmail: validation.MsgInvalidEmail}
	s, _, _ := Reduce(State{Mode: AddOpen}, Submit{Errors: errs})
	if s.FieldErrors[validation.FieldEmail] != validation.MsgInvalidEmail {
		t.Errorf("field errors not kept: %v", s.FieldErrors)
	}

	s, _, _ = Reduce(s, Dismiss{})
	if s.FieldErrors != nil {
		t.Errorf("closing should clear errors, got %v", s.FieldErrors)
	}
}

func TestReduce_SubmitFailedKeepsModalOpen(t *testing.T) {
	from := State{Mode: AddOpen}
	s, _, _ := Reduce(from, SubmitFailed{Err: errors.New("handler failed")})
	if s.Mode != AddOpen || s.SubmitError != "handler failed" {
		t.Errorf("unexpected state %+v", s)
	}
}

func TestReduce_Dropdowns(t *testing.T) {
	s, _, _ := Reduce(State{}, ToggleDropdown{ID: 2})
	if s.OpenDropdown != 2 {
		t.Fatalf("dropdown 2 should be open, got %d", s.OpenDropdown)
	}

	s, _, _ = Reduce(s, ToggleDropdown{ID: 3})
	if s.OpenDropdown != 3 {
		t.Fatalf("opening 3 should close 2, got %d", s.OpenDropdown)
	}

	s, _, _ = Reduce(s, ClickOutside{Inside: true})
	if s.OpenDropdown != 3 {
		t.Fatalf("click inside should keep dropdown open, got %d", s.OpenDropdown)
	}

	s, _, _ = Reduce(s, ToggleDropdown{ID: 3})
	if s.OpenDropdown != 0 {
		t.Fatalf("toggling the open dropdown should close it, got %d", s.OpenDropdown)
	}

	s, _, _ = Reduce(State{OpenDropdown: 1}, ClickOutside{})
	if s.OpenDropdown != 0 {
		t.Errorf("click outside should close all dropdowns, got %d", s.OpenDropdown)
	}

	s, _, _ = Reduce(State{OpenDropdown: 1}, ClickEdit{ID: 1, Found: true})
	if s.OpenDropdown != 0 {
		t.Errorf("opening a modal should close the dropdown, got %d", s.OpenDropdown)
	}
}

func TestReduce_Search(t *testing.T) {
	s, effect, _ := Reduce(State{}, QueryInput{Query: " wag "})
	if effect.Kind != Search || s.Query != " wag " {
		t.Errorf("unexpected state %+v effect %+v", s, effect)
	}
	if !s.ClearSearchVisible() {
		t.Error("clear button should be visible for a non-empty query")
	}

	s, effect, _ = Reduce(s, ClearSearch{})
	if effect.Kind != Search || s.Query != "" || s.ClearSearchVisible() {
		t.Errorf("unexpected state after clear %+v", s)
	}

	if (State{Query: "   "}).ClearSearchVisible() {
		t.Error("whitespace-only query should hide the clear button")
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	from := State{Mode: EditOpen, TargetID: 7}
	Reduce(from, Dismiss{})
	if from.Mode != EditOpen || from.TargetID != 7 {
		t.Errorf("input state mutated: %+v", from)
	}
}
