package render

import (
	"strings"
	"testing"

	"github.com/admin-dashboard/internal/models"
	"github.com/admin-dashboard/internal/validation"
)

func TestUsersTable(t *testing.T) {
	out := UsersTable(models.SeedUsers(), 0)

	for _, want := range []string{"Name", "David Wagner", "Cora Medina", "hagenes.isai@hotmail.com", "Super Admin"} {
		if !strings.Contains(out, want) {
			t.Errorf("table is missing %q", want)
		}
	}
	if UsersTable(models.SeedUsers(), 0) != out {
		t.Error("render should be deterministic")
	}
}

func TestUsersTable_Empty(t *testing.T) {
	if out := UsersTable(nil, 0); !strings.Contains(out, MsgNoResult) {
		t.Errorf("expected no result message, got %q", out)
	}
}

func TestAdsTable_Dropdown(t *testing.T) {
	ads := models.SeedAds()

	closed := AdsTable(ads, 0, 0)
	if strings.Contains(closed, "[d] Delete") {
		t.Error("no dropdown should be drawn when none is open")
	}

	open := AdsTable(ads, 0, 2)
	if !strings.Contains(open, "[d] Delete") || !strings.Contains(open, "Google Ads") {
		t.Errorf("dropdown for ad 2 missing:\n%s", open)
	}
}

func TestModal_ShowsFieldErrors(t *testing.T) {
	fields := []FormField{
		{Key: validation.FieldFirstName, Label: "First Name", Value: ""},
		{Key: validation.FieldEmail, Label: "Email", Value: "x@y.io"},
	}
	errs := validation.FieldErrors{validation.FieldFirstName: "First Name is required"}

	out := Modal(TitleAddUser, fields, errs, "store unavailable")
	for _, want := range []string{TitleAddUser, "First Name is required", "store unavailable", "x@y.io"} {
		if !strings.Contains(out, want) {
			t.Errorf("modal is missing %q", want)
		}
	}
}

func TestSearchBar(t *testing.T) {
	if strings.Contains(SearchBar("", false), "clear") {
		t.Error("clear hint should be hidden")
	}
	if !strings.Contains(SearchBar("wag", true), "clear") {
		t.Error("clear hint should be shown")
	}
}

func TestDeleteConfirm(t *testing.T) {
	if out := DeleteConfirm("David Wagner"); !strings.Contains(out, "David Wagner") {
		t.Errorf("confirm should name the record, got %q", out)
	}
}
