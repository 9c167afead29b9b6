package main

import (
	"testing"

	"github.com/admin-dashboard/internal/service"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "users.csv", want: service.FormatCSV},
		{path: "ADS.CSV", want: service.FormatCSV},
		{path: "out.json", want: service.FormatJSON},
		{path: "users.jsonl", want: service.FormatNDJSON},
		{path: "users.ndjson", want: service.FormatNDJSON},
		{path: "", want: service.FormatNDJSON},
		{path: "users.txt", want: service.FormatNDJSON},
	}

	for _, tt := range tests {
		if got := formatFromPath(tt.path, service.FormatNDJSON); got != tt.want {
			t.Errorf("formatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestSeedOutcome(t *testing.T) {
	if got := seedOutcome(true, 7); got != "seeded 7 records" {
		t.Errorf("unexpected outcome %q", got)
	}
	if got := seedOutcome(false, 3); got != "kept 3 existing records" {
		t.Errorf("unexpected outcome %q", got)
	}
}
