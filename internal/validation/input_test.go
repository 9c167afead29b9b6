package validation

import "testing"

func TestFormatPhoneInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", ""},
		{"2", "(2"},
		{"205", "(205"},
		{"2052", "(205)-2"},
		{"205205", "(205)-205"},
		{"2052055", "(205)-205-5"},
		{"2052055555", "(205)-205-5555"},
		{"205205555599", "(205)-205-5555"},
		{"(205)-205-5555", "(205)-205-5555"},
		{"20a5b2", "(205)-2"},
	}

	for _, tt := range tests {
		if got := FormatPhoneInput(tt.in); got != tt.want {
			t.Errorf("FormatPhoneInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormattedPhonePassesValidation(t *testing.T) {
	if msg := ValidatePhoneField(FormatPhoneInput("2052055555")); msg != "" {
		t.Errorf("formatted phone should validate, got %q", msg)
	}
}

func TestTrimString(t *testing.T) {
	if got := TrimString("  David   Wagner \t"); got != "David Wagner" {
		t.Errorf("TrimString = %q", got)
	}
}
