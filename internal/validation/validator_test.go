package validation

import (
	"regexp"
	"strings"
	"testing"

	"github.com/admin-dashboard/internal/models"
)

func validUserForm() models.UserForm {
	return models.UserForm{
		FirstName: "David",
		LastName:  "Wagner",
		Email:     "david_wagner@example.com",
		Phone:     "(205)-205-5555",
		Role:      models.RoleSuperAdmin,
	}
}

func validAd() models.Ad {
	return models.Ad{
		Network: "Facebook",
		Link:    "https://facebook.com/ads/summer",
		Email:   "ads@facebook.com",
		Phone:   "2052055555",
		Status:  models.AdStatusActive,
	}
}

func TestValidateField(t *testing.T) {
	digits := regexp.MustCompile(`^\d+$`)

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "empty value is required", value: "", want: "Code is required"},
		{name: "pattern mismatch substitutes field", value: "abc", want: "Code must be digits"},
		{name: "valid value", value: "123", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateField(tt.value, "Code", digits, "{field} must be digits")
			if got != tt.want {
				t.Errorf("ValidateField(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFieldWrappers(t *testing.T) {
	tests := []struct {
		name    string
		check   func() string
		wantErr bool
		wantMsg string
	}{
		{name: "valid email", check: func() string { return ValidateEmailField("a.b@example.com") }},
		{name: "email without domain", check: func() string { return ValidateEmailField("a.b@") }, wantErr: true, wantMsg: MsgInvalidEmail},
		{name: "empty email", check: func() string { return ValidateEmailField("") }, wantErr: true, wantMsg: "Email is required"},
		{name: "name too short", check: func() string { return ValidateNameField("Ana", "First Name") }, wantErr: true,
			wantMsg: "Please enter a minimum of 4 and a maximum of 20 characters for the First Name"},
		{name: "name of 20 chars", check: func() string { return ValidateNameField(strings.Repeat("a", 20), "First Name") }},
		{name: "name of 21 chars", check: func() string { return ValidateNameField(strings.Repeat("a", 21), "Last Name") }, wantErr: true},
		{name: "plain 10 digit phone", check: func() string { return ValidatePhoneField("2052055555") }},
		{name: "formatted phone", check: func() string { return ValidatePhoneField("(205)-205-5555") }},
		{name: "9 digit phone", check: func() string { return ValidatePhoneField("205205555") }, wantErr: true, wantMsg: MsgInvalidPhone},
		{name: "phone with letters", check: func() string { return ValidatePhoneField("205205555a") }, wantErr: true},
		{name: "password of 8", check: func() string { return ValidatePasswordField("secret12") }},
		{name: "short password", check: func() string { return ValidatePasswordField("secret") }, wantErr: true, wantMsg: MsgInvalidPassword},
		{name: "password with space", check: func() string { return ValidatePasswordField("secret 123") }, wantErr: true},
		{name: "https link", check: func() string { return ValidateLinkField("https://ads.google.com/x?y=1") }},
		{name: "link without scheme", check: func() string { return ValidateLinkField("ads.google.com") }, wantErr: true, wantMsg: MsgInvalidLink},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.check()
			if tt.wantErr && got == "" {
				t.Fatal("expected an error message, got none")
			}
			if !tt.wantErr && got != "" {
				t.Fatalf("expected no error, got %q", got)
			}
			if tt.wantMsg != "" && got != tt.wantMsg {
				t.Errorf("got %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestValidateUserForm(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*models.UserForm)
		wantFields []string
	}{
		{name: "valid form", mutate: func(*models.UserForm) {}},
		{
			name:       "empty first name",
			mutate:     func(f *models.UserForm) { f.FirstName = "" },
			wantFields: []string{FieldFirstName},
		},
		{
			name:       "unselected role placeholder",
			mutate:     func(f *models.UserForm) { f.Role = "0" },
			wantFields: []string{FieldRole},
		},
		{
			name:       "unknown role",
			mutate:     func(f *models.UserForm) { f.Role = "Owner" },
			wantFields: []string{FieldRole},
		},
		{
			name:       "everything empty",
			mutate:     func(f *models.UserForm) { *f = models.UserForm{} },
			wantFields: []string{FieldFirstName, FieldLastName, FieldEmail, FieldPhone, FieldRole},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validUserForm()
			tt.mutate(&form)

			errs := ValidateUserForm(form)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("got %d errors, want %d: %v", len(errs), len(tt.wantFields), errs)
			}
			for _, f := range tt.wantFields {
				if _, ok := errs[f]; !ok {
					t.Errorf("expected error for field %q", f)
				}
			}
			if errs.Valid() != (len(tt.wantFields) == 0) {
				t.Errorf("Valid() = %v with errors %v", errs.Valid(), errs)
			}
		})
	}
}

func TestValidateUserFormRequiredMessage(t *testing.T) {
	form := validUserForm()
	form.FirstName = ""

	errs := ValidateUserForm(form)
	if got := errs[FieldFirstName]; got != "First Name is required" {
		t.Errorf("got %q, want %q", got, "First Name is required")
	}
}

func TestValidateAdsForm(t *testing.T) {
	if errs := ValidateAdsForm(validAd()); !errs.Valid() {
		t.Fatalf("expected valid ad, got %v", errs)
	}

	ad := validAd()
	ad.Link = "not a link"
	ad.Status = ""
	errs := ValidateAdsForm(ad)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	if errs[FieldStatus] != "Status is required" {
		t.Errorf("unexpected status message %q", errs[FieldStatus])
	}
	if errs[FieldLink] != MsgInvalidLink {
		t.Errorf("unexpected link message %q", errs[FieldLink])
	}
}

func TestValidateLoginForm(t *testing.T) {
	errs := ValidateLoginForm(models.Credentials{Email: "admin@example.com", Password: "short"})
	if len(errs) != 1 || errs[FieldPassword] != MsgInvalidPassword {
		t.Errorf("unexpected errors %v", errs)
	}
}

func TestFieldErrorsError(t *testing.T) {
	errs := FieldErrors{FieldPhone: "p", FieldEmail: "e"}
	if got := errs.Error(); got != "email: e; phone: p" {
		t.Errorf("Error() = %q", got)
	}
}
