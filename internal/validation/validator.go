package validation

import (
	"regexp"
	"sort"
	"strings"

	"github.com/admin-dashboard/internal/models"
)

// Messages shown next to invalid form fields. "{field}" is replaced with the field label.
const (
	MsgRequired        = "{field} is required"
	MsgInvalidEmail    = "Invalid email. Please enter a valid email address"
	MsgInvalidName     = "Please enter a minimum of 4 and a maximum of 20 characters for the {field}"
	MsgInvalidPhone    = "Invalid phone number. Please enter a valid phone number. Example: (205)-205-5555"
	MsgInvalidPassword = "Invalid password. Password must have at least 8 characters"
	MsgInvalidLink     = "Invalid link. Please enter a valid URL"
	MsgInvalidChoice   = "Please select a valid {field}"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nameRegex     = regexp.MustCompile(`^.{4,20}$`)
	phoneRegex    = regexp.MustCompile(`^(\d{10}|\(\d{3}\)-\d{3}-\d{4})$`)
	passwordRegex = regexp.MustCompile(`^[A-Za-z0-9!@#$%^&*._-]{8,}$`)
	linkRegex     = regexp.MustCompile(`^https?://[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}(:\d+)?(/\S*)?$`)
)

// Form field keys, also used as the ids of the inputs they come from
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldRole      = "role"
	FieldNetwork   = "network"
	FieldLink      = "link"
	FieldStatus    = "status"
	FieldPassword  = "password"
)

// FieldErrors maps a form field key to its error message. Valid fields are absent.
type FieldErrors map[string]string

// Error implements error so a failed form can travel as one
func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return strings.Join(parts, "; ")
}

// Valid reports whether the form had no errors
func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

func (fe FieldErrors) add(field, msg string) {
	if msg != "" {
		fe[field] = msg
	}
}

// ValidateField returns "" for a valid value, the required message when value is
// empty, or errorMessage when value does not match pattern.
func ValidateField(value, fieldName string, pattern *regexp.Regexp, errorMessage string) string {
	if value == "" {
		return substitute(MsgRequired, fieldName)
	}
	if !pattern.MatchString(value) {
		return substitute(errorMessage, fieldName)
	}
	return ""
}

func substitute(msg, fieldName string) string {
	return strings.ReplaceAll(msg, "{field}", fieldName)
}

// ValidateEmailField checks an email address
func ValidateEmailField(email string) string {
	return ValidateField(email, "Email", emailRegex, MsgInvalidEmail)
}

// ValidateNameField checks a 4 to 20 character name
func ValidateNameField(name, fieldName string) string {
	return ValidateField(name, fieldName, nameRegex, MsgInvalidName)
}

// ValidatePhoneField checks a 10 digit phone number, plain or formatted
func ValidatePhoneField(phone string) string {
	return ValidateField(phone, "Phone", phoneRegex, MsgInvalidPhone)
}

// ValidatePasswordField checks a password of at least 8 allowed characters
func ValidatePasswordField(password string) string {
	return ValidateField(password, "Password", passwordRegex, MsgInvalidPassword)
}

// ValidateLinkField checks an http(s) URL
func ValidateLinkField(link string) string {
	return ValidateField(link, "Link", linkRegex, MsgInvalidLink)
}

// validateChoice checks an enum field. "0" is the unselected placeholder option.
func validateChoice(value, fieldName string, allowed map[string]bool) string {
	if value == "" || value == "0" {
		return substitute(MsgRequired, fieldName)
	}
	if !allowed[value] {
		return substitute(MsgInvalidChoice, fieldName)
	}
	return ""
}

// ValidateUserForm validates every field of the add/edit user form
func ValidateUserForm(form models.UserForm) FieldErrors {
	errs := FieldErrors{}
	errs.add(FieldFirstName, ValidateNameField(form.FirstName, "First Name"))
	errs.add(FieldLastName, ValidateNameField(form.LastName, "Last Name"))
	errs.add(FieldEmail, ValidateEmailField(form.Email))
	errs.add(FieldPhone, ValidatePhoneField(form.Phone))
	errs.add(FieldRole, validateChoice(form.Role, "Role", models.ValidRoles))
	return errs
}

// ValidateAdsForm validates every field of the add/edit ad form
func ValidateAdsForm(ad models.Ad) FieldErrors {
	errs := FieldErrors{}
	errs.add(FieldNetwork, ValidateNameField(ad.Network, "Network"))
	errs.add(FieldLink, ValidateLinkField(ad.Link))
	errs.add(FieldEmail, ValidateEmailField(ad.Email))
	errs.add(FieldPhone, ValidatePhoneField(ad.Phone))
	errs.add(FieldStatus, validateChoice(ad.Status, "Status", models.ValidAdStatuses))
	return errs
}

// ValidateLoginForm validates the sign-in form
func ValidateLoginForm(creds models.Credentials) FieldErrors {
	errs := FieldErrors{}
	errs.add(FieldEmail, ValidateEmailField(creds.Email))
	errs.add(FieldPassword, ValidatePasswordField(creds.Password))
	return errs
}
