package tui

import (
	"github.com/admin-dashboard/internal/models"
	"github.com/admin-dashboard/internal/render"
	"github.com/admin-dashboard/internal/validation"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Input ids
const (
	IDFirstName = "first-name"
	IDLastName  = "last-name"
	IDEmail     = "email"
	IDPhone     = "phone-number"
	IDRole      = "role-type"
	IDNetwork   = "network"
	IDLink      = "link"
	IDStatus    = "status"
	IDPassword  = "password"
)

// field is one input of a modal form. Fields with choices are selects.
type field struct {
	id      string
	key     string // validation field key
	label   string
	input   textinput.Model
	choices []string
	choice  int // -1 until something is picked
}

func textField(id, key, label, value string) *field {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.Width = 32
	ti.SetValue(value)
	return &field{id: id, key: key, label: label, input: ti, choice: -1}
}

func selectField(id, key, label string, choices []string, value string) *field {
	f := &field{id: id, key: key, label: label, choices: choices, choice: -1}
	for i, c := range choices {
		if c == value {
			f.choice = i
		}
	}
	return f
}

func (f *field) value() string {
	if f.choices == nil {
		return f.input.Value()
	}
	if f.choice < 0 {
		return ""
	}
	return f.choices[f.choice]
}

func (f *field) cycle(step int) {
	n := len(f.choices)
	if f.choice < 0 {
		if step > 0 {
			f.choice = 0
		} else {
			f.choice = n - 1
		}
		return
	}
	f.choice = (f.choice + step + n) % n
}

func (f *field) view() string {
	if f.choices == nil {
		return f.input.View()
	}
	if f.choice < 0 {
		return "‹ Select " + f.label + " ›"
	}
	return "‹ " + f.choices[f.choice] + " ›"
}

// form is an ordered set of fields with one focused at a time
type form struct {
	title  string
	fields []*field
	focus  int
	keys   keyMap
}

func newForm(title string, keys keyMap, fields ...*field) *form {
	f := &form{title: title, fields: fields, keys: keys}
	f.focusField(0)
	return f
}

func newUserForm(keys keyMap, u *models.User) *form {
	title := render.TitleAddUser
	var v models.UserForm
	if u != nil {
		title = render.TitleEditUser
		v = models.FormFromUser(*u)
	}
	return newForm(title, keys,
		textField(IDFirstName, validation.FieldFirstName, "First Name", v.FirstName),
		textField(IDLastName, validation.FieldLastName, "Last Name", v.LastName),
		textField(IDEmail, validation.FieldEmail, "Email", v.Email),
		textField(IDPhone, validation.FieldPhone, "Phone", v.Phone),
		selectField(IDRole, validation.FieldRole, "Role", models.Roles, v.Role),
	)
}

func newAdForm(keys keyMap, ad *models.Ad) *form {
	title := render.TitleAddAds
	var v models.Ad
	if ad != nil {
		title = render.TitleEditAds
		v = *ad
	}
	return newForm(title, keys,
		textField(IDNetwork, validation.FieldNetwork, "Network", v.Network),
		textField(IDLink, validation.FieldLink, "Link", v.Link),
		textField(IDEmail, validation.FieldEmail, "Email", v.Email),
		textField(IDPhone, validation.FieldPhone, "Phone", v.Phone),
		selectField(IDStatus, validation.FieldStatus, "Status", models.AdStatuses, v.Status),
	)
}

func newLoginForm(keys keyMap) *form {
	password := textField(IDPassword, validation.FieldPassword, "Password", "")
	password.input.EchoMode = textinput.EchoPassword
	password.input.EchoCharacter = '•'
	return newForm(render.TitleSignIn, keys,
		textField(IDEmail, validation.FieldEmail, "Email", ""),
		password,
	)
}

func (f *form) focusField(i int) tea.Cmd {
	for _, fld := range f.fields {
		if fld.choices == nil {
			fld.input.Blur()
		}
	}
	f.focus = i
	if fld := f.fields[i]; fld.choices == nil {
		return fld.input.Focus()
	}
	return nil
}

func (f *form) next() tea.Cmd {
	return f.focusField((f.focus + 1) % len(f.fields))
}

func (f *form) prev() tea.Cmd {
	return f.focusField((f.focus - 1 + len(f.fields)) % len(f.fields))
}

// update routes a key to the focused field
func (f *form) update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, f.keys.Next):
		return f.next()
	case key.Matches(msg, f.keys.Prev):
		return f.prev()
	}

	fld := f.fields[f.focus]
	if fld.choices != nil {
		switch {
		case key.Matches(msg, f.keys.Left):
			fld.cycle(-1)
		case key.Matches(msg, f.keys.Right):
			fld.cycle(1)
		}
		return nil
	}

	var cmd tea.Cmd
	fld.input, cmd = fld.input.Update(msg)
	if fld.id == IDPhone {
		raw := fld.input.Value()
		if formatted := validation.FormatPhoneInput(raw); formatted != raw {
			fld.input.SetValue(formatted)
			fld.input.CursorEnd()
		}
	}
	return cmd
}

func (f *form) field(id string) *field {
	for _, fld := range f.fields {
		if fld.id == id {
			return fld
		}
	}
	return nil
}

// get returns the value of input id, "" for an unknown id
func (f *form) get(id string) string {
	if fld := f.field(id); fld != nil {
		return fld.value()
	}
	return ""
}

// set fills input id, picking the matching option for a select
func (f *form) set(id, value string) {
	fld := f.field(id)
	if fld == nil {
		return
	}
	if fld.choices == nil {
		fld.input.SetValue(value)
		return
	}
	fld.choice = -1
	for i, c := range fld.choices {
		if c == value {
			fld.choice = i
		}
	}
}

func (f *form) userForm() models.UserForm {
	return models.UserForm{
		FirstName: f.get(IDFirstName),
		LastName:  f.get(IDLastName),
		Email:     f.get(IDEmail),
		Phone:     f.get(IDPhone),
		Role:      f.get(IDRole),
	}
}

func (f *form) ad() models.Ad {
	return models.Ad{
		Network: f.get(IDNetwork),
		Link:    f.get(IDLink),
		Email:   f.get(IDEmail),
		Phone:   f.get(IDPhone),
		Status:  f.get(IDStatus),
	}
}

func (f *form) credentials() models.Credentials {
	return models.Credentials{
		Email:    f.get(IDEmail),
		Password: f.get(IDPassword),
	}
}

func (f *form) view(errs validation.FieldErrors, submitErr string) string {
	fields := make([]render.FormField, 0, len(f.fields))
	for i, fld := range f.fields {
		fields = append(fields, render.FormField{
			Key:     fld.key,
			Label:   fld.label,
			Value:   fld.view(),
			Focused: i == f.focus,
		})
	}
	return render.Modal(f.title, fields, errs, submitErr)
}
