package models

import (
	"strings"
)

// Role values offered by the user form
const (
	RoleSuperAdmin = "Super Admin"
	RoleAdmin      = "Admin"
	RoleHRAdmin    = "HR Admin"
	RoleEmployee   = "Employee"
)

// Role ids derived from the role name
const (
	RoleIDAdmin    = "admin"
	RoleIDEmployee = "employee"
)

// Roles lists the selectable roles in display order
var Roles = []string{RoleSuperAdmin, RoleAdmin, RoleHRAdmin, RoleEmployee}

// ValidRoles defines allowed user roles
var ValidRoles = map[string]bool{
	RoleSuperAdmin: true,
	RoleAdmin:      true,
	RoleHRAdmin:    true,
	RoleEmployee:   true,
}

// DateLayout is the layout used for the user's "date" column, e.g. "24 Oct, 2015"
const DateLayout = "2 Jan, 2006"

// User represents a user row of the user-management dashboard
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	RoleID    string `json:"roleId"`
	Date      string `json:"date"`
}

// UserForm holds the values read from the add/edit user modal
type UserForm struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      string
}

// RoleIDFor returns "admin" for any role containing "Admin", "employee" otherwise
func RoleIDFor(role string) string {
	if strings.Contains(role, "Admin") {
		return RoleIDAdmin
	}
	return RoleIDEmployee
}

// FullName joins first and last name the way the search matches them
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Apply overwrites the editable fields from the form and recomputes RoleID
func (u *User) Apply(form UserForm) {
	u.FirstName = form.FirstName
	u.LastName = form.LastName
	u.Email = form.Email
	u.Phone = form.Phone
	u.Role = form.Role
	u.RoleID = RoleIDFor(form.Role)
}

// FormFromUser pre-fills a form for the edit modal
func FormFromUser(u User) UserForm {
	return UserForm{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
	}
}

// Identifier returns the record id
func (u User) Identifier() int { return u.ID }
