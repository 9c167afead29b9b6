package models

// Credentials holds the sign-in form values of the ads dashboard
type Credentials struct {
	Email    string
	Password string
}
