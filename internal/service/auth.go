package service

import (
	"crypto/subtle"
	"strings"

	"github.com/admin-dashboard/internal/config"
	"github.com/admin-dashboard/internal/models"
	"github.com/admin-dashboard/internal/validation"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator checks the ads dashboard sign-in against the configured admin
type Authenticator struct {
	email string
	hash  []byte
	log   zerolog.Logger
}

// NewAuthenticator builds an Authenticator. Without a password hash sign-in is disabled.
func NewAuthenticator(cfg config.AuthConfig, log zerolog.Logger) *Authenticator {
	a := &Authenticator{
		email: strings.ToLower(cfg.Email),
		log:   log.With().Str("component", "auth").Logger(),
	}
	if cfg.PasswordHash != "" {
		a.hash = []byte(cfg.PasswordHash)
	}
	return a
}

// Enabled reports whether the dashboard requires a sign-in
func (a *Authenticator) Enabled() bool {
	return a.hash != nil
}

// SignIn validates creds and compares them with the admin account. Invalid input
// returns field errors; a wrong email or password returns ErrInvalidCredentials.
func (a *Authenticator) SignIn(creds models.Credentials) (validation.FieldErrors, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if errs := validation.ValidateLoginForm(creds); !errs.Valid() {
		return errs, nil
	}
	if !a.Enabled() {
		return nil, nil
	}

	emailOK := subtle.ConstantTimeCompare([]byte(strings.ToLower(creds.Email)), []byte(a.email)) == 1
	passErr := bcrypt.CompareHashAndPassword(a.hash, []byte(creds.Password))
	if !emailOK || passErr != nil {
		a.log.Warn().Str("email", creds.Email).Msg(MsgSignInFailed)
		return nil, ErrInvalidCredentials
	}

	a.log.Info().Str("email", creds.Email).Msg(MsgSignInSuccess)
	return nil, nil
}

// HashPassword returns the bcrypt hash to put in ADMIN_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	if msg := validation.ValidatePasswordField(password); msg != "" {
		return "", validation.FieldErrors{validation.FieldPassword: msg}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
