package service

import (
	"context"
	"errors"
	"time"

	"github.com/admin-dashboard/internal/config"
	"github.com/admin-dashboard/internal/debounce"
	"github.com/admin-dashboard/internal/repository"
	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

// Toast messages shown after a successful mutation
const (
	ToastAddUser    = "Add new user successfully!"
	ToastEditUser   = "Edit user successfully!"
	ToastDeleteUser = "Delete user successfully!"
	ToastAddAds     = "Add new ads successfully!"
	ToastEditAds    = "Edit ads successfully!"
	ToastDeleteAds  = "Delete ads successfully!"
)

// Sign-in messages
const (
	MsgSignInSuccess = "Sign in successfully"
	MsgSignInFailed  = "Sign in unsuccessful"
)

// ErrInvalidCredentials is returned by SignIn for a wrong email or password
var ErrInvalidCredentials = errors.New("invalid credentials")

// Options configures a controller
type Options struct {
	Clock          clock.Clock
	SearchDebounce time.Duration
	SpinnerDelay   time.Duration
	// Dispatch receives debounced searches; nil runs them on the timer goroutine
	Dispatch debounce.Dispatcher
}

// OptionsFromConfig builds Options on the wall clock
func OptionsFromConfig(cfg config.DashboardConfig, dispatch debounce.Dispatcher) Options {
	return Options{
		Clock:          clock.New(),
		SearchDebounce: cfg.SearchDebounce,
		SpinnerDelay:   cfg.SpinnerDelay,
		Dispatch:       dispatch,
	}
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = clock.New()
	}
	return o
}

// Services holds everything the dashboards need
type Services struct {
	Users  *UserController
	Ads    *AdsController
	Auth   *Authenticator
	Export *ExportService
	Import *ImportService
}

// NewServices builds the services over repos, seeding them when configured
func NewServices(ctx context.Context, repos *repository.Repositories, cfg *config.Config, opts Options, log zerolog.Logger) (*Services, error) {
	users, ads := repos.User, repos.Ad

	if cfg.Store.Seed {
		if _, err := users.Seed(ctx, false); err != nil {
			return nil, err
		}
		if _, err := ads.Seed(ctx, false); err != nil {
			return nil, err
		}
	}

	opts = opts.withDefaults()
	return &Services{
		Users:  NewUserController(users, opts, log),
		Ads:    NewAdsController(ads, opts, log),
		Auth:   NewAuthenticator(cfg.Auth, log),
		Export: NewExportService(users, ads, log),
		Import: NewImportService(users, ads, opts.Clock, log),
	}, nil
}

// Close stops pending timers
func (s *Services) Close() {
	s.Users.Close()
	s.Ads.Close()
}

// latch keeps the cosmetic loading indicator on for a fixed window
type latch struct {
	clock  clock.Clock
	window time.Duration
	until  time.Time
}

func (l *latch) start() {
	l.until = l.clock.Now().Add(l.window)
}

func (l *latch) on() bool {
	return l.clock.Now().Before(l.until)
}
