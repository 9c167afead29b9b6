package service

import (
	"context"
	"fmt"

	"github.com/admin-dashboard/internal/debounce"
	"github.com/admin-dashboard/internal/models"
	"github.com/admin-dashboard/internal/repository"
	"github.com/admin-dashboard/internal/validation"
	"github.com/admin-dashboard/internal/view"
	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

// UserController drives the user-management dashboard: modal transitions,
// validation, persistence and the visible (searched) rows. All methods must be
// called from one goroutine; debounced searches come back through Options.Dispatch.
type UserController struct {
	repo    repository.UserRepository
	clock   clock.Clock
	search  *debounce.Debouncer
	loading latch
	log     zerolog.Logger

	state   view.State
	visible []models.User
	toast   string
	lastErr error
}

// NewUserController shows every user and starts with all modals closed
func NewUserController(repo repository.UserRepository, opts Options, log zerolog.Logger) *UserController {
	opts = opts.withDefaults()
	c := &UserController{
		repo:    repo,
		clock:   opts.Clock,
		loading: latch{clock: opts.Clock, window: opts.SpinnerDelay},
		log:     log.With().Str("component", "users").Logger(),
	}
	c.search = debounce.New(opts.Clock, opts.SearchDebounce, c.applySearch, opts.Dispatch)
	c.visible = repo.All()
	return c
}

// State returns the current view state
func (c *UserController) State() view.State { return c.state }

// Rows returns the users currently displayed
func (c *UserController) Rows() []models.User {
	out := make([]models.User, len(c.visible))
	copy(out, c.visible)
	return out
}

// Loading reports whether the loading spinner is shown
func (c *UserController) Loading() bool { return c.loading.on() }

// Toast returns the last success message
func (c *UserController) Toast() string { return c.toast }

// LastError returns the last persistence failure, if any
func (c *UserController) LastError() error { return c.lastErr }

// SearchPending reports whether a debounced search is scheduled
func (c *UserController) SearchPending() bool { return c.search.Pending() }

// Target returns the record of the open edit or delete modal
func (c *UserController) Target() (models.User, bool) {
	if c.state.Mode != view.EditOpen && c.state.Mode != view.DeleteConfirmOpen {
		return models.User{}, false
	}
	return c.repo.GetByID(c.state.TargetID)
}

func (c *UserController) reduce(e view.Event) (view.Effect, error) {
	next, effect, err := view.Reduce(c.state, e)
	if err != nil {
		c.log.Debug().Err(err).Str("mode", c.state.Mode.String()).Msg("Event rejected")
		return effect, err
	}
	c.state = next
	return effect, nil
}

// ClickAdd opens the add modal
func (c *UserController) ClickAdd() error {
	c.toast = ""
	_, err := c.reduce(view.ClickAdd{})
	return err
}

// ClickEdit opens the edit modal of id. An unknown id changes nothing.
func (c *UserController) ClickEdit(id int) error {
	c.toast = ""
	_, found := c.repo.GetByID(id)
	_, err := c.reduce(view.ClickEdit{ID: id, Found: found})
	return err
}

// ClickDelete opens the delete confirmation of id
func (c *UserController) ClickDelete(id int) error {
	c.toast = ""
	_, err := c.reduce(view.ClickDelete{ID: id})
	return err
}

// Dismiss closes whatever modal is open without side effects
func (c *UserController) Dismiss() {
	c.reduce(view.Dismiss{})
}

// Submit validates form and, when valid, adds or updates the user of the open
// modal. Invalid forms return their field errors and write nothing.
func (c *UserController) Submit(ctx context.Context, form models.UserForm) (validation.FieldErrors, error) {
	form = trimUserForm(form)
	errs := validation.ValidateUserForm(form)

	mode := c.state.Mode
	effect, err := c.reduce(view.Submit{Errors: errs})
	if err != nil {
		return nil, err
	}

	switch effect.Kind {
	case view.ShowErrors:
		return errs, nil

	case view.AppendRecord:
		c.loading.start()
		user, err := c.repo.Create(ctx, form, c.clock.Now().Format(models.DateLayout))
		c.afterMutation(ToastAddUser)
		if err != nil {
			return nil, c.fail("failed to add user", err)
		}
		c.log.Info().Int("user_id", user.ID).Msg("User added")

	case view.UpdateRecord:
		c.loading.start()
		_, ok, err := c.repo.Update(ctx, effect.ID, form)
		c.afterMutation(ToastEditUser)
		if err != nil {
			return nil, c.fail("failed to update user", err)
		}
		if !ok {
			c.log.Warn().Int("user_id", effect.ID).Msg("Edited user no longer exists")
		} else {
			c.log.Info().Int("user_id", effect.ID).Msg("User updated")
		}

	default:
		c.log.Debug().Str("mode", mode.String()).Msg("Submit ignored")
	}
	return nil, nil
}

// ConfirmDelete removes the user of the open delete confirmation
func (c *UserController) ConfirmDelete(ctx context.Context) error {
	effect, err := c.reduce(view.Confirm{})
	if err != nil || effect.Kind != view.DeleteRecord {
		return err
	}

	c.loading.start()
	deleted, err := c.repo.Delete(ctx, effect.ID)
	if err != nil {
		c.afterMutation(ToastDeleteUser)
		return c.fail("failed to delete user", err)
	}
	if !deleted {
		c.log.Warn().Int("user_id", effect.ID).Msg("Deleted user did not exist")
		c.afterMutation("")
		return nil
	}
	c.afterMutation(ToastDeleteUser)
	c.log.Info().Int("user_id", effect.ID).Msg("User deleted")
	return nil
}

// Input records a new query and schedules the search after the debounce delay
func (c *UserController) Input(query string) {
	if query == c.state.Query {
		return
	}
	c.reduce(view.QueryInput{Query: query})
	c.search.Trigger()
}

// SearchNow runs the search immediately (search button or Enter)
func (c *UserController) SearchNow() {
	c.loading.start()
	c.search.Flush()
}

// afterMutation drops a pending debounced search, which would otherwise render
// the list it was scheduled against, and re-applies the current query now.
func (c *UserController) afterMutation(toast string) {
	c.search.Cancel()
	c.applySearch()
	c.toast = toast
	c.lastErr = nil
}

func (c *UserController) applySearch() {
	c.visible = c.repo.Search(c.state.Query)
}

func (c *UserController) fail(msg string, err error) error {
	c.toast = ""
	c.lastErr = fmt.Errorf("%s: %w", msg, err)
	c.log.Error().Err(err).Msg(msg)
	return c.lastErr
}

// Close stops any pending search
func (c *UserController) Close() {
	c.search.Cancel()
}

func trimUserForm(f models.UserForm) models.UserForm {
	return models.UserForm{
		FirstName: validation.TrimString(f.FirstName),
		LastName:  validation.TrimString(f.LastName),
		Email:     validation.TrimString(f.Email),
		Phone:     validation.TrimString(f.Phone),
		Role:      f.Role,
	}
}
