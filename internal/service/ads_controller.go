package service

import (
	"context"
	"fmt"

	"github.com/admin-dashboard/internal/debounce"
	"github.com/admin-dashboard/internal/models"
	"github.com/admin-dashboard/internal/repository"
	"github.com/admin-dashboard/internal/validation"
	"github.com/admin-dashboard/internal/view"
	"github.com/rs/zerolog"
)

// AddAdsHandler stores a submitted ad. ad.ID is 0 for a new ad and the edited
// ad's id otherwise.
type AddAdsHandler func(ctx context.Context, ad models.Ad) error

// DeleteAdsHandler removes the ad with id
type DeleteAdsHandler func(ctx context.Context, id int) error

// AdsController drives the ads-management dashboard. Like UserController it is
// single-goroutine; it adds per-row dropdowns, a clear-search action and
// pluggable add/delete handlers whose failures are reported, not swallowed.
type AdsController struct {
	repo    repository.AdRepository
	search  *debounce.Debouncer
	loading latch
	log     zerolog.Logger

	addHandler    AddAdsHandler
	deleteHandler DeleteAdsHandler
	logoutHandler func()

	state   view.State
	visible []models.Ad
	toast   string
	lastErr error
}

// NewAdsController binds the repository-backed add and delete handlers
func NewAdsController(repo repository.AdRepository, opts Options, log zerolog.Logger) *AdsController {
	opts = opts.withDefaults()
	c := &AdsController{
		repo:    repo,
		loading: latch{clock: opts.Clock, window: opts.SpinnerDelay},
		log:     log.With().Str("component", "ads").Logger(),
	}
	c.search = debounce.New(opts.Clock, opts.SearchDebounce, c.applySearch, opts.Dispatch)
	c.addHandler = c.storeAd
	c.deleteHandler = c.removeAd
	c.visible = repo.All()
	return c
}

// BindAddAds replaces the handler used by add and edit submits
func (c *AdsController) BindAddAds(handler AddAdsHandler) {
	c.addHandler = handler
}

// BindDeleteAds replaces the handler used by delete confirmation
func (c *AdsController) BindDeleteAds(handler DeleteAdsHandler) {
	c.deleteHandler = handler
}

// BindLogout sets the function run by Logout
func (c *AdsController) BindLogout(handler func()) {
	c.logoutHandler = handler
}

func (c *AdsController) storeAd(ctx context.Context, ad models.Ad) error {
	if ad.ID == 0 {
		created, err := c.repo.Create(ctx, ad)
		if err != nil {
			return err
		}
		c.log.Info().Int("ad_id", created.ID).Msg("Ad added")
		return nil
	}
	_, ok, err := c.repo.Update(ctx, ad.ID, ad)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("ad %d no longer exists", ad.ID)
	}
	c.log.Info().Int("ad_id", ad.ID).Msg("Ad updated")
	return nil
}

func (c *AdsController) removeAd(ctx context.Context, id int) error {
	deleted, err := c.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted {
		c.log.Info().Int("ad_id", id).Msg("Ad deleted")
	}
	return nil
}

// State returns the current view state
func (c *AdsController) State() view.State { return c.state }

// Rows returns the ads currently displayed
func (c *AdsController) Rows() []models.Ad {
	out := make([]models.Ad, len(c.visible))
	copy(out, c.visible)
	return out
}

// Loading reports whether the loading spinner is shown
func (c *AdsController) Loading() bool { return c.loading.on() }

// Toast returns the last success message
func (c *AdsController) Toast() string { return c.toast }

// LastError returns the last handler failure, if any
func (c *AdsController) LastError() error { return c.lastErr }

// SearchPending reports whether a debounced search is scheduled
func (c *AdsController) SearchPending() bool { return c.search.Pending() }

// Target returns the ad of the open edit or delete modal
func (c *AdsController) Target() (models.Ad, bool) {
	if c.state.Mode != view.EditOpen && c.state.Mode != view.DeleteConfirmOpen {
		return models.Ad{}, false
	}
	return c.repo.GetByID(c.state.TargetID)
}

func (c *AdsController) reduce(e view.Event) (view.Effect, error) {
	next, effect, err := view.Reduce(c.state, e)
	if err != nil {
		c.log.Debug().Err(err).Str("mode", c.state.Mode.String()).Msg("Event rejected")
		return effect, err
	}
	c.state = next
	return effect, nil
}

// ClickAdd opens the add modal
func (c *AdsController) ClickAdd() error {
	c.toast = ""
	_, err := c.reduce(view.ClickAdd{})
	return err
}

// ClickEdit opens the edit modal of id. An unknown id changes nothing.
func (c *AdsController) ClickEdit(id int) error {
	c.toast = ""
	_, found := c.repo.GetByID(id)
	_, err := c.reduce(view.ClickEdit{ID: id, Found: found})
	return err
}

// ClickDelete opens the delete confirmation of id
func (c *AdsController) ClickDelete(id int) error {
	c.toast = ""
	_, err := c.reduce(view.ClickDelete{ID: id})
	return err
}

// Dismiss closes whatever modal is open without side effects
func (c *AdsController) Dismiss() {
	c.reduce(view.Dismiss{})
}

// ToggleDropdown opens the action menu of row id, closing any other
func (c *AdsController) ToggleDropdown(id int) {
	c.reduce(view.ToggleDropdown{ID: id})
}

// ClickOutside closes every dropdown unless the click landed inside one
func (c *AdsController) ClickOutside(inside bool) {
	c.reduce(view.ClickOutside{Inside: inside})
}

// Submit validates ad and hands it to the add handler. A handler failure keeps
// the modal open with the error shown and is returned to the caller.
func (c *AdsController) Submit(ctx context.Context, ad models.Ad) (validation.FieldErrors, error) {
	ad = trimAd(ad)
	errs := validation.ValidateAdsForm(ad)

	before := c.state
	effect, err := c.reduce(view.Submit{Errors: errs})
	if err != nil {
		return nil, err
	}

	switch effect.Kind {
	case view.ShowErrors:
		return errs, nil
	case view.AppendRecord:
		ad.ID = 0
	case view.UpdateRecord:
		ad.ID = effect.ID
	default:
		return nil, nil
	}

	c.loading.start()
	if err := c.addHandler(ctx, ad); err != nil {
		c.state = before
		c.reduce(view.SubmitFailed{Err: err})
		// the handler may have written before failing
		c.applySearch()
		return nil, c.fail("failed to save ads", err)
	}

	if effect.Kind == view.AppendRecord {
		c.afterMutation(ToastAddAds)
	} else {
		c.afterMutation(ToastEditAds)
	}
	return nil, nil
}

// ConfirmDelete runs the delete handler for the ad of the open confirmation
func (c *AdsController) ConfirmDelete(ctx context.Context) error {
	effect, err := c.reduce(view.Confirm{})
	if err != nil || effect.Kind != view.DeleteRecord {
		return err
	}

	c.loading.start()
	if err := c.deleteHandler(ctx, effect.ID); err != nil {
		c.afterMutation("")
		return c.fail("failed to delete ads", err)
	}
	c.afterMutation(ToastDeleteAds)
	return nil
}

// Input records a new query, toggles the clear button and schedules the search
func (c *AdsController) Input(query string) {
	if query == c.state.Query {
		return
	}
	c.reduce(view.QueryInput{Query: query})
	c.search.Trigger()
}

// SearchNow runs the search immediately
func (c *AdsController) SearchNow() {
	c.loading.start()
	c.search.Flush()
}

// ClearSearch empties the query and shows the full list again
func (c *AdsController) ClearSearch() {
	c.reduce(view.ClearSearch{})
	c.search.Flush()
}

// Logout closes modals and dropdowns and runs the bound logout handler
func (c *AdsController) Logout() {
	c.search.Cancel()
	c.state = view.State{}
	c.applySearch()
	c.toast = ""
	c.log.Info().Msg("Logged out")
	if c.logoutHandler != nil {
		c.logoutHandler()
	}
}

func (c *AdsController) afterMutation(toast string) {
	c.search.Cancel()
	c.applySearch()
	c.toast = toast
	c.lastErr = nil
}

func (c *AdsController) applySearch() {
	c.visible = c.repo.Search(c.state.Query)
}

func (c *AdsController) fail(msg string, err error) error {
	c.toast = ""
	c.lastErr = fmt.Errorf("%s: %w", msg, err)
	c.log.Error().Err(err).Msg(msg)
	return c.lastErr
}

// Close stops any pending search
func (c *AdsController) Close() {
	c.search.Cancel()
}

func trimAd(ad models.Ad) models.Ad {
	ad.Network = validation.TrimString(ad.Network)
	ad.Link = validation.TrimString(ad.Link)
	ad.Email = validation.TrimString(ad.Email)
	ad.Phone = validation.TrimString(ad.Phone)
	return ad
}
