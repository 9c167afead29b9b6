package tui

import (
	"context"
	"errors"

	"github.com/admin-dashboard/internal/config"
	"github.com/admin-dashboard/internal/render"
	"github.com/admin-dashboard/internal/service"
	"github.com/admin-dashboard/internal/validation"
	"github.com/admin-dashboard/internal/view"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// AdsModel is the ads-management screen, behind a sign-in form when the
// authenticator is enabled
type AdsModel struct {
	chrome
	ctx  context.Context
	ctrl *service.AdsController
	auth *service.Authenticator
	form *form
	err  error
	log  zerolog.Logger

	signedIn    bool
	login       *form
	loginErrs   validation.FieldErrors
	loginStatus string
}

// NewAdsModel creates the ads screen and binds the controller's logout to the sign-in form
func NewAdsModel(ctx context.Context, ctrl *service.AdsController, auth *service.Authenticator, d *Dispatcher, cfg config.DashboardConfig, log zerolog.Logger) *AdsModel {
	m := &AdsModel{
		chrome: newChrome(adsKeyMap(), d, cfg.PageSize),
		ctx:    ctx,
		ctrl:   ctrl,
		auth:   auth,
		log:    log.With().Str("component", "ads-tui").Logger(),
	}
	m.search.Placeholder = "network, link, email, phone or status"
	m.signedIn = auth == nil || !auth.Enabled()
	if !m.signedIn {
		m.login = newLoginForm(m.keys)
	}
	ctrl.BindLogout(m.signOut)
	return m
}

func (m *AdsModel) signOut() {
	m.form = nil
	m.err = nil
	m.search.SetValue("")
	m.closeSearch()
	m.cursor = 0
	if m.auth == nil || !m.auth.Enabled() {
		return
	}
	m.signedIn = false
	m.login = newLoginForm(m.keys)
	m.loginErrs = nil
	m.loginStatus = ""
}

// Init starts listening for debounced searches
func (m *AdsModel) Init() tea.Cmd {
	return m.dispatcher.wait()
}

// Update handles messages
func (m *AdsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)

	case dispatchMsg:
		msg.fn()
		m.clampCursor(len(m.ctrl.Rows()))
		return m, m.dispatcher.wait()

	case spinner.TickMsg:
		return m, m.tickSpinner(msg, m.ctrl.Loading())

	case tea.KeyMsg:
		if !m.signedIn {
			return m, m.handleLogin(msg)
		}
		cmd := m.handleKey(msg)
		m.clampCursor(len(m.ctrl.Rows()))
		return m, tea.Batch(cmd, m.startSpinner(m.ctrl.Loading()))
	}
	return m, nil
}

func (m *AdsModel) handleLogin(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.String() == "ctrl+c":
		return tea.Quit
	case key.Matches(msg, m.keys.Submit):
		errs, err := m.auth.SignIn(m.login.credentials())
		m.loginErrs = errs
		m.loginStatus = ""
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			m.loginStatus = service.MsgSignInFailed
		case err != nil:
			m.loginStatus = err.Error()
		case errs.Valid():
			m.signedIn = true
			m.login = nil
		}
		return nil
	}
	return m.login.update(msg)
}

func (m *AdsModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.ctrl.State().Mode {
	case view.AddOpen, view.EditOpen:
		return m.handleForm(msg)
	case view.DeleteConfirmOpen:
		return m.handleConfirm(msg)
	}
	if m.searching {
		return m.handleSearch(msg)
	}
	if open := m.ctrl.State().OpenDropdown; open != 0 {
		return m.handleDropdown(msg, open)
	}
	return m.handleTable(msg)
}

func (m *AdsModel) handleTable(msg tea.KeyMsg) tea.Cmd {
	rows := m.ctrl.Rows()
	if m.moveCursor(msg, len(rows)) {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Add):
		if m.report(m.ctrl.ClickAdd()) {
			m.form = newAdForm(m.keys, nil)
		}

	case key.Matches(msg, m.keys.Menu):
		if len(rows) > 0 {
			m.ctrl.ToggleDropdown(rows[m.cursor].ID)
		}

	case key.Matches(msg, m.keys.Edit):
		if len(rows) > 0 {
			m.edit(rows[m.cursor].ID)
		}

	case key.Matches(msg, m.keys.Delete):
		if len(rows) > 0 {
			m.report(m.ctrl.ClickDelete(rows[m.cursor].ID))
		}

	case key.Matches(msg, m.keys.Search):
		return m.openSearch()

	case key.Matches(msg, m.keys.Clear):
		m.search.SetValue("")
		m.ctrl.ClearSearch()

	case key.Matches(msg, m.keys.Logout):
		m.ctrl.Logout()
	}
	return nil
}

// handleDropdown acts on the open action menu. Any other key is a click outside it.
func (m *AdsModel) handleDropdown(msg tea.KeyMsg, id int) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Edit):
		m.edit(id)
	case key.Matches(msg, m.keys.Delete):
		m.report(m.ctrl.ClickDelete(id))
	case key.Matches(msg, m.keys.Menu):
		m.ctrl.ToggleDropdown(id)
	default:
		m.ctrl.ClickOutside(false)
		if key.Matches(msg, m.keys.Up, m.keys.Down) {
			m.moveCursor(msg, len(m.ctrl.Rows()))
		}
	}
	return nil
}

func (m *AdsModel) edit(id int) {
	if !m.report(m.ctrl.ClickEdit(id)) {
		return
	}
	if ad, ok := m.ctrl.Target(); ok {
		m.form = newAdForm(m.keys, &ad)
	}
}

func (m *AdsModel) handleSearch(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeSearch()
		return nil
	case key.Matches(msg, m.keys.Submit):
		m.closeSearch()
		m.ctrl.SearchNow()
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.ctrl.Input(m.search.Value())
	return cmd
}

func (m *AdsModel) handleForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.Dismiss()
		m.form = nil
		return nil

	case key.Matches(msg, m.keys.Submit):
		// a handler failure is shown inside the still open modal
		_, err := m.ctrl.Submit(m.ctx, m.form.ad())
		if !m.ctrl.State().ModalOpen() {
			m.form = nil
			m.err = err
		}
		return nil
	}
	return m.form.update(msg)
}

func (m *AdsModel) handleConfirm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.err = m.ctrl.ConfirmDelete(m.ctx)
	case key.Matches(msg, m.keys.No):
		m.ctrl.Dismiss()
	}
	return nil
}

func (m *AdsModel) report(err error) bool {
	m.err = err
	if err != nil {
		m.log.Debug().Err(err).Msg("Action rejected")
	}
	return err == nil
}

// View renders the sign-in form or the ads screen
func (m *AdsModel) View() string {
	if !m.signedIn {
		return render.Header(render.HeaderAds) + "\n\n" + m.login.view(m.loginErrs, m.loginStatus)
	}

	st := m.ctrl.State()

	var modal string
	switch st.Mode {
	case view.AddOpen, view.EditOpen:
		if m.form != nil {
			modal = m.form.view(st.FieldErrors, st.SubmitError)
		}
	case view.DeleteConfirmOpen:
		if ad, ok := m.ctrl.Target(); ok {
			modal = render.DeleteConfirm(ad.Network)
		} else {
			modal = render.DeleteConfirm("this ad")
		}
	}

	rows := m.ctrl.Rows()
	start, end := m.page(len(rows))

	status := render.Toast(m.ctrl.Toast())
	if m.err != nil {
		status = render.ErrorLine(m.err.Error())
	}

	return m.frame(
		render.HeaderAds,
		render.AdsTable(rows[start:end], m.cursor-start, st.OpenDropdown),
		m.pageInfo(start, end, len(rows)),
		status,
		st.ClearSearchVisible(),
		m.ctrl.Loading(),
		modal,
	)
}
