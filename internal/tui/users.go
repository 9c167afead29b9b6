package tui

import (
	"context"

	"github.com/admin-dashboard/internal/config"
	"github.com/admin-dashboard/internal/render"
	"github.com/admin-dashboard/internal/service"
	"github.com/admin-dashboard/internal/view"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// UsersModel is the user-management screen
type UsersModel struct {
	chrome
	ctx  context.Context
	ctrl *service.UserController
	form *form
	err  error
	log  zerolog.Logger
}

// NewUsersModel creates the user-management screen. d must be the Dispatcher
// whose Dispatch method the controller was built with.
func NewUsersModel(ctx context.Context, ctrl *service.UserController, d *Dispatcher, cfg config.DashboardConfig, log zerolog.Logger) *UsersModel {
	return &UsersModel{
		chrome: newChrome(defaultKeyMap(), d, cfg.PageSize),
		ctx:    ctx,
		ctrl:   ctrl,
		log:    log.With().Str("component", "users-tui").Logger(),
	}
}

// Init starts listening for debounced searches
func (m *UsersModel) Init() tea.Cmd {
	return m.dispatcher.wait()
}

// Update handles messages
func (m *UsersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		cmd := m.handleKey(msg)
		m.clampCursor(len(m.ctrl.Rows()))
		return m, tea.Batch(cmd, m.startSpinner(m.ctrl.Loading()))
	}
	return m, nil
}

func (m *UsersModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.ctrl.State().Mode {
	case view.AddOpen, view.EditOpen:
		return m.handleForm(msg)
	case view.DeleteConfirmOpen:
		return m.handleConfirm(msg)
	}
	if m.searching {
		return m.handleSearch(msg)
	}
	return m.handleTable(msg)
}

func (m *UsersModel) handleTable(msg tea.KeyMsg) tea.Cmd {
	rows := m.ctrl.Rows()
	if m.moveCursor(msg, len(rows)) {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Add):
		if m.report(m.ctrl.ClickAdd()) {
			m.form = newUserForm(m.keys, nil)
		}

	case key.Matches(msg, m.keys.Edit):
		if len(rows) == 0 {
			return nil
		}
		if !m.report(m.ctrl.ClickEdit(rows[m.cursor].ID)) {
			return nil
		}
		if u, ok := m.ctrl.Target(); ok {
			m.form = newUserForm(m.keys, &u)
		}

	case key.Matches(msg, m.keys.Delete):
		if len(rows) > 0 {
			m.report(m.ctrl.ClickDelete(rows[m.cursor].ID))
		}

	case key.Matches(msg, m.keys.Search):
		return m.openSearch()
	}
	return nil
}

func (m *UsersModel) handleSearch(msg tea.KeyMsg) tea.Cmd {
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

func (m *UsersModel) handleForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.Dismiss()
		m.form = nil
		return nil

	case key.Matches(msg, m.keys.Submit):
		_, err := m.ctrl.Submit(m.ctx, m.form.userForm())
		m.err = err
		if !m.ctrl.State().ModalOpen() {
			m.form = nil
		}
		return nil
	}
	return m.form.update(msg)
}

func (m *UsersModel) handleConfirm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.err = m.ctrl.ConfirmDelete(m.ctx)
	case key.Matches(msg, m.keys.No):
		m.ctrl.Dismiss()
	}
	return nil
}

// report keeps a rejected transition for the status line. It returns true when err is nil.
func (m *UsersModel) report(err error) bool {
	m.err = err
	if err != nil {
		m.log.Debug().Err(err).Msg("Action rejected")
	}
	return err == nil
}

// View renders the screen
func (m *UsersModel) View() string {
	st := m.ctrl.State()

	var modal string
	switch st.Mode {
	case view.AddOpen, view.EditOpen:
		if m.form != nil {
			modal = m.form.view(st.FieldErrors, st.SubmitError)
		}
	case view.DeleteConfirmOpen:
		if u, ok := m.ctrl.Target(); ok {
			modal = render.DeleteConfirm(u.FullName())
		} else {
			modal = render.DeleteConfirm("this user")
		}
	}

	rows := m.ctrl.Rows()
	start, end := m.page(len(rows))

	status := render.Toast(m.ctrl.Toast())
	if m.err != nil {
		status = render.ErrorLine(m.err.Error())
	}

	return m.frame(
		render.HeaderUsers,
		render.UsersTable(rows[start:end], m.cursor-start),
		m.pageInfo(start, end, len(rows)),
		status,
		false,
		m.ctrl.Loading(),
		modal,
	)
}
