package tui

import tea "github.com/charmbracelet/bubbletea"

// Dispatcher hands debounced callbacks from timer goroutines to the bubbletea
// update loop, where controller state may be touched.
type Dispatcher struct {
	queue chan func()
}

// NewDispatcher creates a Dispatcher. Pass its Dispatch method to
// service.Options and the Dispatcher itself to the model.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{queue: make(chan func(), 16)}
}

// Dispatch queues fn for the update loop
func (d *Dispatcher) Dispatch(fn func()) {
	d.queue <- fn
}

// dispatchMsg carries a queued callback into Update
type dispatchMsg struct {
	fn func()
}

// wait blocks until a callback is queued. Models re-issue it after every dispatchMsg.
func (d *Dispatcher) wait() tea.Cmd {
	return func() tea.Msg {
		return dispatchMsg{fn: <-d.queue}
	}
}
