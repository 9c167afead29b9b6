package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/admin-dashboard/internal/mocks"
	"github.com/admin-dashboard/internal/repository"
	"github.com/admin-dashboard/internal/service"
	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

const (
	debounceDelay = 300 * time.Millisecond
	spinnerDelay  = 500 * time.Millisecond
)

// dispatchQueue stands in for the UI loop: debounced searches wait here until
// the test runs them.
type dispatchQueue chan func()

func (q dispatchQueue) dispatch(fn func()) { q <- fn }

func (q dispatchQueue) runNext(t *testing.T) {
	t.Helper()
	select {
	case fn := <-q:
		fn()
	case <-time.After(time.Second):
		t.Fatal("expected a debounced search to be dispatched")
	}
}

func (q dispatchQueue) expectEmpty(t *testing.T) {
	t.Helper()
	select {
	case fn := <-q:
		fn()
		t.Fatal("unexpected debounced search")
	case <-time.After(20 * time.Millisecond):
	}
}

type fixture struct {
	store *mocks.MockStore
	clock *clock.Mock
	queue dispatchQueue
	opts  service.Options
}

func newFixture() *fixture {
	mock := clock.NewMock()
	mock.Set(time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC))
	q := make(dispatchQueue, 16)
	return &fixture{
		store: mocks.NewMockStore(),
		clock: mock,
		queue: q,
		opts: service.Options{
			Clock:          mock,
			SearchDebounce: debounceDelay,
			SpinnerDelay:   spinnerDelay,
			Dispatch:       q.dispatch,
		},
	}
}

func (f *fixture) users(t *testing.T, seed bool) *service.UserController {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewUserRepo(ctx, f.store, "listUsers", zerolog.Nop())
	if seed {
		if _, err := repo.Seed(ctx, false); err != nil {
			t.Fatalf("Seed failed: %v", err)
		}
	}
	c := service.NewUserController(repo, f.opts, zerolog.Nop())
	t.Cleanup(c.Close)
	return c
}

func (f *fixture) ads(t *testing.T) *service.AdsController {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewAdRepo(ctx, f.store, "listAds", zerolog.Nop())
	if _, err := repo.Seed(ctx, false); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	c := service.NewAdsController(repo, f.opts, zerolog.Nop())
	t.Cleanup(c.Close)
	return c
}
