package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/admin-dashboard/internal/models"
	"github.com/admin-dashboard/internal/service"
	"github.com/admin-dashboard/internal/view"
)

func pinterest() models.Ad {
	return models.Ad{
		Network: "Pinterest",
		Link:    "https://ads.pinterest.com/spring",
		Email:   "ads@pinterest.com",
		Phone:   "2125550100",
		Status:  models.AdStatusActive,
	}
}

func TestAdsController_AddWithDefaultHandler(t *testing.T) {
	f := newFixture()
	c := f.ads(t)

	c.ClickAdd()
	errs, err := c.Submit(context.Background(), pinterest())
	if errs != nil || err != nil {
		t.Fatalf("Submit failed: errs=%v err=%v", errs, err)
	}

	rows := c.Rows()
	if len(rows) != 5 || rows[4].ID != 5 || rows[4].Network != "Pinterest" {
		t.Errorf("unexpected rows %+v", rows)
	}
	if c.Toast() != service.ToastAddAds {
		t.Errorf("unexpected toast %q", c.Toast())
	}
}

func TestAdsController_HandlerFailureIsSurfaced(t *testing.T) {
	f := newFixture()
	c := f.ads(t)
	handlerErr := errors.New("upstream rejected")
	var got models.Ad
	c.BindAddAds(func(ctx context.Context, ad models.Ad) error {
		got = ad
		return handlerErr
	})

	c.ClickAdd()
	_, err := c.Submit(context.Background(), pinterest())
	if !errors.Is(err, handlerErr) {
		t.Fatalf("expected handler error, got %v", err)
	}
	if got.Network != "Pinterest" || got.ID != 0 {
		t.Errorf("handler received %+v", got)
	}

	st := c.State()
	if st.Mode != view.AddOpen {
		t.Errorf("modal should stay open, got %v", st.Mode)
	}
	if st.SubmitError == "" {
		t.Error("modal should show the failure")
	}
	if len(c.Rows()) != 4 {
		t.Errorf("nothing should be added, got %d rows", len(c.Rows()))
	}
}

func TestAdsController_InvalidSubmitSkipsHandler(t *testing.T) {
	f := newFixture()
	c := f.ads(t)
	called := false
	c.BindAddAds(func(context.Context, models.Ad) error {
		called = true
		return nil
	})

	c.ClickAdd()
	ad := pinterest()
	ad.Link = "pinterest"
	errs, err := c.Submit(context.Background(), ad)
	if err != nil || len(errs) != 1 {
		t.Fatalf("expected one field error, got errs=%v err=%v", errs, err)
	}
	if called {
		t.Error("handler must not run for an invalid form")
	}
}

func TestAdsController_DropdownEditFlow(t *testing.T) {
	f := newFixture()
	c := f.ads(t)

	c.ToggleDropdown(2)
	c.ToggleDropdown(3)
	if c.State().OpenDropdown != 3 {
		t.Fatalf("only dropdown 3 should be open, got %d", c.State().OpenDropdown)
	}
	c.ClickOutside(false)
	if c.State().OpenDropdown != 0 {
		t.Fatalf("click outside should close dropdowns")
	}

	c.ToggleDropdown(2)
	if err := c.ClickEdit(2); err != nil {
		t.Fatalf("ClickEdit failed: %v", err)
	}
	if st := c.State(); st.Mode != view.EditOpen || st.TargetID != 2 || st.OpenDropdown != 0 {
		t.Fatalf("unexpected state %+v", st)
	}

	target, _ := c.Target()
	target.Status = models.AdStatusActive
	if _, err := c.Submit(context.Background(), target); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if rows := c.Rows(); rows[1].Status != models.AdStatusActive || len(rows) != 4 {
		t.Errorf("edit not applied: %+v", rows[1])
	}
	if c.Toast() != service.ToastEditAds {
		t.Errorf("unexpected toast %q", c.Toast())
	}
}

func TestAdsController_ClearSearch(t *testing.T) {
	f := newFixture()
	c := f.ads(t)

	c.Input("google")
	if !c.State().ClearSearchVisible() {
		t.Error("clear button should show for a non-empty query")
	}
	c.SearchNow()
	if len(c.Rows()) != 1 {
		t.Fatalf("expected 1 result, got %d", len(c.Rows()))
	}

	c.ClearSearch()
	if c.State().Query != "" || c.State().ClearSearchVisible() {
		t.Errorf("query should be cleared, got %+v", c.State())
	}
	if len(c.Rows()) != 4 {
		t.Errorf("full list should be restored, got %d", len(c.Rows()))
	}
}

func TestAdsController_DeleteHandlerFailure(t *testing.T) {
	f := newFixture()
	c := f.ads(t)
	boom := errors.New("boom")
	c.BindDeleteAds(func(context.Context, int) error { return boom })

	c.ClickDelete(1)
	if err := c.ConfirmDelete(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected delete failure, got %v", err)
	}
	if len(c.Rows()) != 4 {
		t.Errorf("nothing should be deleted, got %d rows", len(c.Rows()))
	}
}

func TestAdsController_DeleteWithDefaultHandler(t *testing.T) {
	f := newFixture()
	c := f.ads(t)

	c.ClickDelete(4)
	if err := c.ConfirmDelete(context.Background()); err != nil {
		t.Fatalf("ConfirmDelete failed: %v", err)
	}
	if len(c.Rows()) != 3 {
		t.Errorf("expected 3 ads, got %d", len(c.Rows()))
	}
}

func TestAdsController_Logout(t *testing.T) {
	f := newFixture()
	c := f.ads(t)
	loggedOut := false
	c.BindLogout(func() { loggedOut = true })

	c.Input("twitter")
	c.ClickAdd()
	c.Logout()

	if !loggedOut {
		t.Error("logout handler should run")
	}
	if c.State().ModalOpen() || c.State().Query != "" || c.SearchPending() {
		t.Errorf("logout should reset the view, got %+v", c.State())
	}
}
