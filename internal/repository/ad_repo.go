package repository

import (
	"context"
	"strings"

	"github.com/admin-dashboard/internal/models"
	"github.com/admin-dashboard/internal/storage"
	"github.com/rs/zerolog"
)

// adRepo owns the ads list and the store key it is persisted under
type adRepo struct {
	list *list[models.Ad]
}

// NewAdRepo loads the list stored under key
func NewAdRepo(ctx context.Context, store storage.Store, key string, log zerolog.Logger) AdRepository {
	return &adRepo{
		list: newList[models.Ad](ctx, store, key, log.With().Str("repository", "ads").Logger()),
	}
}

// All returns a copy of every ad in stored order
func (r *adRepo) All() []models.Ad {
	return r.list.snapshot()
}

// Count returns the number of ads
func (r *adRepo) Count() int {
	return len(r.list.items)
}

// GetByID returns the ad with id and whether it exists
func (r *adRepo) GetByID(id int) (models.Ad, bool) {
	i := r.list.index(id)
	if i < 0 {
		return models.Ad{}, false
	}
	return r.list.items[i], true
}

// Create appends ad with the next id, ignoring any id it carries
func (r *adRepo) Create(ctx context.Context, ad models.Ad) (models.Ad, error) {
	ad.ID = r.list.nextID()
	r.list.items = append(r.list.items, ad)
	return ad, r.list.persist(ctx)
}

// BatchInsert appends ads with consecutive ids and persists the list once
func (r *adRepo) BatchInsert(ctx context.Context, ads []models.Ad) ([]models.Ad, error) {
	inserted := make([]models.Ad, 0, len(ads))
	for _, ad := range ads {
		ad.ID = r.list.nextID()
		r.list.items = append(r.list.items, ad)
		inserted = append(inserted, ad)
	}
	if len(inserted) == 0 {
		return inserted, nil
	}
	return inserted, r.list.persist(ctx)
}

// Update overwrites the fields of ad id
func (r *adRepo) Update(ctx context.Context, id int, ad models.Ad) (models.Ad, bool, error) {
	i := r.list.index(id)
	if i < 0 {
		return models.Ad{}, false, nil
	}
	r.list.items[i].Apply(ad)
	return r.list.items[i], true, r.list.persist(ctx)
}

// Delete removes ad id
func (r *adRepo) Delete(ctx context.Context, id int) (bool, error) {
	return r.list.remove(ctx, id)
}

// Search matches query case-insensitively against network, link, email, phone and status
func (r *adRepo) Search(query string) []models.Ad {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return r.All()
	}

	results := make([]models.Ad, 0)
	for _, ad := range r.list.items {
		if isStringMatched(ad.Network, term) ||
			isStringMatched(ad.Link, term) ||
			isStringMatched(ad.Email, term) ||
			isStringMatched(ad.Phone, term) ||
			isStringMatched(ad.Status, term) {
			results = append(results, ad)
		}
	}
	return results
}

// Reload replaces the in-memory list with what the store holds
func (r *adRepo) Reload(ctx context.Context) {
	r.list.reload(ctx)
}

// Seed writes the seed ads, see list.seed
func (r *adRepo) Seed(ctx context.Context, force bool) (bool, error) {
	return r.list.seed(ctx, models.SeedAds(), force)
}
