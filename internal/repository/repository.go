package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/admin-dashboard/internal/config"
	"github.com/admin-dashboard/internal/models"
	"github.com/admin-dashboard/internal/storage"
	"github.com/rs/zerolog"
)

// UserRepository defines the operations on the stored user list
type UserRepository interface {
	All() []models.User
	Count() int
	GetByID(id int) (models.User, bool)
	Create(ctx context.Context, form models.UserForm, date string) (models.User, error)
	BatchInsert(ctx context.Context, forms []models.UserForm, date string) ([]models.User, error)
	Update(ctx context.Context, id int, form models.UserForm) (models.User, bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	Search(query string) []models.User
	Reload(ctx context.Context)
	Seed(ctx context.Context, force bool) (bool, error)
}

// AdRepository defines the operations on the stored ads list
type AdRepository interface {
	All() []models.Ad
	Count() int
	GetByID(id int) (models.Ad, bool)
	Create(ctx context.Context, ad models.Ad) (models.Ad, error)
	BatchInsert(ctx context.Context, ads []models.Ad) ([]models.Ad, error)
	Update(ctx context.Context, id int, ad models.Ad) (models.Ad, bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	Search(query string) []models.Ad
	Reload(ctx context.Context)
	Seed(ctx context.Context, force bool) (bool, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	User UserRepository
	Ad   AdRepository
}

// New loads both lists from store under the keys named in cfg
func New(ctx context.Context, store storage.Store, cfg *config.StoreConfig, log zerolog.Logger) *Repositories {
	return &Repositories{
		User: NewUserRepo(ctx, store, cfg.UsersKey, log),
		Ad:   NewAdRepo(ctx, store, cfg.AdsKey, log),
	}
}

// Load reads the JSON array stored under key. A missing, unreadable or
// malformed entry yields an empty list: callers never see a decode failure.
func Load[T any](ctx context.Context, store storage.Store, key string, log zerolog.Logger) []T {
	data, ok, err := store.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to read list, using empty list")
		return []T{}
	}
	if !ok {
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Malformed list in store, using empty list")
		return []T{}
	}
	if records == nil {
		// stored "null"
		return []T{}
	}
	return records
}

// Save serializes records and overwrites key unconditionally
func Save[T any](ctx context.Context, store storage.Store, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// record is a list entry addressed by an integer id
type record interface {
	Identifier() int
}

// list is the in-memory mirror of one stored array. Every mutation is followed
// by a full rewrite of the stored entry.
type list[T record] struct {
	store storage.Store
	key   string
	items []T
	log   zerolog.Logger
}

func newList[T record](ctx context.Context, store storage.Store, key string, log zerolog.Logger) *list[T] {
	l := &list[T]{
		store: store,
		key:   key,
		log:   log,
	}
	l.items = Load[T](ctx, store, key, log)
	return l
}

// nextID is the last record's id + 1, or 1 for an empty list
func (l *list[T]) nextID() int {
	if len(l.items) == 0 {
		return 1
	}
	return l.items[len(l.items)-1].Identifier() + 1
}

func (l *list[T]) index(id int) int {
	for i, item := range l.items {
		if item.Identifier() == id {
			return i
		}
	}
	return -1
}

func (l *list[T]) snapshot() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

func (l *list[T]) persist(ctx context.Context) error {
	if err := Save(ctx, l.store, l.key, l.items); err != nil {
		l.log.Error().Err(err).Str("key", l.key).Msg("Failed to persist list")
		return err
	}
	return nil
}

func (l *list[T]) remove(ctx context.Context, id int) (bool, error) {
	i := l.index(id)
	if i < 0 {
		return false, nil
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return true, l.persist(ctx)
}

func (l *list[T]) reload(ctx context.Context) {
	l.items = Load[T](ctx, l.store, l.key, l.log)
}

// seed writes items when the key is absent, or always when force is set
func (l *list[T]) seed(ctx context.Context, items []T, force bool) (bool, error) {
	if !force {
		_, ok, err := l.store.Get(ctx, l.key)
		if err != nil {
			return false, fmt.Errorf("failed to check %s: %w", l.key, err)
		}
		if ok {
			return false, nil
		}
	}
	l.items = items
	if err := l.persist(ctx); err != nil {
		return false, err
	}
	l.log.Info().Str("key", l.key).Int("count", len(items)).Msg("Seeded list")
	return true, nil
}
