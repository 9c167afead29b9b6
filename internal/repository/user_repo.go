package repository

import (
	"context"
	"strings"

	"github.com/admin-dashboard/internal/models"
	"github.com/admin-dashboard/internal/storage"
	"github.com/rs/zerolog"
)

// userRepo owns the user list and the store key it is persisted under
type userRepo struct {
	list *list[models.User]
}

// NewUserRepo loads the list stored under key
func NewUserRepo(ctx context.Context, store storage.Store, key string, log zerolog.Logger) UserRepository {
	return &userRepo{
		list: newList[models.User](ctx, store, key, log.With().Str("repository", "users").Logger()),
	}
}

// All returns a copy of every user in stored order
func (r *userRepo) All() []models.User {
	return r.list.snapshot()
}

// Count returns the number of users
func (r *userRepo) Count() int {
	return len(r.list.items)
}

// GetByID returns the user with id and whether it exists
func (r *userRepo) GetByID(id int) (models.User, bool) {
	i := r.list.index(id)
	if i < 0 {
		return models.User{}, false
	}
	return r.list.items[i], true
}

// Create appends a user built from form with the next id and persists the list.
// On a write failure the user stays in memory and the error is returned.
func (r *userRepo) Create(ctx context.Context, form models.UserForm, date string) (models.User, error) {
	user := models.User{
		ID:   r.list.nextID(),
		Date: date,
	}
	user.Apply(form)

	r.list.items = append(r.list.items, user)
	return user, r.list.persist(ctx)
}

// BatchInsert appends one user per form, assigning consecutive ids, and
// persists the list once. It returns the inserted users.
func (r *userRepo) BatchInsert(ctx context.Context, forms []models.UserForm, date string) ([]models.User, error) {
	inserted := make([]models.User, 0, len(forms))
	for _, form := range forms {
		user := models.User{ID: r.list.nextID(), Date: date}
		user.Apply(form)
		r.list.items = append(r.list.items, user)
		inserted = append(inserted, user)
	}
	if len(inserted) == 0 {
		return inserted, nil
	}
	return inserted, r.list.persist(ctx)
}

// Update overwrites the fields of user id. It reports false for an unknown id.
func (r *userRepo) Update(ctx context.Context, id int, form models.UserForm) (models.User, bool, error) {
	i := r.list.index(id)
	if i < 0 {
		return models.User{}, false, nil
	}
	r.list.items[i].Apply(form)
	return r.list.items[i], true, r.list.persist(ctx)
}

// Delete removes user id. Deleting an unknown id leaves the list untouched.
func (r *userRepo) Delete(ctx context.Context, id int) (bool, error) {
	return r.list.remove(ctx, id)
}

// Search matches query case-insensitively as a substring of the full name,
// the email or the phone. An empty query returns every user.
func (r *userRepo) Search(query string) []models.User {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return r.All()
	}

	results := make([]models.User, 0)
	for _, u := range r.list.items {
		if isStringMatched(u.FullName(), term) ||
			isStringMatched(u.Email, term) ||
			isStringMatched(u.Phone, term) {
			results = append(results, u)
		}
	}
	return results
}

// Reload replaces the in-memory list with what the store holds
func (r *userRepo) Reload(ctx context.Context) {
	r.list.reload(ctx)
}

// Seed writes the seed users, see list.seed
func (r *userRepo) Seed(ctx context.Context, force bool) (bool, error) {
	return r.list.seed(ctx, models.SeedUsers(), force)
}

func isStringMatched(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}
