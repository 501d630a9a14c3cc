package memory

import (
	"context"
	"sort"

	"contractdesk-be/internal/entity"
)

type UserRepository struct {
	store *Store
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextUserId++
	u.Id = r.store.nextUserId
	stored := *u
	r.store.users[u.Id] = &stored
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *u
	r.store.users[u.Id] = &stored
	return nil
}

func (r *UserRepository) FindById(ctx context.Context, id uint) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}

func (r *UserRepository) FindByUserID(ctx context.Context, userID string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.UserID == userID {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) ListActive(ctx context.Context) ([]*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.User
	for _, u := range r.store.users {
		if u.IsActive {
			copied := *u
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out, nil
}
