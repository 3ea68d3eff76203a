package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/RoyceAzure/lab/vendorportal/internal/model"
)

type IUserRepository interface {
	GetAll(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int) (*model.User, error)
	Create(ctx context.Context, user *model.User) (*model.User, error)
	Update(ctx context.Context, user *model.User) (*model.User, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type UserRepo struct {
	mu    sync.RWMutex
	users map[int]model.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: map[int]model.User{}}
}

func NewSeededUserRepo() *UserRepo {
	repo := NewUserRepo()
	seed := []model.User{
		{ID: 1, Name: "Lalit Desh", Email: "lalit@example.com", Phone: "254-476-5214", Address: "142 Main St", Country: "IND", Image: "https://i.pravatar.cc/150?img=2", Status: model.UserStatusActive},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Phone: "098-765-4321", Address: "456 Oak Ave", Country: "Canada", Image: "https://i.pravatar.cc/150?img=4", Status: model.UserStatusActive},
		{ID: 3, Name: "John Doe", Email: "john@example.com", Phone: "123-456-7890", Address: "123 Main St", Country: "USA", Image: "https://i.pravatar.cc/150?img=7", Status: model.UserStatusInactive},
	}
	for _, u := range seed {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *UserRepo) GetAll(ctx context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	nextID := 1
	for id := range r.users {
		if id >= nextID {
			nextID = id + 1
		}
	}
	user.ID = nextID
	r.users[nextID] = *user
	return user, nil
}

func (r *UserRepo) Update(ctx context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return nil, nil
	}
	r.users[user.ID] = *user
	return user, nil
}

func (r *UserRepo) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

var _ IUserRepository = (*UserRepo)(nil)
