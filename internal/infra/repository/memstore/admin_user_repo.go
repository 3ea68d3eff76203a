package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/RoyceAzure/lab/vendorportal/internal/model"
)

type IAdminUserRepository interface {
	GetAll(ctx context.Context) ([]model.AdminUser, error)
	GetByID(ctx context.Context, id int) (*model.AdminUser, error)
	Create(ctx context.Context, admin *model.AdminUser) (*model.AdminUser, error)
	Update(ctx context.Context, admin *model.AdminUser) (*model.AdminUser, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type AdminUserRepo struct {
	mu     sync.RWMutex
	admins map[int]model.AdminUser
}

func NewAdminUserRepo() *AdminUserRepo {
	return &AdminUserRepo{admins: map[int]model.AdminUser{}}
}

func NewSeededAdminUserRepo() *AdminUserRepo {
	repo := NewAdminUserRepo()
	seed := []model.AdminUser{
		{ID: 1, Name: "Admin User", Email: "admin@example.com", Role: model.AdminRoleSuperAdmin, LastLogin: "2023-05-15 14:30:00", Status: model.UserStatusActive},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: model.AdminRoleAdmin, LastLogin: "2023-05-14 09:15:00", Status: model.UserStatusActive},
		{ID: 3, Name: "John Doe", Email: "john@example.com", Role: model.AdminRoleAdmin, LastLogin: "2023-05-10 16:45:00", Status: model.UserStatusInactive},
	}
	for _, a := range seed {
		repo.admins[a.ID] = a
	}
	return repo
}

func (r *AdminUserRepo) GetAll(ctx context.Context) ([]model.AdminUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	admins := make([]model.AdminUser, 0, len(r.admins))
	for _, a := range r.admins {
		admins = append(admins, a)
	}
	sort.Slice(admins, func(i, j int) bool { return admins[i].ID < admins[j].ID })
	return admins, nil
}

func (r *AdminUserRepo) GetByID(ctx context.Context, id int) (*model.AdminUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.admins[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AdminUserRepo) Create(ctx context.Context, admin *model.AdminUser) (*model.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	nextID := 1
	for id := range r.admins {
		if id >= nextID {
			nextID = id + 1
		}
	}
	admin.ID = nextID
	r.admins[nextID] = *admin
	return admin, nil
}

func (r *AdminUserRepo) Update(ctx context.Context, admin *model.AdminUser) (*model.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.admins[admin.ID]; !ok {
		return nil, nil
	}
	r.admins[admin.ID] = *admin
	return admin, nil
}

func (r *AdminUserRepo) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.admins[id]; !ok {
		return false, nil
	}
	delete(r.admins, id)
	return true, nil
}

var _ IAdminUserRepository = (*AdminUserRepo)(nil)
