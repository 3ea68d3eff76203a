package service

import (
	"context"
	"strings"

	"github.com/RoyceAzure/lab/vendorportal/internal/constants"
	"github.com/RoyceAzure/lab/vendorportal/internal/infra/repository/memstore"
	"github.com/RoyceAzure/lab/vendorportal/internal/model"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/er"
)

type IAdminUserService interface {
	List(ctx context.Context, search string) ([]model.AdminUser, error)
	Create(ctx context.Context, admin model.AdminUser) (*model.AdminUser, map[string]string, error)
	// Delete 刪除super admin (id 1)會被拒絕且不改變任何狀態
	Delete(ctx context.Context, id int) error
	ToggleStatus(ctx context.Context, id int) (*model.AdminUser, error)
}

type AdminUserService struct {
	adminRepo memstore.IAdminUserRepository
}

func NewAdminUserService(adminRepo memstore.IAdminUserRepository) *AdminUserService {
	return &AdminUserService{adminRepo: adminRepo}
}

func (s *AdminUserService) List(ctx context.Context, search string) ([]model.AdminUser, error) {
	admins, err := s.adminRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return admins, nil
	}

	lowered := strings.ToLower(search)
	filtered := make([]model.AdminUser, 0, len(admins))
	for _, a := range admins {
		fields := []string{a.Name, a.Email, a.Role, a.Status}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), lowered) {
				filtered = append(filtered, a)
				break
			}
		}
	}
	return filtered, nil
}

func (s *AdminUserService) Create(ctx context.Context, admin model.AdminUser) (*model.AdminUser, map[string]string, error) {
	fieldErrors := map[string]string{}
	if admin.Name == "" {
		fieldErrors["name"] = "Name is required"
	}
	if admin.Email == "" {
		fieldErrors["email"] = "Email is required"
	} else if !emailPattern.MatchString(admin.Email) {
		fieldErrors["email"] = "Email is invalid"
	}
	if len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	if admin.Role == "" {
		admin.Role = model.AdminRoleAdmin
	}
	admin.LastLogin = "Never"
	admin.Status = model.UserStatusActive

	created, err := s.adminRepo.Create(ctx, &admin)
	if err != nil {
		return nil, nil, err
	}
	return created, nil, nil
}

func (s *AdminUserService) Delete(ctx context.Context, id int) error {
	if id == constants.ProtectedAdminUserID {
		return er.New(er.UnauthorizedCode, "Cannot delete the super admin user")
	}

	deleted, err := s.adminRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return er.New(er.NotFoundCode, "admin user not found")
	}
	return nil
}

func (s *AdminUserService) ToggleStatus(ctx context.Context, id int) (*model.AdminUser, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, er.New(er.NotFoundCode, "admin user not found")
	}

	if admin.Status == model.UserStatusActive {
		admin.Status = model.UserStatusInactive
	} else {
		admin.Status = model.UserStatusActive
	}
	return s.adminRepo.Update(ctx, admin)
}

var _ IAdminUserService = (*AdminUserService)(nil)
