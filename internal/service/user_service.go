package service

import (
	"context"
	"errors"
	"strings"

	"github.com/RoyceAzure/lab/vendorportal/internal/infra/repository/memstore"
	"github.com/RoyceAzure/lab/vendorportal/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

type IUserService interface {
	List(ctx context.Context, search string, page, pageSize int) ([]model.User, int, error)
	Get(ctx context.Context, id int) (*model.User, error)
	Create(ctx context.Context, user model.User) (*model.User, error)
	Update(ctx context.Context, user model.User) (*model.User, error)
	Delete(ctx context.Context, id int) error
	// Validate 結帳與使用者表單共用的欄位驗證，回傳field error map
	Validate(user model.User) map[string]string
}

type UserService struct {
	userRepo memstore.IUserRepository
}

func NewUserService(userRepo memstore.IUserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) List(ctx context.Context, search string, page, pageSize int) ([]model.User, int, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	if search != "" {
		lowered := strings.ToLower(search)
		filtered := make([]model.User, 0, len(users))
		for _, u := range users {
			fields := []string{u.Name, u.Email, u.Phone, u.Address, u.Country, u.Status}
			for _, f := range fields {
				if strings.Contains(strings.ToLower(f), lowered) {
					filtered = append(filtered, u)
					break
				}
			}
		}
		users = filtered
	}

	return paginate(users, page, pageSize), len(users), nil
}

func (s *UserService) Get(ctx context.Context, id int) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, user model.User) (*model.User, error) {
	if user.Status == "" {
		user.Status = model.UserStatusActive
	}
	return s.userRepo.Create(ctx, &user)
}

func (s *UserService) Update(ctx context.Context, user model.User) (*model.User, error) {
	updated, err := s.userRepo.Update(ctx, &user)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserService) Validate(user model.User) map[string]string {
	fieldErrors := map[string]string{}

	if user.Name == "" {
		fieldErrors["name"] = "Name is required"
	}
	if user.Email == "" {
		fieldErrors["email"] = "Email is required"
	} else if !emailPattern.MatchString(user.Email) {
		fieldErrors["email"] = "Email is invalid"
	}
	if user.Phone == "" {
		fieldErrors["phone"] = "Phone is required"
	}
	if user.Address == "" {
		fieldErrors["address"] = "Address is required"
	}
	if user.Country == "" {
		fieldErrors["country"] = "Country is required"
	}
	return fieldErrors
}

var _ IUserService = (*UserService)(nil)
