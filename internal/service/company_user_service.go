package service

import (
	"context"
	"strings"

	"github.com/RoyceAzure/lab/vendorportal/internal/infra/client"
	"github.com/RoyceAzure/lab/vendorportal/internal/model"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/er"
)

type ICompanyUserService interface {
	// List 整份名單抓回來後才做搜尋/狀態過濾/分頁
	List(ctx context.Context, search, status string, page, pageSize int) ([]model.CompanyUser, int, error)
	// Get id比對遠端的任一種id欄位
	Get(ctx context.Context, id string) (*model.CompanyUser, error)
}

type CompanyUserService struct {
	listClient client.ICompanyUserClient
}

func NewCompanyUserService(listClient client.ICompanyUserClient) *CompanyUserService {
	return &CompanyUserService{listClient: listClient}
}

func (s *CompanyUserService) List(ctx context.Context, search, status string, page, pageSize int) ([]model.CompanyUser, int, error) {
	users, err := s.listClient.FetchUserList(ctx)
	if err != nil {
		return nil, 0, er.Wrap(er.InternalErrorCode, "Failed to fetch users. Please try again later.", err)
	}

	filtered := make([]model.CompanyUser, 0, len(users))
	for _, u := range users {
		if status != "" && !strings.EqualFold(u.Status, status) {
			continue
		}
		if search != "" {
			lowered := strings.ToLower(search)
			fields := []string{u.ID, u.Name, u.Email, u.Phone, u.Address, u.Country}
			matched := false
			for _, f := range fields {
				if strings.Contains(strings.ToLower(f), lowered) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		filtered = append(filtered, u)
	}

	return paginate(filtered, page, pageSize), len(filtered), nil
}

func (s *CompanyUserService) Get(ctx context.Context, id string) (*model.CompanyUser, error) {
	users, err := s.listClient.FetchUserList(ctx)
	if err != nil {
		return nil, er.Wrap(er.InternalErrorCode, "Failed to fetch user details. Please try again later.", err)
	}

	for _, u := range users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, er.New(er.NotFoundCode, "user not found")
}

var _ ICompanyUserService = (*CompanyUserService)(nil)
