package service

import (
	"context"
	"errors"
	"testing"

	"github.com/RoyceAzure/lab/vendorportal/internal/model"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/er"
	"github.com/stretchr/testify/require"
)

type stubCompanyUserClient struct {
	users []model.CompanyUser
	err   error
}

func (c *stubCompanyUserClient) FetchUserList(ctx context.Context) ([]model.CompanyUser, error) {
	return c.users, c.err
}

func companyUserFixture() []model.CompanyUser {
	return []model.CompanyUser{
		{ID: "1", Name: "Alice", Email: "alice@corp.com", Country: "USA", Status: "active"},
		{ID: "2", Name: "Bob", Email: "bob@corp.com", Country: "Canada", Status: "inactive"},
		{ID: "3", Name: "Carol", Email: "carol@corp.com", Country: "USA", Status: "Active"},
	}
}

func TestCompanyUserListFilters(t *testing.T) {
	svc := NewCompanyUserService(&stubCompanyUserClient{users: companyUserFixture()})
	ctx := context.Background()

	_, total, err := svc.List(ctx, "", "", 1, 10)
	require.NoError(t, err)
	require.Equal(t, 3, total)

	// status過濾不分大小寫
	page, total, err := svc.List(ctx, "", "active", 1, 10)
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Equal(t, "Alice", page[0].Name)

	_, total, err = svc.List(ctx, "bob", "", 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, total)

	// 搜尋與status同時生效
	_, total, err = svc.List(ctx, "usa", "inactive", 1, 10)
	require.NoError(t, err)
	require.Equal(t, 0, total)
}

func TestCompanyUserListFetchFailure(t *testing.T) {
	svc := NewCompanyUserService(&stubCompanyUserClient{err: errors.New("connection refused")})

	_, _, err := svc.List(context.Background(), "", "", 1, 10)
	require.Error(t, err)
	pErr, ok := err.(*er.PortalError)
	require.True(t, ok)
	require.Equal(t, er.InternalErrorCode, pErr.Code)
	require.Contains(t, pErr.Message, "Failed to fetch users")
}

func TestCompanyUserGet(t *testing.T) {
	svc := NewCompanyUserService(&stubCompanyUserClient{users: companyUserFixture()})
	ctx := context.Background()

	user, err := svc.Get(ctx, "2")
	require.NoError(t, err)
	require.Equal(t, "Bob", user.Name)

	_, err = svc.Get(ctx, "999")
	require.Error(t, err)
	pErr, ok := err.(*er.PortalError)
	require.True(t, ok)
	require.Equal(t, er.NotFoundCode, pErr.Code)
}
