package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/vendorportal/internal/infra/repository/memstore"
	"github.com/RoyceAzure/lab/vendorportal/internal/model"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/er"
	"github.com/stretchr/testify/require"
)

func newAdminUserService() *AdminUserService {
	return NewAdminUserService(memstore.NewSeededAdminUserRepo())
}

func TestAdminUserListSearch(t *testing.T) {
	svc := newAdminUserService()
	ctx := context.Background()

	admins, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, admins, 3)

	admins, err = svc.List(ctx, "super")
	require.NoError(t, err)
	require.Len(t, admins, 1)
	require.Equal(t, model.AdminRoleSuperAdmin, admins[0].Role)
}

func TestAdminUserCreate(t *testing.T) {
	svc := newAdminUserService()
	ctx := context.Background()

	_, fieldErrors, err := svc.Create(ctx, model.AdminUser{})
	require.NoError(t, err)
	require.Equal(t, "Name is required", fieldErrors["name"])
	require.Equal(t, "Email is required", fieldErrors["email"])

	_, fieldErrors, err = svc.Create(ctx, model.AdminUser{Name: "New Admin", Email: "bad"})
	require.NoError(t, err)
	require.Equal(t, "Email is invalid", fieldErrors["email"])

	created, fieldErrors, err := svc.Create(ctx, model.AdminUser{Name: "New Admin", Email: "newadmin@example.com"})
	require.NoError(t, err)
	require.Empty(t, fieldErrors)
	require.Equal(t, 4, created.ID)
	// 沒給role時預設Admin
	require.Equal(t, model.AdminRoleAdmin, created.Role)
	require.Equal(t, "Never", created.LastLogin)
	require.Equal(t, model.UserStatusActive, created.Status)
}

func TestAdminUserDeleteProtectsSuperAdmin(t *testing.T) {
	svc := newAdminUserService()
	ctx := context.Background()

	err := svc.Delete(ctx, 1)
	require.Error(t, err)
	pErr, ok := err.(*er.PortalError)
	require.True(t, ok)
	require.Equal(t, er.UnauthorizedCode, pErr.Code)

	require.NoError(t, svc.Delete(ctx, 2))

	err = svc.Delete(ctx, 999)
	pErr, ok = err.(*er.PortalError)
	require.True(t, ok)
	require.Equal(t, er.NotFoundCode, pErr.Code)
}

func TestAdminUserToggleStatus(t *testing.T) {
	svc := newAdminUserService()
	ctx := context.Background()

	admin, err := svc.ToggleStatus(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, model.UserStatusInactive, admin.Status)

	admin, err = svc.ToggleStatus(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, model.UserStatusActive, admin.Status)

	_, err = svc.ToggleStatus(ctx, 999)
	require.Error(t, err)
}
