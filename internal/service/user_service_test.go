package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/vendorportal/internal/infra/repository/memstore"
	"github.com/RoyceAzure/lab/vendorportal/internal/model"
	"github.com/stretchr/testify/require"
)

func newUserService() *UserService {
	return NewUserService(memstore.NewSeededUserRepo())
}

func TestUserListSearch(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	_, total, err := svc.List(ctx, "", 1, 10)
	require.NoError(t, err)
	require.Equal(t, 3, total)

	// 搜尋跨所有欄位，不分大小寫
	page, total, err := svc.List(ctx, "JANE", 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, "Jane Smith", page[0].Name)

	_, total, err = svc.List(ctx, "inactive", 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, total)

	_, total, err = svc.List(ctx, "no-such-person", 1, 10)
	require.NoError(t, err)
	require.Equal(t, 0, total)
}

func TestUserCRUD(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	created, err := svc.Create(ctx, model.User{
		Name:    "New Person",
		Email:   "new@example.com",
		Phone:   "111-222-3333",
		Address: "789 Pine Rd",
		Country: "USA",
		Status:  model.UserStatusActive,
	})
	require.NoError(t, err)
	require.Equal(t, 4, created.ID)

	created.Country = "Canada"
	updated, err := svc.Update(ctx, *created)
	require.NoError(t, err)
	require.Equal(t, "Canada", updated.Country)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.ErrorIs(t, svc.Delete(ctx, created.ID), ErrUserNotFound)

	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Update(ctx, model.User{ID: 999, Name: "x"})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserValidate(t *testing.T) {
	svc := newUserService()

	fieldErrors := svc.Validate(model.User{})
	require.Len(t, fieldErrors, 5)
	require.Equal(t, "Name is required", fieldErrors["name"])

	fieldErrors = svc.Validate(model.User{
		Name:    "Alice",
		Email:   "bad-email",
		Phone:   "0912345678",
		Address: "somewhere",
		Country: "TW",
	})
	require.Len(t, fieldErrors, 1)
	require.Equal(t, "Email is invalid", fieldErrors["email"])

	fieldErrors = svc.Validate(model.User{
		Name:    "Alice",
		Email:   "alice@example.com",
		Phone:   "0912345678",
		Address: "somewhere",
		Country: "TW",
	})
	require.Empty(t, fieldErrors)
}
