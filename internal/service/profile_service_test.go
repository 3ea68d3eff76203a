package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/vendorportal/internal/constants"
	"github.com/RoyceAzure/lab/vendorportal/internal/infra/repository/localstore"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/er"
	"github.com/stretchr/testify/require"
)

func TestProfileTheme(t *testing.T) {
	store, err := localstore.NewStore(t.TempDir())
	require.NoError(t, err)
	svc := NewProfileService(store)
	ctx := context.Background()

	theme, err := svc.GetTheme(ctx)
	require.NoError(t, err)
	require.Equal(t, constants.ThemeLight, theme)

	require.NoError(t, svc.SetTheme(ctx, constants.ThemeDark))
	theme, err = svc.GetTheme(ctx)
	require.NoError(t, err)
	require.Equal(t, constants.ThemeDark, theme)

	err = svc.SetTheme(ctx, "neon")
	require.Error(t, err)
	pErr, ok := err.(*er.PortalError)
	require.True(t, ok)
	require.Equal(t, er.InvalidArgumentCode, pErr.Code)
}
