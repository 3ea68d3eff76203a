package service

import (
	"context"

	"github.com/RoyceAzure/lab/vendorportal/internal/constants"
	"github.com/RoyceAzure/lab/vendorportal/internal/infra/repository/localstore"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/er"
)

type IProfileService interface {
	GetTheme(ctx context.Context) (string, error)
	// SetTheme 只接受 "dark" / "light"
	SetTheme(ctx context.Context, theme string) error
}

type ProfileService struct {
	store localstore.IStore
}

func NewProfileService(store localstore.IStore) *ProfileService {
	return &ProfileService{store: store}
}

func (s *ProfileService) GetTheme(ctx context.Context) (string, error) {
	theme, err := s.store.LoadTheme()
	if err != nil {
		return "", er.Wrap(er.InternalErrorCode, "load theme", err)
	}
	return theme, nil
}

func (s *ProfileService) SetTheme(ctx context.Context, theme string) error {
	if theme != constants.ThemeDark && theme != constants.ThemeLight {
		return er.New(er.InvalidArgumentCode, "theme must be dark or light")
	}
	if err := s.store.SaveTheme(theme); err != nil {
		return er.Wrap(er.InternalErrorCode, "save theme", err)
	}
	return nil
}

var _ IProfileService = (*ProfileService)(nil)
