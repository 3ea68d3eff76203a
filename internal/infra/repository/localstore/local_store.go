package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/RoyceAzure/lab/vendorportal/internal/constants"
	"github.com/RoyceAzure/lab/vendorportal/internal/model"
)

const (
	sessionFile     = "session.json"
	credentialsFile = "credentials.json"
	themeFile       = "theme.json"
)

type IStore interface {
	SaveSession(user *model.CurrentUser) error
	// LoadSession 無session或檔案損毀時回傳nil, nil
	LoadSession() (*model.CurrentUser, error)
	ClearSession() error
	SaveCredentials(creds []model.Credential) error
	// LoadCredentials 永遠包含預設管理者帳號，檔案損毀時退回只有預設帳號
	LoadCredentials() ([]model.Credential, error)
	SaveTheme(theme string) error
	LoadTheme() (string, error)
}

// Store 對應瀏覽器localStorage的檔案版，一個concern一個json檔
// 明文json 無加密 無過期
type Store struct {
	dir string
	mu  sync.Mutex
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) write(name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), data, 0o644)
}

func (s *Store) read(name string, v any) (found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		//檔案損毀視同不存在
		return false, nil
	}
	return true, nil
}

func (s *Store) remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *Store) SaveSession(user *model.CurrentUser) error {
	return s.write(sessionFile, user)
}

func (s *Store) LoadSession() (*model.CurrentUser, error) {
	var user model.CurrentUser
	found, err := s.read(sessionFile, &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

func (s *Store) ClearSession() error {
	return s.remove(sessionFile)
}

func (s *Store) SaveCredentials(creds []model.Credential) error {
	return s.write(credentialsFile, creds)
}

func (s *Store) LoadCredentials() ([]model.Credential, error) {
	defaultCred := model.Credential{
		Email:    constants.DefaultAdminEmail,
		Password: constants.DefaultAdminPassword,
	}

	var creds []model.Credential
	found, err := s.read(credentialsFile, &creds)
	if err != nil {
		return nil, err
	}
	if !found {
		return []model.Credential{defaultCred}, nil
	}

	//合併預設帳號 避免重複
	for _, c := range creds {
		if c.Email == defaultCred.Email {
			return creds, nil
		}
	}
	return append([]model.Credential{defaultCred}, creds...), nil
}

func (s *Store) SaveTheme(theme string) error {
	return s.write(themeFile, theme)
}

func (s *Store) LoadTheme() (string, error) {
	var theme string
	found, err := s.read(themeFile, &theme)
	if err != nil {
		return "", err
	}
	if !found || (theme != constants.ThemeDark && theme != constants.ThemeLight) {
		return constants.ThemeLight, nil
	}
	return theme, nil
}

var _ IStore = (*Store)(nil)
