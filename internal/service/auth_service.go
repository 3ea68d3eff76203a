package service

import (
	"context"
	"time"

	"github.com/RoyceAzure/lab/vendorportal/internal/constants"
	"github.com/RoyceAzure/lab/vendorportal/internal/infra/repository/localstore"
	"github.com/RoyceAzure/lab/vendorportal/internal/model"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/er"
	"github.com/golang-jwt/jwt/v5"
)

type IAuthService interface {
	// Login 驗證帳密後簽發access token並寫入session
	// 欄位驗證失敗回傳field error map，帳密錯誤回傳UnauthenticatedCode
	Login(ctx context.Context, email, password string) (*model.LoginResponseModel, map[string]string, error)
	// Signup 重複email回傳ConflictCode，成功後credential寫入local store
	Signup(ctx context.Context, name, email, password, confirmPassword string) (map[string]string, error)
	Logout(ctx context.Context) error
	// Me 取得目前session的使用者，未登入回傳UnauthenticatedCode
	Me(ctx context.Context) (*model.CurrentUser, error)
	// VerifyToken 驗證access token，回傳token內的email
	VerifyToken(tokenString string) (string, error)
}

type AuthService struct {
	store    localstore.IStore
	tokenKey []byte
}

func NewAuthService(store localstore.IStore, tokenKey string) *AuthService {
	if store == nil {
		panic("store cannot be nil")
	}
	return &AuthService{store: store, tokenKey: []byte(tokenKey)}
}

func (s *AuthService) createAccessToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Duration(constants.AccessTokenDuration) * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.tokenKey)
}

func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, er.New(er.UnauthenticatedCode, "invalid token signing method")
		}
		return s.tokenKey, nil
	})
	if err != nil || !token.Valid {
		return "", er.New(er.UnauthenticatedCode, "invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", er.New(er.UnauthenticatedCode, "invalid token claims")
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", er.New(er.UnauthenticatedCode, "invalid token claims")
	}
	return email, nil
}

func validateLoginInput(email, password string) map[string]string {
	fieldErrors := map[string]string{}
	if email == "" {
		fieldErrors["email"] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		fieldErrors["email"] = "Email is invalid"
	}
	if password == "" {
		fieldErrors["password"] = "Password is required"
	}
	return fieldErrors
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*model.LoginResponseModel, map[string]string, error) {
	if fieldErrors := validateLoginInput(email, password); len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	creds, err := s.store.LoadCredentials()
	if err != nil {
		return nil, nil, er.Wrap(er.InternalErrorCode, "load credentials", err)
	}

	matched := false
	for _, cred := range creds {
		if cred.Email == email && cred.Password == password {
			matched = true
			break
		}
	}
	if !matched {
		return nil, nil, er.New(er.UnauthenticatedCode, "Invalid email or password")
	}

	user := model.CurrentUser{
		ID:    time.Now().UnixMilli(),
		Name:  "User",
		Email: email,
		Role:  "admin",
	}
	if email == constants.DefaultAdminEmail {
		user.ID = 1
		user.Name = "Admin User"
	}

	if err := s.store.SaveSession(&user); err != nil {
		return nil, nil, er.Wrap(er.InternalErrorCode, "save session", err)
	}

	accessToken, err := s.createAccessToken(email)
	if err != nil {
		return nil, nil, er.Wrap(er.InternalErrorCode, "create access token", err)
	}

	return &model.LoginResponseModel{AccessToken: accessToken, User: user}, nil, nil
}

func (s *AuthService) Signup(ctx context.Context, name, email, password, confirmPassword string) (map[string]string, error) {
	fieldErrors := map[string]string{}
	if name == "" {
		fieldErrors["name"] = "Name is required"
	}
	if email == "" {
		fieldErrors["email"] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		fieldErrors["email"] = "Email is invalid"
	}
	if password == "" {
		fieldErrors["password"] = "Password is required"
	} else if len(password) < 6 {
		fieldErrors["password"] = "Password must be at least 6 characters"
	}
	if confirmPassword == "" {
		fieldErrors["confirmPassword"] = "Please confirm your password"
	} else if password != confirmPassword {
		fieldErrors["confirmPassword"] = "Passwords do not match"
	}
	if len(fieldErrors) > 0 {
		return fieldErrors, nil
	}

	creds, err := s.store.LoadCredentials()
	if err != nil {
		return nil, er.Wrap(er.InternalErrorCode, "load credentials", err)
	}

	for _, cred := range creds {
		if cred.Email == email {
			return nil, er.New(er.ConflictCode, "User with this email already exists")
		}
	}

	creds = append(creds, model.Credential{Email: email, Password: password})
	if err := s.store.SaveCredentials(creds); err != nil {
		return nil, er.Wrap(er.InternalErrorCode, "save credentials", err)
	}
	return nil, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.store.ClearSession(); err != nil {
		return er.Wrap(er.InternalErrorCode, "clear session", err)
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context) (*model.CurrentUser, error) {
	user, err := s.store.LoadSession()
	if err != nil {
		return nil, er.Wrap(er.InternalErrorCode, "load session", err)
	}
	if user == nil {
		return nil, er.New(er.UnauthenticatedCode, "not logged in")
	}
	return user, nil
}

var _ IAuthService = (*AuthService)(nil)
