package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/vendorportal/internal/infra/repository/localstore"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/er"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctx  context.Context
	auth *AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	store, err := localstore.NewStore(s.T().TempDir())
	require.NoError(s.T(), err)
	s.auth = NewAuthService(store, "test-signing-key")
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestLoginValidatesInput() {
	_, fieldErrors, err := s.auth.Login(s.ctx, "", "")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "Email is required", fieldErrors["email"])
	require.Equal(s.T(), "Password is required", fieldErrors["password"])

	_, fieldErrors, err = s.auth.Login(s.ctx, "bad-email", "secret")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "Email is invalid", fieldErrors["email"])
}

func (s *AuthServiceTestSuite) TestLoginDefaultAdmin() {
	// 預設管理員永遠存在，不需要先signup
	resp, fieldErrors, err := s.auth.Login(s.ctx, "admin@example.com", "admin123")
	require.NoError(s.T(), err)
	require.Empty(s.T(), fieldErrors)
	require.NotEmpty(s.T(), resp.AccessToken)
	require.Equal(s.T(), int64(1), resp.User.ID)
	require.Equal(s.T(), "Admin User", resp.User.Name)

	// 登入後session可查
	me, err := s.auth.Me(s.ctx)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "admin@example.com", me.Email)
}

func (s *AuthServiceTestSuite) TestLoginWrongPassword() {
	_, _, err := s.auth.Login(s.ctx, "admin@example.com", "wrong")
	require.Error(s.T(), err)
	pErr, ok := err.(*er.PortalError)
	require.True(s.T(), ok)
	require.Equal(s.T(), er.UnauthenticatedCode, pErr.Code)
}

func (s *AuthServiceTestSuite) TestSignupThenLogin() {
	fieldErrors, err := s.auth.Signup(s.ctx, "Alice", "alice@example.com", "secret1", "secret1")
	require.NoError(s.T(), err)
	require.Empty(s.T(), fieldErrors)

	resp, _, err := s.auth.Login(s.ctx, "alice@example.com", "secret1")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "User", resp.User.Name)
	require.NotEqual(s.T(), int64(1), resp.User.ID)
}

func (s *AuthServiceTestSuite) TestSignupValidation() {
	fieldErrors, err := s.auth.Signup(s.ctx, "", "", "", "")
	require.NoError(s.T(), err)
	require.Len(s.T(), fieldErrors, 4)

	// 密碼至少6碼
	fieldErrors, err = s.auth.Signup(s.ctx, "Alice", "alice@example.com", "12345", "12345")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "Password must be at least 6 characters", fieldErrors["password"])

	fieldErrors, err = s.auth.Signup(s.ctx, "Alice", "alice@example.com", "123456", "654321")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "Passwords do not match", fieldErrors["confirmPassword"])
}

func (s *AuthServiceTestSuite) TestSignupDuplicateEmail() {
	_, err := s.auth.Signup(s.ctx, "Alice", "alice@example.com", "secret1", "secret1")
	require.NoError(s.T(), err)

	_, err = s.auth.Signup(s.ctx, "Alice Again", "alice@example.com", "secret2", "secret2")
	require.Error(s.T(), err)
	pErr, ok := err.(*er.PortalError)
	require.True(s.T(), ok)
	require.Equal(s.T(), er.ConflictCode, pErr.Code)

	// 預設管理員email也算重複
	_, err = s.auth.Signup(s.ctx, "Fake Admin", "admin@example.com", "secret1", "secret1")
	require.Error(s.T(), err)
}

func (s *AuthServiceTestSuite) TestLogoutClearsSession() {
	_, _, err := s.auth.Login(s.ctx, "admin@example.com", "admin123")
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.auth.Logout(s.ctx))

	_, err = s.auth.Me(s.ctx)
	require.Error(s.T(), err)
	pErr, ok := err.(*er.PortalError)
	require.True(s.T(), ok)
	require.Equal(s.T(), er.UnauthenticatedCode, pErr.Code)
}

func (s *AuthServiceTestSuite) TestVerifyToken() {
	resp, _, err := s.auth.Login(s.ctx, "admin@example.com", "admin123")
	require.NoError(s.T(), err)

	email, err := s.auth.VerifyToken(resp.AccessToken)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "admin@example.com", email)

	_, err = s.auth.VerifyToken("garbage-token")
	require.Error(s.T(), err)

	// 用別的key簽的token不能過
	other := NewAuthService(s.auth.store, "another-signing-key")
	otherResp, _, err := other.Login(s.ctx, "admin@example.com", "admin123")
	require.NoError(s.T(), err)
	_, err = s.auth.VerifyToken(otherResp.AccessToken)
	require.Error(s.T(), err)
}
