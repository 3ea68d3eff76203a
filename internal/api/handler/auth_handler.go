package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/vendorportal/internal/api/dto"
	"github.com/RoyceAzure/lab/vendorportal/internal/constants"
	"github.com/RoyceAzure/lab/vendorportal/internal/model"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/api"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/er"
	"github.com/RoyceAzure/lab/vendorportal/internal/service"
)

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
	}
}

func convertSessionToDTO(user model.CurrentUser) dto.UserSessionDTO {
	return dto.UserSessionDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

// @Summary login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginDTO true "email and password"
// @Success 200 {object} api.Response{data=dto.LoginResponse} "success"
// @Failure 401 {object} api.ResponseError "UnauthenticatedCode"
// @Failure 460 {object} api.ResponseError "InvalidArgumentCode"
// @Router /auth/login [post]
func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&loginDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, er.ErrStrMap[er.BadRequestCode])
		return
	}

	ctx := r.Context()

	loginRes, fieldErrors, err := a.authService.Login(ctx, loginDTO.Email, loginDTO.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if len(fieldErrors) > 0 {
		api.FieldErrorsJSON(w, int(er.InvalidArgumentCode), fieldErrors)
		return
	}

	api.SuccessJSON(w, dto.LoginResponse{
		AccessToken: dto.TokenInfo{
			Value:     loginRes.AccessToken,
			ExpiresIn: int(constants.AccessTokenDuration) * 3600,
		},
		User: convertSessionToDTO(loginRes.User),
	}, nil)
}

// @Summary signup with name, email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param userInfo body dto.SignupDTO true "signup info"
// @Success 200 {object} api.Response{data=string} "success"
// @Failure 409 {object} api.ResponseError "ConflictCode"
// @Failure 460 {object} api.ResponseError "InvalidArgumentCode"
// @Router /auth/signup [post]
func (a *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var signupDTO dto.SignupDTO
	if err := json.NewDecoder(r.Body).Decode(&signupDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, er.ErrStrMap[er.BadRequestCode])
		return
	}

	ctx := r.Context()

	fieldErrors, err := a.authService.Signup(ctx, signupDTO.Name, signupDTO.Email, signupDTO.Password, signupDTO.ConfirmPassword)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if len(fieldErrors) > 0 {
		api.FieldErrorsJSON(w, int(er.InvalidArgumentCode), fieldErrors)
		return
	}

	api.SuccessJSON(w, nil, nil)
}

// @Summary logout current login user
// @Tags auth
// @Produce json
// @Success 200 {object} api.Response{data=string} "success"
// @Security ApiKeyAuth
// @Router /auth/logout [post]
func (a *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.authService.Logout(r.Context()); err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, nil, nil)
}

// @Summary get current login user info
// @Tags auth
// @Produce json
// @Success 200 {object} api.Response{data=dto.UserSessionDTO} "success"
// @Failure 401 {object} api.ResponseError "UnauthenticatedCode"
// @Security ApiKeyAuth
// @Router /auth/me [get]
func (a *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := a.authService.Me(r.Context())
	if err != nil || user == nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, convertSessionToDTO(*user), nil)
}
