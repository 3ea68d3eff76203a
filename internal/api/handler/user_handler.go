package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/vendorportal/internal/api/dto"
	"github.com/RoyceAzure/lab/vendorportal/internal/model"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/api"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/er"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/export"
	"github.com/RoyceAzure/lab/vendorportal/internal/service"
	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &UserHandler{userService: userService}
}

// @Summary list directory users
// @Tags user
// @Produce json
// @Param search query string false "search term"
// @Success 200 {object} api.Response{data=[]model.User} "success"
// @Security ApiKeyAuth
// @Router /users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePaging(r)
	users, total, err := h.userService.List(r.Context(), r.URL.Query().Get("search"), page, pageSize)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, users, dto.ListMeta{Page: page, PageSize: pageSize, Total: total})
}

// @Summary get single directory user
// @Tags user
// @Produce json
// @Success 200 {object} api.Response{data=model.User} "success"
// @Failure 404 {object} api.ResponseError "NotFoundCode"
// @Security ApiKeyAuth
// @Router /users/{id} [get]
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, "invalid user id")
		return
	}

	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			api.ErrorJSON(w, int(er.NotFoundCode), err, er.ErrStrMap[er.NotFoundCode])
			return
		}
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, user, nil)
}

// @Summary create directory user
// @Tags user
// @Accept json
// @Produce json
// @Param user body model.User true "user"
// @Success 200 {object} api.Response{data=model.User} "success"
// @Failure 460 {object} api.ResponseError "InvalidArgumentCode"
// @Security ApiKeyAuth
// @Router /users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, er.ErrStrMap[er.BadRequestCode])
		return
	}

	if fieldErrors := h.userService.Validate(user); len(fieldErrors) > 0 {
		api.FieldErrorsJSON(w, int(er.InvalidArgumentCode), fieldErrors)
		return
	}

	created, err := h.userService.Create(r.Context(), user)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, created, nil)
}

// @Summary update directory user
// @Tags user
// @Accept json
// @Produce json
// @Param user body model.User true "user"
// @Success 200 {object} api.Response{data=model.User} "success"
// @Failure 404 {object} api.ResponseError "NotFoundCode"
// @Failure 460 {object} api.ResponseError "InvalidArgumentCode"
// @Security ApiKeyAuth
// @Router /users/{id} [put]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, "invalid user id")
		return
	}

	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, er.ErrStrMap[er.BadRequestCode])
		return
	}
	user.ID = id

	if fieldErrors := h.userService.Validate(user); len(fieldErrors) > 0 {
		api.FieldErrorsJSON(w, int(er.InvalidArgumentCode), fieldErrors)
		return
	}

	updated, err := h.userService.Update(r.Context(), user)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			api.ErrorJSON(w, int(er.NotFoundCode), err, er.ErrStrMap[er.NotFoundCode])
			return
		}
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, updated, nil)
}

// @Summary delete directory user
// @Tags user
// @Produce json
// @Success 200 {object} api.Response{data=string} "success"
// @Failure 404 {object} api.ResponseError "NotFoundCode"
// @Security ApiKeyAuth
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, "invalid user id")
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			api.ErrorJSON(w, int(er.NotFoundCode), err, er.ErrStrMap[er.NotFoundCode])
			return
		}
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, "User deleted successfully.", nil)
}

// @Summary export directory users as csv
// @Tags user
// @Produce text/csv
// @Security ApiKeyAuth
// @Router /users/export/csv [get]
func (h *UserHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	users, _, err := h.userService.List(r.Context(), "", 1, 0)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	data, err := export.UsersCSV(users)
	if err != nil {
		api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename=users.csv")
	w.Header().Set("Content-Type", "text/csv;charset=utf-8")
	w.Write(data)
}
