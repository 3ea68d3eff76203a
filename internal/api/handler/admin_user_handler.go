package handler

import (
	"encoding/json"
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

type AdminUserHandler struct {
	adminUserService service.IAdminUserService
}

func NewAdminUserHandler(adminUserService service.IAdminUserService) *AdminUserHandler {
	if adminUserService == nil {
		panic("adminUserService cannot be nil")
	}
	return &AdminUserHandler{adminUserService: adminUserService}
}

// @Summary list admin users
// @Tags admin
// @Produce json
// @Param search query string false "search term"
// @Success 200 {object} api.Response{data=[]model.AdminUser} "success"
// @Security ApiKeyAuth
// @Router /admin/users [get]
func (h *AdminUserHandler) List(w http.ResponseWriter, r *http.Request) {
	admins, err := h.adminUserService.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, admins, nil)
}

// @Summary create admin user
// @Tags admin
// @Accept json
// @Produce json
// @Param admin body dto.AdminUserInputDTO true "admin user"
// @Success 200 {object} api.Response{data=model.AdminUser} "success"
// @Failure 460 {object} api.ResponseError "InvalidArgumentCode"
// @Security ApiKeyAuth
// @Router /admin/users [post]
func (h *AdminUserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminUserInputDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, er.ErrStrMap[er.BadRequestCode])
		return
	}

	created, fieldErrors, err := h.adminUserService.Create(r.Context(), model.AdminUser{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if len(fieldErrors) > 0 {
		api.FieldErrorsJSON(w, int(er.InvalidArgumentCode), fieldErrors)
		return
	}
	api.SuccessJSON(w, created, nil)
}

// @Summary delete admin user
// @Tags admin
// @Produce json
// @Success 200 {object} api.Response{data=string} "success"
// @Failure 401 {object} api.ResponseError "UnauthorizedCode"
// @Failure 404 {object} api.ResponseError "NotFoundCode"
// @Security ApiKeyAuth
// @Router /admin/users/{id} [delete]
func (h *AdminUserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, "invalid admin user id")
		return
	}

	if err := h.adminUserService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, "Admin user deleted successfully.", nil)
}

// @Summary toggle admin user status
// @Tags admin
// @Produce json
// @Success 200 {object} api.Response{data=model.AdminUser} "success"
// @Failure 404 {object} api.ResponseError "NotFoundCode"
// @Security ApiKeyAuth
// @Router /admin/users/{id}/status [patch]
func (h *AdminUserHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, "invalid admin user id")
		return
	}

	admin, err := h.adminUserService.ToggleStatus(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, admin, nil)
}

// @Summary export admin users as csv
// @Tags admin
// @Produce text/csv
// @Security ApiKeyAuth
// @Router /admin/users/export/csv [get]
func (h *AdminUserHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	admins, err := h.adminUserService.List(r.Context(), "")
	if err != nil {
		handleServiceError(w, err)
		return
	}

	data, err := export.AdminUsersCSV(admins)
	if err != nil {
		api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename=admin_users.csv")
	w.Header().Set("Content-Type", "text/csv;charset=utf-8")
	w.Write(data)
}
