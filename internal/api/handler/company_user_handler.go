package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/vendorportal/internal/api/dto"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/api"
	"github.com/RoyceAzure/lab/vendorportal/internal/service"
	"github.com/go-chi/chi/v5"
)

type CompanyUserHandler struct {
	companyUserService service.ICompanyUserService
}

func NewCompanyUserHandler(companyUserService service.ICompanyUserService) *CompanyUserHandler {
	if companyUserService == nil {
		panic("companyUserService cannot be nil")
	}
	return &CompanyUserHandler{companyUserService: companyUserService}
}

// @Summary list company users from upstream directory
// @Tags company
// @Produce json
// @Param search query string false "search term"
// @Param status query string false "active or inactive"
// @Success 200 {object} api.Response{data=[]model.CompanyUser} "success"
// @Failure 500 {object} api.ResponseError "InternalErrorCode"
// @Security ApiKeyAuth
// @Router /company-users [get]
func (h *CompanyUserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePaging(r)
	users, total, err := h.companyUserService.List(r.Context(),
		r.URL.Query().Get("search"), r.URL.Query().Get("status"), page, pageSize)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, users, dto.ListMeta{Page: page, PageSize: pageSize, Total: total})
}

// @Summary get single company user
// @Tags company
// @Produce json
// @Success 200 {object} api.Response{data=model.CompanyUser} "success"
// @Failure 404 {object} api.ResponseError "NotFoundCode"
// @Security ApiKeyAuth
// @Router /company-users/{id} [get]
func (h *CompanyUserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.companyUserService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, user, nil)
}
