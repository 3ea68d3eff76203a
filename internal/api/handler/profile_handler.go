package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/vendorportal/internal/api/dto"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/api"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/er"
	"github.com/RoyceAzure/lab/vendorportal/internal/service"
)

type ProfileHandler struct {
	profileService service.IProfileService
}

func NewProfileHandler(profileService service.IProfileService) *ProfileHandler {
	if profileService == nil {
		panic("profileService cannot be nil")
	}
	return &ProfileHandler{profileService: profileService}
}

// @Summary get saved theme preference
// @Tags profile
// @Produce json
// @Success 200 {object} api.Response{data=dto.ThemeDTO} "success"
// @Security ApiKeyAuth
// @Router /profile/theme [get]
func (h *ProfileHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.profileService.GetTheme(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, dto.ThemeDTO{Theme: theme}, nil)
}

// @Summary save theme preference
// @Tags profile
// @Accept json
// @Produce json
// @Param theme body dto.ThemeDTO true "light or dark"
// @Success 200 {object} api.Response{data=dto.ThemeDTO} "success"
// @Failure 460 {object} api.ResponseError "InvalidArgumentCode"
// @Security ApiKeyAuth
// @Router /profile/theme [put]
func (h *ProfileHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req dto.ThemeDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, er.ErrStrMap[er.BadRequestCode])
		return
	}

	if err := h.profileService.SetTheme(r.Context(), req.Theme); err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, dto.ThemeDTO{Theme: req.Theme}, nil)
}
