package handler

import (
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/vendorportal/internal/constants"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/api"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/er"
)

// handleServiceError 依PortalError的code回覆，其餘一律500
func handleServiceError(w http.ResponseWriter, err error) {
	if pErr, ok := err.(*er.PortalError); ok {
		api.ErrorJSON(w, int(pErr.Code), pErr, er.ErrStrMap[pErr.Code])
		return
	}
	api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
}

// parsePaging 分頁參數不合法時退回預設值
func parsePaging(r *http.Request) (page, pageSize int) {
	page = constants.DefaultPaging
	pageSize = constants.DefaultPagingSize

	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := r.URL.Query().Get("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			pageSize = n
		}
	}
	return page, pageSize
}
