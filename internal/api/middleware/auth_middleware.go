package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/RoyceAzure/lab/vendorportal/internal/constants"
	portalapi "github.com/RoyceAzure/lab/vendorportal/internal/pkg/api"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/er"
	"github.com/RoyceAzure/lab/vendorportal/internal/service"
)

// AuthMiddleware 驗證Bearer token，通過後把email放進context
// 對應來源系統的ProtectedRoute：未登入一律擋下
func AuthMiddleware(authService service.IAuthService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				portalapi.ErrorJSON(w, int(er.UnauthenticatedCode), nil, "Authorization header is missing")
				return
			}

			fields := strings.Fields(authHeader)
			if len(fields) != 2 || !strings.EqualFold(fields[0], string(constants.AuthorizationTypeBearer)) {
				portalapi.ErrorJSON(w, int(er.UnauthenticatedCode), nil, "invalid authorization header format")
				return
			}

			email, err := authService.VerifyToken(fields[1])
			if err != nil {
				portalapi.ErrorJSON(w, int(er.UnauthenticatedCode), err, er.ErrStrMap[er.UnauthenticatedCode])
				return
			}

			ctx := context.WithValue(r.Context(), constants.AuthorizationPayloadKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
